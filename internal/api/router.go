package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lzjever/sandboxd/internal/api/middleware"
	"github.com/lzjever/sandboxd/internal/core"
	"github.com/lzjever/sandboxd/internal/health"
	"github.com/lzjever/sandboxd/internal/registry"
)

// maxBodyBytes caps request bodies well above anything the CLI sends.
const maxBodyBytes = 4 << 20

type API struct {
	registry   *registry.Registry
	health     *health.Manager
	log        *zap.Logger
	socketPath string
	startedAt  time.Time
}

func NewAPI(reg *registry.Registry, hm *health.Manager, socketPath string, log *zap.Logger) *API {
	return &API{
		registry:   reg,
		health:     hm,
		log:        log,
		socketPath: socketPath,
		startedAt:  time.Now(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recoverer(a.log))
	r.Use(middleware.Logger)

	// Content type is deliberately not enforced on writes; the body decoder
	// rejects anything that is not a JSON object regardless of headers.

	r.Post("/workspace/register", a.RegisterWorkspace)
	r.Post("/workspace/unregister", a.UnregisterWorkspace)
	r.Post("/workspace/activity", a.WorkspaceActivity)
	r.Get("/workspace/list", a.ListWorkspaces)
	r.Get("/workspace/state", a.WorkspaceState)

	r.Get("/sync/wait", a.SyncWait)

	r.Get("/health", a.HealthHandler)
	r.Get("/status", a.StatusHandler)

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// decodeBody decodes a request body into v. The body must be a JSON object;
// bare literals, arrays, and truncated JSON are rejected. Unknown fields are
// ignored.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return fmt.Errorf("empty request body")
	}
	if body[0] != '{' {
		return fmt.Errorf("request body must be a JSON object")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func badRequest(w http.ResponseWriter, err error) {
	WriteError(w, core.NewAppError(core.ErrBadRequest, err.Error()))
}

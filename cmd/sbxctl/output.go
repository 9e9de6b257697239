package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/lzjever/sandboxd/internal/client"
)

func printResult(v interface{}) {
	if output == "json" {
		json.NewEncoder(os.Stdout).Encode(v)
		return
	}
	printTable(v)
}

func printTable(v interface{}) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch data := v.(type) {
	case []client.WorkspaceState:
		if len(data) == 0 {
			fmt.Println("No workspaces registered.")
			return
		}
		fmt.Fprintln(w, "ID\tPATH\tREGISTERED\tLAST ACTIVITY")
		for _, ws := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ws.ID, truncate(ws.Path, 40), ws.RegisteredAt, ws.LastActivityAt)
		}
	case client.WorkspaceState:
		fmt.Fprintf(w, "ID:\t%s\n", data.ID)
		fmt.Fprintf(w, "Path:\t%s\n", data.Path)
		fmt.Fprintf(w, "Registered:\t%s\n", data.RegisteredAt)
		fmt.Fprintf(w, "Last activity:\t%s\n", data.LastActivityAt)
	case client.StatusResponse:
		fmt.Fprintf(w, "PID:\t%d\n", data.PID)
		fmt.Fprintf(w, "Socket:\t%s\n", data.SocketPath)
		fmt.Fprintf(w, "Uptime:\t%s\n", data.Uptime)
		fmt.Fprintf(w, "Workspaces:\t%d\n", data.Workspaces)
		fmt.Fprintf(w, "Healthy:\t%t\n", data.Healthy)
	case client.HealthResponse:
		fmt.Fprintf(w, "Healthy:\t%t\n", data.Healthy)
		names := make([]string, 0, len(data.Checks))
		for name := range data.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			st := data.Checks[name]
			status := "ok"
			if !st.Healthy {
				status = "FAIL: " + st.Message
			}
			fmt.Fprintf(w, "  %s:\t%s\t(%dms)\n", name, status, st.DurationMs)
		}
	default:
		json.NewEncoder(os.Stdout).Encode(v)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

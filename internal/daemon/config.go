package daemon

import "time"

type Config struct {
	SocketPath      string        `envconfig:"SBXD_SOCKET_PATH" default:"/tmp/sandboxd.sock"`
	PIDFile         string        `envconfig:"SBXD_PID_FILE" default:"/tmp/sandboxd.pid"`
	LogFile         string        `envconfig:"SBXD_LOG_FILE" default:""`
	LogLevel        string        `envconfig:"SBXD_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SBXD_SHUTDOWN_TIMEOUT" default:"15s"`
	CheckInterval   time.Duration `envconfig:"SBXD_CHECK_INTERVAL" default:"30s"`
}

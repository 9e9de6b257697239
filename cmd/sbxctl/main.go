package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	socketPath string
	timeout    time.Duration
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "sbxctl",
	Short: "sbxctl - sandboxd daemon command line tool",
	Long:  `sbxctl is a command line interface for the sandboxd workspace daemon.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&socketPath, "socket", "s", "/tmp/sandboxd.sock", "Daemon socket path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
}

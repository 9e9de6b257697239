package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lzjever/sandboxd/internal/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		if !c.IsRunning() {
			fmt.Println("Daemon is not running.")
			os.Exit(1)
		}
		st, err := c.Status()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(*st)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run daemon health checks",
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		h, err := c.Health()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(*h)
		if !h.Healthy {
			os.Exit(1)
		}
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronization commands",
}

var syncWaitCmd = &cobra.Command{
	Use:   "wait <id>",
	Short: "Wait for a workspace to become ready",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		wait, _ := cmd.Flags().GetDuration("for")
		c := client.New(socketPath, wait+timeout)
		if err := c.SyncWait(args[0], wait); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Workspace %s is ready.\n", args[0])
	},
}

func init() {
	syncWaitCmd.Flags().Duration("for", 5*time.Second, "How long to wait")
	syncCmd.AddCommand(syncWaitCmd)
	rootCmd.AddCommand(statusCmd, healthCmd, syncCmd)
}

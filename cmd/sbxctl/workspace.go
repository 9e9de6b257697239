package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lzjever/sandboxd/internal/client"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Workspace management commands",
}

var wsRegisterCmd = &cobra.Command{
	Use:   "register <id> <path>",
	Short: "Register a workspace with the daemon",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		if err := c.RegisterWorkspace(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Workspace %s registered.\n", args[0])
	},
}

var wsUnregisterCmd = &cobra.Command{
	Use:   "unregister <id>",
	Short: "Unregister a workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		if err := c.UnregisterWorkspace(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Workspace %s unregistered.\n", args[0])
	},
}

var wsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered workspaces",
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		workspaces, err := c.ListWorkspaces()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(workspaces)
	},
}

var wsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get workspace state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		ws, err := c.GetWorkspaceState(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(*ws)
	},
}

var wsActivityCmd = &cobra.Command{
	Use:   "activity <id>",
	Short: "Ping a workspace's activity timestamp",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := client.New(socketPath, timeout)
		if err := c.Activity(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Activity recorded for %s.\n", args[0])
	},
}

func init() {
	workspaceCmd.AddCommand(wsRegisterCmd, wsUnregisterCmd, wsListCmd, wsGetCmd, wsActivityCmd)
	rootCmd.AddCommand(workspaceCmd)
}

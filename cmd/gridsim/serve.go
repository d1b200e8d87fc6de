package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridsim SSH server",
	Long: `Start an SSH server that lets users connect and edit.

Each SSH connection gets its own private grid; nothing is shared between
sessions except the edit journal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridsim/host_key

Examples:
  gridsim serve                           # Listen on :23235 with auto-generated key
  gridsim serve --ssh :2222               # Listen on port 2222
  gridsim serve --host-key ./my_host_key  # Use specific host key
  gridsim serve --db ./history.db         # Use specific journal database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, pal := mustLoad()

	dbPath := flagDBPath
	if !cfg.Journal.Enabled {
		dbPath = ""
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      dbPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GridWidth:   uint16(cfg.Grid.Width),
		GridHeight:  uint16(cfg.Grid.Height),
		TickRate:    cfg.TickRate,
		Palette:     pal,
		Logger:      newLogger(os.Stderr, "gridsim-ssh", cfg),
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gridsim SSH server on %s\n", srvCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(srvCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}

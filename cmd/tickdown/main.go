package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/engine"
	"github.com/tickdown/tickdown/internal/mcp"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/store"
	"github.com/tickdown/tickdown/tui"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"add": true, "start": true, "pause": true, "reset": true,
	"complete": true, "delete": true, "list": true,
	"category": true, "history": true, "export": true,
	"web": true, "help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → TUI or MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// openRuntime opens the store and loads persisted state into a fresh
// container. The caller owns the returned closers.
func openRuntime(baseDir string) (*state.Container, *store.Synchronizer, *store.SQLiteKV, *config.Config, error) {
	kv, err := store.Open(baseDir)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		kv.Close()
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	kv.ConfigurePool(cfg)

	container := state.New()
	sync := store.NewSynchronizer(kv, container)
	sync.Start(context.Background())

	return container, sync, kv, cfg, nil
}

func main() {
	// Handle --help/--version before store init (no store needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir := filepath.Join(homeDir, ".tickdown")

	container, sync, kv, cfg, err := openRuntime(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()
	defer sync.Flush()

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(container, sync, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'tickdown --help' for usage.\n")
		os.Exit(1)
	}

	// No args + interactive terminal → live TUI
	if isTerminal() {
		if err := tui.Run(container, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// MCP server mode (piped stdin). Long-running, so timers tick for
	// the lifetime of the server.
	eng := engine.New(container, cfg.TickInterval())
	eng.Start()
	defer eng.Stop()

	if err := mcp.Run(container, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

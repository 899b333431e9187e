package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/tickdown/tickdown/internal/config"
	"github.com/tickdown/tickdown/internal/engine"
	"github.com/tickdown/tickdown/internal/errors"
	"github.com/tickdown/tickdown/internal/ops"
	"github.com/tickdown/tickdown/internal/state"
	"github.com/tickdown/tickdown/internal/store"
	"github.com/tickdown/tickdown/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(container *state.Container, sync *store.Synchronizer, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "tickdown",
		Usage:   "Personal countdown timer tracker",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(container),
			startCmd(container),
			pauseCmd(container),
			resetCmd(container),
			completeCmd(container),
			deleteCmd(container),
			listCmd(container),
			categoryCmd(container),
			historyCmd(container),
			exportCmd(container, cfg),
			webCmd(container, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new countdown timer (starts paused)",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category label"},
			&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Required: true, Usage: "Countdown length in seconds"},
			&cli.BoolFlag{Name: "halfway-alert", Usage: "Notify when the countdown passes the midpoint"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("timer name is required"))
			}

			output, err := ops.Add(container, ops.AddInput{
				Name:         c.Args().First(),
				Category:     c.String("category"),
				Duration:     c.Int("duration"),
				HalfwayAlert: c.Bool("halfway-alert"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// startCmd creates the start command.
func startCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "start",
		Usage:     "Start a paused timer",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Start(container, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// pauseCmd creates the pause command.
func pauseCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "pause",
		Usage:     "Pause a running timer",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Pause(container, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// resetCmd creates the reset command.
func resetCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "Reset a timer to paused at its full duration",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Reset(container, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// completeCmd creates the complete command.
func completeCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "Complete a timer immediately, archiving it to history",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Complete(container, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a timer (history entries are kept)",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Delete(container, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List timers in creation order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Exact category filter"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(container, ops.ListInput{Category: c.String("category")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// categoryCmd creates the category command with bulk subcommands.
func categoryCmd(container *state.Container) *cli.Command {
	bulk := func(name, usage string, fn func(*state.Container, string) (*ops.CategoryOutput, error)) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "<category>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return outputError(errors.NewInvalidRequest("category is required"))
				}
				output, err := fn(container, c.Args().First())
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			},
		}
	}

	return &cli.Command{
		Name:  "category",
		Usage: "Bulk operations on every timer in a category",
		Subcommands: []*cli.Command{
			bulk("start", "Start every non-completed timer in the category", ops.StartCategory),
			bulk("pause", "Pause every running timer in the category", ops.PauseCategory),
			bulk("reset", "Reset every timer in the category", ops.ResetCategory),
		},
	}
}

// historyCmd creates the history command.
func historyCmd(container *state.Container) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show completed-timer history grouped by calendar day",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Exact category filter (\"all\" for everything)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.History(container, ops.HistoryInput{Category: c.String("category")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(container *state.Container, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the full history collection as a JSON file",
		ArgsUsage: "[path]",
		Action: func(c *cli.Context) error {
			input := ops.ExportInput{}
			if c.NArg() > 0 {
				input.Path = c.Args().First()
			}

			output, err := ops.Export(container, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// webCmd creates the web command. The web server is a long-running
// surface, so it also runs the tick scheduler.
func webCmd(container *state.Container, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the read-only web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.WebHost
			if b := c.String("bind"); b != "" {
				bind = b
			}
			port := cfg.WebPort
			if p := c.String("port"); p != "" {
				parsed, err := strconv.Atoi(p)
				if err != nil || parsed < 1 || parsed > 65535 {
					return outputError(errors.NewInvalidRequest("port must be a number between 1 and 65535"))
				}
				port = parsed
			}

			eng := engine.New(container, cfg.TickInterval())
			eng.Start()
			defer eng.Stop()

			srv, err := web.NewServer(container, cfg, Version, bind, port)
			if err != nil {
				return outputError(err)
			}
			return web.Run(srv)
		},
	}
}

// outputJSON writes indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tickErr, ok := err.(*errors.TickError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tickErr.Code, tickErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// requireID extracts the positional timer id argument.
func requireID(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", errors.NewInvalidRequest("timer id is required")
	}
	return c.Args().First(), nil
}

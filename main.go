package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/config"
	"userdir/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config service used when --config is not given. Set before calling Run().
	ConfigService config.ConfigService

	// Launch runs the UI. Replaced in tests.
	Launch func(model *ui.Model, opts ...tea.ProgramOption) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigService: config.NewConfigService(),
		Launch:        launch,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:           ctx,
		Stdout:        stdout,
		Stderr:        stderr,
		ConfigService: m.ConfigService,
		Launch:        m.Launch,
	}

	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("userdir"),
		kong.Description("Browse and search a remote user directory in the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help
		kong.Vars{"config_path": config.DefaultPath()},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// launch runs the Bubble Tea program until the user quits
func launch(model *ui.Model, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

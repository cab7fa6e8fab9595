package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"userdir/internal/config"
	"userdir/internal/directory"
	"userdir/internal/ui"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	ConfigService config.ConfigService
	Launch        func(model *ui.Model, opts ...tea.ProgramOption) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browse  BrowseCmd  `cmd:"" default:"withargs" help:"Browse the user directory (default)"`
	Version VersionCmd `cmd:"" help:"Print the version and exit"`
}

// BrowseCmd starts the terminal UI. Flags override config values.
type BrowseCmd struct {
	Config      string        `short:"c" type:"path" help:"Config file (default: ${config_path})" placeholder:"PATH"`
	Endpoint    string        `short:"e" help:"Users endpoint URL" placeholder:"URL"`
	Debounce    time.Duration `help:"Search debounce delay, e.g. 300ms"`
	Timeout     time.Duration `help:"Fetch timeout, e.g. 10s"`
	LogFile     string        `default:"userdir.log" type:"path" help:"Log file path"`
	NoAltScreen bool          `help:"Render inline instead of in the alternate screen"`
}

// Run loads configuration and starts the UI.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	closeLog := setupLogging(c.LogFile, deps.Stderr)
	defer closeLog()

	configSvc := deps.ConfigService
	if c.Config != "" {
		configSvc = config.NewConfigServiceAt(c.Config)
	}
	cfg := loadConfig(configSvc)

	if err := c.apply(cfg); err != nil {
		return err
	}
	log.Printf("Using endpoint %s (debounce %s, timeout %s)",
		cfg.Directory.Endpoint, cfg.Directory.Debounce, cfg.Directory.Timeout)

	source := directory.NewHTTPSource(cfg.Directory.Endpoint,
		directory.WithTimeout(cfg.Directory.Timeout.Duration),
		directory.WithUserAgent("userdir/"+version),
	)
	model := ui.NewModel(cfg, source)

	opts := []tea.ProgramOption{tea.WithContext(deps.Ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Printf("Starting UI...")
	if err := deps.Launch(model, opts...); err != nil {
		log.Printf("Error running program: %v", err)
		return err
	}
	log.Printf("UI exited normally")
	return nil
}

// apply overrides config values with the flags that were given
func (c *BrowseCmd) apply(cfg *config.Config) error {
	if c.Debounce < 0 {
		return fmt.Errorf("invalid --debounce %s: must not be negative", c.Debounce)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid --timeout %s: must not be negative", c.Timeout)
	}

	if c.Endpoint != "" {
		cfg.Directory.Endpoint = c.Endpoint
	}
	if c.Debounce > 0 {
		cfg.Directory.Debounce = config.Duration{Duration: c.Debounce}
	}
	if c.Timeout > 0 {
		cfg.Directory.Timeout = config.Duration{Duration: c.Timeout}
	}
	if c.NoAltScreen {
		cfg.UISettings.AltScreen = false
	}
	return nil
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "userdir %s\n", version)
	return nil
}

// setupLogging sends the standard logger to path, since the terminal belongs to the UI
func setupLogging(path string, stderr io.Writer) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}

// loadConfig loads the config file, falling back to defaults when it cannot be read
func loadConfig(configSvc config.ConfigService) *config.Config {
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config from %s: %v", configSvc.Path(), err)
		return config.DefaultConfig()
	}
	log.Printf("Loaded config from %s", configSvc.Path())
	return cfg
}

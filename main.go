package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"fitcalc/internal/config"
	"fitcalc/internal/logging"
	"fitcalc/internal/service"
	"fitcalc/internal/store"
	"fitcalc/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.fitcalc/config.json)")
	importPath := flag.String("import", "", "import weigh-ins from a CSV file and exit")
	flag.Parse()

	if err := run(*configPath, *importPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, importPath string) error {
	if configPath == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		configPath = filepath.Join(dir, "config.json")
	}

	// Load configuration, writing the defaults on first run
	cfg, err := config.LoadFrom(configPath)
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExampleAt(configPath); err != nil {
			return fmt.Errorf("creating default config: %w", err)
		}
		fmt.Printf("Created default config at %s\n", configPath)
		cfg, err = config.LoadFrom(configPath)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Config validation failed:\n%v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s\n", configPath)
		return nil
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	closer, err := logging.Setup(logging.Params{FileName: logPath, Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	querySvc := service.NewQueryService(db, cfg)

	if importPath != "" {
		summary, err := querySvc.ImportWeights(importPath)
		if err != nil {
			return err
		}
		fmt.Println(summary.Message)
		return nil
	}

	logrus.WithField("config", configPath).Info("starting TUI")

	// Launch TUI
	app := tui.NewApp(querySvc)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

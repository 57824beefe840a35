package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/fieldops-tui/internal/config"
	"github.com/altinukshini/fieldops-tui/internal/logger"
	"github.com/altinukshini/fieldops-tui/internal/store"
	"github.com/altinukshini/fieldops-tui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".fieldops", "config.toml")
	}
	return "config.toml"
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to config file")
	dataDir := flag.String("data", "", "Data directory (overrides config)")
	verbose := flag.Bool("verbose", false, "Enable debug logging to stderr")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("fieldops-tui", version)
		os.Exit(0)
	}

	logger.SetVerbose(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store error: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	logger.Info("opened store at %s", st.Path())

	app := tui.NewApp(cfg, st)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

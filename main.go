package main

import (
	"flag"
	"fmt"
	"os"

	"tabpager/internal/config"
	"tabpager/internal/logger"
	"tabpager/ui/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.GetLogger("main")
	log.Info().Int("tabs", len(cfg.Tabs)).Msg("starting")

	ts, err := tui.BuildTabs(cfg.Tabs)
	if err != nil {
		fmt.Printf("Error loading tabs: %v\n", err)
		os.Exit(1)
	}

	// Start the TUI application directly
	err = tui.Start(ts, tui.OptionsFromConfig(cfg))
	logger.CloseGlobal()
	if err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

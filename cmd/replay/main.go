package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tabpager/internal/config"
	"tabpager/internal/logger"
	"tabpager/internal/pager"
	"tabpager/internal/replay"
	"tabpager/ui/console"
)

func main() {
	scriptPath := flag.String("script", "", "path to the YAML event script")
	tabsFlag := flag.String("tabs", "", "comma separated tab labels, overrides the script")
	animated := flag.Bool("animated", false, "animate the scroll after a tab selection")
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -script events.yaml [-tabs A,B,C] [-animated]")
		os.Exit(2)
	}

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseGlobal()

	script, err := replay.Load(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *tabsFlag != "" {
		script.Tabs = strings.Split(*tabsFlag, ",")
	}
	if *animated {
		script.Animated = true
	}

	trace, err := replay.Run(script,
		replay.WithSpring(pager.SpringConfig{
			FPS:       cfg.Behavior.FPS(),
			Frequency: cfg.Behavior.SpringFrequency,
			Damping:   cfg.Behavior.SpringDamping,
		}),
		replay.WithLogger(logger.GetLogger("replay")),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	console.Print(os.Stdout, script.Tabs, trace)
}

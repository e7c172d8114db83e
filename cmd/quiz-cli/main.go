package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"glassquiz/internal/app"
	"glassquiz/internal/cli"
	"glassquiz/internal/config"
	"glassquiz/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	uiMode := flag.String("ui", "", "front-end: auto|live|plain (overrides the config file)")
	server := flag.String("server", "", "quiz-service base URL; loads questions and favorites from it")
	flag.Parse()

	if err := run(*configPath, *uiMode, *server); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, uiMode, server string) error {
	cfg, err := config.Load(configPath, os.Getenv)
	if err != nil {
		return err
	}
	if uiMode != "" {
		cfg.UI.Mode = uiMode
	}

	decision, err := cli.ResolveUIMode(cfg.UI.Mode, os.Stdout)
	if err != nil {
		return err
	}
	if decision.Warning != "" {
		fmt.Fprintln(os.Stderr, decision.Warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	runtime, err := app.New(ctx, cfg, app.Options{ServerURL: server, Logger: logger})
	if err != nil {
		return err
	}
	defer runtime.Close()

	if decision.UseLive {
		return tui.Run(ctx, runtime.Service, os.Stdin, os.Stdout, tui.Options{NoColor: cfg.UI.NoColor})
	}
	return cli.Run(ctx, runtime.Service, os.Stdin, os.Stdout)
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"glassquiz/internal/app"
	"glassquiz/internal/config"
	"glassquiz/internal/httpapi"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides ADDR and the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath, os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtime, err := app.New(ctx, cfg, app.Options{})
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer runtime.Close()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Mount("/", httpapi.NewRouter(runtime.Service, httpapi.RouterOptions{
		CORSOrigins: cfg.Server.CORSOrigins,
	}))

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("warning: shutdown: %v", err)
		}
	}()

	log.Printf("quiz-service listening on %s (%d questions, storage %s)", addr, runtime.Banks.Total(), cfg.Storage.Driver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"glassquiz/internal/apiclient"
	"glassquiz/internal/bank"
	"glassquiz/internal/config"
	"glassquiz/internal/favorites"
	"glassquiz/internal/gemini"
	"glassquiz/internal/quiz"
	"glassquiz/internal/storage"
)

// Runtime is a fully wired service plus the resources it holds open.
type Runtime struct {
	Service *quiz.Service
	Banks   bank.Banks
	closers []func() error
}

func (r *Runtime) Close() error {
	var first error
	for idx := len(r.closers) - 1; idx >= 0; idx-- {
		if err := r.closers[idx](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Options selects where questions and favorites come from. An empty
// ServerURL keeps everything local.
type Options struct {
	ServerURL string
	HTTP      *http.Client
	Logger    *log.Logger
}

// New wires banks, persistence and the explanation client from cfg.
func New(ctx context.Context, cfg config.Config, opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if opts.ServerURL != "" {
		return newRemote(ctx, opts, logger)
	}

	explainer := gemini.NewClient(gemini.Options{
		APIKey:  cfg.Explain.APIKey,
		Model:   cfg.Explain.Model,
		BaseURL: cfg.Explain.BaseURL,
		Timeout: cfg.Explain.Timeout,
		HTTP:    opts.HTTP,
		Logger:  logger,
	})

	banks, err := bank.Load(bank.Sources{
		Single:  cfg.Banks.Single,
		Multi:   cfg.Banks.Multi,
		Boolean: cfg.Banks.Boolean,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("load banks: %w", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	favs := favorites.New(backend.KV, logger)
	service := quiz.NewService(banks.Catalog(favs), quiz.ServiceOptions{
		Favorites: favs,
		Results:   backend.Results,
		Explainer: explainer,
		Logger:    logger,
	})

	return &Runtime{
		Service: service,
		Banks:   banks,
		closers: []func() error{backend.Close},
	}, nil
}

// newRemote runs sessions locally over banks fetched from a quiz-service.
// Favorites, explanations and the result history all live on the server.
func newRemote(ctx context.Context, opts Options, logger *log.Logger) (*Runtime, error) {
	client := apiclient.NewHTTPClient(opts.ServerURL, opts.HTTP)
	banks, err := client.LoadBanks(ctx)
	if err != nil {
		return nil, err
	}

	favs := apiclient.NewFavorites(client, logger)
	service := quiz.NewService(banks.Catalog(favs), quiz.ServiceOptions{
		Favorites: favs,
		Results:   apiclient.NewResultHistory(client),
		Explainer: apiclient.NewExplainer(client, logger),
		Logger:    logger,
	})
	return &Runtime{Service: service, Banks: banks}, nil
}

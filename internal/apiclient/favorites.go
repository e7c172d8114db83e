package apiclient

import (
	"context"
	"log"
	"time"
)

const favoritesTimeout = 5 * time.Second

// Favorites keeps the collection on the quiz-service. It satisfies
// quiz.FavoritesStore: request failures are logged and read as an empty
// collection, the same way a broken local store behaves.
type Favorites struct {
	client *HTTPClient
	logger *log.Logger
}

func NewFavorites(client *HTTPClient, logger *log.Logger) *Favorites {
	if logger == nil {
		logger = log.Default()
	}
	return &Favorites{client: client, logger: logger}
}

func (f *Favorites) List() []string {
	ctx, cancel := context.WithTimeout(context.Background(), favoritesTimeout)
	defer cancel()

	ids, err := f.client.Favorites(ctx)
	if err != nil {
		f.logger.Printf("warning: list remote favorites: %v", err)
		return []string{}
	}
	return ids
}

func (f *Favorites) Contains(questionID string) bool {
	for _, id := range f.List() {
		if id == questionID {
			return true
		}
	}
	return false
}

func (f *Favorites) Add(questionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), favoritesTimeout)
	defer cancel()

	if err := f.client.AddFavorite(ctx, questionID); err != nil {
		f.logger.Printf("warning: add remote favorite %s: %v", questionID, err)
	}
}

func (f *Favorites) Remove(questionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), favoritesTimeout)
	defer cancel()

	if err := f.client.RemoveFavorite(ctx, questionID); err != nil {
		f.logger.Printf("warning: remove remote favorite %s: %v", questionID, err)
	}
}

func (f *Favorites) Toggle(questionID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), favoritesTimeout)
	defer cancel()

	favorite, err := f.client.ToggleFavorite(ctx, questionID)
	if err != nil {
		f.logger.Printf("warning: toggle remote favorite %s: %v", questionID, err)
		return f.Contains(questionID)
	}
	return favorite
}

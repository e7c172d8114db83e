package httpapi

import "glassquiz/internal/quiz"

type API struct {
	service *quiz.Service
}

func NewAPI(service *quiz.Service) *API {
	return &API{service: service}
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teleline/smsgate/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/stayease/stayease/internal/devserver"
	"github.com/stayease/stayease/pkg/config"
	"github.com/stayease/stayease/pkg/logger"
	mw "github.com/stayease/stayease/pkg/middleware"
)

func main() {
	cfg := config.Load()

	store := devserver.NewStore()
	server := devserver.New(store, cfg.Session.CookieName, cfg.Auth.SessionTTL)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("devserver"))
	r.Use(mw.Logging)
	r.Use(mw.Health)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Mount("/", server.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("Starting StayEase dev server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Dev server error", "error", err)
		os.Exit(1)
	}
}

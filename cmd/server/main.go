package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/unify-app/unify/internal/auth"
	"github.com/unify-app/unify/internal/config"
	"github.com/unify-app/unify/internal/handlers"
	"github.com/unify-app/unify/internal/middleware"
	"github.com/unify-app/unify/internal/store/sqlstore"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := sqlstore.New(cfg.Driver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("creating upload directory", "error", err)
		os.Exit(1)
	}

	codec := auth.NewCodec([]byte(cfg.SecretKey))

	authHandler := &handlers.AuthHandler{Store: store, Sessions: codec}
	chatHandler := &handlers.ChatHandler{}
	uploadHandler := &handlers.UploadHandler{Dir: cfg.UploadDir}

	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	requireSession := middleware.Auth(codec)

	// API Endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	api.Handle("/me", requireSession(http.HandlerFunc(authHandler.Me))).Methods("GET")
	api.Handle("/chat", requireSession(http.HandlerFunc(chatHandler.Chat))).Methods("POST")
	api.Handle("/transcribe", requireSession(http.HandlerFunc(chatHandler.Transcribe))).Methods("POST")
	api.Handle("/upload", requireSession(http.HandlerFunc(uploadHandler.Upload))).Methods("POST")
	api.Handle("/inbox/{username}", requireSession(http.HandlerFunc(uploadHandler.Inbox))).Methods("GET")

	// Everything else is the built frontend.
	r.PathPrefix("/").Handler(&handlers.SPAHandler{Dist: cfg.DistDir})

	logger.Info("starting server", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

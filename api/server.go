package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/auth"
	"github.com/brothersphoto/site-backend/config"
	"github.com/brothersphoto/site-backend/content"
	"github.com/brothersphoto/site-backend/database"
	s3store "github.com/brothersphoto/site-backend/storage/s3"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	svc := content.NewService(content.Stores{
		Posts:    db.BlogPostRepo(),
		Landing:  db.LandingImageRepo(),
		Home:     db.HomeImageRepo(),
		Library:  db.LibraryImageRepo(),
		Settings: db.SiteSettingRepo(),
		Pages:    db.PageContentRepo(),
	}, content.WithFallback(content.NewFallbackCache(
		config.GetString(router.config, "FALLBACK_CACHE_PATH", "fallback_cache.json"),
	)))

	// Admin session guard: the secret comes from configuration, the signing
	// key falls back to the secret itself when not set separately.
	adminPassword := config.GetString(router.config, "ADMIN_PASSWORD", "")
	signingKey := config.GetString(router.config, "SESSION_SIGNING_KEY", adminPassword)
	sessionLifetime := time.Duration(config.GetInt(router.config, "SESSION_LIFETIME_MINUTES", 0)) * time.Minute
	sessions := auth.NewSessions(auth.NewFixedSecret(adminPassword), []byte(signingKey), sessionLifetime)

	// Object storage for the upload relay. Missing credentials leave the
	// store nil; the relay then fails each request with a configuration
	// error instead of failing startup.
	var objectStore ObjectStore
	accessKey := config.GetString(router.config, "AWS_ACCESS_KEY_ID", "")
	secretKey := config.GetString(router.config, "AWS_SECRET_ACCESS_KEY", "")
	if accessKey != "" && secretKey != "" {
		store, err := s3store.New(s3store.Config{
			Region:          config.GetString(router.config, "AWS_REGION", "us-east-1"),
			Bucket:          config.GetString(router.config, "AWS_BUCKET_NAME", "brothersphotography"),
			AccessKeyID:     accessKey,
			SecretAccessKey: secretKey,
			Endpoint:        config.GetString(router.config, "AWS_ENDPOINT", ""),
		})
		if err != nil {
			log.Error().Err(err).Msg("Error initializing object storage, upload relay disabled")
		} else {
			objectStore = store
		}
	}

	relayCredential := config.GetString(router.config, "RELAY_ANON_KEY", "")

	handlers := initializeHandlers(svc, sessions, objectStore, relayCredential)

	authMiddleware := newAuthMiddleware(sessions)

	// Restricted CORS on the API surface; the relay group opens its own.
	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

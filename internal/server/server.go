// Package server provides the HTTP REST API for the article stylist.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/generate"
	"github.com/aylin/article-stylist/internal/translate"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	registry   *formats.Registry
	controller *generate.Controller
	translator translate.Translator
}

// Config holds server configuration
type Config struct {
	Addr       string
	Registry   *formats.Registry
	Controller *generate.Controller
	Translator translate.Translator // optional; nil disables translate_from
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("server config: registry is required")
	}
	if cfg.Controller == nil {
		return nil, fmt.Errorf("server config: controller is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	s := &Server{
		registry:   cfg.Registry,
		controller: cfg.Controller,
		translator: cfg.Translator,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/v1/generate/batch", s.handleGenerateBatch)
	mux.HandleFunc("GET /api/v1/formats", s.handleListFormats)
	mux.HandleFunc("GET /api/v1/formats/{slug}", s.handleGetFormat)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation may run several attempts
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.translator != nil {
		if err := s.translator.Close(); err != nil {
			log.Printf("translator close: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

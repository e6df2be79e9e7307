package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmori/talentmatch/internal/analyzer"
	"github.com/tmori/talentmatch/internal/config"
	"github.com/tmori/talentmatch/internal/extraction"
	"github.com/tmori/talentmatch/internal/recommend"
	"github.com/tmori/talentmatch/internal/server/ratelimit"
	"github.com/tmori/talentmatch/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	analyzer    *analyzer.Adapter
	extractor   *extraction.Extractor
	ranker      *recommend.Ranker
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration.
type Config struct {
	ListenAddr      string
	DatabaseURL     string
	APIKey          string
	GeminiModel     string
	AnalyzerTimeout time.Duration
}

// New creates a new server instance. Both the database and the external
// analyzer are optional: without a database the persistence endpoints return
// 503, and without an API key all matching runs on the heuristic path.
func New(cfg Config) (*Server, error) {
	var st *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		st, err = store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		log.Println("No database configured; snapshot endpoints disabled")
	}

	var client analyzer.Client
	if cfg.APIKey != "" {
		var err error
		client, err = analyzer.NewGeminiClient(context.Background(), cfg.APIKey, cfg.GeminiModel)
		if err != nil {
			if st != nil {
				st.Close()
			}
			return nil, fmt.Errorf("failed to create analyzer client: %w", err)
		}
	} else {
		log.Println("No API key configured; matching runs on the heuristic path only")
	}

	return newServer(cfg, st, client), nil
}

// newServer wires dependencies into a Server. Split out so tests can inject a
// nil store and a stub analyzer client.
func newServer(cfg Config, st *store.Store, client analyzer.Client) *Server {
	s := &Server{
		store:       st,
		analyzer:    analyzer.NewWithTimeout(client, cfg.AnalyzerTimeout),
		extractor:   extraction.New(),
		ranker:      recommend.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /rank", s.handleRank)
	mux.HandleFunc("POST /compare", s.handleCompare)

	// Persistence-backed candidate endpoints
	mux.HandleFunc("POST /candidates/{id}/resume", s.handleCandidateResume)
	mux.HandleFunc("GET /candidates/{id}/snapshots", s.handleListSnapshots)
	mux.HandleFunc("GET /comparisons/flagged", s.handleFlaggedComparisons)

	addr := cfg.ListenAddr
	if addr == "" {
		addr = config.DefaultListenAddr
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if err := s.analyzer.Close(); err != nil {
		log.Printf("Error closing analyzer client: %v", err)
	}
	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
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

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. Uses the
// IP from RemoteAddr; X-Forwarded-For is deliberately not trusted here.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

package routechat

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/theoremus-urban-solutions/route-chat/catalog"
	"github.com/theoremus-urban-solutions/route-chat/config"
	"github.com/theoremus-urban-solutions/route-chat/intent"
	"github.com/theoremus-urban-solutions/route-chat/matcher"
	"github.com/theoremus-urban-solutions/route-chat/stops"
)

// Server wires the catalog, matcher and intent pipeline behind the HTTP
// surface. Build one with NewServer and keep it for the process lifetime.
type Server struct {
	cfg      config.AppConfig
	catalog  *catalog.Catalog
	matcher  *matcher.Matcher
	pipeline *intent.Pipeline
	cache    *replyCache
	stats    serviceStats
	started  time.Time
	httpSrv  *http.Server
}

// NewServer assembles the service over a loaded catalog. The model-backed
// extractor is only wired when it is enabled and its API key is present;
// otherwise the rule grammar handles every message.
func NewServer(cfg config.AppConfig, cat *catalog.Catalog) *Server {
	aliases := stops.MergeAliases(stops.DefaultAliases(), cfg.Normalizer.AliasMap())
	norm := stops.NewNormalizer(cat.StopNames(), aliases, cfg.Normalizer.FuzzyThreshold)

	var remote intent.Extractor
	if cfg.Extractor.Enabled {
		if key := os.Getenv(cfg.Extractor.APIKeyEnv); key == "" {
			log.Printf("extractor enabled but %s is not set; using rule fallback only", cfg.Extractor.APIKeyEnv)
		} else {
			remote = intent.NewLLMExtractor(intent.LLMOptions{
				APIKey:        key,
				BaseURL:       cfg.Extractor.BaseURL,
				Model:         cfg.Extractor.Model,
				TimeoutMS:     cfg.Extractor.TimeoutMS,
				RatePerMinute: cfg.Extractor.RatePerMinute,
				Burst:         cfg.Extractor.Burst,
			})
		}
	}

	return &Server{
		cfg:      cfg,
		catalog:  cat,
		matcher:  matcher.New(cat, norm),
		pipeline: intent.NewPipeline(remote, nil),
		cache: newReplyCache(
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			time.Duration(cfg.Cache.CleanupSeconds)*time.Second,
		),
		started: time.Now(),
	}
}

// requestID tags every response so log lines can be tied to a reply.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// Router builds the HTTP handler tree, including CORS and the optional
// static UI mount.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/stops", s.handleStops).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	if dir := s.cfg.Server.UIDir; dir != "" {
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
		r.Path("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(dir, "index.html"))
		})
	}

	origins := s.cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})
	return c.Handler(r)
}

// Start begins serving in the background; errors other than a clean close
// are fatal.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"Geostore/internal/auth"
	"Geostore/internal/calc/geometry"
	"Geostore/internal/calc/importer"
	"Geostore/internal/calc/layers"
	"Geostore/internal/calc/report"
	"Geostore/internal/calc/reservoir"
	"Geostore/internal/calc/sensitivity"
	"Geostore/internal/calc/storage"
	"Geostore/internal/config"
	"Geostore/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestID keeps an incoming X-Request-ID or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, cfg config.Config, log *zap.Logger, m *metrics.Metrics) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}).Methods("GET")
	router.Handle("/metrics", m.Handler()).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := router.PathPrefix("/api/tools").Subrouter()
	api.Use(limiter.LimitMiddleware)
	if cfg.AuthEnabled() {
		tokens := &auth.Tokens{Key: cfg.TokenKey}
		api.Use(tokens.Middleware)
	}
	api.Use(m.Middleware)

	geometryH := &geometry.Handler{Log: log}
	storageH := &storage.Handler{Log: log}
	reservoirH := &reservoir.Handler{Log: log}
	layersH := &layers.Handler{Log: log}
	importerH := &importer.Handler{Log: log}
	sensitivityH := &sensitivity.Handler{Log: log}
	reportH := &report.Handler{Log: log}

	api.HandleFunc("/geometry/calc", geometryH.Calc).Methods("POST")
	api.HandleFunc("/storage/calc", storageH.Calc).Methods("POST")
	api.HandleFunc("/reservoir/calc", reservoirH.Calc).Methods("POST")
	api.HandleFunc("/layers/calc", layersH.Calc).Methods("POST")
	api.HandleFunc("/layers/import", importerH.Layers).Methods("POST")
	api.HandleFunc("/sensitivity/calc", sensitivityH.Calc).Methods("POST")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/report/xlsx", reportH.Workbook).Methods("POST")
}

// NewHandler returns the full middleware chain around the router.
func NewHandler(cfg config.Config, log *zap.Logger) http.Handler {
	router := mux.NewRouter()
	HandleList(router, cfg, log, metrics.New())
	var h http.Handler = CORS(router)
	h = RequestID(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return handlers.LoggingHandler(os.Stdout, h)
}

// Run serves until ctx is cancelled, then drains connections for up to 5s.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", server.Addr), zap.Bool("tls", cfg.TLS()), zap.Bool("auth", cfg.AuthEnabled()))
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

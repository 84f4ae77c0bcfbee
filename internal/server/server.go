package server

import (
	"context"
	"net/http"
	"time"

	"nodevitals/internal/errors"
	"nodevitals/internal/logger"
	"nodevitals/internal/vitals"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	addr    string
	scraper vitals.System
	health  *Health
	srv     *http.Server
}

// New builds a Server exposing the scraper and a fresh health holder
// on the given listen address.
func New(addr string, scraper vitals.System) (Server, error) {
	errFactory := errors.New()

	if addr == "" {
		return nil, errFactory.WithMessage(ErrInvalidAddress, "listen address is required")
	}
	if scraper == nil {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "scraper is required")
	}

	s := &httpServer{
		addr:    addr,
		scraper: scraper,
		health:  NewHealth(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/metrics", s.handleMetrics)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

func (s *httpServer) Handler() http.Handler {
	return s.srv.Handler
}

func (s *httpServer) Health() *Health {
	return s.health
}

func (s *httpServer) Start(ctx context.Context) error {
	errFactory := errors.New()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", s.addr).Msg("Starting HTTP server")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return errFactory.Wrap(errors.ErrShutdownFailed, err)
		}
		logger.Debug().Msg("HTTP server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return errFactory.Wrap(ErrServeFailed, err)
		}
		return nil
	}
}

func (s *httpServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	encoding := negotiate(r)

	state := s.health.State()
	if !state.IsValid() {
		respondError(w, encoding, http.StatusServiceUnavailable,
			errors.ErrUnavailable, "health state not yet reported")
		return
	}

	respond(w, encoding, http.StatusOK, healthBody{Status: state})
}

func (s *httpServer) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	encoding := negotiate(r)

	snapshot, err := s.scraper.ScrapeMetrics(r.Context())
	if err != nil {
		// A failed scrape yields no snapshot at all; only the error
		// code reaches the client.
		var coded errors.Error
		if errors.As(err, &coded) {
			logger.ErrorWithCode(coded).Msg("Metrics scrape failed")
			respondError(w, encoding, http.StatusInternalServerError,
				coded.Code(), "metrics scrape failed")
			return
		}

		logger.Error().Err(err).Msg("Metrics scrape failed")
		respondError(w, encoding, http.StatusInternalServerError,
			errors.ErrOperationFailed, "metrics scrape failed")
		return
	}

	if encoding == contentTypeMsgpack {
		data, err := snapshot.EncodeBinary()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to encode snapshot")
			respondError(w, encoding, http.StatusInternalServerError,
				vitals.ErrEncodeFailed, "failed to encode snapshot")
			return
		}

		w.Header().Set("Content-Type", contentTypeMsgpack)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.Debug().Err(err).Msg("Failed to write response")
		}
		return
	}

	respond(w, encoding, http.StatusOK, snapshot)
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	DefaultWebhookPath = "/telegram"
	shutdownTimeout    = 3 * time.Second
	maxUpdateSize      = 1 << 20
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server receives telegram webhook calls and exposes metrics. Updates are only enqueued here,
// the bot loop handles them.
type Server struct {
	baseLogger  *zap.SugaredLogger
	webhookPath string
	updates     chan<- tgbotapi.Update
}

// New creates a new server. A nil updates channel disables the webhook route.
func New(logger *zap.SugaredLogger, webhookPath string, updates chan<- tgbotapi.Update) Server {
	if webhookPath == "" {
		webhookPath = DefaultWebhookPath
	}

	return Server{
		baseLogger:  logger,
		webhookPath: webhookPath,
		updates:     updates,
	}
}

func writeGenericResponse(w http.ResponseWriter, status int) error {
	return writeResponse(w, status, GenericResponse{})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// Handler builds the router with logging and panic recovery
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())

	rtr.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if s.updates != nil {
		rtr.HandleFunc(s.webhookPath, s.Webhook()).Methods(http.MethodPost)
	}

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(s.baseLogger.Desugar())),
		handlers.PrintRecoveryStack(true),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", "port", port, "webhook", s.updates != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Webhook decodes an update pushed by telegram and hands it to the bot loop
func (s Server) Webhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var update tgbotapi.Update
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
			log.Warnw("failed to decode update", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid update"))
			return
		}

		select {
		case s.updates <- update:
			writeGenericResponse(w, http.StatusOK)
		case <-r.Context().Done():
			log.Warnw("dropped update", "update_id", update.UpdateID)
			writeErrorResponse(w, http.StatusServiceUnavailable, errors.New("bot is busy"))
		}
	}
}

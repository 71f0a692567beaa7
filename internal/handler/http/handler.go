package http

import (
	"context"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/handler"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/utils"
)

// Dispatcher is the transport-neutral request entry point. Authenticate lets
// the binding reject requests before their bodies are read.
type Dispatcher interface {
	Authenticate(ctx context.Context, headers map[string]string) (handler.Response, bool)
	Dispatch(ctx context.Context, req handler.Request) handler.Response
}

type Handler struct {
	dispatcher Dispatcher
	traceIDs   *utils.TraceIDGenerator
	cfg        config.Server

	logger *logger.Logger
}

func NewHandler(dispatcher Dispatcher, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		dispatcher: dispatcher,
		traceIDs:   utils.NewTraceIDGenerator(),
		cfg:        cfg,
		logger:     logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/service"
)

// Request is a transport-neutral API request. Headers hold one value per
// name; names are matched case-insensitively.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

// Response is the result of [Handler.Dispatch]. Body is empty for 204.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Handler authenticates, parses and routes API requests to the services.
// It holds no mutable state and is safe for concurrent use.
type Handler struct {
	services *service.Services
	apiToken []byte
	routes   map[resource]map[string]action

	logger *logger.Logger
}

// NewHandler returns a Handler that accepts requests bearing cfg.APIToken.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) (*Handler, error) {
	if cfg.APIToken == "" {
		return nil, errAPITokenIsNotSet
	}

	h := &Handler{
		services: services,
		apiToken: []byte(cfg.APIToken),
		logger:   logger,
	}
	h.routes = h.routeTable()

	logger.Info().Msg("request dispatcher created")
	return h, nil
}

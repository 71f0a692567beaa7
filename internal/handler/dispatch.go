package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/utils"
	"github.com/MKhiriev/go-crud-api/models"
)

// Dispatch handles a single request:
//  1. the bearer API token is checked,
//  2. a non-empty body is parsed as a JSON object,
//  3. the path and method are routed to a service call.
//
// Every outcome, including panics inside services, is returned as a
// Response; Dispatch itself never panics.
func (h *Handler) Dispatch(ctx context.Context, req Request) (resp Response) {
	ctx = logger.WithFallback(ctx, h.logger)
	log := logger.FromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", req.Method).
				Str("path", req.Path).
				Msg("panic while handling request")
			resp = errorMessage(http.StatusInternalServerError, msgInternalServerError)
		}
	}()

	if err := h.authorize(req.Headers); err != nil {
		log.Debug().Err(err).Str("path", req.Path).Msg("request rejected")
		return h.fromError(ctx, err)
	}

	body, err := parseBody(req.Body)
	if err != nil {
		return h.fromError(ctx, err)
	}

	ep, err := match(req.Path)
	if err != nil {
		return h.fromError(ctx, err)
	}

	action, ok := h.routes[ep.resource][req.Method]
	if !ok {
		return h.fromError(ctx, errMethodNotAllowed)
	}

	status, payload, err := action(ctx, ep.id, body)
	if err != nil {
		return h.fromError(ctx, err)
	}

	return jsonResponse(status, payload)
}

// fromError converts err into an error response, logging unexpected ones.
func (h *Handler) fromError(ctx context.Context, err error) Response {
	resp, known := responseFromError(err)
	if !known {
		logger.FromContext(ctx).Err(err).Msg("error handling request")
	}

	return errorMessage(resp.status, resp.message)
}

// jsonResponse serializes payload. A nil payload yields an empty body.
func jsonResponse(status int, payload any) Response {
	if payload == nil {
		return Response{Status: status, ContentType: utils.ContentTypeJSON}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorMessage(http.StatusInternalServerError, msgInternalServerError)
	}

	return Response{Status: status, ContentType: utils.ContentTypeJSON, Body: body}
}

func errorMessage(status int, message string) Response {
	body, _ := json.Marshal(models.ErrorResponse{Error: message})
	return Response{Status: status, ContentType: utils.ContentTypeJSON, Body: body}
}

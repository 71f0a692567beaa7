package handler

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-crud-api/internal/service"
	"github.com/MKhiriev/go-crud-api/models"
)

func (h *Handler) issueToken(ctx context.Context, _ int64, body jsonObject) (int, any, error) {
	var req models.TokenRequest
	if err := body.bind(&req); err != nil {
		return 0, nil, err
	}
	if !req.Username.Present() || !req.Password.Present() {
		return 0, nil, service.ErrMissingRequiredFields
	}

	token, err := h.services.AuthService.IssueToken(ctx, req.Username.Value, req.Password.Value)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, token, nil
}

func (h *Handler) verifyToken(ctx context.Context, _ int64, body jsonObject) (int, any, error) {
	var req models.VerifyTokenRequest
	if err := body.bind(&req); err != nil {
		return 0, nil, err
	}
	if !req.Token.Present() {
		return 0, nil, service.ErrMissingRequiredFields
	}

	verification, err := h.services.AuthService.VerifyToken(ctx, req.Token.Value)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, verification, nil
}

package handler

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-crud-api/models"
)

func (h *Handler) health(context.Context, int64, jsonObject) (int, any, error) {
	return http.StatusOK, models.HealthStatus{Status: "ok"}, nil
}

func (h *Handler) listUsers(ctx context.Context, _ int64, _ jsonObject) (int, any, error) {
	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		return 0, nil, err
	}
	if users == nil {
		users = []models.User{}
	}

	return http.StatusOK, users, nil
}

func (h *Handler) createUser(ctx context.Context, _ int64, body jsonObject) (int, any, error) {
	var req models.CreateUserRequest
	if err := body.bind(&req); err != nil {
		return 0, nil, err
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusCreated, user, nil
}

func (h *Handler) getUser(ctx context.Context, id int64, _ jsonObject) (int, any, error) {
	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, user, nil
}

func (h *Handler) updateUser(ctx context.Context, id int64, body jsonObject) (int, any, error) {
	var patch models.UserPatch
	if err := body.bind(&patch); err != nil {
		return 0, nil, err
	}

	user, err := h.services.UserService.UpdateUser(ctx, id, patch)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, user, nil
}

func (h *Handler) deleteUser(ctx context.Context, id int64, _ jsonObject) (int, any, error) {
	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		return 0, nil, err
	}

	return http.StatusNoContent, nil, nil
}

func (h *Handler) listUserItems(ctx context.Context, id int64, _ jsonObject) (int, any, error) {
	items, err := h.services.UserService.ListUserItems(ctx, id)
	if err != nil {
		return 0, nil, err
	}
	if items == nil {
		items = []models.Item{}
	}

	return http.StatusOK, items, nil
}

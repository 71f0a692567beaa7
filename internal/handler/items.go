package handler

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-crud-api/models"
)

func (h *Handler) listItems(ctx context.Context, _ int64, _ jsonObject) (int, any, error) {
	items, err := h.services.ItemService.ListItems(ctx)
	if err != nil {
		return 0, nil, err
	}
	if items == nil {
		items = []models.Item{}
	}

	return http.StatusOK, items, nil
}

func (h *Handler) createItem(ctx context.Context, _ int64, body jsonObject) (int, any, error) {
	var req models.CreateItemRequest
	if err := body.bind(&req); err != nil {
		return 0, nil, err
	}

	item, err := h.services.ItemService.CreateItem(ctx, req)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusCreated, item, nil
}

func (h *Handler) getItem(ctx context.Context, id int64, _ jsonObject) (int, any, error) {
	item, err := h.services.ItemService.GetItem(ctx, id)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, item, nil
}

func (h *Handler) updateItem(ctx context.Context, id int64, body jsonObject) (int, any, error) {
	var patch models.ItemPatch
	if err := body.bind(&patch); err != nil {
		return 0, nil, err
	}

	item, err := h.services.ItemService.UpdateItem(ctx, id, patch)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, item, nil
}

func (h *Handler) deleteItem(ctx context.Context, id int64, _ jsonObject) (int, any, error) {
	if err := h.services.ItemService.DeleteItem(ctx, id); err != nil {
		return 0, nil, err
	}

	return http.StatusNoContent, nil, nil
}

package handler

import (
	"context"
	"crypto/subtle"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// authorize checks the Authorization header against the configured API
// token. The comparison runs in constant time.
func (h *Handler) authorize(headers map[string]string) error {
	value, ok := headerValue(headers, authorizationHeader)
	if !ok {
		return errUnauthorized
	}

	token, ok := strings.CutPrefix(value, bearerPrefix)
	if !ok {
		return errUnauthorized
	}

	if subtle.ConstantTimeCompare([]byte(token), h.apiToken) != 1 {
		return errInvalidAPIToken
	}

	return nil
}

// Authenticate runs the bearer token check alone. When the request is
// rejected it returns the 401 response Dispatch would produce and false.
func (h *Handler) Authenticate(ctx context.Context, headers map[string]string) (Response, bool) {
	if err := h.authorize(headers); err != nil {
		return h.fromError(ctx, err), false
	}

	return Response{}, true
}

func headerValue(headers map[string]string, name string) (string, bool) {
	if v, ok := headers[name]; ok {
		return v, true
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}

	return "", false
}

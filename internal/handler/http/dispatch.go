package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-crud-api/internal/handler"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/utils"
)

// dispatch copies the request into a handler.Request, runs the dispatcher
// and writes its Response back unchanged.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := h.readBody(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("request body rejected")
		if errors.Is(err, ErrRequestBodyTooLarge) {
			utils.WriteError(w, msgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteError(w, msgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	resp := h.dispatcher.Dispatch(r.Context(), handler.Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: firstHeaderValues(r.Header),
		Body:    body,
	})

	if _, err = utils.WriteBody(w, string(resp.Body), resp.ContentType, resp.Status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	reader := io.Reader(r.Body)
	if h.cfg.MaxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingRequestBody, err)
	}

	return body, nil
}

// firstHeaderValues keeps the first value of every header. Keys stay in
// canonical form; the dispatcher matches them case-insensitively.
func firstHeaderValues(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for name, values := range header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	return headers
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/utils"
)

// withAuthentication answers requests without a valid API token with the
// dispatcher's 401 before the body is decompressed or read.
func (h *Handler) withAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := h.dispatcher.Authenticate(r.Context(), firstHeaderValues(r.Header))
		if !ok {
			log := logger.FromRequest(r)
			log.Debug().Str("path", r.URL.Path).Msg("request rejected before reading body")
			if _, err := utils.WriteBody(w, string(resp.Body), resp.ContentType, resp.Status); err != nil {
				log.Err(err).Msg("error writing response")
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

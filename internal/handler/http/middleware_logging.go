package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/starwars-api/internal/logger"
)

// withLogging writes one access entry per request. Server errors are logged
// at error level, client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.Status()
		logger.FromRequest(r).WithLevel(accessLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/minterminds/chatfront/pkg/utils/logging"
	"github.com/minterminds/chatfront/pkg/utils/request_id"
)

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, reqID := request_id.Generate(r.Context())
		logger := logging.From(ctx).With("request_id", reqID)
		ctx = logging.With(ctx, logger)

		sw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		logger.Info("Access Log",
			slog.Any("method", r.Method),
			slog.Any("path", r.URL.Path),
			slog.Int("status", sw.status),
		)
	})
}

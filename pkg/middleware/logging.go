package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

const slowRequest = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição com o ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(log.CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			logger.WithFields(log.Fields{
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Info("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(start)
			logger = logger.WithFields(log.Fields{
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("Completada em %s", formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error("✗ " + msg)
			case lrw.statusCode >= 400:
				logger.Warn("✗ " + msg)
			default:
				logger.Info("✓ " + msg)
			}

			if elapsed > slowRequest {
				logger.Warnf("⚠ Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma panics em 500 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"error":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("❌ PANIC na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

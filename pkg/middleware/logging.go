package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/memotag-sales-api/pkg/apiErrors"
	"github.com/vfg2006/memotag-sales-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID de correlação usado nos logs
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra informações sobre cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			logger := log.ForContext(ctx)

			if log.IsDevelopment() {
				logger.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				logger.WithFields(log.Fields{
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"user_agent":     r.UserAgent(),
					"content_type":   r.Header.Get("Content-Type"),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			logger = logger.WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": responseTime.Milliseconds(),
			})

			msg := "Requisição finalizada com sucesso"
			if log.IsDevelopment() {
				statusSymbol := "✓"
				if lrw.statusCode >= 400 {
					statusSymbol = "✗"
				}
				msg = fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime))
			}

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
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

// LogPanicMiddleware recupera panics nos handlers e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

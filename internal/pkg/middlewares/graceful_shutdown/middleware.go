package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отсекает новые запросы после начала остановки сервиса.
// Уже начатые запросы дорабатывают в своем контексте, балансировщик по 503
// уводит трафик на живые инстансы.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

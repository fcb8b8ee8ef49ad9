// Заглушка rate limit
package middleware

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
)

// RateLimitMiddleware возвращает middleware-заглушку для ограничения частоты запросов.
//
// Сейчас это только точка подключения: конфиг (security.rate_limit)
// валидируется при старте, но запросы не отбрасываются.
// TODO: подключить реальный limiter (token bucket по cfg.RPS/cfg.Burst),
// когда ограничение частоты станет требованием.
func RateLimitMiddleware(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
		})
	}
}

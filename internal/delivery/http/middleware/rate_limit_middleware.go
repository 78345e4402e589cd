package middleware

import (
	"net/http"

	"hongmove-frontdesk/internal/service"
	"hongmove-frontdesk/pkg/response"

	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware throttles the public booking form per client IP.
// Limiter failures let the request through.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	proxies TrustedProxies
	log     *logrus.Logger
}

func NewRateLimitMiddleware(limiter service.RateLimiter, proxies TrustedProxies, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		proxies: proxies,
		log:     log,
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := m.proxies.ClientIP(r)
		allowed, err := m.limiter.Allow(r.Context(), ip)
		if err != nil {
			m.log.Warnf("Rate limiter unavailable, allowing request: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			m.log.WithField("remote_ip", ip).Warn("Rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			response.TooManyRequests(w, "Too many requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

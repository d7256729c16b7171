package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket with a temporary block once the
// bucket is exhausted. Used on the auth endpoints to slow brute force.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(log *zap.Logger, rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrInvalidRemoteAddr(err))
			return
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()
				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests())
				return
			}
			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.log.Warn("ip temporarily blocked by rate limiter", zap.String("ip", ip))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests())
			return
		}

		next.ServeHTTP(w, req)
	})
}

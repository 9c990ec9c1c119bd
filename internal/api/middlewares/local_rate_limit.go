package middlewares

import (
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// localClient holds a per-IP limiter plus the time it was last seen so
// stale entries can be evicted.
type localClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimit is the in-process fallback used when no Redis is
// configured: a per-IP token bucket backed by x/time/rate. State lives in
// this process only, so limits multiply across replicas.
func LocalRateLimit(ratePerSecond float64, burst int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*localClient)
	)

	// Evict IPs not seen for a few minutes.
	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			mu.Lock()
			c, found := clients[ip]
			if !found {
				c = &localClient{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
				clients[ip] = c
			}
			c.lastSeen = time.Now()
			allowed := c.limiter.Allow()
			mu.Unlock()

			w.Header().Set("X-RateLimit-Policy", "token-bucket-local")

			if !allowed {
				w.Header().Set("Retry-After", "1")
				log.Printf("[LocalRateLimit] Blocked request from %s\n", r.RemoteAddr)
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

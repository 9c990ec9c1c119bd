package middlewares

import (
	"log"
	"net/http"
	"time"
)

// slowThreshold flags requests worth a log line; the two queries this
// API runs should stay well under it.
const slowThreshold = 500 * time.Millisecond

type timedWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
	status  int
}

func (w *timedWriter) stamp() {
	if !w.stamped {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
		w.stamped = true
	}
}

func (w *timedWriter) WriteHeader(code int) {
	w.status = code
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

// ResponseTimeMiddleware reports handler latency in X-Response-Time and
// logs anything past slowThreshold.
func ResponseTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timedWriter{
			ResponseWriter: w,
			start:          time.Now(),
			status:         http.StatusOK,
		}
		next.ServeHTTP(tw, r)

		elapsed := time.Since(tw.start)
		// Header trailers are not an option here, so a handler that never
		// wrote still gets stamped before the response goes out.
		if !tw.stamped {
			tw.Header().Set("X-Response-Time", elapsed.String())
		}

		if elapsed > slowThreshold {
			log.Printf("[SLOW] %s %s status=%d took=%s", r.Method, r.URL.Path, tw.status, elapsed)
		}
	})
}

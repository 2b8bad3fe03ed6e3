package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// statusWriter запоминает код ответа и размер тела.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

// HTTPObserver получает длительность каждого запроса (см. metrics.Metrics).
type HTTPObserver interface {
	ObserveHTTP(method string, status int, d time.Duration)
}

// Logging пишет одну строку на запрос и передаёт длительность в obs (может быть nil).
func Logging(logger zerolog.Logger, obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			if sw.status == 0 {
				sw.status = http.StatusOK
			}
			dur := time.Since(start)
			if obs != nil {
				obs.ObserveHTTP(r.Method, sw.status, dur)
			}
			ev := logger.Info()
			if sw.status >= http.StatusInternalServerError {
				ev = logger.Error()
			}
			ev.Str("rid", GetRequestID(r)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("dur", dur).
				Int("size", sw.size).
				Msg("http")
		})
	}
}

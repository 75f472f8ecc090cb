package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"blog/pkg/common"
	"blog/pkg/logger"
)

type Logging struct {
	l *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *Logging {
	return &Logging{l: l}
}

type ctxKey string

const traceIdKey ctxKey = "traceId"

// SetupTracing assigns every request a short trace id.
func (lm *Logging) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceId := r.Header.Get("X-Request-Id")
		if traceId == "" {
			traceId = common.RandStringRunes(10)
		}
		ctx := logger.ToContext(r.Context(), lm.l.With("trace_id", traceId))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusWriter remembers the status code for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

func (lm *Logging) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Log(r.Context()).Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"remote", r.RemoteAddr,
			"took", time.Since(start),
		)
	})
}

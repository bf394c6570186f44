package logger

import (
	log "log/slog"
	"net/http"
	"time"
)

// ESTransport 包装 http.RoundTripper，记录 ES 请求耗时
type ESTransport struct {
	Transport http.RoundTripper
}

func (t *ESTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "ES Error", append(fields, log.Any("err", err))...)
	} else if elapsed > 500*time.Millisecond {
		log.WarnContext(req.Context(), "ES Slow", fields...)
	}

	return resp, err
}

package exchangerate

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LoggingTransport logs every outbound request and its outcome.
type LoggingTransport struct {
	wrapped http.RoundTripper
	logger  *zap.Logger
}

func NewLoggingTransport(wrapped http.RoundTripper, logger *zap.Logger) *LoggingTransport {
	if wrapped == nil {
		wrapped = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingTransport{wrapped: wrapped, logger: logger}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logger.Debug("request ->", zap.String("method", req.Method), zap.Stringer("url", req.URL))

	res, err := t.wrapped.RoundTrip(req)
	if err != nil {
		t.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.Stringer("url", req.URL),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	t.logger.Debug("response <-",
		zap.String("status", res.Status),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

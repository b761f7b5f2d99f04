package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request id back to the client
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 64

	requestIDLoggerKey = "requestID"
	contextLoggerKey   = "logger"
)

// InitLogger sets up the custom time formatter for all log statements.
func InitLogger(level string) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, falling back to info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// Default returns a logger without a request ID.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}

// RequestLogger attaches a logger with a fresh request ID to every request and
// writes one access line when the request completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		rlog := logrus.WithField(requestIDLoggerKey, requestID)
		c.Set(contextLoggerKey, rlog)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		entry := rlog.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// validRequestID accepts short ids made of letters, digits, '-', '_' and '.'
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// FromContext returns the request logger, or the default logger when the
// request did not pass through RequestLogger.
func FromContext(c *gin.Context) *logrus.Entry {
	if value, exists := c.Get(contextLoggerKey); exists {
		if rlog, ok := value.(*logrus.Entry); ok {
			return rlog
		}
	}
	return Default()
}

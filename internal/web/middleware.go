package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// requestLogger tags each request with an ID and logs it once it completes.
func requestLogger(base *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		entry := base.WithField("request_id", id)
		c.Set(loggerKey, entry)

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.WithFields(fields).Error("request")
		case status >= http.StatusBadRequest:
			entry.WithFields(fields).Warn("request")
		default:
			entry.WithFields(fields).Debug("request")
		}
	}
}

// log returns the request-scoped logger.
func (s *Server) log(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if e, ok := v.(*logrus.Entry); ok {
			return e
		}
	}
	return s.logger
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin/",
	"/favicon",
	"/healthz",
	"/livereload",
	"/overlay",
	"/privacy",
	"/go/",
}

// visitorTracking records page views with hashed addresses. Requests
// carrying DNT: 1 are never recorded.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		logger := s.log(c)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.stats.RecordVisit(ctx, ip, ua, path); err != nil {
				logger.WithError(err).Warn("recording visitor")
			}
		}()
		c.Next()
	}
}

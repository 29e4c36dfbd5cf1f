package web

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// handleLink counts a click on a named outbound link and redirects to it.
func (s *Server) handleLink(c *gin.Context) {
	name := c.Param("name")
	link := s.content.Get().Link(name)
	if link == nil {
		c.String(http.StatusNotFound, "unknown link")
		return
	}

	if c.GetHeader("DNT") != "1" {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		if err := s.stats.RecordClick(ctx, link.Name, link.URL); err != nil {
			s.log(c).WithError(err).Warn("recording link click")
		}
		cancel()
	}
	c.Redirect(http.StatusFound, link.URL)
}

// handleResume serves the configured resume as a download.
func (s *Server) handleResume(c *gin.Context) {
	path := s.cfg.ResumePath
	if path == "" {
		c.String(http.StatusNotFound, "no resume configured")
		return
	}
	if _, err := os.Stat(path); err != nil {
		s.log(c).WithError(err).Warn("resume not readable")
		c.String(http.StatusNotFound, "resume not found")
		return
	}
	c.FileAttachment(path, "resume"+filepath.Ext(path))
}

package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const adminCookie = "admin_token"

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuth redirects to the login page unless the session cookie matches
// this process's token.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalConstantTime(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.cfg.AdminDefaults {
		s.logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if gin.Mode() == gin.DebugMode {
		s.logger.Debugf("admin token (dev only): %s", s.adminToken)
	}

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"site": s.content.Get()})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := equalConstantTime(c.PostForm("username"), s.cfg.AdminUsername)
		passOK := equalConstantTime(c.PostForm("password"), s.cfg.AdminPassword)
		visitor := s.stats.HashIP(c.ClientIP())

		if !userOK || !passOK {
			s.log(c).WithField("visitor", visitor).Warn("failed admin login")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
			return
		}
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.log(c).WithField("visitor", visitor).Info("admin login")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			s.log(c).WithError(err).Error("loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			s.log(c).WithError(err).Error("loading admin stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.stats.Stats(c.Request.Context())
		if err != nil {
			s.log(c).WithError(err).Error("exporting admin stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.stats.Cleanup(c.Request.Context())
		if err != nil {
			s.log(c).WithError(err).Error("privacy cleanup")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		s.log(c).WithFields(logrus.Fields{"removed": n}).Info("privacy cleanup")
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}

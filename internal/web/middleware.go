package web

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/prefs/signal"
)

const (
	visitorCookie = "visitor"
	ctxVisitor    = "folio.visitor"
	ctxNoTrack    = "folio.dnt"
)

// requestLogger replaces gin's default logger with zerolog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/images/") {
			return
		}
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// visitorMiddleware gives every browser a random visitor id that scopes
// its server-side preferences. Visitors sending DNT: 1 get no id and keep
// their preferences in their own cookies only, as does everyone when no
// server-side backend is configured.
func (s *Server) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.backend == nil ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Set(ctxNoTrack, true)
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if _, perr := uuid.Parse(id); err != nil || perr != nil {
			id = uuid.NewString()
			c.SetCookie(visitorCookie, id, 3600*24*365, "/", "", s.secure, true)
		}
		c.Set(ctxVisitor, id)
		c.Next()
	}
}

// clientHints asks the browser to send its color-scheme preference.
func clientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", signal.ClientHintHeader)
		c.Header("Critical-CH", signal.ClientHintHeader)
		c.Header("Vary", signal.ClientHintHeader+", Cookie")
		c.Next()
	}
}

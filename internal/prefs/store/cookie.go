package store

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 3600 * 24 * 365

// Cookie persists preferences in the visitor's browser, one cookie per
// key. It lives for a single request.
type Cookie struct {
	c      *gin.Context
	secure bool
}

func NewCookie(c *gin.Context, secure bool) *Cookie {
	return &Cookie{c: c, secure: secure}
}

func (s *Cookie) Get(_ context.Context, key string) (string, bool, error) {
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Cookie) Set(_ context.Context, key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", s.secure, true)
	return nil
}

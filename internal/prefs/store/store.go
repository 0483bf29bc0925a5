// Package store provides the durable backends preferences are persisted in.
package store

import (
	"context"
	"errors"

	"github.com/Zachkp/folio/internal/prefs"
)

var (
	ErrUnavailable  = errors.New("preference store unavailable")
	ErrUnknownStore = errors.New("unknown preference store")
)

// Backend is a server-side store shared by all visitors.
type Backend interface {
	Get(ctx context.Context, visitor, key string) (string, bool, error)
	Set(ctx context.Context, visitor, key, value string) error
	Close() error
}

type bound struct {
	backend Backend
	visitor string
}

// Bind scopes a backend to one visitor.
func Bind(b Backend, visitor string) prefs.Store {
	return bound{backend: b, visitor: visitor}
}

func (s bound) Get(ctx context.Context, key string) (string, bool, error) {
	return s.backend.Get(ctx, s.visitor, key)
}

func (s bound) Set(ctx context.Context, key, value string) error {
	return s.backend.Set(ctx, s.visitor, key, value)
}

type fallback struct {
	primary   prefs.Store
	secondary prefs.Store
}

// WithFallback reads and writes primary, and turns to secondary when
// primary fails or holds no value. A write only reaches secondary when
// primary rejects it.
func WithFallback(primary, secondary prefs.Store) prefs.Store {
	return fallback{primary: primary, secondary: secondary}
}

func (s fallback) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.primary.Get(ctx, key)
	if err == nil && ok {
		return v, true, nil
	}
	if sv, sok, serr := s.secondary.Get(ctx, key); serr == nil && sok {
		return sv, true, nil
	}
	return v, ok, err
}

func (s fallback) Set(ctx context.Context, key, value string) error {
	err := s.primary.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	if serr := s.secondary.Set(ctx, key, value); serr != nil {
		return errors.Join(err, serr)
	}
	return nil
}

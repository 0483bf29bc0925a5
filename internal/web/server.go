// Package web serves the portfolio over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/prefs/signal"
	"github.com/Zachkp/folio/internal/prefs/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Options struct {
	Log           zerolog.Logger
	ImagesDir     string
	SecureCookies bool
}

// Server renders the two portfolio views. With a nil backend the theme
// lives in a browser cookie; otherwise it is stored server side per
// visitor.
type Server struct {
	engine    *gin.Engine
	portfolio *content.Portfolio
	backend   store.Backend
	log       zerolog.Logger
	secure    bool
}

func New(p *content.Portfolio, backend store.Backend, opts Options) (*Server, error) {
	s := &Server{
		engine:    gin.New(),
		portfolio: p,
		backend:   backend,
		log:       opts.Log,
		secure:    opts.SecureCookies,
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"buttonClass": buttonClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.engine.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.StaticFS("/static", http.FS(static))
	if opts.ImagesDir != "" {
		s.engine.Static("/images", opts.ImagesDir)
	}
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then drains for up to five
// seconds.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// controllerFor builds and initializes the state controller for one
// request.
func (s *Server) controllerFor(c *gin.Context, scroller prefs.Scroller) *prefs.Controller {
	ctrl := prefs.NewController(
		s.storeFor(c),
		signal.FromRequest(c.Request),
		scroller,
		prefs.WithLogger(s.log),
	)
	ctrl.Initialize(c.Request.Context())
	return ctrl
}

func (s *Server) storeFor(c *gin.Context) prefs.Store {
	if s.backend == nil || c.GetBool(ctxNoTrack) {
		return store.NewCookie(c, s.secure)
	}
	visitor := c.GetString(ctxVisitor)
	if visitor == "" {
		return store.NewCookie(c, s.secure)
	}
	// The cookie keeps a toggle alive while the backend is down.
	return store.WithFallback(store.Bind(s.backend, visitor), store.NewCookie(c, s.secure))
}

// anchorScroller records which anchor a redirect should jump to. Only
// anchors rendered on the target view are accepted.
type anchorScroller struct {
	anchors  map[string]bool
	fragment string
}

func (a *anchorScroller) ScrollTo(anchor string) bool {
	if !a.anchors[anchor] {
		return false
	}
	a.fragment = anchor
	return true
}

// mainAnchors are the element ids rendered on the main view.
var mainAnchors = map[string]bool{"about": true, "projects": true, "skills": true, "experience": true}

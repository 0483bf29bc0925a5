package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
)

type pageData struct {
	State      prefs.State
	Palette    Palette
	Tabs       []prefs.TabItem
	Profile    content.Profile
	Skills     []string
	Experience []content.Job
	Featured   content.Featured
	Projects   []content.Project
}

func (s *Server) routes() {
	r := s.engine
	pages := r.Group("/", s.visitorMiddleware(), clientHints())

	// Main view; ?tab= marks the active tab
	pages.GET("/", s.handleMain)
	pages.GET("/projects", s.handleProjects)
	pages.POST("/theme", s.handleToggleTheme)
	pages.GET("/tab/:id", s.handleSelectTab)
	pages.GET("/api/state", s.handleState)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) render(c *gin.Context, name string, ctrl *prefs.Controller) {
	st := ctrl.State()
	c.HTML(http.StatusOK, name, pageData{
		State:      st,
		Palette:    PaletteFor(st.Theme),
		Tabs:       prefs.Tabs(),
		Profile:    s.portfolio.Profile(),
		Skills:     s.portfolio.Skills(),
		Experience: s.portfolio.Experience(),
		Featured:   s.portfolio.Featured(),
		Projects:   s.portfolio.Projects(),
	})
}

func (s *Server) handleMain(c *gin.Context) {
	ctrl := s.controllerFor(c, &anchorScroller{anchors: mainAnchors})
	ctrl.SelectView(prefs.ViewMain)
	if t, ok := prefs.ParseTab(c.Query("tab")); ok {
		ctrl.SelectTab(t)
	}
	s.render(c, "index.html", ctrl)
}

func (s *Server) handleProjects(c *gin.Context) {
	ctrl := s.controllerFor(c, nil)
	ctrl.SelectView(prefs.ViewProjects)
	s.render(c, "projects.html", ctrl)
}

// handleToggleTheme flips the theme. HTMX callers reload in place; plain
// form posts are sent back to the view they came from.
func (s *Server) handleToggleTheme(c *gin.Context) {
	ctrl := s.controllerFor(c, nil)
	theme := ctrl.ToggleTheme(c.Request.Context())
	s.log.Debug().Str("theme", theme.String()).Msg("theme toggled")

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusOK)
		return
	}

	back := "/"
	if c.PostForm("view") == prefs.ViewProjects.String() {
		back = "/projects"
	}
	c.Redirect(http.StatusSeeOther, back)
}

func (s *Server) handleSelectTab(c *gin.Context) {
	t, ok := prefs.ParseTab(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "unknown tab %q", c.Param("id"))
		return
	}

	scroller := &anchorScroller{anchors: mainAnchors}
	ctrl := s.controllerFor(c, scroller)
	ctrl.SelectView(prefs.ViewMain)
	ctrl.SelectTab(t)

	location := "/?tab=" + ctrl.Tab().String()
	if scroller.fragment != "" {
		location += "#" + scroller.fragment
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (s *Server) handleState(c *gin.Context) {
	ctrl := s.controllerFor(c, nil)
	if c.Query("view") == prefs.ViewProjects.String() {
		ctrl.SelectView(prefs.ViewProjects)
	}
	if t, ok := prefs.ParseTab(c.Query("tab")); ok {
		ctrl.SelectTab(t)
	}
	c.JSON(http.StatusOK, ctrl.State())
}

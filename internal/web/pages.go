package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/elifdikmn/elif-dev/internal/content"
	"github.com/elifdikmn/elif-dev/internal/motion"
	"github.com/elifdikmn/elif-dev/internal/overlay"
)

// pageData feeds the index, stage and overlay templates.
type pageData struct {
	Site          *content.Site
	State         overlay.State
	Menu          []overlay.MenuItem
	Palette       motion.Palette
	LoaderBars    []float64
	RingGrid      []struct{}
	ReducedMotion bool
	LiveReload    bool
}

func (s *Server) pageData(st overlay.State) pageData {
	return pageData{
		Site:          s.content.Get(),
		State:         st,
		Menu:          overlay.MenuItems(),
		Palette:       motion.PaletteAt(0.5, 0.5),
		LoaderBars:    []float64{0, 0.15, 0.3, 0.45, 0.6},
		RingGrid:      make([]struct{}, 9),
		ReducedMotion: s.cfg.ReducedMotion,
		LiveReload:    s.liveReload != nil,
	}
}

// controller returns a controller at st that counts every panel it shows,
// unless the request carries DNT: 1.
func (s *Server) controller(c *gin.Context, st overlay.State) *overlay.Controller {
	ctrl := overlay.NewControllerFrom(st)
	if c.GetHeader("DNT") == "1" {
		return ctrl
	}
	ctrl.OnChange(func(prev, next overlay.State) {
		if !next.Open || next.View == overlay.List || (prev.Open && prev.View == next.View) {
			return
		}
		logger := s.log(c).WithField("view", next.View)
		logger.Debug("panel opened")
		go func(view string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.stats.RecordPanelOpen(ctx, view); err != nil {
				logger.WithError(err).Warn("recording panel open")
			}
		}(next.View.String())
	})
	return ctrl
}

// panelLinks maps ?panel= values to the controls that reach them from the
// closed page. Contact is only reachable from the list.
var panelLinks = map[overlay.View]overlay.Action{
	overlay.List:     overlay.ActionToggle,
	overlay.About:    overlay.ActionOpenAbout,
	overlay.Projects: overlay.ActionOpenProjects,
}

// handleIndex renders the landing page. ?panel=list|about|projects opens the
// overlay the way the menu button or hero shortcuts do; anything else is
// ignored.
func (s *Server) handleIndex(c *gin.Context) {
	ctrl := s.controller(c, overlay.Initial())
	if p := c.Query("panel"); p != "" {
		view, err := overlay.ParseView(p)
		action, ok := panelLinks[view]
		switch {
		case err != nil:
			s.log(c).WithError(err).Debug("ignoring panel query")
		case !ok:
			s.log(c).WithField("view", view).Debug("panel not reachable from the page")
		default:
			ctrl.Dispatch(action)
		}
	}
	c.HTML(http.StatusOK, "index.html", s.pageData(ctrl.State()))
}

// handleOverlay applies one action to the state posted by the page and
// returns the re-rendered stage.
func (s *Server) handleOverlay(c *gin.Context) {
	st, err := overlay.ParseState(c.PostForm("open"), c.PostForm("view"))
	if err != nil {
		s.log(c).WithError(err).Warn("bad overlay state")
		c.String(http.StatusBadRequest, "bad overlay state")
		return
	}
	action, err := overlay.ParseAction(c.PostForm("action"))
	if err != nil {
		s.log(c).WithError(err).Warn("bad overlay action")
		c.String(http.StatusBadRequest, "bad overlay action")
		return
	}

	ctrl := s.controller(c, st)
	ctrl.Dispatch(action)
	next := ctrl.State()

	s.log(c).WithFields(logrus.Fields{
		"action": action.String(),
		"from":   st.String(),
		"to":     next.String(),
	}).Debug("overlay transition")

	c.HTML(http.StatusOK, "stage", s.pageData(next))
}

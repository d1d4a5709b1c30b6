// Package api exposes the board as a read-only localhost API, so a
// browser view can render it. All storage stays local: there are no
// mutation endpoints.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aksoydem/huntboard-cli/internal/board"
	"github.com/aksoydem/huntboard-cli/internal/models"
)

type Server struct {
	engine *board.Engine
}

// NewRouter builds the gin router over an already-loaded engine.
func NewRouter(engine *board.Engine) *gin.Engine {
	s := &Server{engine: engine}

	r := gin.Default()

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/terms", s.listTerms)
		v1.GET("/applications", s.listApplications)
		v1.GET("/timeline", s.timeline)
	}

	return r
}

func (s *Server) listTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"terms":       s.engine.Terms(),
		"active_term": s.engine.ActiveTermID(),
		"sort_mode":   s.engine.SortMode(),
	})
}

// listApplications returns the active term's applications, optionally
// filtered by ?term=, ?status= and a ?q= substring over company/position.
func (s *Server) listApplications(c *gin.Context) {
	termID := c.Query("term")
	if termID == "" {
		termID = s.engine.ActiveTermID()
	}

	var apps []models.Application
	if raw := c.Query("status"); raw != "" {
		status := models.Status(strings.ToLower(raw))
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + raw})
			return
		}
		apps = s.engine.ApplicationsByStatus(termID, status)
	} else {
		apps = s.engine.ApplicationsInTerm(termID)
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := apps[:0]
		for _, a := range apps {
			if strings.Contains(strings.ToLower(a.Company), q) ||
				strings.Contains(strings.ToLower(a.Position), q) {
				filtered = append(filtered, a)
			}
		}
		apps = filtered
	}

	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

func (s *Server) timeline(c *gin.Context) {
	termID := c.Query("term")
	if termID == "" {
		termID = s.engine.ActiveTermID()
	}
	apps := s.engine.DatedApplications(termID)
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the handlers for svc into a gin engine with recovery and
// request logging.
func NewRouter(svc *Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger())

	h := &Handler{svc: svc}

	r.GET("/health", h.Health)
	r.GET("/grid", h.Grid)
	r.GET("/walkable", h.Walkable)

	booths := r.Group("/booths")
	{
		booths.GET("", h.ListBooths)
		booths.PUT("", h.ReplaceBooths)
		booths.GET("/:id/access-points", h.AccessPoints)
	}

	r.POST("/routes", h.Route)

	session := r.Group("/session")
	{
		session.GET("", h.Session)
		session.DELETE("", h.ClearSession)
		session.POST("/start", h.SetStart)
		session.POST("/end", h.SetEnd)
		session.POST("/recompute", h.Recompute)
		session.POST("/navigate", h.BeginNavigation)
		session.POST("/progress", h.MarkProgress)
	}

	crowdGroup := r.Group("/crowd")
	{
		crowdGroup.GET("", h.CrowdCounts)
		crowdGroup.PUT("/cctv/:id", h.SetCameraCount)
		crowdGroup.PUT("/cells", h.SetCellLevel)
	}

	return r
}

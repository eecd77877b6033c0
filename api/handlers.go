package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/navigator"
	"github.com/katalvlaran/crowdnav/venue"
)

// Handler serves the HTTP endpoints for one Service.
type Handler struct {
	svc *Service
}

func writeError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// render encodes v before writing the status line. An encoding failure is
// answered with 500 and an error body.
func render(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(c, http.StatusInternalServerError, fmt.Errorf("encode response: %w", err))
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, navigator.ErrNotWalkable), errors.Is(err, navigator.ErrBoothInactive):
		return http.StatusUnprocessableEntity
	case errors.Is(err, navigator.ErrUnknownBooth), errors.Is(err, crowd.ErrUnknownCamera):
		return http.StatusNotFound
	case errors.Is(err, navigator.ErrNoRoute), errors.Is(err, navigator.ErrNotNavigating):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Grid handles GET /grid.
func (h *Handler) Grid(c *gin.Context) {
	g := h.svc.Grid()
	c.JSON(http.StatusOK, gin.H{
		"width":    g.Width,
		"height":   g.Height,
		"halls":    g.Halls(),
		"walkable": g.Mask(),
	})
}

// Walkable handles GET /walkable?x=&y=.
func (h *Handler) Walkable(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	if errX != nil || errY != nil {
		writeError(c, http.StatusBadRequest, errors.New("x and y must be integers"))
		return
	}
	p := venue.Pos(x, y)
	c.JSON(http.StatusOK, gin.H{"x": x, "y": y, "walkable": h.svc.Grid().IsWalkable(p)})
}

// ListBooths handles GET /booths?category=.
func (h *Handler) ListBooths(c *gin.Context) {
	booths := venue.FilterBooths(h.svc.Grid().Booths(), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"data": booths, "count": len(booths)})
}

// ReplaceBooths handles PUT /booths: the booth layout changed, so obstacles
// are recomputed and the session route refreshed.
func (h *Handler) ReplaceBooths(c *gin.Context) {
	var booths []venue.Booth
	if err := c.ShouldBindJSON(&booths); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if err := venue.ValidateBooths(booths); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	snap, err := h.svc.ReplaceBooths(booths)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(snap, h.svc.CurrentSegment()))
}

// AccessPoints handles GET /booths/:id/access-points.
func (h *Handler) AccessPoints(c *gin.Context) {
	id := c.Param("id")
	b, ok := h.svc.Booth(id)
	if !ok {
		writeError(c, http.StatusNotFound, errors.New("booth not found: "+id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"boothId": id, "accessPoints": h.svc.Grid().AccessPoints(b)})
}

// Route handles POST /routes: a stateless point-to-point or point-to-booth query.
func (h *Handler) Route(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	if (req.End == nil) == (req.BoothID == "") {
		writeError(c, http.StatusBadRequest, errors.New("exactly one of end or boothId is required"))
		return
	}

	var (
		rr  RouteResult
		err error
	)
	ctx := c.Request.Context()
	start := req.Start.position()
	if req.End != nil {
		func() {
			defer Timed(ctx, "route.cell")(&err)
			rr, err = h.svc.RouteToCell(ctx, start, req.End.position())
		}()
	} else {
		func() {
			defer Timed(ctx, "route.booth")(&err)
			rr, err = h.svc.RouteToBooth(ctx, start, req.BoothID)
		}()
	}
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	render(c, http.StatusOK, newRouteResponse(rr))
}

// Session handles GET /session.
func (h *Handler) Session(c *gin.Context) {
	render(c, http.StatusOK, newSessionResponse(h.svc.Session(), h.svc.CurrentSegment()))
}

// ClearSession handles DELETE /session.
func (h *Handler) ClearSession(c *gin.Context) {
	snap, _ := h.svc.Mutate(func(n *navigator.Navigator) error {
		n.Clear()
		return nil
	})
	c.JSON(http.StatusOK, newSessionResponse(snap, nil))
}

// SetStart handles POST /session/start.
func (h *Handler) SetStart(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mutate(c, func(n *navigator.Navigator) error {
		return n.SetStart(req.position())
	})
}

// SetEnd handles POST /session/end with either a cell or a booth ID.
func (h *Handler) SetEnd(c *gin.Context) {
	var req endRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	hasCell := req.X != nil && req.Y != nil
	if hasCell == (req.BoothID != "") {
		writeError(c, http.StatusBadRequest, errors.New("exactly one of {x,y} or boothId is required"))
		return
	}
	h.mutate(c, func(n *navigator.Navigator) error {
		if hasCell {
			return n.SetEnd(venue.Pos(*req.X, *req.Y))
		}
		return n.SelectBoothByID(req.BoothID)
	})
}

// Recompute handles POST /session/recompute.
func (h *Handler) Recompute(c *gin.Context) {
	h.mutate(c, (*navigator.Navigator).Recompute)
}

// BeginNavigation handles POST /session/navigate.
func (h *Handler) BeginNavigation(c *gin.Context) {
	h.mutate(c, (*navigator.Navigator).BeginNavigation)
}

// MarkProgress handles POST /session/progress.
func (h *Handler) MarkProgress(c *gin.Context) {
	h.mutate(c, func(n *navigator.Navigator) error {
		_, err := n.MarkProgress()
		return err
	})
}

func (h *Handler) mutate(c *gin.Context, fn func(*navigator.Navigator) error) {
	snap, err := h.svc.Mutate(fn)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	render(c, http.StatusOK, newSessionResponse(snap, h.svc.CurrentSegment()))
}

// CrowdCounts handles GET /crowd.
func (h *Handler) CrowdCounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cameras": h.svc.CameraCounts()})
}

// SetCameraCount handles PUT /crowd/cctv/:id.
func (h *Handler) SetCameraCount(c *gin.Context) {
	var req countRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	id := c.Param("id")
	if err := h.svc.SetCameraCount(id, *req.Count); err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "count": *req.Count})
}

// SetCellLevel handles PUT /crowd/cells.
func (h *Handler) SetCellLevel(c *gin.Context) {
	var req cellLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	p := venue.Pos(*req.X, *req.Y)
	h.svc.SetCellLevel(p, *req.Level)
	c.JSON(http.StatusOK, gin.H{"x": p.X, "y": p.Y, "level": *req.Level})
}

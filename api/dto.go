package api

import (
	"github.com/katalvlaran/crowdnav/navigator"
	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

type positionRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

func (p positionRequest) position() venue.Position {
	return venue.Pos(*p.X, *p.Y)
}

type routeRequest struct {
	Start   *positionRequest `json:"start" binding:"required"`
	End     *positionRequest `json:"end"`
	BoothID string           `json:"boothId"`
}

type endRequest struct {
	X       *int   `json:"x"`
	Y       *int   `json:"y"`
	BoothID string `json:"boothId"`
}

type countRequest struct {
	Count *float64 `json:"count" binding:"required"`
}

type cellLevelRequest struct {
	X     *int     `json:"x" binding:"required"`
	Y     *int     `json:"y" binding:"required"`
	Level *float64 `json:"level" binding:"required"`
}

type routeResponse struct {
	Status      string           `json:"status"`
	Path        []venue.Position `json:"path"`
	Goal        *venue.Position  `json:"goal,omitempty"`
	Cost        float64          `json:"cost"`
	Checkpoints []int            `json:"checkpoints"`
	Legs        []string         `json:"legs"`
	Report      route.Report     `json:"report"`
}

func newRouteResponse(rr RouteResult) routeResponse {
	resp := routeResponse{
		Status:      rr.Result.Status.String(),
		Path:        nonNilPath(rr.Result.Path),
		Cost:        rr.Result.Cost,
		Checkpoints: rr.Report.Checkpoints,
		Legs:        make([]string, 0, len(rr.Legs)),
		Report:      rr.Report,
	}
	if rr.Result.Found() {
		g := rr.Result.Goal
		resp.Goal = &g
	}
	for _, l := range rr.Legs {
		resp.Legs = append(resp.Legs, l.String())
	}
	return resp
}

type sessionResponse struct {
	State          string           `json:"state"`
	Start          *venue.Position  `json:"start,omitempty"`
	End            *venue.Position  `json:"end,omitempty"`
	BoothID        string           `json:"boothId,omitempty"`
	AccessPoints   []venue.Position `json:"accessPoints,omitempty"`
	Status         string           `json:"status,omitempty"`
	Path           []venue.Position `json:"path"`
	Cost           float64          `json:"cost"`
	Checkpoints    []int            `json:"checkpoints"`
	Progress       int              `json:"progress"`
	Segments       int              `json:"segments"`
	CurrentSegment []venue.Position `json:"currentSegment,omitempty"`
}

func newSessionResponse(s navigator.Snapshot, current []venue.Position) sessionResponse {
	resp := sessionResponse{
		State:          s.State.String(),
		Start:          s.Start,
		End:            s.End,
		AccessPoints:   s.AccessPoints,
		Status:         s.Status.String(),
		Path:           nonNilPath(s.Path),
		Cost:           s.Cost,
		Checkpoints:    s.Checkpoints,
		Progress:       s.Progress,
		Segments:       s.Segments(),
		CurrentSegment: current,
	}
	if s.Booth != nil {
		resp.BoothID = s.Booth.ID
	}
	if s.State != navigator.RouteReady && s.State != navigator.NoRoute &&
		s.State != navigator.NavigationActive && s.State != navigator.Completed {
		resp.Status = ""
	}
	return resp
}

func nonNilPath(p []venue.Position) []venue.Position {
	if p == nil {
		return []venue.Position{}
	}
	return p
}

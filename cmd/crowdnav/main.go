// Command crowdnav computes one crowd-aware route through a venue and
// prints the walking legs and a congestion report.
//
//	crowdnav -start 5,2 -booth B-02 -cctv CAM-CB=18
//	crowdnav -start 1,0 -end 10,21
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/crowdnav/config"
	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/navigator"
	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

type countFlags map[string]float64

func (c countFlags) String() string { return fmt.Sprint(map[string]float64(c)) }

func (c countFlags) Set(v string) error {
	id, n, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("want ID=count, got %q", v)
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return fmt.Errorf("count for %q: %w", id, err)
	}
	c[id] = f
	return nil
}

func main() {
	var (
		envFile = flag.String("env", ".env", "optional .env file")
		startS  = flag.String("start", "", "start cell as x,y (required)")
		endS    = flag.String("end", "", "destination cell as x,y")
		boothID = flag.String("booth", "", "destination booth ID")
		hot     = flag.Float64("hot", 10, "congestion level above which a cell counts as hot")
		counts  = countFlags{}
	)
	flag.Var(counts, "cctv", "camera head count as ID=count (repeatable)")
	flag.Parse()

	if err := run(*envFile, *startS, *endS, *boothID, *hot, counts); err != nil {
		log.Printf("crowdnav: %v", err)
		os.Exit(1)
	}
}

func run(envFile, startS, endS, boothID string, hot float64, counts countFlags) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	g, err := gridgraph.FromLayout(layout)
	if err != nil {
		return err
	}

	cams := crowd.NewPathways(layout.CCTVs)
	for id, n := range counts {
		if err := cams.SetCount(id, n); err != nil {
			return err
		}
	}

	nav, err := navigator.New(g, cams, cfg.NavigatorOptions()...)
	if err != nil {
		return err
	}

	start, err := venue.ParsePosition(startS)
	if err != nil {
		return err
	}
	if err := nav.SetStart(start); err != nil {
		return err
	}
	switch {
	case boothID != "" && endS == "":
		if err := nav.SelectBoothByID(boothID); err != nil {
			return err
		}
	case endS != "" && boothID == "":
		end, err := venue.ParsePosition(endS)
		if err != nil {
			return err
		}
		if err := nav.SetEnd(end); err != nil {
			return err
		}
	default:
		return fmt.Errorf("exactly one of -end or -booth is required")
	}

	snap := nav.Snapshot()
	log.Printf("op=route state=%s status=%s cells=%d cost=%g", snap.State, snap.Status, len(snap.Path), snap.Cost)
	if snap.State != navigator.RouteReady {
		fmt.Println("no route")
		return nil
	}
	for i, leg := range route.Legs(snap.Path) {
		fmt.Printf("%2d. %s\n", i+1, leg)
	}
	rep := route.Analyze(snap.Path, cams, route.WithPolicy(cfg.Policy), route.WithCrossings(g, hot))
	fmt.Print(rep)
	return nil
}

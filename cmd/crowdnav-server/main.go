// Command crowdnav-server serves the crowd-aware navigation API for the
// presentation layer.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/crowdnav/api"
	"github.com/katalvlaran/crowdnav/config"
	"github.com/katalvlaran/crowdnav/navigator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := api.NewService(layout, cfg)
	if err != nil {
		log.Fatal(err)
	}
	svc.OnSessionChange(func(s navigator.Snapshot) {
		log.Printf("op=session state=%s cells=%d cost=%g progress=%d/%d",
			s.State, len(s.Path), s.Cost, s.Progress, s.Segments())
	})

	log.Printf("Server listening addr=%s grid=%dx%d booths=%d cctvs=%d policy=%s access=%s",
		cfg.Addr, layout.Width, layout.Height, len(layout.Booths), len(layout.CCTVs), cfg.Policy, cfg.AccessPolicy)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

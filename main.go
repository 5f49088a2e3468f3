package main

import (
	"context"
	"flag"
	"log"

	"stardefender/app"
	"stardefender/config"
	"stardefender/frontend"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := app.NewLogger(cfg, nil)

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	opts := frontend.Options{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Profile:      cfg.Debug.Profile,
		ProfileDir:   cfg.Debug.ProfileDir,
		FPSThreshold: cfg.Debug.FPSThreshold,
	}
	g := frontend.NewGame(a.Session, opts, logger)
	if err := g.Run(opts); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/contactkeval/greek-plotter/internal/curve"
	"github.com/contactkeval/greek-plotter/internal/data"
	"github.com/contactkeval/greek-plotter/internal/logger"
	"github.com/contactkeval/greek-plotter/internal/pricing"
	"github.com/contactkeval/greek-plotter/internal/report"
	"github.com/contactkeval/greek-plotter/internal/server"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "call_delta.json"), "path to JSON config")
	rest := flag.Bool("rest", false, "run as REST server (accept evaluate requests)")
	port := flag.String("port", ":8080", "REST server listen address")
	level := flag.String("v", "", "log level (error, info, debug, trace), overrides the config verbosity")
	flag.Parse()

	if *level != "" {
		logger.SetVerbosity(int(logger.ParseLevel(*level)))
	}

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[warn] reading .env: %v", err)
	}

	prov := data.GetDefaultProvider()
	logger.Infof("%s data provider enabled", prov.Name())

	if *rest {
		logger.Infof("starting REST server on %s", *port)
		log.Fatal(server.NewRouter(prov).Run(*port))
		return
	}

	cfgData, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	cfg, err := curve.Load(cfgData)
	if err != nil {
		log.Fatal(err)
	}
	logger.SetVerbosity(resolveVerbosity(*level, cfg.Verbosity))
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./out"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	res, err := curve.Build(ctx, cfg, prov)
	if errors.Is(err, pricing.ErrInvalidInput) {
		log.Fatalf("please enter valid numbers: %v", err)
	}
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}

	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		log.Fatalf("could not create output dir %s: %v", cfg.ReportDir, err)
	}
	if err := report.WriteJSON(res, cfg.ReportDir); err != nil {
		logger.Errorf("writing JSON report: %v", err)
	}
	if err := report.WriteCSV(res, cfg.ReportDir); err != nil {
		logger.Errorf("writing CSV report: %v", err)
	}
	log.Printf("[done] %s: %d points in %v, wrote %s.{json,csv} to %s",
		res.Title, len(res.Points), time.Since(start), report.BaseName(res), cfg.ReportDir)
}

// resolveVerbosity prefers the -v flag over the config file's verbosity.
func resolveVerbosity(flagLevel string, cfgVerbosity int) int {
	if flagLevel != "" {
		return int(logger.ParseLevel(flagLevel))
	}
	return cfgVerbosity
}

package main

import (
	"log"
	"os"

	"github.com/katalvlaran/gac-alldiff/alldiff"
)

// Config carries the demo driver's settings, grounded on EricR-saturday's
// config.Config (reference only; not our teacher) — a plain struct
// holding a *log.Logger plus the flags parseFlags fills in.
type Config struct {
	Logger  *log.Logger
	Mode    alldiff.Mode
	Verbose bool
}

func newConfig() *Config {
	return &Config{
		Logger: log.New(os.Stderr, "", log.Ltime),
		Mode:   alldiff.ModeClassic,
	}
}

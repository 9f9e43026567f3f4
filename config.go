package otp

import (
	"os"

	"github.com/spf13/viper"

	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

var (
	cfgLoaded = false
	cfg       = PlannerConf{}
)

// PlannerConf holds the tunables of orbit generation and search. Loaded once
// through PlannerConfig.
type PlannerConf struct {
	// PerBand is the number of candidate radii generated per radius band.
	PerBand int
	// SectionLimits are the radius band boundaries in m, between the body's
	// minimum and maximum viable orbit radii.
	SectionLimits []int
	// InclinationStep is the gap in degrees between generated inclinations.
	InclinationStep int
	// HopBias is the per-edge virtual cost of the hop-biased search policy.
	HopBias float64
}

// PlannerConfig returns the planner configuration. On first use it reads
// conf.toml from the directory named by the TRANSFERPATH_CONFIG environment
// variable (the working directory when unset) and falls back to defaults for
// anything absent.
func PlannerConfig() PlannerConf {
	if cfgLoaded {
		return cfg
	}
	cfg = PlannerConf{
		PerBand:         5,
		InclinationStep: 5,
		HopBias:         pathfind.DefaultHopBias,
	}
	confPath := os.Getenv("TRANSFERPATH_CONFIG")
	if confPath == "" {
		confPath = "."
	}
	viper.SetConfigName("conf")
	viper.SetConfigType("toml")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err == nil {
		if v := viper.GetInt("generation.bands"); v > 0 {
			cfg.PerBand = v
		}
		if v := viper.GetInt("generation.inclinationStep"); v > 0 {
			cfg.InclinationStep = v
		}
		if v := viper.GetIntSlice("generation.sectionLimits"); len(v) > 0 {
			cfg.SectionLimits = v
		}
		if v := viper.GetFloat64("search.hopBias"); v > 0 {
			cfg.HopBias = v
		}
	}
	cfgLoaded = true
	return cfg
}

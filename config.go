package solarkit

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	defaultTolerance = 1e-10
	defaultMaxIter   = 50
)

var (
	cfgLoaded = false
	config    = _skconfig{}
)

// _skconfig is a "hidden" struct, just use `skConfig`.
type _skconfig struct {
	tolerance float64
	maxIter   int
	outputDir string
}

// skConfig returns the package configuration. A missing SOLARKIT_CONFIG
// environment variable means stock defaults; a set but unreadable one is a
// deployment mistake and panics.
func skConfig() _skconfig {
	if cfgLoaded {
		return config
	}
	config = _skconfig{tolerance: defaultTolerance, maxIter: defaultMaxIter, outputDir: "."}
	confPath := os.Getenv("SOLARKIT_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found: %s", confPath, err))
	}
	if v.IsSet("propagator.tolerance") {
		config.tolerance = v.GetFloat64("propagator.tolerance")
	}
	if v.IsSet("propagator.max_iterations") {
		config.maxIter = v.GetInt("propagator.max_iterations")
	}
	if v.IsSet("general.output_path") {
		config.outputDir = v.GetString("general.output_path")
	}
	cfgLoaded = true
	return config
}

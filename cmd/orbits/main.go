package main

import (
	"flag"
	"log"
	"strings"
	"time"

	solarkit "github.com/carlos-lorenzo/solar-kit"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and exports the animation.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "animation scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read system
	var sys *solarkit.System
	var err error
	if file := viper.GetString("system.file"); file != "" {
		if sys, err = solarkit.Load(file); err != nil {
			log.Fatalf("could not load system: %s", err)
		}
	} else {
		sys = solarkit.Stock()
	}
	if verbose {
		log.Printf("[conf] system: %s", sys)
	}

	// Read rendering parameters
	rdr, err := solarkit.NewRenderer(sys, viper.GetStringSlice("render.bodies"), viper.GetBool("render.threeD"))
	if err != nil {
		log.Fatalf("could not build renderer: %s", err)
	}

	// Read animation parameters
	span := viper.GetFloat64("animation.span")
	if span == 0 {
		if span, err = rdr.Span(); err != nil {
			log.Fatal(err)
		}
	}
	frames := viper.GetInt("animation.frames")
	if frames == 0 {
		frames = 2500
	}
	if verbose {
		log.Printf("[conf] span: %f over %d frames\n", span, frames)
	}

	// Read export
	conf := solarkit.ExportConfig{
		Filename:  viper.GetString("export.filename"),
		Frames:    viper.GetBool("export.frames"),
		Paths:     viper.GetBool("export.paths"),
		Catalog:   viper.GetBool("export.catalog"),
		Timestamp: viper.GetBool("export.timestamp"),
		Epoch:     confReadJDEorTime("export.epoch"),
		TimeUnit:  viper.GetDuration("export.timeUnit"),
	}
	if conf.Filename == "" {
		conf.Filename = scenario
	}
	if conf.IsUseless() {
		log.Fatal("export config does not export anything")
	}

	sink := solarkit.NewExportSink(conf, rdr)
	anim := solarkit.NewAnimator(rdr, sink)
	anim.Dt = span / float64(frames)
	anim.Origin = viper.GetString("render.relativeTo")
	if err := anim.Start(); err != nil {
		log.Fatalf("could not start animation: %s", err)
	}
	for anim.Elapsed() < span {
		if _, err := anim.Tick(); err != nil {
			log.Fatalf("t=%f: %s", anim.Elapsed(), err)
		}
	}
	anim.Stop()
	if err := sink.Close(); err != nil {
		log.Fatalf("could not finalize export: %s", err)
	}
}

func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}

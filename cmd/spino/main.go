package main

import (
	"flag"
	"log"
	"strings"

	solarkit "github.com/carlos-lorenzo/solar-kit"
	"github.com/spf13/viper"
)

// This code traces a spinograph between co-orbiting bodies and writes the
// trace with its catalog.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "spinograph scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for progress)")
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

	// Read trace parameters
	sp, err := solarkit.NewSpinograph(sys, viper.GetStringSlice("spino.bodies"), viper.GetBool("spino.threeD"))
	if err != nil {
		log.Fatalf("could not build spinograph: %s", err)
	}
	if dt := viper.GetFloat64("spino.dt"); dt > 0 {
		sp.Dt = dt
	}
	strands := viper.GetInt("spino.strands")
	if strands == 0 {
		strands = int(sp.Span/sp.Dt) + 1
	}
	chunk := viper.GetInt("spino.chunk")
	if chunk == 0 {
		chunk = 100
	}

	for sp.Len() < strands {
		n := strands - sp.Len()
		if n > chunk {
			n = chunk
		}
		if _, err := sp.Take(n); err != nil {
			log.Fatalf("strand %d: %s", sp.Len(), err)
		}
		if verbose {
			log.Printf("%d/%d strands", sp.Len(), strands)
		}
	}

	// Write the trace
	conf := solarkit.ExportConfig{
		Filename:  viper.GetString("export.filename"),
		Catalog:   viper.GetBool("export.catalog"),
		Timestamp: viper.GetBool("export.timestamp"),
	}
	if conf.Filename == "" {
		conf.Filename = scenario
	}
	item, err := solarkit.WriteSpino(conf, sp)
	if err != nil {
		log.Fatalf("could not write trace: %s", err)
	}
	log.Printf("wrote %s", item)
	if conf.Catalog {
		if err := solarkit.WriteCatalog(conf, []*solarkit.GeoItem{item}); err != nil {
			log.Fatalf("could not write catalog: %s", err)
		}
	}
}

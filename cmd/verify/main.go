package main

import (
	"flag"
	"log"

	solarkit "github.com/carlos-lorenzo/solar-kit"
)

// This code cross-checks the closed form propagation against a numerical two
// body integration of the same elements.

var (
	bodyName  string
	revs      float64
	steps     int
	tolerance float64
)

func init() {
	// Read flags
	flag.StringVar(&bodyName, "body", "Earth", "stock body to propagate")
	flag.Float64Var(&revs, "revs", 0.25, "number of revolutions to integrate")
	flag.IntVar(&steps, "steps", 10000, "integration steps per revolution")
	flag.Float64Var(&tolerance, "tolerance", 1e-6, "acceptable position disagreement (AU)")
}

func main() {
	flag.Parse()
	b, err := solarkit.CatalogBody(bodyName)
	if err != nil {
		log.Fatal(err)
	}
	tb, err := solarkit.NewTwoBody(b)
	if err != nil {
		log.Fatal(err)
	}
	until := revs * b.Period
	tb.Propagate(until, b.Period/float64(steps))

	// Compare at the integrator's own final time, wherever its last step landed.
	want, err := solarkit.Position(b, tb.Time())
	if err != nil {
		log.Fatal(err)
	}
	got := tb.Position()
	Δ := got.Sub(want).Norm()
	log.Printf("%s after %g revolutions: analytic (%f, %f) integrated (%f, %f) Δ=%g AU", b.Name, revs, want.X, want.Y, got.X, got.Y, Δ)
	if Δ > tolerance {
		log.Fatalf("propagations disagree beyond %g AU", tolerance)
	}
	log.Println("propagations agree")
}

package solarkit

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// EarthRadius is one Earth radius in kilometers.
	EarthRadius = 6378.1363
)

// CatalogBody returns the stock body with the given name.
func CatalogBody(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	default:
		return Body{}, fmt.Errorf("undefined body %q", name)
	}
}

// Stock returns a fresh system holding the nine classical bodies, innermost
// first. The Sun is not a body: renderers place the focus at the frame center.
func Stock() *System {
	s := NewSystem("Solar System")
	for _, b := range []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto} {
		if err := s.Add(b); err != nil {
			panic(err) // the catalog is known valid
		}
	}
	return s
}

/* Definitions. Masses in Earth masses, distances in AU, radii in Earth radii,
rotational periods in days, orbital periods in years. */

// Mercury is the smallest one.
var Mercury = Body{"Mercury", 0.0553, 0.387098, 0.205630, 7.005, 0.3829, 58.646, 0.240846, 0, "darkgrey"}

// Venus is poisonous.
var Venus = Body{"Venus", 0.815, 0.723332, 0.006772, 3.39458, 0.9499, -243.025, 0.615198, 0, "wheat"}

// Earth is home.
var Earth = Body{"Earth", 1, 1.000001, 0.016709, 0.00005, 1, 0.99727, 1.0000174, 0, "royalblue"}

// Mars is the vacation place.
var Mars = Body{"Mars", 0.1075, 1.523679, 0.093400, 1.850, 0.5320, 1.02595, 1.880848, 0, "orangered"}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 317.8, 5.20260, 0.048498, 1.303, 11.209, 0.41354, 11.861983, 0, "navajowhite"}

// Saturn floats and that's really cool.
var Saturn = Body{"Saturn", 95.159, 9.554909, 0.055508, 2.485, 9.449, 0.44401, 29.457159, 0, "khaki"}

// Uranus spins on its side.
var Uranus = Body{"Uranus", 14.536, 19.218446, 0.046295, 0.773, 4.007, -0.71833, 84.016846, 0, "paleturquoise"}

// Neptune is the last planet standing.
var Neptune = Body{"Neptune", 17.147, 30.110387, 0.008988, 1.770, 3.883, 0.67125, 164.79132, 0, "steelblue"}

// Pluto is not a planet and had that down ranking coming.
var Pluto = Body{"Pluto", 0.0022, 39.48, 0.2488, 17.16, 0.187, -6.38723, 247.92065, 0, "rosybrown"}

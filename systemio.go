package solarkit

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// systemHeader is the column layout of a saved system. One row per body, in
// insertion order.
var systemHeader = []string{"name", "m", "a", "ecc", "beta", "R", "trot", "P", "phase", "c"}

// ftoa encodes a float so that ParseFloat returns it bit-exactly.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteSystem writes s as CSV, preceded by comment lines carrying the system
// name and creation time.
func WriteSystem(w io.Writer, s *System) error {
	if _, err := fmt.Fprintf(w, "# solar-kit system %q\n# Created (UTC): %s\n", s.Name, s.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(systemHeader); err != nil {
		return err
	}
	for _, b := range s.bodies {
		rec := []string{b.Name, ftoa(b.M), ftoa(b.A), ftoa(b.Ecc), ftoa(b.Incl), ftoa(b.R), ftoa(b.RotPeriod), ftoa(b.Period), ftoa(b.Phase), b.Color}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSystem reads a system written by WriteSystem. Every row goes through
// body validation, so a file which loads is a file whose bodies propagate.
func ReadSystem(r io.Reader) (*System, error) {
	br := bufio.NewReader(r)
	sys := &System{}
	var lead string
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			readSystemComment(sys, trimmed)
			if err != nil {
				return nil, errors.New("missing header row")
			}
			continue
		}
		if trimmed == "" {
			if err != nil {
				return nil, errors.New("missing header row")
			}
			continue
		}
		lead = line
		break
	}
	cr := csv.NewReader(io.MultiReader(strings.NewReader(lead), br))
	cr.FieldsPerRecord = len(systemHeader)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, h := range header {
		if h != systemHeader[i] {
			return nil, fmt.Errorf("unexpected header column %q, want %q", h, systemHeader[i])
		}
	}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		var vals [8]float64
		for i := range vals {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): column %s: %w", row, rec[0], systemHeader[i+1], err)
			}
			vals[i] = v
		}
		b, err := NewBody(rec[0], vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], rec[9])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if err := sys.Add(b); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return sys, nil
}

// readSystemComment recovers the metadata written by WriteSystem. Unknown
// comment lines are ignored.
func readSystemComment(sys *System, line string) {
	if rest, ok := strings.CutPrefix(line, "# solar-kit system "); ok {
		if name, err := strconv.Unquote(rest); err == nil {
			sys.Name = name
		}
		return
	}
	if rest, ok := strings.CutPrefix(line, "# Created (UTC): "); ok {
		if at, err := time.Parse(time.RFC3339, rest); err == nil {
			sys.CreatedAt = at
		}
	}
}

// Save writes the system to path, overwriting any previous file.
func (s *System) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSystem(f, s)
}

// Load reads a system saved with Save.
func Load(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sys, err := ReadSystem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sys, nil
}

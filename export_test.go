package solarkit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

// setTestOutputDir redirects export artifacts to a scratch directory for the
// duration of one test and returns it.
func setTestOutputDir(t *testing.T) string {
	t.Helper()
	stashConfig(t)
	dir := t.TempDir()
	config = _skconfig{tolerance: defaultTolerance, maxIter: defaultMaxIter, outputDir: dir}
	cfgLoaded = true
	return dir
}

// countDataRows counts the CSV rows of an export file, skipping comments and
// the header row.
func countDataRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "t,") || strings.HasPrefix(line, "x,") || strings.HasPrefix(line, "strand,") {
			continue
		}
		rows++
	}
	return rows
}

func TestExportSink(t *testing.T) {
	dir := setTestOutputDir(t)
	sys := NewSystem("demo")
	for _, b := range []Body{Earth, Mars} {
		if err := sys.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	rdr, err := NewRenderer(sys, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	conf := ExportConfig{Filename: "demo", Frames: true, Paths: true, Catalog: true}
	sink := NewExportSink(conf, rdr)
	anim := NewAnimator(rdr, sink)
	anim.Dt = 0.1
	if err := anim.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 9; i++ {
		if _, err := anim.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	anim.Stop()
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}
	// Ten frames of two bodies each.
	if rows := countDataRows(t, filepath.Join(dir, "frames-demo.csv")); rows != 20 {
		t.Fatalf("expected 20 frame rows, counted %d", rows)
	}
	for _, name := range []string{"path-demo-earth.csv", "path-demo-mars.csv"} {
		if rows := countDataRows(t, filepath.Join(dir, name)); rows != orbitPathPoints {
			t.Fatalf("%s: expected %d locus rows, counted %d", name, orbitPathPoints, rows)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "catalog-demo.json"))
	if err != nil {
		t.Fatal(err)
	}
	var cat GeoCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		t.Fatal(err)
	}
	if cat.Name != "demo" || len(cat.Items) != 3 {
		t.Fatalf("unexpected catalog %s with %d items", cat.String(), len(cat.Items))
	}
	if cat.Items[0].Class != "frames" || len(cat.Items[0].Bodies) != 2 {
		t.Fatalf("unexpected frames item %s", cat.Items[0])
	}
	for _, item := range cat.Items[1:] {
		if item.Class != "path" || !item.Closed {
			t.Fatalf("unexpected path item %s", item)
		}
	}
}

func TestExportJulianDates(t *testing.T) {
	conf := ExportConfig{}
	if got := conf.jdOf(0); !scalar.EqualWithinAbs(got, 2451545.0, 1e-9) {
		t.Fatalf("JD of the default epoch: %f", got)
	}
	if got := conf.jdOf(2); !scalar.EqualWithinAbs(got-2451545.0, 730.5, 1e-9) {
		t.Fatalf("JD after two Julian years: %f", got)
	}
	// Almost ten millennia, far past what a time.Duration can span.
	if got := conf.jdOf(1e4); !scalar.EqualWithinAbs(got-2451545.0, 3.6525e6, 1e-9) {
		t.Fatalf("JD after ten thousand years: %f", got)
	}
	day := ExportConfig{Epoch: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), TimeUnit: 24 * time.Hour}
	if got := day.jdOf(1) - day.jdOf(0); !scalar.EqualWithinAbs(got, 1, 1e-12) {
		t.Fatalf("a one day time unit moved the JD by %f", got)
	}
}

func TestExportConfigUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("an empty config should be useless")
	}
	if (ExportConfig{Paths: true}).IsUseless() {
		t.Fatal("a path export is not useless")
	}
}

func TestExportTimestampedName(t *testing.T) {
	dir := setTestOutputDir(t)
	p := Path{Name: "Ares", Points: []Point{{X: 1}, {Y: 1}}}
	item, err := WritePath(ExportConfig{Filename: "demo", Timestamp: true}, p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(item.Source, "path-demo-ares-") || !strings.HasSuffix(item.Source, ".csv") {
		t.Fatalf("unexpected stamped name %s", item.Source)
	}
	if _, err := os.Stat(filepath.Join(dir, item.Source)); err != nil {
		t.Fatal(err)
	}
}

func TestWriteSpino(t *testing.T) {
	dir := setTestOutputDir(t)
	sys := NewSystem("vt")
	for _, b := range []Body{Venus, Earth} {
		if err := sys.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	sp, err := NewSpinograph(sys, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sp.Take(4); err != nil {
		t.Fatal(err)
	}
	item, err := WriteSpino(ExportConfig{Filename: "vt"}, sp)
	if err != nil {
		t.Fatal(err)
	}
	if item.Class != "spino" || item.Source != "spino-vt.csv" {
		t.Fatalf("unexpected item %s", item)
	}
	if len(item.Bodies) != 2 || item.Bodies[0] != "Venus" || item.Bodies[1] != "Earth" {
		t.Fatalf("unexpected bodies %v", item.Bodies)
	}
	// Four strands of two points each.
	if rows := countDataRows(t, filepath.Join(dir, "spino-vt.csv")); rows != 8 {
		t.Fatalf("expected 8 strand rows, counted %d", rows)
	}
}

func TestStreamFramesEmpty(t *testing.T) {
	ch := make(chan Frame)
	close(ch)
	if items := StreamFrames(ExportConfig{Filename: "none", Frames: true}, ch); items != nil {
		t.Fatalf("no frames should yield no items, got %v", items)
	}
}

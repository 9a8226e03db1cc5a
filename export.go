package solarkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// JulianYear is the civil duration of one simulated time unit when the
// export config does not say otherwise, matching the stock catalog periods.
const JulianYear = 8766 * time.Hour // 365.25 days

// J2000 is the default export epoch, noon on the first of January 2000.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// GeoCatalog indexes the artifacts of one export so a drawing frontend can
// load them as a set.
type GeoCatalog struct {
	Version string     `json:"version"`
	Name    string     `json:"name"`
	Items   []*GeoItem `json:"items"`
	Require []string   `json:"require,omitempty"`
}

func (c *GeoCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// GeoItem is one drawable artifact of a geometry catalog: a frames file or a
// path file.
type GeoItem struct {
	Class     string   `json:"class"`
	Name      string   `json:"name"`
	Source    string   `json:"source"`
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
	Center    string   `json:"center,omitempty"`
	Color     string   `json:"color,omitempty"`
	Closed    bool     `json:"closed,omitempty"`
	Bodies    []string `json:"bodies,omitempty"`
}

func (i *GeoItem) String() string {
	return i.Name + " (" + i.Class + " in " + i.Source + ")"
}

// ExportConfig configures the exporting of an animation.
type ExportConfig struct {
	Filename  string
	Frames    bool          // stream the animation frames to a CSV file
	Paths     bool          // write the orbit locus of each rendered body
	Catalog   bool          // write the JSON catalog tying the artifacts together
	Timestamp bool          // stamp the file names with the creation time
	Epoch     time.Time     // civil time of t=0 (default J2000)
	TimeUnit  time.Duration // civil duration of one simulated time unit (default JulianYear)
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.Frames && !c.Paths && !c.Catalog
}

func (c ExportConfig) epoch() time.Time {
	if c.Epoch.IsZero() {
		return J2000
	}
	return c.Epoch
}

func (c ExportConfig) timeUnit() time.Duration {
	if c.TimeUnit == 0 {
		return JulianYear
	}
	return c.TimeUnit
}

// jdOf returns the Julian date of simulated time t. Plain float arithmetic,
// so spans far beyond what a time.Duration can hold are fine.
func (c ExportConfig) jdOf(t float64) float64 {
	return julian.TimeToJD(c.epoch()) + t*c.timeUnit().Hours()/24
}

// exportName builds the full path of an export artifact, optionally stamped
// with the creation time.
func exportName(prefix, name string, stamped bool) string {
	config := skConfig()
	if stamped {
		t := time.Now()
		return fmt.Sprintf("%s/%s-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, prefix, name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%s/%s-%s.csv", config.outputDir, prefix, name)
}

// createFrameFile returns a file which requires a defer close statement!
func createFrameFile(conf ExportConfig) *os.File {
	f, err := os.Create(exportName("frames", conf.Filename, conf.Timestamp))
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <t> <jd> <body> <x> <y> <z>
#   t is the simulated time, jd its Julian date
#   Positions share the distance unit of the system (AU by convention)
t,jd,name,x,y,z`, time.Now().UTC()))
	return f
}

// StreamFrames streams the frames of an animation to the frames file and
// returns the catalog items it wrote. It returns once frameChan closes, so
// it usually runs in its own goroutine (which NewExportSink arranges).
func StreamFrames(conf ExportConfig, frameChan <-chan Frame) []*GeoItem {
	var f *os.File
	var firstT, lastT float64
	var bodies []string
	started := false
	for fr := range frameChan {
		if !conf.Frames {
			continue // keep draining so the producer never blocks
		}
		if !started {
			f = createFrameFile(conf)
			firstT = fr.Time
			started = true
			for _, bp := range fr.Positions {
				bodies = append(bodies, bp.Name)
			}
		}
		lastT = fr.Time
		jd := conf.jdOf(fr.Time)
		for _, bp := range fr.Positions {
			if _, err := f.WriteString(fmt.Sprintf("\n%f,%f,%s,%f,%f,%f", fr.Time, jd, bp.Name, bp.X, bp.Y, bp.Z)); err != nil {
				panic(err)
			}
		}
	}
	if !started {
		return nil
	}
	f.WriteString(fmt.Sprintf("\n# Simulation time end: t=%f (JD %f)\n", lastT, conf.jdOf(lastT)))
	f.Close()
	return []*GeoItem{{
		Class:     "frames",
		Name:      conf.Filename,
		Source:    filepath.Base(f.Name()),
		StartTime: fmt.Sprintf("JD %f", conf.jdOf(firstT)),
		EndTime:   fmt.Sprintf("JD %f", conf.jdOf(lastT)),
		Bodies:    bodies,
	}}
}

// WritePath writes a polyline to its own CSV file and returns its catalog
// item. Orbit loci and spinograph chords both go through here.
func WritePath(conf ExportConfig, p Path) (*GeoItem, error) {
	name := strings.ToLower(strings.ReplaceAll(p.Name, " ", "-"))
	filename := exportName("path", conf.Filename+"-"+name, conf.Timestamp)
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fmt.Fprintf(f, "# Creation date (UTC): %s\n# Records are <x> <y> <z>\nx,y,z", time.Now().UTC())
	for _, pt := range p.Points {
		fmt.Fprintf(f, "\n%f,%f,%f", pt.X, pt.Y, pt.Z)
	}
	f.WriteString("\n")
	return &GeoItem{Class: "path", Name: p.Name, Source: filepath.Base(filename), Color: p.Color, Closed: p.Closed}, nil
}

// WriteSpino writes a spinograph trace as a single CSV, one row per chord
// vertex, and returns its catalog item.
func WriteSpino(conf ExportConfig, sp *Spinograph) (*GeoItem, error) {
	filename := exportName("spino", conf.Filename, conf.Timestamp)
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fmt.Fprintf(f, "# Creation date (UTC): %s\n# Records are <strand> <t> <x> <y> <z>, one row per chord vertex\nstrand,t,x,y,z", time.Now().UTC())
	for i, s := range sp.Samples() {
		for _, pt := range s.Points {
			fmt.Fprintf(f, "\n%d,%f,%f,%f,%f", i, s.Time, pt.X, pt.Y, pt.Z)
		}
	}
	f.WriteString("\n")
	return &GeoItem{Class: "spino", Name: conf.Filename, Source: filepath.Base(filename), Bodies: append([]string(nil), sp.r.names...)}, nil
}

// WriteCatalog writes the JSON catalog tying an export's artifacts together.
func WriteCatalog(conf ExportConfig, items []*GeoItem) error {
	c := GeoCatalog{Version: "1.0", Name: conf.Filename, Items: items}
	f, err := os.Create(fmt.Sprintf("%s/catalog-%s.json", skConfig().outputDir, conf.Filename))
	if err != nil {
		return err
	}
	defer f.Close()
	marsh, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = f.Write(marsh)
	return err
}

// ExportSink pumps accepted frames into a background StreamFrames, so an
// animation can drive a file export the same way it drives a display.
type ExportSink struct {
	conf  ExportConfig
	r     *Renderer
	ch    chan Frame
	done  chan struct{}
	items []*GeoItem
}

// NewExportSink returns a FrameSink streaming every accepted frame to the
// configured files. Close it to flush and to write the loci and the catalog.
func NewExportSink(conf ExportConfig, r *Renderer) *ExportSink {
	s := &ExportSink{conf: conf, r: r, ch: make(chan Frame, 10), done: make(chan struct{})}
	go func() {
		s.items = StreamFrames(conf, s.ch)
		close(s.done)
	}()
	return s
}

// Accept queues fr for the streaming writer.
func (s *ExportSink) Accept(fr Frame) error {
	s.ch <- fr
	return nil
}

// Close flushes the stream, then writes the orbit loci and the catalog.
func (s *ExportSink) Close() error {
	close(s.ch)
	<-s.done
	items := s.items
	if s.conf.Paths {
		sel, err := s.r.selection()
		if err != nil {
			return err
		}
		for _, b := range sel {
			p, err := s.r.OrbitPath(b.Name, orbitPathPoints)
			if err != nil {
				return err
			}
			item, err := WritePath(s.conf, p)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
	}
	if s.conf.Catalog {
		return WriteCatalog(s.conf, items)
	}
	return nil
}

// orbitPathPoints is the locus sampling used by the export sink, one point
// per degree of true anomaly.
const orbitPathPoints = 361

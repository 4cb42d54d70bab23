// File: telemetry/collector.go

// Package telemetry accumulates per-rally match statistics from the
// snapshot stream and exports them as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/pong3d/pong3d/game"
)

// RallyRecord is one finished rally. The gocsv tags define the CSV layout.
type RallyRecord struct {
	Rally      int     `csv:"rally"`
	ServedTo   string  `csv:"served_to"`
	Scorer     string  `csv:"scorer"`
	Hits       int     `csv:"hits"`
	PeakSpeed  float64 `csv:"peak_speed"`
	StartTick  uint64  `csv:"start_tick"`
	EndTick    uint64  `csv:"end_tick"`
	Difficulty string  `csv:"difficulty"`
}

// Collector builds RallyRecords from the snapshot stream. Observe is called
// on the simulation goroutine; Export may be called from anywhere.
type Collector struct {
	mu      sync.Mutex
	records []RallyRecord
	current *RallyRecord
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Observe folds one snapshot into the running statistics. A serve event
// opens a rally, paddle hits and speed update it, and a goal closes it.
func (c *Collector) Observe(snap game.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ev := range snap.Events {
		switch ev.Kind {
		case game.EventServe:
			c.current = &RallyRecord{
				Rally:      len(c.records) + 1,
				ServedTo:   string(ev.Side),
				StartTick:  snap.Tick,
				Difficulty: string(snap.Difficulty),
			}
		case game.EventPaddleHit:
			if c.current != nil {
				c.current.Hits++
			}
		case game.EventGoal:
			if c.current != nil {
				c.current.Scorer = string(ev.Side)
				c.current.EndTick = snap.Tick
				c.records = append(c.records, *c.current)
				c.current = nil
			}
		}
	}

	if c.current != nil && snap.Ball.Speed > c.current.PeakSpeed {
		c.current.PeakSpeed = snap.Ball.Speed
	}
}

// Records returns a copy of the finished rallies so far.
func (c *Collector) Records() []RallyRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RallyRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Export writes the finished rallies as CSV.
func (c *Collector) Export(w io.Writer) error {
	records := c.Records()
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("marshaling rally records: %w", err)
	}
	return nil
}

// ExportFile writes the finished rallies to a CSV file, creating or
// truncating it.
func (c *Collector) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating telemetry file: %w", err)
	}
	defer f.Close()
	return c.Export(f)
}

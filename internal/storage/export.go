package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Meta   RunMetadata `json:"meta"`
	Ticks  []uint64    `json:"ticks"`
	Bodies []int       `json:"bodies"`
	Speeds []float64   `json:"avg_speed"`
	Counts []uint64    `json:"collisions"`
	Energy []float64   `json:"kinetic_energy"`
}

func ExportJSON(w io.Writer, meta RunMetadata, trace Trace) error {
	data := ExportData{
		Meta:   meta,
		Ticks:  make([]uint64, len(trace.Stats)),
		Bodies: make([]int, len(trace.Stats)),
		Speeds: trace.Speeds(),
		Counts: make([]uint64, len(trace.Stats)),
		Energy: trace.Energy,
	}
	for i, s := range trace.Stats {
		data.Ticks[i] = s.Tick
		data.Bodies[i] = s.Bodies
		data.Counts[i] = s.Collisions
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONStdout(meta RunMetadata, trace Trace) error {
	return ExportJSON(os.Stdout, meta, trace)
}

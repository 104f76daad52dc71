package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ballpit/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statsFile    = "stats.csv"
)

var statsHeader = []string{"tick", "bodies", "collisions", "avg_speed", "kinetic_energy"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Ticks     int                `json:"ticks"`
	Bodies    int                `json:"bodies"`
	Radius    float64            `json:"radius"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Gravity   float64            `json:"gravity"`
	Friction  float64            `json:"friction"`
	Bounce    float64            `json:"bounce"`
	Final     sim.Stats          `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Trace is the per-tick record of a run. Energy is parallel to Stats and
// may be empty.
type Trace struct {
	Stats  []sim.Stats
	Energy []float64
}

// Save writes meta and trace under a fresh run directory and returns its id.
func (s *Store) Save(meta RunMetadata, trace Trace) (string, error) {
	now := time.Now()
	name := meta.Preset
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	if len(trace.Stats) > 0 {
		meta.Final = trace.Stats[len(trace.Stats)-1]
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(statsHeader); err != nil {
		return "", err
	}
	for i, st := range trace.Stats {
		energy := 0.0
		if i < len(trace.Energy) {
			energy = trace.Energy[i]
		}
		row := []string{
			strconv.FormatUint(st.Tick, 10),
			strconv.Itoa(st.Bodies),
			strconv.FormatUint(st.Collisions, 10),
			strconv.FormatFloat(st.AverageSpeed, 'f', 6, 64),
			strconv.FormatFloat(energy, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads stats.csv back. Malformed rows are skipped.
func (s *Store) LoadTrace(runID string) (Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statsFile))
	if err != nil {
		return Trace{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return Trace{}, err
	}

	trace := Trace{Stats: []sim.Stats{}, Energy: []float64{}}
	if len(records) < 2 {
		return trace, nil
	}

	for _, record := range records[1:] {
		if len(record) < len(statsHeader) {
			continue
		}
		tick, err1 := strconv.ParseUint(record[0], 10, 64)
		bodies, err2 := strconv.Atoi(record[1])
		collisions, err3 := strconv.ParseUint(record[2], 10, 64)
		speed, err4 := strconv.ParseFloat(record[3], 64)
		energy, err5 := strconv.ParseFloat(record[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		trace.Stats = append(trace.Stats, sim.Stats{
			Tick:         tick,
			Bodies:       bodies,
			Collisions:   collisions,
			AverageSpeed: speed,
		})
		trace.Energy = append(trace.Energy, energy)
	}

	return trace, nil
}

// Speeds extracts the average-speed column.
func (t Trace) Speeds() []float64 {
	out := make([]float64, len(t.Stats))
	for i, s := range t.Stats {
		out[i] = s.AverageSpeed
	}
	return out
}

// Collisions extracts the collision counter column.
func (t Trace) Collisions() []float64 {
	out := make([]float64, len(t.Stats))
	for i, s := range t.Stats {
		out[i] = float64(s.Collisions)
	}
	return out
}

package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ballpit/internal/sim"
)

func sampleTrace() Trace {
	return Trace{
		Stats: []sim.Stats{
			{Tick: 1, Bodies: 5, Collisions: 0, AverageSpeed: 1.5},
			{Tick: 2, Bodies: 5, Collisions: 2, AverageSpeed: 2.25},
		},
		Energy: []float64{100, 120.5},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Preset:  "moon",
		Seed:    42,
		Ticks:   2,
		Bodies:  5,
		Metrics: map[string]float64{"mean_speed": 1.875},
	}
	runID, err := st.Save(meta, sampleTrace())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	got, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Preset != "moon" || got.Seed != 42 || got.ID != runID {
		t.Errorf("unexpected metadata %+v", got)
	}
	if got.Metrics["mean_speed"] != 1.875 {
		t.Errorf("expected mean_speed 1.875, got %v", got.Metrics["mean_speed"])
	}
	if got.Final.Collisions != 2 || got.Final.Tick != 2 {
		t.Errorf("final stats not recorded: %+v", got.Final)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace.Stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(trace.Stats))
	}
	if trace.Stats[1].AverageSpeed != 2.25 || trace.Stats[1].Collisions != 2 {
		t.Errorf("unexpected row %+v", trace.Stats[1])
	}
	if trace.Energy[1] != 120.5 {
		t.Errorf("expected energy 120.5, got %v", trace.Energy[1])
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected empty list, got %v, %v", runs, err)
	}

	first, _ := st.Save(RunMetadata{Preset: "a"}, sampleTrace())
	second, _ := st.Save(RunMetadata{Preset: "b"}, sampleTrace())
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("expected oldest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadTrace("nope"); err == nil {
		t.Error("expected error for missing trace")
	}
}

func TestLoadTraceSkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	runDir := filepath.Join(dir, "hand")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "tick,bodies,collisions,avg_speed,kinetic_energy\n1,2,3,4.5,6\nx,2,3,4,5\n2,2\n"
	if err := os.WriteFile(filepath.Join(runDir, statsFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	trace, err := New(dir).LoadTrace("hand")
	if err != nil {
		t.Fatalf("load trace: %v", err)
	}
	if len(trace.Stats) != 1 || trace.Stats[0].AverageSpeed != 4.5 {
		t.Errorf("expected one good row, got %+v", trace.Stats)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, RunMetadata{ID: "r1"}, sampleTrace()); err != nil {
		t.Fatalf("export: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Meta.ID != "r1" || len(data.Ticks) != 2 || data.Counts[1] != 2 || data.Speeds[0] != 1.5 {
		t.Errorf("unexpected export %+v", data)
	}
}

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/analysis"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/export"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/storage"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w, _, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults() {
		w.AddMetric(m)
	}
	trace := metrics.NewTrace(0)
	w.AddObserver(trace)

	name := preset
	if name == "" {
		name = "default"
	}

	fmt.Printf("running %s for %d ticks...\n", name, ticks)
	start := time.Now()
	if err := w.Run(context.Background(), sim.RunConfig{Ticks: ticks}); err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := w.Check(); err != nil {
		return err
	}

	p := cfg.World
	meta := storage.RunMetadata{
		Preset:    name,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Ticks:     ticks,
		Bodies:    cfg.Spawn.Count,
		Radius:    cfg.Spawn.Radius,
		Width:     p.Width,
		Height:    p.Height,
		Gravity:   cfg.Physics.Gravity,
		Friction:  cfg.Physics.Friction,
		Bounce:    cfg.Physics.Bounce,
		Final:     w.Stats(),
		Metrics:   w.Metrics(),
	}
	runID, err := st.Save(meta, storage.Trace{Stats: trace.Stats(), Energy: trace.Energy()})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("collisions: %d\n", meta.Final.Collisions)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(meta.Metrics))
	for n := range meta.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %s: %.6f\n", n, meta.Metrics[n])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tTICKS\tBODIES\tCOLLISIONS\tAVG SPEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.3f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Final.Bodies,
			run.Final.Collisions,
			run.Final.AverageSpeed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace.Stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("ticks: %d\n\n", len(trace.Stats))

	series := []struct {
		caption string
		data    []float64
	}{
		{"average speed", trace.Speeds()},
		{"collisions (cumulative)", trace.Collisions()},
		{"kinetic energy", trace.Energy},
	}
	for _, s := range series {
		if len(s.data) == 0 {
			continue
		}
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace.Stats) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"tick", "bodies", "collisions", "avg_speed", "kinetic_energy"}); err != nil {
		return err
	}
	for i, s := range trace.Stats {
		energy := ""
		if i < len(trace.Energy) {
			energy = strconv.FormatFloat(trace.Energy[i], 'f', 6, 64)
		}
		row := []string{
			strconv.FormatUint(s.Tick, 10),
			strconv.Itoa(s.Bodies),
			strconv.FormatUint(s.Collisions, 10),
			strconv.FormatFloat(s.AverageSpeed, 'f', 6, 64),
			energy,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(*meta, trace)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	data := trace.Speeds()
	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("preset: %s\n\n", meta.Preset)

	period, err := analysis.DominantPeriod(data)
	if errors.Is(err, analysis.ErrFlat) {
		fmt.Println("no periodic component in average speed")
		return nil
	}
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(data)
	plotData := ps[:len(ps)/4+1]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (avg speed)"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("dominant period: %.1f ticks\n", period)
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, _, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	if err := w.Run(context.Background(), sim.RunConfig{Ticks: ticks}); err != nil {
		return err
	}

	svg := export.WorldToSVG(w, scale)
	if outFile == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{5, 25, 100, 250}
	fmt.Printf("benchmarking %d ticks per world\n\n", ticks)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tRADIUS\tTIME\tTICKS/SEC\tCOLLISIONS")
	for _, n := range counts {
		c := *cfg
		c.Spawn.Count = n
		c.Spawn.Radius = benchRadius(cfg, n)

		world, _, err := buildWorld(&c)
		if err != nil {
			return err
		}
		start := time.Now()
		if err := world.Run(context.Background(), sim.RunConfig{Ticks: ticks}); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%.1f\t%v\t%.0f\t%d\n",
			n, c.Spawn.Radius, elapsed, float64(ticks)/elapsed.Seconds(), world.Stats().Collisions)
	}
	return w.Flush()
}

// benchRadius shrinks the configured radius so n bodies cover at most a
// fifth of the world.
func benchRadius(cfg *config.Config, n int) float64 {
	area := cfg.World.Width * cfg.World.Height / 5
	r := cfg.Spawn.Radius
	for r > config.DefaultMinRadius && float64(n)*r*r*3.14159 > area {
		r *= 0.8
	}
	return r
}

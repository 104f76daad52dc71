package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/optim"
	"github.com/san-kum/ballpit/internal/sim"
)

var (
	sweepParams []string
	sweepMetric string
	maximize    bool
)

// sweepSetters are the config fields a sweep can vary.
var sweepSetters = map[string]func(*config.Config, float64){
	"gravity":  func(c *config.Config, v float64) { c.Physics.Gravity = v },
	"friction": func(c *config.Config, v float64) { c.Physics.Friction = v },
	"bounce":   func(c *config.Config, v float64) { c.Physics.Bounce = v },
	"radius":   func(c *config.Config, v float64) { c.Spawn.Radius = v },
	"count":    func(c *config.Config, v float64) { c.Spawn.Count = int(v) },
	"speed":    func(c *config.Config, v float64) { c.Spawn.Speed = v },
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "grid search over physics parameters",
		Example: "  ballpit sweep --param bounce=0.5,0.7,0.9 --param gravity=0.4,0.8 --metric collision_rate --maximize",
		Args:    cobra.NoArgs,
		PreRunE: requirePositiveTicks,
		RunE:    sweep,
	}
	cmd.Flags().StringArrayVar(&sweepParams, "param", nil, "name=v1,v2,... (repeatable)")
	cmd.Flags().StringVar(&sweepMetric, "metric", "collision_rate", "metric to optimise")
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximise instead of minimise")
	cmd.Flags().IntVar(&ticks, "ticks", 300, "ticks per grid point")
	return cmd
}

func parseSweepParam(s string) (string, []float64, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("bad --param %q: want name=v1,v2", s)
	}
	if _, known := sweepSetters[name]; !known {
		return "", nil, fmt.Errorf("cannot sweep %q", name)
	}
	var vals []float64
	for _, f := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", nil, fmt.Errorf("bad value in --param %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	return name, vals, nil
}

func sweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := metrics.New(sweepMetric); err != nil {
		return err
	}

	var names []string
	var ranges [][]float64
	for _, p := range sweepParams {
		name, vals, err := parseSweepParam(p)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	build := func(params map[string]float64) (*sim.World, error) {
		c := *base
		for name, v := range params {
			sweepSetters[name](&c, v)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		w, _, err := buildWorld(&c)
		return w, err
	}
	newMetric := func() sim.Metric {
		m, _ := metrics.New(sweepMetric)
		return m
	}

	g := optim.NewGridSearch(names, ranges, ticks)
	g.Maximize = maximize
	best, all, err := g.Search(context.Background(), build, newMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), strings.ToUpper(sweepMetric))
	for _, p := range all {
		fmt.Fprintf(w, "%s\t%s\n", formatParams(names, p.Params), formatValue(p))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	var parts []string
	for _, k := range sortedKeys(best.Params) {
		parts = append(parts, fmt.Sprintf("%s=%g", k, best.Params[k]))
	}
	fmt.Printf("\nbest: %s -> %.6f\n", strings.Join(parts, " "), best.Value)
	return nil
}

func formatParams(names []string, params map[string]float64) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = strconv.FormatFloat(params[n], 'g', -1, 64)
	}
	return strings.Join(parts, "\t")
}

func formatValue(p optim.Point) string {
	if p.Err != nil {
		return "error: " + p.Err.Error()
	}
	return strconv.FormatFloat(p.Value, 'f', 6, 64)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

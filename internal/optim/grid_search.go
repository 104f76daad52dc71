package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/ballpit/internal/sim"
)

var (
	ErrEmptyGrid = errors.New("optim: empty grid")
	ErrNoTicks   = errors.New("optim: ticks per grid point must be positive")
	ErrNoResult  = errors.New("optim: no grid point produced a comparable value")
)

// BuildFunc returns a populated world for one grid point.
type BuildFunc func(params map[string]float64) (*sim.World, error)

// Point is one evaluated grid point.
type Point struct {
	Params map[string]float64
	Value  float64
	Err    error
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	Ticks      int
	Maximize   bool
}

func NewGridSearch(params []string, ranges [][]float64, ticks int) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, Ticks: ticks}
}

// Points enumerates the grid in row-major order.
func (g *GridSearch) Points() []map[string]float64 {
	var out []map[string]float64
	g.enumerate(0, make(map[string]float64), &out)
	return out
}

func (g *GridSearch) enumerate(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.paramNames) {
		*out = append(*out, current)
		return
	}
	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[paramName] = val
		g.enumerate(depth+1, next, out)
	}
}

// Search runs every grid point concurrently and returns the best one by the
// metric newMetric produces, along with all evaluated points in grid order.
// Points whose world cannot be built are reported with Err set and skipped.
func (g *GridSearch) Search(ctx context.Context, build BuildFunc, newMetric func() sim.Metric) (Point, []Point, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Point{}, nil, fmt.Errorf("optim: %d names for %d ranges", len(g.paramNames), len(g.ranges))
	}
	if g.Ticks <= 0 {
		return Point{}, nil, fmt.Errorf("%w: got %d", ErrNoTicks, g.Ticks)
	}
	grid := g.Points()
	if len(g.paramNames) == 0 || len(grid) == 0 {
		return Point{}, nil, ErrEmptyGrid
	}

	results := make([]Point, len(grid))
	var wg sync.WaitGroup
	for i, params := range grid {
		wg.Add(1)
		go func(idx int, params map[string]float64) {
			defer wg.Done()
			results[idx] = g.evaluate(ctx, build, newMetric, params)
		}(i, params)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Point{}, results, err
	}

	best := Point{Value: math.Inf(1)}
	if g.Maximize {
		best.Value = math.Inf(-1)
	}
	found := false
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if (g.Maximize && r.Value > best.Value) || (!g.Maximize && r.Value < best.Value) {
			best = r
			found = true
		}
	}
	if !found && firstErr != nil {
		return Point{}, results, fmt.Errorf("optim: no grid point could be evaluated: %w", firstErr)
	}
	if !found {
		return Point{}, results, ErrNoResult
	}
	return best, results, nil
}

func (g *GridSearch) evaluate(ctx context.Context, build BuildFunc, newMetric func() sim.Metric, params map[string]float64) Point {
	w, err := build(params)
	if err != nil {
		return Point{Params: params, Err: err}
	}
	m := newMetric()
	w.AddMetric(m)
	if err := w.Run(ctx, sim.RunConfig{Ticks: g.Ticks}); err != nil {
		return Point{Params: params, Err: err}
	}
	return Point{Params: params, Value: m.Value()}
}

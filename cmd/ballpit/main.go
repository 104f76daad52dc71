package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/gui"
	"github.com/san-kum/ballpit/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	numBodies  int
	radius     float64
	ticks      int
	frameRate  int
	outFile    string
	scale      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballpit",
		Short: "2d circle physics sandbox",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".ballpit", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 1, "random seed")
	pf.IntVar(&numBodies, "bodies", config.DefaultCount, "number of bodies spawned at start")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "radius of spawned bodies")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive sandbox in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "interactive sandbox in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "run headless and store the result",
		Args:    cobra.NoArgs,
		PreRunE: requirePositiveTicks,
		RunE:    runSimulation,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run stats to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of average speed",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	snapshotCmd := &cobra.Command{
		Use:     "snapshot",
		Short:   "render the world after n ticks as svg",
		Args:    cobra.NoArgs,
		PreRunE: requirePositiveTicks,
		RunE:    snapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 120, "number of ticks")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 1, "svg scale")

	benchCmd := &cobra.Command{
		Use:     "bench",
		Short:   "benchmark tick throughput",
		Args:    cobra.NoArgs,
		PreRunE: requirePositiveTicks,
		RunE:    bench,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 1000, "ticks per measurement")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, analyzeCmd, snapshotCmd, benchCmd, presetsCmd, initCmd, newSweepCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, ctrl, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	title := "ballpit"
	if preset != "" {
		title += " · " + preset
	}
	return viz.Run(w, ctrl, title, cfg.FPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, ctrl, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	gui.Run(w, ctrl, "ballpit", cfg.FPS)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

// requirePositiveTicks guards headless commands, whose worlds run until
// the tick budget is spent.
func requirePositiveTicks(cmd *cobra.Command, args []string) error {
	if ticks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", ticks)
	}
	return nil
}

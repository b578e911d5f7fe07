package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/temcouple/internal/config"
	"github.com/san-kum/temcouple/internal/coupling"
	"github.com/san-kum/temcouple/internal/report"
	"github.com/san-kum/temcouple/internal/store"
	"github.com/san-kum/temcouple/internal/sweep"
	"github.com/san-kum/temcouple/internal/tui"
)

var (
	dataDir string
	c11     float64
	c12     float64
	c22     float64
	epsR    float64
	muR     float64

	configFile string
	preset     string
	noSave     bool

	// Sweep parameters
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "temcouple",
		Short: "TEM coupling coefficient analysis for parallel conductors",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return tui.Run(config.GetPreset("ribbon"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".temcouple", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "compute coupling coefficient from a capacitance matrix",
		RunE:  runAnalyze,
	}
	addMatrixFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset capacitance matrix")
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one matrix entry and plot k",
		RunE:  runSweep,
	}
	addMatrixFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "c12", "entry to sweep (c11, c12, c22)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -5e-11, "sweep range start (F/m)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 5e-11, "sweep range end (F/m)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 81, "number of sample points")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "replay a saved run with its coupling context",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available capacitance presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-16s c11=%.3e c12=%.3e c22=%.3e eps_r=%.2f\n",
					name, p.Capacitance.C11, p.Capacitance.C12, p.Capacitance.C22, p.Medium.EpsR)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive coupling explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addMatrixFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "use preset capacitance matrix")

	rootCmd.AddCommand(analyzeCmd, sweepCmd, listCmd, plotCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addMatrixFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&c11, "c11", 1.25e-10, "self-capacitance of conductor 1 (F/m)")
	cmd.Flags().Float64Var(&c12, "c12", -4.90e-16, "mutual capacitance (F/m)")
	cmd.Flags().Float64Var(&c22, "c22", 1.23e-10, "self-capacitance of conductor 2 (F/m)")
	cmd.Flags().Float64Var(&epsR, "eps-r", 1.0, "relative permittivity of the medium")
	cmd.Flags().Float64Var(&muR, "mu-r", 1.0, "relative permeability of the medium")
}

// resolveConfig layers preset, config file, and flags; flags win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// With no preset or file, flag defaults supply the matrix; otherwise
	// only explicitly set flags override.
	fromFlags := preset == "" && configFile == ""
	if fromFlags || cmd.Flags().Changed("c11") {
		cfg.Capacitance.C11 = c11
	}
	if fromFlags || cmd.Flags().Changed("c12") {
		cfg.Capacitance.C12 = c12
	}
	if fromFlags || cmd.Flags().Changed("c22") {
		cfg.Capacitance.C22 = c22
	}
	if fromFlags || cmd.Flags().Changed("eps-r") {
		cfg.Medium.EpsR = epsR
	}
	if fromFlags || cmd.Flags().Changed("mu-r") {
		cfg.Medium.MuR = muR
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cm := cfg.Capacitance
	res, err := coupling.Analyze(cm.C11, cm.C12, cm.C22, cfg.Options())
	if err != nil {
		return err
	}

	fmt.Println(report.Render(cm.C11, cm.C12, cm.C22, cfg.Options().Constants, res))

	if noSave {
		return nil
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cm.C11, cm.C12, cm.C22, cfg.Medium.EpsR, cfg.Medium.MuR, res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc := sweep.Config{
		C11:   cfg.Capacitance.C11,
		C12:   cfg.Capacitance.C12,
		C22:   cfg.Capacitance.C22,
		Param: sweep.Param(sweepParam),
		From:  sweepFrom,
		To:    sweepTo,
		Steps: sweepSteps,
		Opts:  cfg.Options(),
	}

	points, err := sweep.RunParallel(context.Background(), sc)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s from %.3e to %.3e (%d points)\n\n", sweepParam, sweepFrom, sweepTo, sweepSteps)
	fmt.Println(report.PlotSweep(points, 80, 12))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tC11\tC12\tC22\tK\tINTERPRETATION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3e\t%.3e\t%.3e\t%.4e\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.C11,
			run.C12,
			run.C22,
			run.K,
			run.Interpretation,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	l, err := st.LoadInductance(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("time: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println(report.RenderInductance(l, meta.K, meta.Interpretation))

	// Sweep the mutual term across the realizable range to show where
	// this run sits relative to the singular boundary.
	limit := 0.99 * math.Sqrt(meta.C11*meta.C22)
	epsR, muR := meta.EpsR, meta.MuR
	if epsR <= 0 {
		epsR = 1
	}
	if muR <= 0 {
		muR = 1
	}
	opts := coupling.DefaultOptions()
	opts.Constants = coupling.Medium(epsR, muR)

	points, err := sweep.Run(sweep.Config{
		C11:   meta.C11,
		C12:   meta.C12,
		C22:   meta.C22,
		Param: sweep.ParamC12,
		From:  -limit,
		To:    limit,
		Steps: 81,
		Opts:  opts,
	})
	if err != nil {
		return err
	}

	fmt.Printf("k vs c12 for this conductor pair (c12 in [%.3e, %.3e])\n\n", -limit, limit)
	fmt.Println(report.PlotSweep(points, 80, 12))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta)
}

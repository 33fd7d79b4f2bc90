package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/grid"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/simulation"
	"github.com/san-kum/pdelab/internal/store"
	"github.com/san-kum/pdelab/internal/tui"
	"github.com/san-kum/pdelab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	equation string
	xMin     float64
	xMax     float64
	dx       float64
	tMin     float64
	tMax     float64
	dt       float64
	beta     float64
	waveC    float64
	bcLeft   float64
	bcRight  float64
	icPreset string
	icExpr   string

	sampleTime float64
	exportOut  string
	plotOut    string
	plotMode   string
	plotSlices int
	frameRate  int
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdelab",
		Short: "finite-difference lab for 1D heat and wave equations",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pdelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "solve a simulation and store the result",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run to the data directory")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check stability without solving",
		RunE:  validateConfig,
	}
	addConfigFlags(validateCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, id := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", id, config.Presets[id].Name)
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "solve and show the profile nearest a given time",
		RunE:  sampleAtTime,
	}
	addConfigFlags(sampleCmd)
	sampleCmd.Flags().Float64Var(&sampleTime, "time", 0, "time to sample at")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "render a stored run to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotOut, "out", "solution.png", "output path")
	plotCmd.Flags().StringVar(&plotMode, "mode", "heatmap", "heatmap or profiles")
	plotCmd.Flags().IntVar(&plotSlices, "slices", 6, "profile count in profiles mode")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "solve and animate the result in the terminal",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")

	rootCmd.AddCommand(runCmd, validateCmd, presetsCmd, listCmd, sampleCmd, plotCmd, liveCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration id")
	cmd.Flags().StringVar(&equation, "equation", "", "equation family (heat or wave)")
	cmd.Flags().Float64Var(&xMin, "x-min", 0, "left edge of the spatial domain")
	cmd.Flags().Float64Var(&xMax, "x-max", 1, "right edge of the spatial domain")
	cmd.Flags().Float64Var(&dx, "dx", 0.01, "spatial step")
	cmd.Flags().Float64Var(&tMin, "t-min", 0, "start time")
	cmd.Flags().Float64Var(&tMax, "t-max", 0.5, "end time")
	cmd.Flags().Float64Var(&dt, "dt", 0.0001, "time step")
	cmd.Flags().Float64Var(&beta, "beta", 0.1, "thermal diffusivity (heat)")
	cmd.Flags().Float64Var(&waveC, "c", 1.0, "wave speed (wave)")
	cmd.Flags().Float64Var(&bcLeft, "left", 0, "left Dirichlet value")
	cmd.Flags().Float64Var(&bcRight, "right", 0, "right Dirichlet value")
	cmd.Flags().StringVar(&icPreset, "ic", "", "initial condition preset name")
	cmd.Flags().StringVar(&icExpr, "expr", "", "initial condition expression over x")
}

// resolveConfig layers preset, config file, and CLI flags, flags
// winning over files winning over presets.
func resolveConfig(cmd *cobra.Command) (*config.Simulation, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		clone := *p
		cfg = &clone
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("equation") {
		cfg.Equation = equation
	}
	if cmd.Flags().Changed("x-min") {
		cfg.Spatial.XMin = xMin
	}
	if cmd.Flags().Changed("x-max") {
		cfg.Spatial.XMax = xMax
	}
	if cmd.Flags().Changed("dx") {
		cfg.Spatial.Dx = dx
	}
	if cmd.Flags().Changed("t-min") {
		cfg.Temporal.TMin = tMin
	}
	if cmd.Flags().Changed("t-max") {
		cfg.Temporal.TMax = tMax
	}
	if cmd.Flags().Changed("dt") {
		cfg.Temporal.Dt = dt
	}
	if cmd.Flags().Changed("beta") {
		cfg.Physical.Beta = beta
	}
	if cmd.Flags().Changed("c") {
		cfg.Physical.C = waveC
	}
	if cmd.Flags().Changed("left") {
		cfg.Boundary.Left = bcLeft
	}
	if cmd.Flags().Changed("right") {
		cfg.Boundary.Right = bcRight
	}
	if cmd.Flags().Changed("ic") {
		cfg.Initial = config.Initial{Preset: icPreset}
	}
	if cmd.Flags().Changed("expr") {
		cfg.Initial = config.Initial{Expression: icExpr}
	}

	return cfg, nil
}

func defaultMetrics(cfg *config.Simulation) []metrics.Metric {
	if cfg.Equation == config.EquationWave {
		return []metrics.Metric{
			metrics.NewPeakAmplitude(),
			metrics.NewWaveEnergy(cfg.Physical.C, cfg.Spatial.Dx, cfg.Temporal.Dt),
		}
	}
	return []metrics.Metric{
		metrics.NewPeakAmplitude(),
		metrics.NewDecayViolations(),
	}
}

func observeField(field *pde.Field, g grid.Grid, ms []metrics.Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < field.Rows(); i++ {
		t := g.TMin + float64(i)*g.Dt
		for _, m := range ms {
			m.Observe(field.Row(i), t)
		}
	}
	vals := make(map[string]float64, len(ms))
	for _, m := range ms {
		vals[m.Name()] = m.Value()
	}
	return vals
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}

	rep := sim.Validate()
	if !rep.Valid {
		fmt.Println("warning: configuration failed validation; solving anyway")
		for _, e := range rep.Errors {
			fmt.Printf("  %s\n", e)
		}
	}

	fmt.Printf("solving %s (sigma = %.6g)...\n", cfg.Equation, sim.Sigma())
	start := time.Now()

	field, err := sim.Solve()
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	g := sim.Grid()

	ms := defaultMetrics(cfg)
	vals := observeField(field, g, ms)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("grid: %d time steps x %d points\n", field.Rows(), field.Cols())
	fmt.Println("\nmetrics:")
	for name, val := range vals {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	fmt.Println()
	fmt.Println(viz.RenderSummary(field, 72, 12))

	if noSave {
		return nil
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, sim.Sigma(), sim.CheckStability(), vals, g.T(), field)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rep, err := simulation.Validate(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("sigma: %.6g\n", rep.Sigma)
	if rep.Valid {
		fmt.Println("configuration is stable")
		return nil
	}
	fmt.Println("configuration is NOT stable:")
	for _, e := range rep.Errors {
		fmt.Printf("  %s\n", e)
	}
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUATION\tSIGMA\tSTABLE\tSTEPS\tPOINTS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%v\t%d\t%d\t%s\n",
			r.ID, r.Config.Equation, r.Sigma, r.Stable, r.Steps, r.Points,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func sampleAtTime(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}
	if _, err := sim.Solve(); err != nil {
		return err
	}

	u, err := sim.SampleAtTime(sampleTime)
	if err != nil {
		return err
	}

	g := sim.Grid()
	i := g.TimeIndex(sampleTime)
	fmt.Println(viz.RenderFrame(u, g.TMin+float64(i)*g.Dt, 72, 16))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, field, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	g := grid.New(
		meta.Config.Spatial.XMin, meta.Config.Spatial.XMax, meta.Config.Spatial.Dx,
		meta.Config.Temporal.TMin, meta.Config.Temporal.TMax, meta.Config.Temporal.Dt,
	)

	switch plotMode {
	case "profiles":
		err = viz.SaveProfiles(plotOut, meta.Config.Name, g.X(), times, field, plotSlices)
	case "heatmap":
		err = viz.SaveHeatmap(plotOut, meta.Config.Name, g.X(), times, field)
	default:
		return fmt.Errorf("unknown plot mode: %s", plotMode)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", plotOut)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}

	field, err := sim.Solve()
	if err != nil {
		return err
	}

	title := cfg.Name
	if title == "" {
		title = cfg.Equation
	}
	return tui.Run(title, sim.TValues(), field, frameRate)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, field, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	g := grid.New(
		meta.Config.Spatial.XMin, meta.Config.Spatial.XMax, meta.Config.Spatial.Dx,
		meta.Config.Temporal.TMin, meta.Config.Temporal.TMax, meta.Config.Temporal.Dt,
	)
	if exportOut != "" {
		if err := store.ExportJSONFile(exportOut, meta.Config, meta.Sigma, g.X(), g.T(), field, meta.Metrics); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", exportOut)
		return nil
	}
	return store.ExportJSON(os.Stdout, meta.Config, meta.Sigma, g.X(), g.T(), field, meta.Metrics)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatcurve/internal/config"
	"github.com/san-kum/heatcurve/internal/curve"
	"github.com/san-kum/heatcurve/internal/export"
	"github.com/san-kum/heatcurve/internal/logger"
	"github.com/san-kum/heatcurve/internal/series"
	"github.com/san-kum/heatcurve/internal/viz"
)

var (
	configFile string
	preset     string
	targetTemp float64
	heatCurve  float64
	logLevel   string
	theme      string
	// plot
	chartHeight int
	chartWidth  int
	withTable   bool
	noColor     bool
	// export
	format  string
	outFile string
	svgW    int
	svgH    int
	stroke  string
	// calc
	atTemps []float64
)

// main registers the commands and runs the interactive calculator when no
// subcommand is given.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "heatcurve",
		Short:        "heat curve calculator",
		Long:         "Compute and visualize flow temperature based on the Vaillant heat curve.",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.Float64VarP(&targetTemp, "target", "t", curve.DefaultTarget, "target room temperature (°C)")
	pf.Float64VarP(&heatCurve, "curve", "c", curve.DefaultHeatCurve, "heat curve label")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		RunE:  runTUI,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the setpoints table",
		RunE:  printTable,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the heat curve",
		RunE:  plotCurve,
	}
	plotCmd.Flags().IntVar(&chartHeight, "height", config.DefaultChartHeight, "chart height")
	plotCmd.Flags().IntVar(&chartWidth, "width", config.DefaultChartWidth, "chart width (0 = one column per °C)")
	plotCmd.Flags().BoolVar(&withTable, "table", false, "also print the setpoints table")
	plotCmd.Flags().BoolVar(&noColor, "no-color", false, "disable curve color")

	calcCmd := &cobra.Command{
		Use:   "calc [outside_temp]...",
		Short: "flow temperature for the given outside temperatures",
		Long: "Print the flow temperature for each outside temperature.\n\n" +
			"Negative temperatures look like flags to the parser: pass them with\n" +
			"--at/-a, or put -- before the positional values.",
		Example: "  heatcurve calc 10 0 --at -10 --at -20\n  heatcurve calc -a -10,-15\n  heatcurve calc 10 0 -- -10 -20",
		RunE:    calcFlow,
	}
	calcCmd.Flags().Float64SliceVarP(&atTemps, "at", "a", nil, "outside temperature (repeatable, accepts negatives)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export series and table (csv, table-csv, json, svg)",
		RunE:  exportCurve,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv|table-csv|json|svg")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&svgW, "svg-width", 640, "svg width")
	exportCmd.Flags().IntVar(&svgH, "svg-height", 360, "svg height")
	exportCmd.Flags().StringVar(&stroke, "stroke", "rgb(37,99,235)", "svg curve color")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, tableCmd, plotCmd, calcCmd, exportCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolve merges defaults, preset, config file and flags, in increasing
// precedence, and validates the result.
func resolve(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.TargetTemp = targetTemp
	}
	if flags.Changed("curve") {
		cfg.HeatCurve = heatCurve
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	log := logger.New(cfg.LogLevel)
	if err := cfg.Params().Validate(); err != nil {
		log.Debugw("invalid parameters", "target_temp", cfg.TargetTemp, "heat_curve", cfg.HeatCurve, "err", err)
		return nil, nil, err
	}

	log.Debugw("parameters resolved",
		"target_temp", cfg.TargetTemp,
		"heat_curve", cfg.HeatCurve,
		"preset", preset,
		"config", configFile,
	)
	return cfg, log, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Debugw("starting interactive calculator", "theme", cfg.Theme)
	return viz.Run(viz.NewApp(cfg.Params(), cfg.Theme, cfg.Chart.Height))
}

func printTable(cmd *cobra.Command, args []string) error {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	tbl := series.BuildTable(cfg.TargetTemp, cfg.HeatCurve)
	return writeTable(cmd.OutOrStdout(), tbl)
}

func writeTable(out io.Writer, tbl series.Table) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headers := viz.TableHeaders(tbl)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", headers[0], headers[1], headers[2], headers[3])
	for _, row := range viz.TableCells(tbl) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
	}
	return w.Flush()
}

func plotCurve(cmd *cobra.Command, args []string) error {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := viz.ChartOptions{
		Height:  cfg.Chart.Height,
		Width:   cfg.Chart.Width,
		Color:   viz.GetTheme(cfg.Theme).Curve,
		Caption: viz.DefaultCaption,
	}
	if cmd.Flags().Changed("height") {
		opts.Height = chartHeight
	}
	if cmd.Flags().Changed("width") {
		opts.Width = chartWidth
	}
	if noColor {
		opts.Color = asciigraph.Default
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "target: %.1f°C  heat curve: %.2f\n\n", cfg.TargetTemp, cfg.HeatCurve)
	fmt.Fprintln(out, viz.Chart(series.Build(cfg.TargetTemp, cfg.HeatCurve), opts))

	if withTable {
		fmt.Fprintln(out)
		return writeTable(out, series.BuildTable(cfg.TargetTemp, cfg.HeatCurve))
	}
	return nil
}

func calcFlow(cmd *cobra.Command, args []string) error {
	outsides := make([]float64, 0, len(args)+len(atTemps))
	for _, arg := range args {
		outside, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid outside temperature %q: %w", arg, err)
		}
		outsides = append(outsides, outside)
	}
	outsides = append(outsides, atTemps...)
	if len(outsides) == 0 {
		return fmt.Errorf("no outside temperature given (positional or --at)")
	}

	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	p := cfg.Params()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T_OUT\tT_FLOW")
	for _, outside := range outsides {
		if outside >= p.TargetTemp {
			log.Debugw("outside at or above setpoint, flow equals setpoint", "outside_temp", outside)
		}
		fmt.Fprintf(w, "%g\t%.2f\n", outside, p.FlowTemp(outside))
	}
	return w.Flush()
}

func exportCurve(cmd *cobra.Command, args []string) (err error) {
	cfg, log, err := resolve(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	// pick the writer before touching --out so a bad format leaves the file alone
	data := export.NewExportData(cfg.Params())
	var write func(io.Writer) error
	switch format {
	case "csv":
		write = func(w io.Writer) error { return export.WriteSeriesCSV(w, data.Series) }
	case "table-csv":
		write = func(w io.Writer) error { return export.WriteTableCSV(w, data.Table) }
	case "json":
		write = func(w io.Writer) error { return export.WriteJSON(w, data) }
	case "svg":
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, export.SeriesToSVG(data.Series, svgW, svgH, stroke)+"\n")
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (available: csv, table-csv, json, svg)", format)
	}

	if outFile == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	log.Infow("export written", "format", format, "path", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tT_SET\tHC\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%s\n", name, p.TargetTemp, p.HeatCurve, p.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

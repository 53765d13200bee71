package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/twoslit/internal/analysis"
	"github.com/san-kum/twoslit/internal/config"
	"github.com/san-kum/twoslit/internal/export"
	"github.com/san-kum/twoslit/internal/logging"
	"github.com/san-kum/twoslit/internal/optics"
	"github.com/san-kum/twoslit/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	slitMM     float64
	distanceM  float64
	lambdaNM   float64
	bandNM     float64
	verbose    bool
	logFile    string
	// plot
	plotWidth  int
	plotHeight int
	// export
	format  string
	outPath string
	// sweep
	maxBandNM  float64
	sweepSteps int

	logger = zap.NewNop()
)

// main registers the commands and flags and runs the interactive explorer
// when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "twoslit",
		Short:         "young's double slit interference explorer",
		SilenceUsage:  true,
		RunE:          runUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if isInteractive(cmd) || logFile != "" {
				logger, err = logging.NewFile(logFile, verbose)
			} else {
				logger, err = logging.New(verbose)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use a named light source preset")
	flags.Float64Var(&slitMM, "d", config.DefaultSlitSeparation, "slit separation (mm)")
	flags.Float64Var(&distanceM, "L", config.DefaultScreenDistance, "screen distance (m)")
	flags.Float64Var(&lambdaNM, "lambda", config.DefaultWavelength, "center wavelength (nm)")
	flags.Float64Var(&bandNM, "bandwidth", config.DefaultBandwidth, "source bandwidth (nm)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "interactive slider view (default)",
		RunE:  runUI,
	}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "print fringe spacing, visibility and bright fringes",
		RunE:  runCalc,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the intensity curve",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the pattern as csv, json or svg",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json, svg")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "peak and visibility across source bandwidths",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&maxBandNM, "max-bandwidth", 50, "largest bandwidth (nm)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of bandwidths")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list light source presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tD (mm)\tL (m)\tλ (nm)\tΔλ (nm)\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.0f\t%.1f\t%s\n",
					name, p.SlitSeparation, p.ScreenDistance, p.Wavelength, p.Bandwidth, p.Description)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	rootCmd.AddCommand(uiCmd, calcCmd, plotCmd, exportCmd, sweepCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "ui" || !cmd.HasParent()
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var o config.Overrides
	if cmd.Flags().Changed("d") {
		o.SlitSeparation = &slitMM
	}
	if cmd.Flags().Changed("L") {
		o.ScreenDistance = &distanceM
	}
	if cmd.Flags().Changed("lambda") {
		o.Wavelength = &lambdaNM
	}
	if cmd.Flags().Changed("bandwidth") {
		o.Bandwidth = &bandNM
	}

	cfg, err := config.Resolve(preset, configFile, o)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded",
		zap.String("preset", preset),
		zap.String("config", configFile),
		zap.Float64("slit_separation_mm", cfg.SlitSeparation.Value),
		zap.Float64("screen_distance_m", cfg.ScreenDistance.Value),
		zap.Float64("wavelength_nm", cfg.Wavelength.Value),
		zap.Float64("bandwidth_nm", cfg.Bandwidth.Value),
	)
	return cfg, nil
}

func loadPattern(cmd *cobra.Command) (*config.Config, optics.Pattern, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, optics.Pattern{}, err
	}
	p := cfg.Params().Calculate()
	logger.Debug("pattern calculated",
		zap.Float64("fringe_spacing", p.FringeSpacing),
		zap.Int("max_order", p.MaxOrder),
		zap.Int("fringes", len(p.Fringes)),
	)
	return cfg, p, nil
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting interactive view")
	return viz.Run(cfg, logger)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadPattern(cmd)
	if err != nil {
		return err
	}
	params := p.Params

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "slit separation\t%.3f mm\n", params.SlitSeparation*1e3)
	fmt.Fprintf(w, "screen distance\t%.3f m\n", params.ScreenDistance)
	fmt.Fprintf(w, "wavelength\t%.1f nm\n", params.Wavelength*1e9)
	fmt.Fprintf(w, "bandwidth\t%.1f nm\n", params.Bandwidth*1e9)
	fmt.Fprintln(w, "\t")
	fmt.Fprintf(w, "fringe spacing\t%.4f mm\n", p.FringeSpacing*1e3)
	if measured := analysis.MeasuredSpacing(p); measured != 0 {
		fmt.Fprintf(w, "measured spacing\t%.4f mm\n", measured*1e3)
	} else {
		fmt.Fprintln(w, "measured spacing\tunresolved")
	}
	fmt.Fprintf(w, "monochromaticity\t%.6f\n", optics.Monochromaticity(params.Bandwidth, params.Wavelength))
	fmt.Fprintf(w, "peak intensity\t%.4f\n", p.Peak())
	fmt.Fprintf(w, "center intensity\t%.4f\n", optics.IntensityAt(params, 0))
	fmt.Fprintf(w, "visibility\t%.4f\n", analysis.Visibility(p))
	fmt.Fprintf(w, "max order\t%d\n", p.MaxOrder)
	fmt.Fprintf(w, "bright fringes\t%d\n", len(p.Fringes))
	if err := w.Flush(); err != nil {
		return err
	}

	labels := p.Labels(cfg.MaxLabels)
	if len(labels) == 0 {
		fmt.Println("\nno bright fringes on screen")
		return nil
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tPOSITION\tINTENSITY")
	for _, f := range labels {
		fmt.Fprintf(w, "%s\t%+.4f mm\t%.4f\n", export.OrderLabel(f.Order), f.Position*1e3, optics.IntensityAt(params, f.Position))
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, p, err := loadPattern(cmd)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("intensity, x from -%.0f to +%.0f mm, Δx = %.3f mm",
		optics.ScreenHalfWidth*1e3, optics.ScreenHalfWidth*1e3, p.FringeSpacing*1e3)
	graph := asciigraph.Plot(p.Intensity,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(optics.PeakIntensity),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadPattern(cmd)
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.Write(os.Stdout, format, p, cfg.MaxLabels)
	}
	if err := export.WriteFile(outPath, format, p, cfg.MaxLabels); err != nil {
		return err
	}

	logger.Info("pattern exported", zap.String("format", format), zap.String("path", outPath))
	fmt.Fprintf(os.Stderr, "exported %s to %s\n", format, outPath)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	points, err := analysis.SweepBandwidth(cmd.Context(), cfg.Params(), maxBandNM*1e-9, sweepSteps)
	if err != nil {
		return err
	}
	logger.Debug("sweep finished", zap.Int("steps", len(points)), zap.Float64("max_bandwidth_nm", maxBandNM))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Δλ (nm)\tPEAK\tVISIBILITY\tΔx (mm)")
	visibility := make([]float64, len(points))
	for i, pt := range points {
		fmt.Fprintf(w, "%.2f\t%.4f\t%.4f\t%.4f\n", pt.Bandwidth*1e9, pt.Peak, pt.Visibility, pt.FringeSpacing*1e3)
		visibility[i] = pt.Visibility
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(visibility,
		asciigraph.Height(8),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("visibility vs bandwidth"),
	))
	return nil
}

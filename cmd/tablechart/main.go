// Package main provides the CLI entry point for tablechart.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tablechart-go/internal/config"
	"github.com/ukaji3/tablechart-go/internal/logging"
	"github.com/ukaji3/tablechart-go/pkg/tablechart"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/output"
)

type cliOptions struct {
	kind        string
	stock       bool
	yAxes       []int
	optionsFile string
	format      string
	outputPath  string
	pretty      bool
	debug       bool
	logLevel    string

	sheet            string
	rangeRef         string
	indexColumn      string
	useWorkbookChart bool

	title    string
	subtitle string
	xLabel   string
	yLabel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "tablechart [input]",
		Short: "Build Highcharts charts from tables",
		Long: `tablechart reads a table from a CSV, Excel or Parquet file and writes
a Highcharts configuration, a standalone HTML page or a static preview.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.kind, "kind", "line", "Chart kind, or a comma list with one kind per column (line, bar, column, line_w_col)")
	rootCmd.Flags().BoolVar(&opts.stock, "stock", false, "Use the stock chart constructor")
	rootCmd.Flags().IntSliceVar(&opts.yAxes, "y-axes", nil, "1-based y axis per column, e.g. 1,1,2")
	rootCmd.Flags().StringVar(&opts.optionsFile, "options", "", "YAML option file")
	rootCmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json, html, png, svg")
	rootCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Print the resolved settings to stderr")
	rootCmd.Flags().StringVar(&opts.sheet, "sheet", "", "Workbook sheet (default: first sheet)")
	rootCmd.Flags().StringVar(&opts.rangeRef, "range", "", "Workbook range or defined name (default: detected)")
	rootCmd.Flags().StringVar(&opts.indexColumn, "index-column", "", "Index column header (default: first column)")
	rootCmd.Flags().BoolVar(&opts.useWorkbookChart, "use-workbook-chart", false, "Seed kind, title and y axis from the first chart on the sheet")
	rootCmd.Flags().StringVar(&opts.title, "title", "", "Chart title")
	rootCmd.Flags().StringVar(&opts.subtitle, "subtitle", "", "Chart subtitle")
	rootCmd.Flags().StringVar(&opts.xLabel, "xlabel", "", "x axis label")
	rootCmd.Flags().StringVar(&opts.yLabel, "ylabel", "", "y axis label")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: TABLECHART_LOG_LEVEL)")

	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *cliOptions) error {
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	format := strings.ToLower(opts.format)
	switch format {
	case "json", "html", "png", "svg":
	default:
		return fmt.Errorf("invalid format: %s (must be json, html, png, or svg)", opts.format)
	}

	p := tablechart.DefaultPlotOptions()
	p.Logger = logger
	p.Stock = opts.stock
	p.YAxes = opts.yAxes
	p.Debug = opts.debug
	p.DebugWriter = cmd.ErrOrStderr()

	if opts.optionsFile != "" {
		p.Options, err = config.LoadOptions(opts.optionsFile)
		if err != nil {
			return err
		}
	}

	result, err := tablechart.Load(inputPath, tablechart.LoadOptions{
		Sheet:            opts.sheet,
		Range:            opts.rangeRef,
		IndexColumn:      opts.indexColumn,
		UseWorkbookChart: opts.useWorkbookChart,
	})
	if err != nil {
		return fmt.Errorf("loading failed: %w", err)
	}
	if result.Hint != nil {
		logger.Debug("using workbook chart", "name", result.Hint.Name, "type", result.Hint.ChartType)
		tablechart.ApplyHint(result.Hint, &p)
	}

	if err := applyFlagOverrides(cmd, opts, &p); err != nil {
		return err
	}

	chart, err := tablechart.Plot(result.Table, p)
	if err != nil {
		return fmt.Errorf("plotting failed: %w", err)
	}
	if chart == nil {
		return nil
	}

	data, err := render(chart, format, opts.pretty, cfg.HTMLOptions())
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if opts.outputPath != "" {
		if err := os.WriteFile(opts.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("chart written", "path", opts.outputPath, "format", format, "series", len(chart.Series))
		return nil
	}
	return writeStdout(cmd.OutOrStdout(), data, format)
}

// applyFlagOverrides applies flags the user set explicitly. They win over
// the option file and the workbook chart.
func applyFlagOverrides(cmd *cobra.Command, opts *cliOptions, p *tablechart.PlotOptions) error {
	flags := cmd.Flags()
	if flags.Changed("kind") {
		kind, err := tablechart.ParseKindSpec(opts.kind)
		if err != nil {
			return err
		}
		p.Kind = kind
	}
	if flags.Changed("title") {
		p.Options.Title = opts.title
	}
	if flags.Changed("subtitle") {
		p.Options.Subtitle = opts.subtitle
	}
	if flags.Changed("xlabel") {
		p.Options.XLabel = opts.xLabel
	}
	if flags.Changed("ylabel") {
		p.Options.YLabel = opts.yLabel
	}
	return nil
}

func render(chart *models.Chart, format string, pretty bool, htmlOpts output.HTMLOptions) ([]byte, error) {
	switch format {
	case "json":
		return output.ToJSON(chart, pretty)
	case "html":
		return output.ToHTML(chart, htmlOpts)
	default:
		var buf bytes.Buffer
		if err := output.RenderPreview(chart, format, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func writeStdout(w io.Writer, data []byte, format string) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if format == "json" {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/led-ufc/carcara/internal/server"
)

var log = logrus.New()

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "carcara",
		Short: "Spec-driven chart rendering and polygon labeling toolkit",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(labelCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Render a chart project to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (overrides the spec's output.file)")
	return cmd
}

func labelCmd() *cobra.Command {
	var wkt string
	var precision float64
	var out string

	cmd := &cobra.Command{
		Use:   "label [project-path]",
		Short: "Compute interior label points for polygon geometries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if wkt != "" {
				return runLabelWKT(wkt, precision, out)
			}
			if len(args) == 0 {
				return errMissingInput
			}
			return runLabel(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&wkt, "wkt", "w", "", "label a single WKT geometry instead of a project")
	cmd.Flags().Float64VarP(&precision, "precision", "p", 0.01, "grid search precision for --wkt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write an annotated SVG to this file")
	return cmd
}

func convertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [geometry]",
		Short: "Convert a geometry between WKT and GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(args[0], to)
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "geojson", "target format: geojson or wkt")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a chart spec without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func queryCmd() *cobra.Command {
	var dsn string
	var table bool

	cmd := &cobra.Command{
		Use:   "query [sql]",
		Short: "Run SQL against PostgreSQL and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runQuery(dsn, args[0], table)
		},
	}

	cmd.Flags().StringVarP(&dsn, "dsn", "d", "", "connection string (default: PG_* environment)")
	cmd.Flags().BoolVarP(&table, "table", "T", false, "print all columns as a table")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local preview server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port, log)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

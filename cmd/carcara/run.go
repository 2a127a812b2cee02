package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/led-ufc/carcara/internal/build"
	"github.com/led-ufc/carcara/internal/dbquery"
	"github.com/led-ufc/carcara/pkg/geoio"
	"github.com/led-ufc/carcara/pkg/render"
	"github.com/led-ufc/carcara/pkg/spec"
	"github.com/led-ufc/carcara/pkg/validation"
)

var errMissingInput = errors.New("provide a project path or --wkt")

// loadAndValidate loads the spec and runs full validation.
func loadAndValidate(projectPath string) (*spec.ChartSpec, *validation.Report, error) {
	chartSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.Validate(chartSpec)
	return chartSpec, report, nil
}

func runRender(projectPath, output string) error {
	chartSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	sc, err := build.Scene(chartSpec)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	if chartSpec.Output.Padding > 0 {
		opts.Padding = chartSpec.Output.Padding
	}
	if chartSpec.Output.Background != "" {
		opts.Background = chartSpec.Output.Background
	}

	if output == "" {
		output = chartSpec.Output.File
		if output == "" {
			output = "chart.svg"
		}
		// Spec-relative paths land next to chart.yaml.
		if !filepath.IsAbs(output) {
			output = filepath.Join(projectPath, output)
		}
	}

	if err := render.SaveScene(output, sc, opts); err != nil {
		return err
	}
	log.WithField("file", output).Info("chart written")
	return nil
}

func runLabel(projectPath, out string) error {
	chartSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	results, err := build.LabelResults(chartSpec)
	if err != nil {
		return err
	}
	if err := writeLabelSVG(results, out); err != nil {
		return err
	}
	return printJSON(results)
}

func runLabelWKT(wkt string, precision float64, out string) error {
	g, err := geoio.ParseWKT(wkt)
	if err != nil {
		return fmt.Errorf("parsing geometry: %w", err)
	}
	results, err := geoio.InteriorPoints(g, precision)
	if err != nil {
		return err
	}
	if err := writeLabelSVG(results, out); err != nil {
		return err
	}
	return printJSON(results)
}

func writeLabelSVG(results []geoio.LabelResult, out string) error {
	if out == "" {
		return nil
	}
	sc := render.LabelScene(results, 2)
	if err := render.SaveScene(out, sc, render.DefaultOptions()); err != nil {
		return err
	}
	log.WithField("file", out).Info("labels written")
	return nil
}

func runConvert(geometry, to string) error {
	switch to {
	case "geojson":
		data, err := geoio.WKTToGeoJSON(geometry)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "wkt":
		wkt, err := geoio.GeoJSONToWKT([]byte(geometry))
		if err != nil {
			return err
		}
		fmt.Println(wkt)
	default:
		return fmt.Errorf("unknown target format %q (want geojson or wkt)", to)
	}
	return nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runQuery(dsn, query string, asTable bool) error {
	_ = godotenv.Load(".env")

	var client *dbquery.Client
	var err error
	if dsn != "" {
		client, err = dbquery.Open(dsn, log)
	} else {
		client, err = dbquery.OpenFromEnv(log)
	}
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	if asTable {
		table, err := client.QueryTable(ctx, query)
		if err != nil {
			return err
		}
		printTable(table)
		return nil
	}

	values, err := client.RunQuery(ctx, query)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Println(v)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

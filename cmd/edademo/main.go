// Command edademo runs the analysis helpers over a small in-memory dataset
// and prints the results.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/magpierre/dsb-eda/config"
	"github.com/magpierre/dsb-eda/datatable"
	"github.com/magpierre/dsb-eda/eda"
	"github.com/magpierre/dsb-eda/internal/logging"
)

const sample = `[
	{"age": 34, "city": "Oslo", "member": true},
	{"age": null, "city": "Bergen", "member": false, "score": 7.5},
	{"age": 51, "city": null, "member": true, "score": 6.1}
]`

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "edademo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(sample), &rows); err != nil {
		return fmt.Errorf("failed to parse sample: %w", err)
	}
	stamp := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	for i, row := range rows {
		row["seen"] = stamp.Add(time.Duration(i) * 24 * time.Hour)
	}

	ds, err := datatable.FromMaps(nil, rows)
	if err != nil {
		return fmt.Errorf("failed to build dataset: %w", err)
	}
	defer ds.Release()

	report, err := eda.GroupByDataTypes(ds)
	if err != nil {
		return err
	}
	table, err := report.Table(nil)
	if err != nil {
		return err
	}
	defer table.Release()

	fmt.Println("Column types:")
	if err := printDataset(table); err != nil {
		return err
	}

	analyzer := eda.NewAnalyzer(logger, eda.WithIndicatorSuffix(cfg.Analysis.IndicatorSuffix))
	augmented, err := analyzer.AddMissingIndicators(logging.EnsureRunID(context.Background()), ds)
	if err != nil {
		return err
	}
	defer augmented.Release()

	fmt.Println()
	fmt.Println("With missing-value indicators:")
	return printDataset(augmented)
}

func printDataset(ds *datatable.Dataset) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(ds.ColumnNames(), "\t"))

	for r := 0; r < ds.RowCount(); r++ {
		row, err := ds.Row(r)
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for i, v := range row {
			if v.IsNull {
				cells[i] = "<NA>"
			} else {
				cells[i] = v.Formatted
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

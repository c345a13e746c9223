package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/growth"
	"github.com/arloliu/growth/chart"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/fileio"
	"github.com/arloliu/growth/reference"
)

type chartOutput struct {
	Birth  string         `json:"birth"`
	Sex    format.Sex     `json:"sex"`
	Series []seriesOutput `json:"series"`
}

type seriesOutput struct {
	Type        format.MeasurementType `json:"type"`
	DisplayUnit string                 `json:"display_unit"`
	Fingerprint string                 `json:"fingerprint"`
	Annotated   []chart.Annotated      `json:"annotated"`
	Points      []chart.Point          `json:"points"`
	Dropped     []chart.Annotated      `json:"dropped,omitempty"`
}

func chartCmd() *cobra.Command {
	var (
		tablePath   string
		measPath    string
		birthStr    string
		sexName     string
		typeName    string
		displayUnit string
		maxAge      float64
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Build chart series for a child's measurements",
		Long: `Annotates measurements with their age and percentile and merges them with
the reference percentile curves into chart series, written as JSON.

With --type only that measurement type is charted, using --table or the
configured table. Without --type every type present in the measurements is
charted with the tables from the config file.

Measurements file:
  [{"date": "2024-07-15", "type": "weight", "value": 16.2, "unit": "LB"}]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := parseDate(birthStr)
			if err != nil {
				return fmt.Errorf("--birth: %w", err)
			}

			if sexName == "" {
				sexName = cfg.Sex
			}
			sex, err := format.ParseSex(sexName)
			if err != nil {
				return fmt.Errorf("--sex %q: %w", sexName, err)
			}

			records, err := loadMeasurements(measPath)
			if err != nil {
				return err
			}

			annotator, err := chart.NewAnnotator(chart.WithAgeBuffer(cfg.Chart.AgeBuffer))
			if err != nil {
				return err
			}

			req := growth.Request{
				Birth:        birth,
				Sex:          sex,
				DisplayUnits: cfg.DisplayUnits(),
				MaxAgeMonths: cfg.Chart.MaxAgeMonths,
				Annotator:    annotator,
			}
			if maxAge > 0 {
				req.MaxAgeMonths = maxAge
			}

			paths := make(map[format.MeasurementType]string)
			if typeName != "" {
				t, err := format.ParseMeasurementType(typeName)
				if err != nil {
					return fmt.Errorf("--type %q: %w", typeName, err)
				}
				paths[t] = cfg.TablePath(t)
				if tablePath != "" {
					paths[t] = tablePath
				}
				if displayUnit != "" {
					req.DisplayUnits[t] = displayUnit
				}
				for _, r := range records {
					if r.Type == t {
						req.Records = append(req.Records, r)
					}
				}
			} else {
				if tablePath != "" || displayUnit != "" {
					return errors.New("--table and --display-unit require --type")
				}
				req.Records = records
				for _, t := range req.Types() {
					paths[t] = cfg.TablePath(t)
				}
			}

			for _, r := range req.Records {
				warnUnknownUnit(r.Unit, r.Type)
			}

			catalog, err := buildCatalog(paths)
			if err != nil {
				return err
			}

			series, err := growth.ChartAll(cmd.Context(), catalog, req)
			if err != nil {
				return err
			}

			out := chartOutput{Birth: birth.Format("2006-01-02"), Sex: sex}
			for _, t := range req.Types() {
				s := series[t]
				dropped := chart.Dropped(s.Annotated)
				for _, d := range dropped {
					logger.Warn("measurement shares a half-month bucket and is not charted",
						zap.String("type", t.String()),
						zap.Float64("age_months", d.AgeMonths),
						zap.Time("date", d.Date))
				}
				out.Series = append(out.Series, seriesOutput{
					Type:        t,
					DisplayUnit: req.DisplayUnits[t],
					Fingerprint: fmt.Sprintf("%016x", s.Fingerprint()),
					Annotated:   s.Annotated,
					Points:      s.Points,
					Dropped:     dropped,
				})
				logger.Info("series built",
					zap.String("type", t.String()),
					zap.Int("measurements", len(s.Annotated)),
					zap.Int("points", len(s.Points)))
			}

			if outPath == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(out)
			}

			return fileio.WriteJSON(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "reference table (CSV or packed blob) for --type")
	cmd.Flags().StringVar(&measPath, "measurements", "", "measurements JSON file")
	cmd.Flags().StringVar(&birthStr, "birth", "", "birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&sexName, "sex", "", "male or female (default from config)")
	cmd.Flags().StringVar(&typeName, "type", "", "chart a single measurement type")
	cmd.Flags().StringVar(&displayUnit, "display-unit", "", "display unit for --type")
	cmd.Flags().Float64Var(&maxAge, "max-age", 0, "chart age limit in months (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("measurements")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

// buildCatalog loads one reference table per measurement type.
func buildCatalog(paths map[format.MeasurementType]string) (*reference.Catalog, error) {
	tables := make([]reference.Table, 0, len(paths))
	for _, t := range format.MeasurementTypes {
		path, ok := paths[t]
		if !ok {
			continue
		}
		if path == "" {
			return nil, fmt.Errorf("no reference table configured for %s", t)
		}

		table, err := loadTable(path, t)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return reference.NewCatalog(tables...)
}

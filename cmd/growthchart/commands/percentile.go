package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/lms"
	"github.com/arloliu/growth/units"
)

func percentileCmd() *cobra.Command {
	var (
		value    float64
		unit     string
		typeName string
		l, m, s  float64
	)

	cmd := &cobra.Command{
		Use:   "percentile",
		Short: "Compute the percentile of one value under LMS parameters",
		Long: `Computes the CDC percentile of a measurement from the L, M and S parameters
of a reference row. The value is converted to the canonical unit of the
measurement type (KG or CM) first.

Example:
  growthchart percentile --type weight --value 16.2 --unit LB --l -0.1600954 --m 7.934113 --s 0.1089`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := format.ParseMeasurementType(typeName)
			if err != nil {
				return fmt.Errorf("--type %q: %w", typeName, err)
			}
			warnUnknownUnit(unit, t)

			canonical := units.ToCanonical(value, unit, t)
			p := lms.Percentile(canonical, l, m, s)
			logger.Debug("percentile computed",
				zap.Float64("canonical", canonical),
				zap.Float64("z", lms.ZScore(canonical, l, m, s)),
				zap.Float64("percentile", p))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", p)

			return err
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "measurement value")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of --value (KG, LB, OZ, G, CM, IN); default canonical")
	cmd.Flags().StringVar(&typeName, "type", "weight", "measurement type: weight, length, head_circumference")
	cmd.Flags().Float64Var(&l, "l", 1, "Box-Cox power L")
	cmd.Flags().Float64Var(&m, "m", 0, "median M")
	cmd.Flags().Float64Var(&s, "s", 0, "coefficient of variation S")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("m")
	_ = cmd.MarkFlagRequired("s")

	return cmd
}

// warnUnknownUnit logs a unit that will pass through unconverted.
func warnUnknownUnit(unit string, t format.MeasurementType) {
	if unit == "" || units.Known(unit, t) {
		return
	}
	logger.Warn("unknown unit, value treated as canonical",
		zap.String("unit", unit),
		zap.String("type", t.String()),
		zap.String("canonical", t.CanonicalUnit()))
}

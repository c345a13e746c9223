package commands

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/growth/compress"
	"github.com/arloliu/growth/reference"
)

// medianTolerance is the relative tolerance of the P50 == M check.
const medianTolerance = 1e-6

func inspectCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "inspect <table-blob>",
		Short: "Print the header and contents summary of a table blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			h, err := reference.ParseHeader(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			table, err := reference.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			w := cmd.OutOrStdout()
			printHeader(w, h)
			for _, sex := range table.Sexes() {
				rows := table.ForSex(sex)
				fmt.Fprintf(w, "%-12s %d rows, ages %g..%g\n", sex.String()+":", len(rows), rows[0].AgeMonths, rows[len(rows)-1].AgeMonths)
			}

			if !verify {
				return nil
			}

			var mismatched int
			for _, r := range table.Rows {
				if !r.Usable() || math.Abs(r.P50-r.M) > medianTolerance*math.Max(1, math.Abs(r.M)) {
					mismatched++
					logger.Warn("reference row fails the median check",
						zap.String("sex", r.Sex.String()),
						zap.Float64("age_months", r.AgeMonths),
						zap.Float64("m", r.M),
						zap.Float64("p50", r.P50))
				}
			}
			if mismatched > 0 {
				return fmt.Errorf("%s: %d of %d rows fail the median check", path, mismatched, len(table.Rows))
			}
			fmt.Fprintln(w, "verify:      ok")

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check that P50 equals M on every row")

	return cmd
}

func printHeader(w io.Writer, h reference.Header) {
	endian := "little"
	if h.IsBigEndian() {
		endian = "big"
	}

	fmt.Fprintf(w, "type:        %s\n", h.Type)
	fmt.Fprintf(w, "compression: %s\n", h.Compression)
	fmt.Fprintf(w, "endian:      %s\n", endian)
	fmt.Fprintf(w, "rows:        %d\n", h.RowCount)
	fmt.Fprintf(w, "payload:     %d bytes (raw %d, ratio %.2f)\n", h.PayloadSize, h.RawSize, compress.Ratio(int(h.RawSize), int(h.PayloadSize)))
	fmt.Fprintf(w, "checksum:    %016x\n", h.Checksum)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/growth/compress"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/fileio"
	"github.com/arloliu/growth/reference"
)

func packCmd() *cobra.Command {
	var (
		csvPath     string
		typeName    string
		outPath     string
		compression string
		bigEndian   bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a CDC reference CSV into a table blob",
		Long: `Converts a CDC reference CSV (Sex,Agemos,L,M,S,P3..P97) into a compact,
checksummed table blob that chart and inspect can read.

Example:
  growthchart pack --csv wtageinf.csv --type weight --out wtageinf.gct --compression zstd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := format.ParseMeasurementType(typeName)
			if err != nil {
				return fmt.Errorf("--type %q: %w", typeName, err)
			}

			if compression == "" {
				compression = cfg.Compression
			}
			ct, err := format.ParseCompressionType(compression)
			if err != nil {
				return fmt.Errorf("--compression %q: %w", compression, err)
			}

			table, err := loadTable(csvPath, t)
			if err != nil {
				return err
			}

			opts := []reference.EncodeOption{reference.WithCompression(ct)}
			if bigEndian {
				opts = append(opts, reference.WithBigEndian())
			}
			data, err := reference.Encode(table, opts...)
			if err != nil {
				return fmt.Errorf("failed to pack %s: %w", csvPath, err)
			}

			if err := fileio.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			raw := len(table.Rows) * reference.RowSize
			logger.Info("table packed",
				zap.String("type", t.String()),
				zap.String("compression", ct.String()),
				zap.Int("rows", len(table.Rows)),
				zap.Int("raw_bytes", raw),
				zap.Int("blob_bytes", len(data)),
				zap.Float64("ratio", compress.Ratio(raw, len(data)-reference.HeaderSize)))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d bytes\n", outPath, len(table.Rows), len(data))

			return err
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "reference CSV file")
	cmd.Flags().StringVar(&typeName, "type", "", "measurement type of the table")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output blob file")
	cmd.Flags().StringVar(&compression, "compression", "", "none, zstd, s2 or lz4 (default from config)")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "write a big-endian blob")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

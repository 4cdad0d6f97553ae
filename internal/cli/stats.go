package cli

import (
	"math"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/field"
)

// stats is the output of the stats command. Absent extremes and the
// average of an empty selection are encoded as null.
type stats struct {
	Field string   `json:"field"`
	Count int      `json:"count"`
	Sum   float64  `json:"sum"`
	Avg   *float64 `json:"avg"`
	Max   *float64 `json:"max"`
	Min   *float64 `json:"min"`
}

func newStatsCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate a numeric field over the selected records",
		Long: `stats prints count, sum, avg, max and min of the field at --field.

Records lacking the field, or holding a non-numeric value there, are left out
of sum, max and min but still count towards the average's denominator.`,
		Example: `  collq stats -i orders.json --field total --where status=paid`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.selectRecords(cmd)
			if err != nil {
				return err
			}
			sel := field.Number(path)
			out := stats{
				Field: path,
				Count: records.Count(),
				Sum:   records.Sum(sel),
			}
			if avg := records.Avg(sel); !math.IsNaN(avg) {
				out.Avg = &avg
			}
			if hi, ok := records.Max(sel); ok {
				out.Max = &hi
			}
			if lo, ok := records.Min(sel); ok {
				out.Min = &lo
			}
			if out.Max == nil {
				a.log.Warn(cmd.Context(), "no record holds a numeric value",
					logging.Field("field", path))
			}
			return a.printJSON(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&path, "field", "f", "", "dot path of the numeric field")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

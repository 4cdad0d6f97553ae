package cli

import (
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/field"
)

func newFirstCommand(a *app) *cobra.Command {
	var (
		match string
		last  bool
	)
	cmd := &cobra.Command{
		Use:   "first",
		Short: "Print the first record matching path=value",
		Long: `first prints the first selected record whose field equals the given value,
or the last one with --last. When nothing matches it prints null.`,
		Example: `  collq first -i people.json --match name=Ada
  collq first -i people.json --order-by age --match team=core --last`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, value, err := field.ParseMatch(match)
			if err != nil {
				return err
			}
			records, err := a.selectRecords(cmd)
			if err != nil {
				return err
			}
			find := records.FirstOrDefault
			if last {
				find = records.LastOrDefault
			}
			record, ok := find(field.Equals(path, value))
			if !ok {
				a.log.Info(cmd.Context(), "no record matches",
					logging.Field("path", path),
					logging.Field("value", value))
				return a.printJSON(cmd, nil)
			}
			return a.printJSON(cmd, record)
		},
	}
	cmd.Flags().StringVarP(&match, "match", "m", "", "path=value the record must satisfy")
	cmd.Flags().BoolVar(&last, "last", false, "return the last match instead of the first")
	_ = cmd.MarkFlagRequired("match")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-enumerable/field"
)

// shape holds the list command's output projection.
type shape struct {
	selects []string
	omits   []string
	flat    bool
}

func (s shape) isZero() bool {
	return len(s.selects) == 0 && len(s.omits) == 0 && !s.flat
}

// apply reshapes one record. With selects, only those paths are kept, at
// the same nesting; omitted paths are then dropped; flat collapses nested
// records into dot-path keys.
func (s shape) apply(r field.Record) field.Record {
	out := r
	if len(s.selects) > 0 {
		out = make(field.Record, len(s.selects))
		for _, path := range s.selects {
			if v, ok := field.Get(r, path); ok {
				field.Set(out, path, v)
			}
		}
	}
	for _, path := range s.omits {
		field.Forget(out, path)
	}
	if s.flat {
		out = field.Dot(out)
	}
	return out
}

func newListCommand(a *app) *cobra.Command {
	var sh shape
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the selected records as a JSON array",
		Example: `  collq list -i people.json --where team=core --order-by age --desc
  collq list -i people.json --select name --select address.city --flat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.selectRecords(cmd)
			if err != nil {
				return err
			}
			if !sh.isZero() {
				records.ForEachAlter(func(r field.Record, _ int) field.Record { return sh.apply(r) })
			}
			out := records.ToArray()
			if out == nil {
				out = []field.Record{}
			}
			return a.printJSON(cmd, out)
		},
	}
	cmd.Flags().StringArrayVarP(&sh.selects, "select", "s", nil, "keep only this dot path (repeatable)")
	cmd.Flags().StringArrayVar(&sh.omits, "omit", nil, "drop this dot path (repeatable)")
	cmd.Flags().BoolVar(&sh.flat, "flat", false, "flatten nested records into dot-path keys")
	return cmd
}

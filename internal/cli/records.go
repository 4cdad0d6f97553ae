package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/collections"
	"github.com/hasbyte1/go-enumerable/field"
)

// selectRecords loads the input and applies the global --where and
// --order-by flags.
func (a *app) selectRecords(cmd *cobra.Command) (*collections.List[field.Record], error) {
	in, err := a.input(cmd)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	// Numbers stay json.Number so ids above 2^53 keep their exact digits.
	dec := json.NewDecoder(in)
	dec.UseNumber()
	var items []field.Record
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	records := collections.NewList(items)
	a.log.Debug(cmd.Context(), "records loaded", logging.Field("count", records.Count()))

	for _, expr := range a.where {
		path, value, err := field.ParseMatch(expr)
		if err != nil {
			return nil, err
		}
		records = records.Where(field.Equals(path, value))
	}

	if a.orderBy != "" {
		dir := collections.Ascending
		if a.desc {
			dir = collections.Descending
		}
		records.OrderBy(field.Value(a.orderBy), dir)
	}

	a.log.Debug(cmd.Context(), "records selected",
		logging.Field("count", records.Count()),
		logging.Field("order_by", a.orderBy))
	return records, nil
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.cfg.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

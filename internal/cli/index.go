package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/hasbyte1/go-enumerable/collections"
	"github.com/hasbyte1/go-enumerable/field"
	"github.com/hasbyte1/go-enumerable/internal/config"
)

// indexEntry is one key/value pair of the index command's output.
type indexEntry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func newIndexCommand(a *app) *cobra.Command {
	var keyPath, valuePath string
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index the selected records by a key field",
		Long: `index builds an insertion-ordered dictionary from the selected records,
keyed by the field at --key. Keys must be unique: a repeated key is skipped
with a warning, or fails the command when on_duplicate is "fail".

Without --value the keys are printed; with --value, key/value pairs.`,
		Example: `  collq index -i people.json --key email
  collq index -i people.json --key id --value name --on-duplicate fail`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.selectRecords(cmd)
			if err != nil {
				return err
			}
			dict, err := a.index(cmd, records, keyPath, valuePath)
			if err != nil {
				return err
			}
			if valuePath == "" {
				return a.printJSON(cmd, dict.GetKeys().ToArray())
			}
			out := collections.Convert[collections.Entry[string, any], indexEntry](dict.Entries(), func(e collections.Entry[string, any]) indexEntry {
				return indexEntry{Key: e.Key(), Value: e.Value()}
			})
			return a.printJSON(cmd, out.ToArray())
		},
	}
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "dot path of the key field")
	cmd.Flags().StringVar(&valuePath, "value", "", "dot path of the value field (default: whole record)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) index(cmd *cobra.Command, records *collections.List[field.Record], keyPath, valuePath string) (*collections.Dictionary[string, any], error) {
	var (
		ctx      = cmd.Context()
		readKey  = field.String(keyPath)
		dict     = collections.NewDictionary[string, any]()
		failFast = a.cfg.OnDuplicate == config.OnDuplicateFail
		skipped  int
	)
	for i, record := range records.ToArray() {
		if !field.Has(record, keyPath) {
			a.log.Warn(ctx, "record has no key, skipped",
				logging.Field("position", i),
				logging.Field("key_path", keyPath))
			skipped++
			continue
		}
		key, ok := readKey(record)
		if !ok {
			a.log.Warn(ctx, "record key is not a scalar, skipped",
				logging.Field("position", i),
				logging.Field("key_path", keyPath))
			skipped++
			continue
		}
		var value any = record
		if valuePath != "" {
			value, _ = field.Get(record, valuePath)
		}
		err := dict.AddItem(key, value)
		if errors.Is(err, collections.ErrDuplicateKey) && !failFast {
			a.log.Warn(ctx, "duplicate key, record skipped",
				logging.Field("position", i),
				logging.Field("key", key))
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("index: record %d: %w", i, err)
		}
	}
	a.log.Info(ctx, "index built",
		logging.Field("entries", dict.Count()),
		logging.Field("skipped", skipped))
	return dict, nil
}

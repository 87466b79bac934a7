package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/selection"
)

func loadRows(ctx context.Context, a *app, filter string) ([]catalog.Entry, []catalog.Row, error) {
	entries, err := a.store().Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return entries, catalog.BuildRows(entries, filter), nil
}

// selectKeys builds a selection from keys in argument order.
func selectKeys(rows []catalog.Row, keys []string) (selection.Set, error) {
	index := catalog.IndexRows(rows)
	set := selection.New()
	for _, key := range keys {
		key = strings.TrimSpace(key)
		row, ok := index[key]
		if !ok {
			return selection.Set{}, fmt.Errorf("%w: %q", catalog.ErrUnknownKey, key)
		}
		set = set.With(row, true)
	}
	return set, nil
}

func formatRow(row catalog.Row) string {
	line := row.SummaryLine()
	if row.Link != "" {
		line += "  " + row.Link
	}
	return line
}

func printRows(cmd *cobra.Command, rows []catalog.Row) {
	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintln(out, formatRow(row))
	}
}

func printRowsJSON(cmd *cobra.Command, rows []catalog.Row) error {
	if rows == nil {
		rows = []catalog.Row{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func plural(count int, singular, many string) string {
	if count == 1 {
		return singular
	}
	return many
}

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// clockString formats an optional timestamp as a wall-clock time.
func clockString(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("15:04")
}

// printTable renders rows with aligned columns on stdout.
func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// printAggregates renders the summary line under a list view.
func printAggregates(agg listquery.Aggregates) {
	fmt.Printf("\n%d records", agg.Total)
	if len(agg.ByStatus) > 0 {
		statuses := make([]string, 0, len(agg.ByStatus))
		for status := range agg.ByStatus {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		parts := make([]string, 0, len(statuses))
		for _, status := range statuses {
			parts = append(parts, fmt.Sprintf("%s %d (%.0f%%)", status, agg.ByStatus[status], agg.Rate(status)*100))
		}
		fmt.Printf(": %s", strings.Join(parts, ", "))
	}
	fmt.Println()
}

// sortSpec builds the engine sort from the shared --sort/--desc flags.
func sortSpec(field string, desc bool) listquery.SortSpec {
	spec := listquery.SortSpec{Field: field, Direction: listquery.Ascending}
	if desc {
		spec.Direction = listquery.Descending
	}
	return spec
}

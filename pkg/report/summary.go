package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
)

// ProductSummary totals one product column of a Table.
type ProductSummary struct {
	ID         string
	Name       string
	TotalUnits int
	Orders     int
}

// Summarize totals every product column of table, in column order.
func Summarize(table *Table) ([]ProductSummary, error) {
	out := make([]ProductSummary, len(table.Products))
	for i, prod := range table.Products {
		col := BaseColumns + i
		units := make([]int, 0, len(table.Rows))
		for _, rec := range table.Rows {
			n, err := strconv.Atoi(rec[col])
			if err != nil {
				return nil, fmt.Errorf("order %s column %q: %w", rec[0], prod.Name, err)
			}
			units = append(units, n)
		}
		out[i] = ProductSummary{
			ID:         prod.ID,
			Name:       prod.Name,
			TotalUnits: lo.Sum(units),
			Orders:     lo.CountBy(units, func(n int) bool { return n > 0 }),
		}
	}
	return out, nil
}

// PrintSummary renders summaries as a table on w.
func PrintSummary(w io.Writer, summaries []ProductSummary, orders int) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Footer: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
		}),
	)
	table.Header([]string{"Product ID", "Product", "Units", "Orders"})

	for _, s := range summaries {
		if err := table.Append([]string{
			s.ID,
			s.Name,
			humanize.Comma(int64(s.TotalUnits)),
			humanize.Comma(int64(s.Orders)),
		}); err != nil {
			return fmt.Errorf("append %s: %w", s.ID, err)
		}
	}

	total := lo.SumBy(summaries, func(s ProductSummary) int { return s.TotalUnits })
	table.Footer([]string{"", "Total", humanize.Comma(int64(total)), humanize.Comma(int64(orders))})

	return table.Render()
}

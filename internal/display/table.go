package display

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ResultRow is one directory line of the end-of-run summary.
type ResultRow struct {
	Dir    string
	Images int
	Layout string
	Output string
	Size   string
	Status string
}

var resultHeaders = table.Row{"Directory", "Images", "Layout", "Output", "Size", "Status"}

// RenderResults renders rows as a rounded table. Numeric columns are right
// aligned. It returns "" for no rows.
func RenderResults(rows []ResultRow) string {
	if len(rows) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(resultHeaders)
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Dir, r.Images, r.Layout, r.Output, r.Size, r.Status})
	}

	configs := make([]table.ColumnConfig, 0, len(resultHeaders))
	for i := range resultHeaders {
		align := text.AlignLeft
		if i == 1 || i == 4 {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

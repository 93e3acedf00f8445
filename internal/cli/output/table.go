package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders rows under header using go-pretty. Markdown mode emits a
// GitHub-flavored table; text mode a light box-drawn one.
func (r *Renderer) Table(header []string, rows [][]any) {
	tw := table.NewWriter()

	h := make(table.Row, len(header))
	for i, c := range header {
		h[i] = c
	}
	tw.AppendHeader(h)
	for _, row := range rows {
		tw.AppendRow(row)
	}

	if r.EffectiveMode() == ModeMarkdown {
		r.Println(tw.RenderMarkdown())
		return
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	if !r.isTTY {
		style.Color = table.ColorOptions{}
	} else {
		style.Color.Header = text.Colors{text.Bold}
	}
	tw.SetStyle(style)
	r.Println(tw.Render())
}

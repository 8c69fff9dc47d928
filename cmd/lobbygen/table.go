package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/handiism/lobbygen/internal/model"
)

// renderTrackTable lists resolved tracks the way they will be written.
func renderTrackTable(tracks []*model.Track, prefix string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "ID", "Name", "Title From", "Path"})

	for i, track := range tracks {
		tw.AppendRow(table.Row{
			i + 1,
			track.ID(),
			track.Title,
			track.TitleSource.String(),
			track.VirtualPath(prefix),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	if len(tracks) == 0 {
		tw.AppendFooter(table.Row{"", "no tracks found"})
	}

	return tw.Render()
}

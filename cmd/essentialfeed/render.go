package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/domain/feed"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/ports"
)

const noValue = "-"

var itemsHeader = []string{"ID", "DESCRIPTION", "LOCATION", "IMAGE"}

func renderResults(w io.Writer, results []ports.AddressResult) {
	for _, result := range results {
		if err := result.Result.Err(); err != nil {
			fmt.Fprintf(w, "%s: failed (%s)\n\n", result.Address, err)
			continue
		}

		items := result.Result.Items()
		fmt.Fprintf(w, "%s: %d items\n", result.Address, len(items))
		if len(items) > 0 {
			renderItems(w, items)
		}
		fmt.Fprintln(w)
	}
}

func renderItems(w io.Writer, items []feed.Item) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID().String(),
			textOrNoValue(item.Description()),
			textOrNoValue(item.Location()),
			item.ImageURL().String(),
		})
	}

	table.Header(itemsHeader)
	table.Bulk(rows)
	table.Render()
}

func textOrNoValue(t feed.Text) string {
	if s, ok := t.Value(); ok {
		return s
	}
	return noValue
}

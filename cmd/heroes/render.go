package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/vovakirdan/tour-of-heroes/internal/core"
)

var (
	headerStyle  = color.New(color.FgCyan, color.OpBold)
	messageStyle = color.New(color.FgGray)
)

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderHeroes(w io.Writer, heroes []core.Hero) {
	if len(heroes) == 0 {
		fmt.Fprintln(w, "no heroes")
		return
	}

	table := newTable(w)
	for _, h := range heroes {
		table.Append([]string{strconv.FormatInt(h.ID, 10), h.Name})
	}
	table.Render()
}

func renderHero(w io.Writer, hero core.Hero) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s Details", hero.Name)))
	fmt.Fprintf(w, "id: %d\n", hero.ID)
	fmt.Fprintf(w, "name: %s\n", hero.Name)
}

// renderMessages prints the message log, or nothing when it is empty.
func renderMessages(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Messages"))
	for _, line := range lines {
		fmt.Fprintln(w, messageStyle.Render(line))
	}
}

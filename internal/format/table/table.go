package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column configures one table column. MaxWidth <= 0 leaves the column
// unbounded; wider cells are truncated with an ellipsis.
type Column struct {
	Align    Alignment
	MaxWidth int
}

const cellGap = "  "

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	cols := make([]Column, len(alignments))
	for i, a := range alignments {
		cols[i] = Column{Align: a}
	}
	return FormatColumns(rows, cols)
}

// FormatColumns pads every row to the widest (bounded) cell of each column.
// Widths are measured in terminal cells, so wide runes line up.
func FormatColumns(rows [][]string, cols []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c < len(cols) && cols[c].MaxWidth > 0 && ansi.StringWidth(cell) > cols[c].MaxWidth {
				cell = ansi.Truncate(cell, cols[c].MaxWidth, "…")
			}
			cells[i][c] = cell
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(cellGap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			last := c == len(row)-1
			if c < len(cols) && cols[c].Align == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}

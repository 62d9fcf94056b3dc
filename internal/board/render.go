package board

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the board with a header row of column indices and a
// leading column of row indices:
//
//	  0 1 2
//	0 X _ _
//	1 _ O _
//	2 _ _ _
//
// Indices are right-aligned to the width of the largest index and glyphs sit
// under the last digit of their column index.
func (b *Board) String() string {
	rowWidth := digits(b.height - 1)
	colWidth := digits(b.width - 1)
	pad := strings.Repeat(" ", colWidth-1)

	var sb strings.Builder

	header := make([]string, b.width)
	for col := range header {
		header[col] = fmt.Sprintf("%*d", colWidth, col)
	}
	sb.WriteString(strings.Repeat(" ", rowWidth+1))
	sb.WriteString(strings.Join(header, " "))
	sb.WriteByte('\n')

	for row := 0; row < b.height; row++ {
		cells := make([]string, b.width)
		for col := range cells {
			cells[col] = pad + b.cells[row][col].String()
		}
		fmt.Fprintf(&sb, "%*d %s\n", rowWidth, row, strings.Join(cells, " "))
	}

	return sb.String()
}

// digits returns the number of decimal digits needed to print n
func digits(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}

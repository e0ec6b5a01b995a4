package repository

import (
	"fmt"
	"strings"
)

// valuesClause builds the placeholder list for a multi-row insert,
// e.g. ($1,$2,$3), ($4,$5,$6) for rows=2, cols=3.
func valuesClause(rows, cols int) string {
	var b strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "$%d", n)
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesClause(t *testing.T) {
	tests := []struct {
		rows, cols int
		expected   string
	}{
		{1, 1, "($1)"},
		{1, 3, "($1,$2,$3)"},
		{2, 3, "($1,$2,$3), ($4,$5,$6)"},
		{3, 2, "($1,$2), ($3,$4), ($5,$6)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, valuesClause(tt.rows, tt.cols))
	}
}

package courselist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"A", 0},
		{"Z", 25},
		{"AA", 26},
		{"W", 22},
		{"CY", 102},
		{"cy", 102},
		{"XFD", 16383},
		// Non-letters are ignored
		{"A1", 0},
		{" d ", 3},
		{"$C$", 2},
	}

	for _, tt := range tests {
		got, err := ResolveColumn(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.expected, got, "ResolveColumn(%q)", tt.label)
	}
}

func TestResolveColumnInvalid(t *testing.T) {
	for _, label := range []string{"", "12", "  ", "ÄÖ", "ZZZZZZZZZZ"} {
		_, err := ResolveColumn(label)
		assert.True(t, errors.Is(err, ErrInvalidColumn), "ResolveColumn(%q) error = %v", label, err)
	}
}

func TestColumnLabel(t *testing.T) {
	for _, label := range []string{"A", "H", "L", "Z", "AA", "AZ", "BA", "CY", "XFD"} {
		idx, err := ResolveColumn(label)
		require.NoError(t, err)
		assert.Equal(t, label, ColumnLabel(idx))
	}
	assert.Equal(t, "?", ColumnLabel(-1))
	assert.Equal(t, "?", ColumnLabel(excelize.MaxColumns))
}

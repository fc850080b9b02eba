package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	assert.Equal(t, "2025-04-001", FormatEntryID(2025, 4, 1))
	assert.Equal(t, "2026-03-250", FormatEntryID(2026, 3, 250))
	assert.Equal(t, "2025-04-1000", FormatEntryID(2025, 4, 1000))
}

func TestNoteEntryIDsShareGroup(t *testing.T) {
	group := FormatEntryID(2025, 4, 5)
	var got []string
	for n := 0; n < 3; n++ {
		entryID := FormatNoteEntryID(group, n)
		assert.Equal(t, group, EntryGroup(entryID))
		got = append(got, entryID)
	}
	assert.Equal(t, []string{"2025-04-005a", "2025-04-005b", "2025-04-005c"}, got)
	assert.Equal(t, group, EntryGroup(group))
	assert.Equal(t, "", EntryGroup(""))
}

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		input            string
		year, month, seq int
	}{
		{"2025-04-001", 2025, 4, 1},
		{"2026-03-250", 2026, 3, 250},
		{"2025-04-005c", 2025, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			year, month, seq, err := ParseEntryID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, []int{tt.year, tt.month, tt.seq}, []int{year, month, seq})
		})
	}
}

func TestParseEntryID_Errors(t *testing.T) {
	for _, input := range []string{"", "INV-0001", "2025-04", "2025-13-001", "2025-00-001", "2025-04-x", "2025-04-001-2"} {
		_, _, _, err := ParseEntryID(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDocumentID(t *testing.T) {
	assert.Equal(t, "INV-0001", FormatDocumentID("INV", 1))
	assert.Equal(t, "BILL-0042", FormatDocumentID("BILL", 42))
	assert.Equal(t, "CN-12345", FormatDocumentID("CN", 12345))
}

// Package id formats and parses journal entry and document identifiers.
//
// Entry ids are YYYY-MM-NNN with a per-month sequence. The journal entries
// posted for one debit or credit note share a group id and carry a letter
// suffix: 2025-04-005a, 2025-04-005b. Documents and notes use a prefix and a
// four-digit sequence: INV-0001, BILL-0001, DN-0001, CN-0001.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns the id of the seq-th entry posted in year/month.
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatNoteEntryID returns the id of the n-th journal entry (from 0) posted
// for a note whose entries share group.
func FormatNoteEntryID(group string, n int) string {
	return group + string(rune('a'+n))
}

// ParseEntryID splits an entry id into its year, month and sequence. A note
// suffix is ignored, so every entry of a note parses to its group.
func ParseEntryID(entryID string) (year, month, seq int, err error) {
	parts := strings.Split(EntryGroup(entryID), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("entry id %q: want YYYY-MM-NNN", entryID)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("entry id %q: bad number %q", entryID, p)
		}
		nums[i] = n
	}
	year, month, seq = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("entry id %q: month %d out of range", entryID, month)
	}
	return year, month, seq, nil
}

// EntryGroup returns the group id shared by a note's entries.
func EntryGroup(entryID string) string {
	return strings.TrimRight(entryID, "abcdefghijklmnopqrstuvwxyz")
}

// FormatDocumentID returns a document or note id like "INV-0001".
func FormatDocumentID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

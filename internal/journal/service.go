package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/gstledger/internal/model"
)

// Service reads journal entry requests and writes posted entries to
// per-month journal files under a root directory.
type Service struct {
	root     string
	accounts AccountChecker
}

// NewService creates a journal Service.
func NewService(root string, accounts AccountChecker) *Service {
	return &Service{root: root, accounts: accounts}
}

// Import reads entry requests from a CSV file and validates them. Nothing is
// returned unless every entry passes validation.
func (s *Service) Import(path string) ([]model.JournalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening entries %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading entries %s: %w", path, err)
	}

	if verrs := ValidateEntries(entries, s.accounts); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return entries, nil
}

// Export writes entries to one journal.csv per month, replacing any existing
// file for that month. It returns the paths written in month order.
func (s *Service) Export(entries []model.JournalEntry) ([]string, error) {
	months := make(map[string][]model.JournalEntry)
	for _, e := range entries {
		path := s.monthPath(e.Date.Year(), int(e.Date.Month()))
		months[path] = append(months[path], e)
	}

	paths := make([]string, 0, len(months))
	for path := range months {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating journal %s: %w", path, err)
		}
		err = WriteEntries(f, months[path])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("writing journal %s: %w", path, err)
		}
	}
	return paths, nil
}

// ReadMonth reads all entries written for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.JournalEntry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

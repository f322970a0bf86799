package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

// Storage handles persistence of scan reports
type Storage struct {
	dataDir string
}

// NewStorage creates a new Storage instance
func NewStorage(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Path returns where the report for a location is stored.
func (s *Storage) Path(location series.Location) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("report_%s.json", location))
}

// Save writes a report to disk, replacing any previous report for the
// same location.
func (s *Storage) Save(r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(s.Path(r.Location), data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// Load reads the most recently saved report for a location.
func (s *Storage) Load(location series.Location) (*Report, error) {
	data, err := os.ReadFile(s.Path(location))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no saved report for %s: %w", location, err)
		}
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}

	// Ensure the celebrant list is initialized
	if r.Celebrants == nil {
		r.Celebrants = []finisher.Finisher{}
	}

	return &r, nil
}

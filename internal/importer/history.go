// Package importer reads exported workout history files and checks them
// before they replace the stored history.
package importer

import (
	"fmt"
	"os"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/alexanderramin/kbtrack/internal/repository"
)

// LoadHistory reads and parses a history export file.
func LoadHistory(path string) ([]domain.StoredSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sessions, err := repository.DecodeSessions(data)
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return sessions, nil
}

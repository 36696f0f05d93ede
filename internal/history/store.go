// Package history persists past decodes in a single bounded JSON file.
package history

import (
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/openvin/vin-decoder/internal/config"
	"github.com/openvin/vin-decoder/internal/models"
)

// Store keeps the most recent decodes, newest first, in one JSON array
// that is fully read and rewritten on every append. The mutex serializes
// concurrent requests within the process; the file format stays a plain
// array so it can be served to clients as-is.
type Store struct {
	mu     sync.Mutex
	logger *log.Logger
	path   string
	limit  int
}

func NewStore(logger *log.Logger, cfg config.HistoryConfig) *Store {
	return &Store{
		logger: logger,
		path:   cfg.File,
		limit:  cfg.Limit,
	}
}

// Append inserts rec at the front of the log and trims it to the
// configured limit.
func (s *Store) Append(rec models.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	records = append([]models.HistoryRecord{rec}, records...)
	if len(records) > s.limit {
		records = records[:s.limit]
	}

	data, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// All returns every stored record, newest first. A missing file yields
// an empty slice, never nil, so handlers can serve it directly.
func (s *Store) All() ([]models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.HistoryRecord, error) {
	records := []models.HistoryRecord{}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return records, nil
}

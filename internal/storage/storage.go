// Package storage provides thread-safe usage counters with file-based
// persistence, backing the bot's /stats command.
//
// Only aggregate counters are stored. Analysis results are never persisted;
// every analysis request recomputes from fresh data.
//
// Storage is designed for reliability with atomic file writes and graceful
// handling of persistence failures. Counters are persisted to a JSON file and
// restored on application restart.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Stats is an aggregate view of bot usage.
type Stats struct {
	StartedAt      time.Time        `json:"started_at"`
	TotalAnalyses  int64            `json:"total_analyses"`
	Commands       map[string]int64 `json:"commands"`
	LastAnalysisAt time.Time        `json:"last_analysis_at,omitempty"`
}

// Storage provides thread-safe usage counters with file-based persistence.
type Storage struct {
	stats Stats
	mu    sync.RWMutex

	filePath string
}

// persistenceFile is the on-disk structure for JSON persistence.
type persistenceFile struct {
	Version string    `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Stats   Stats     `json:"stats"`
}

// New creates a Storage instance persisting to filePath.
// If filePath is empty, an OS-appropriate tmp directory is used.
func New(filePath string) *Storage {
	if filePath == "" {
		filePath = filepath.Join(os.TempDir(), "accountlens", "stats.json")
	}

	return &Storage{
		stats: Stats{
			StartedAt: time.Now().UTC(),
			Commands:  make(map[string]int64),
		},
		filePath: filePath,
	}
}

// RecordCommand increments the counter for a bot command.
func (s *Storage) RecordCommand(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Commands[name]++
}

// RecordAnalysis increments the analysis counter and stamps the time.
func (s *Storage) RecordAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalAnalyses++
	s.stats.LastAnalysisAt = time.Now().UTC()
}

// Reset clears all counters, keeping the process start time.
func (s *Storage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalAnalyses = 0
	s.stats.LastAnalysisAt = time.Time{}
	s.stats.Commands = make(map[string]int64)
}

// Snapshot returns a copy of the current counters.
func (s *Storage) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.stats
	out.Commands = make(map[string]int64, len(s.stats.Commands))
	for k, v := range s.stats.Commands {
		out.Commands[k] = v
	}
	return out
}

// Save persists the counters to file.
func (s *Storage) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data := persistenceFile{
		Version: "1.0",
		SavedAt: time.Now().UTC(),
		Stats:   s.stats,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write to temporary file first (atomic write)
	tempPath := s.filePath + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tempPath, s.filePath); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file on rename failure
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Load restores counters from file. Missing files are not an error; the
// process simply starts with fresh counters.
func (s *Storage) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clean up any stale temp files from previous crashes
	tempPath := s.filePath + ".tmp"
	if _, err := os.Stat(tempPath); err == nil {
		_ = os.Remove(tempPath)
	}

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil
	}

	jsonData, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var data persistenceFile
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	startedAt := s.stats.StartedAt
	s.stats = data.Stats
	// StartedAt tracks this process, not the file's history.
	s.stats.StartedAt = startedAt
	if s.stats.Commands == nil {
		s.stats.Commands = make(map[string]int64)
	}

	return nil
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

// FileStore persists the day rows as a JSON file keyed by date. It exists
// for quick local runs and debugging where neither Postgres nor a sqlite
// file is wanted; the upsert contract is the same as the SQL backends.
type FileStore struct {
	rows         map[string]*internal.SleepRow // date -> row
	present      bool                          // "table" created
	mu           sync.RWMutex
	path         string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	saveDelay    time.Duration
	logger       internal.Logger
}

func NewFileStore(path string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{
		rows:         make(map[string]*internal.SleepRow),
		path:         path,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load rows: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStore) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var rows []*internal.SleepRow
	if err := json.NewDecoder(file).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.present = true
	for _, r := range rows {
		s.rows[r.Date] = r
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStore) save() error {
	s.mu.RLock()
	rows := make([]*internal.SleepRow, 0, len(s.rows))
	for _, r := range s.rows {
		rows = append(rows, r)
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return atomicWriteFileJSON(s.path, rows)
}

// saveWorker batches save operations to avoid a disk write per row
func (s *FileStore) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving rows: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStore) TableExists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present, nil
}

func (s *FileStore) CreateTable(ctx context.Context) error {
	s.mu.Lock()
	s.present = true
	s.mu.Unlock()
	return s.save()
}

func (s *FileStore) DropTable(ctx context.Context) error {
	s.mu.Lock()
	s.present = false
	s.rows = make(map[string]*internal.SleepRow)
	s.mu.Unlock()
	return os.RemoveAll(s.path)
}

func (s *FileStore) InsertDay(ctx context.Context, row *internal.SleepRow) (bool, error) {
	s.mu.Lock()
	if !s.present {
		s.mu.Unlock()
		return false, errors.New("storage: table does not exist")
	}
	if _, ok := s.rows[row.Date]; ok {
		// Existing row wins, same as ON CONFLICT DO NOTHING.
		s.mu.Unlock()
		return false, nil
	}
	copied := *row
	s.rows[row.Date] = &copied
	s.mu.Unlock()

	// Signal the save worker (non-blocking)
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
	return true, nil
}

func (s *FileStore) ListRange(ctx context.Context, start, end string) ([]internal.SleepRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []internal.SleepRow
	for date, r := range s.rows {
		if date >= start && date <= end {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Close stops the background worker and flushes pending rows.
func (s *FileStore) Close() error {
	close(s.shutdownChan)
	return s.save()
}

var _ Store = (*FileStore)(nil)

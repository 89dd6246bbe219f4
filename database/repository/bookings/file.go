// File: database/repository/bookings/file.go
package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"voyago/models"
)

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = fmt.Errorf("booking record not found")

// FileRepo stores each booking record as a JSON file named after its
// booking ID. Writes go through a temp file then rename so a crashed
// write never leaves a partial record behind.
type FileRepo struct {
	dir string
	mu  sync.Mutex
}

func NewFileRepo(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating bookings directory: %w", err)
	}
	return &FileRepo{dir: dir}, nil
}

func (r *FileRepo) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

func (r *FileRepo) write(record *models.BookingRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path(record.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path(record.ID))
}

func (r *FileRepo) Create(_ context.Context, record *models.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(record); err != nil {
		return fmt.Errorf("writing booking record %s: %w", record.ID, err)
	}
	return nil
}

func (r *FileRepo) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading booking record %s: %w", id, err)
	}

	var record models.BookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding booking record %s: %w", id, err)
	}
	return &record, nil
}

func (r *FileRepo) SetTicketPath(_ context.Context, id, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading booking record %s: %w", id, err)
	}

	var record models.BookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("decoding booking record %s: %w", id, err)
	}
	record.TicketPath = path
	return r.write(&record)
}

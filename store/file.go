package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/sirupsen/logrus"
)

// FileStore keeps each record collection in a flat JSON array file. A single
// mutex serializes all file access so that the recorder's read-modify-write
// cycle cannot lose updates to a concurrent writer in the same process.
type FileStore struct {
	mutex sync.Mutex
}

// NewFileStore creates a flat-file record store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads the collection stored at name. A missing file yields an empty
// collection; malformed content is logged and also yields an empty
// collection, per the persistence policy (decode failures never surface as
// request errors).
func (fs *FileStore) Load(name string) ([]models.Record, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.loadLocked(name)
}

func (fs *FileStore) loadLocked(name string) ([]models.Record, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithFields(logrus.Fields{
				"component": "FileStore",
				"file":      name,
			}).Debug("Collection file not found, returning empty collection")
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.WithFields(logrus.Fields{
			"component": "FileStore",
			"file":      name,
			"error":     err,
		}).Warn("Collection file is malformed, returning empty collection")
		return []models.Record{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"component": "FileStore",
		"file":      name,
		"records":   len(records),
	}).Debug("Loaded collection")

	return records, nil
}

// Save replaces the entire collection at name. The file is truncated and
// rewritten as an indented JSON array.
func (fs *FileStore) Save(name string, records []models.Record) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.saveLocked(name, records)
}

func (fs *FileStore) saveLocked(name string, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

// Append loads the collection, appends the record and saves the result back
// under a single lock acquisition, keeping the read-modify-write atomic with
// respect to other writers on this store.
func (fs *FileStore) Append(name string, record models.Record) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	records, err := fs.loadLocked(name)
	if err != nil {
		return err
	}
	records = append(records, record)
	return fs.saveLocked(name, records)
}

// EnsureFile creates an empty collection file when none exists yet, matching
// first-startup behavior.
func (fs *FileStore) EnsureFile(name string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := os.Stat(name); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}

	return fs.saveLocked(name, []models.Record{})
}

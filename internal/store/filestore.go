package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sadopc/compound/internal/growth"
)

// FileRecords keeps daily records in a single JSON file keyed by date.
type FileRecords struct {
	path string
	mu   sync.Mutex
}

func NewFileRecords(path string) *FileRecords {
	return &FileRecords{path: path}
}

func (f *FileRecords) load() (map[string]growth.DailyRecord, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]growth.DailyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	m := map[string]growth.DailyRecord{}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	return m, nil
}

func (f *FileRecords) save(m map[string]growth.DailyRecord) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create records directory: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".records-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace records file: %w", err)
	}
	return nil
}

// GetAllRecords returns every record, oldest first.
func (f *FileRecords) GetAllRecords() ([]growth.DailyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.load()
	if err != nil {
		return nil, err
	}
	var records []growth.DailyRecord
	for _, r := range m {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (f *FileRecords) SaveRecord(r growth.DailyRecord) error {
	if _, err := time.Parse(growth.DateLayout, r.Date); err != nil {
		return fmt.Errorf("save record: invalid date %q", r.Date)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.load()
	if err != nil {
		return err
	}
	m[r.Date] = r
	return f.save(m)
}

func (f *FileRecords) DeleteRecord(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := m[date]; !ok {
		return fmt.Errorf("delete record %s: %w", date, ErrNotFound)
	}
	delete(m, date)
	return f.save(m)
}

func (f *FileRecords) GetRecord(date string) (*growth.DailyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.load()
	if err != nil {
		return nil, err
	}
	r, ok := m[date]
	if !ok {
		return nil, fmt.Errorf("get record %s: %w", date, ErrNotFound)
	}
	return &r, nil
}

func (f *FileRecords) UpdateReflection(date, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.load()
	if err != nil {
		return err
	}
	r, ok := m[date]
	if !ok {
		return fmt.Errorf("update reflection %s: %w", date, ErrNotFound)
	}
	r.Reflection = text
	m[date] = r
	return f.save(m)
}

package store

import (
	"encoding/json"
	"os"
	"sync"

	"rumbo/internal/models/response_models"
	"rumbo/pkg/utils"
)

// ItineraryStore holds the ordered saved-itinerary collection the web
// client used to keep in localStorage.
type ItineraryStore interface {
	List() []response_models.SavedItinerary
	Get(id string) (response_models.SavedItinerary, bool)
	Upsert(record response_models.SavedItinerary) error
	Delete(id string) error
	Clear() error
}

// FileItineraryStore persists the whole collection as one JSON blob.
// When the collection becomes empty the file is removed instead of
// written as an empty array, so a reload starts from a clean slate.
type FileItineraryStore struct {
	path string

	mu      sync.Mutex
	records []response_models.SavedItinerary
}

func NewFileItineraryStore(path string) (*FileItineraryStore, error) {
	s := &FileItineraryStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileItineraryStore) List() []response_models.SavedItinerary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]response_models.SavedItinerary, len(s.records))
	copy(out, s.records)
	return out
}

func (s *FileItineraryStore) Get(id string) (response_models.SavedItinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.ID == id {
			return record, true
		}
	}
	return response_models.SavedItinerary{}, false
}

// Upsert replaces the record with the same id in place, preserving its
// position; unknown ids are appended.
func (s *FileItineraryStore) Upsert(record response_models.SavedItinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i] = record
			return s.persist()
		}
	}
	s.records = append(s.records, record)
	return s.persist()
}

func (s *FileItineraryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist()
		}
	}
	return utils.ErrItineraryNotFound
}

func (s *FileItineraryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return s.persist()
}

func (s *FileItineraryStore) persist() error {
	if len(s.records) == 0 {
		err := os.Remove(s.path)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

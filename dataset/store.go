package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/yok-atlas/uni-api/model"
)

// Store is the read-only view over the university catalog. The dataset is
// loaded once at startup and never mutated afterwards, so accessors hand out
// the shared slice directly; callers that reshape results must copy.
type Store interface {
	All() []model.University
	ByID(id int) (*model.University, bool)
	Count() int
}

type jsonStore struct {
	universities []model.University
	byID         map[int]*model.University
}

// Load reads the university dataset from the given JSON file. A failure here
// is fatal for the caller: the server must not start serving without data.
func Load(path string) (Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var universities []model.University
	if err := json.Unmarshal(raw, &universities); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	store := &jsonStore{
		universities: universities,
		byID:         make(map[int]*model.University, len(universities)),
	}
	for i := range store.universities {
		store.byID[store.universities[i].ID] = &store.universities[i]
	}

	log.Printf("Loaded %d universities from %s", len(universities), path)
	return store, nil
}

// FromSlice builds a Store over an in-memory slice. Used by tests.
func FromSlice(universities []model.University) Store {
	store := &jsonStore{
		universities: universities,
		byID:         make(map[int]*model.University, len(universities)),
	}
	for i := range store.universities {
		store.byID[store.universities[i].ID] = &store.universities[i]
	}
	return store
}

func (s *jsonStore) All() []model.University {
	return s.universities
}

func (s *jsonStore) ByID(id int) (*model.University, bool) {
	university, ok := s.byID[id]
	return university, ok
}

func (s *jsonStore) Count() int {
	return len(s.universities)
}

package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"panditji-api/models"
	"panditji-api/utils"
)

// Store is the JSON-file-backed catalog used when DATA_BACKEND=file and
// as the silent fallback for the public category/puja list endpoints.
// Every write rewrites the whole file as seeds merged with all non-seed
// entries, deduplicated by legacy id with seeds winning.
type Store struct {
	mu   sync.Mutex
	path string
}

type catalogFile struct {
	Categories []models.Category `json:"categories"`
	Pujas      []models.Puja     `json:"pujas"`
}

var (
	storesMu sync.Mutex
	stores   = make(map[string]*Store)
)

// New returns the store for path. Callers across packages share one
// instance per path so the write lock actually serializes rewrites of
// the backing file.
func New(path string) *Store {
	storesMu.Lock()
	defer storesMu.Unlock()

	if s, ok := stores[path]; ok {
		return s
	}
	s := &Store{path: path}
	stores[path] = s
	return s
}

// ListCategories returns the merged seed+file categories sorted by name.
// A missing or corrupt backing file degrades to seeds only.
func (s *Store) ListCategories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := mergeCategories(seedCategories(), s.load().Categories)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats
}

// ListPujas returns the merged seed+file pujas, newest-first. Seeds carry
// no timestamp and sort last.
func (s *Store) ListPujas() []models.Puja {
	s.mu.Lock()
	defer s.mu.Unlock()

	pujas := mergePujas(seedPujas(), s.load().Pujas)
	sort.SliceStable(pujas, func(i, j int) bool {
		return pujas[i].CreatedAt.After(pujas[j].CreatedAt)
	})
	return pujas
}

// CreateCategory assigns an id, slug and timestamps, then rewrites the
// backing file with the seed merge applied.
func (s *Store) CreateCategory(cat models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cat.LegacyID = uuid.NewString()
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Name)
	}
	cat.CreatedAt = now
	cat.UpdatedAt = now

	data := s.load()
	data.Categories = mergeCategories(seedCategories(), append(data.Categories, cat))
	if err := s.save(data); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// CreatePuja mirrors CreateCategory for the puja list.
func (s *Store) CreatePuja(p models.Puja) (models.Puja, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.LegacyID = uuid.NewString()
	if p.PriceLabel == "" {
		p.PriceLabel = "From"
	}
	if p.CategorySlug == "" {
		p.CategorySlug = utils.Slugify(p.Category)
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	data := s.load()
	data.Pujas = mergePujas(seedPujas(), append(data.Pujas, p))
	if err := s.save(data); err != nil {
		return models.Puja{}, err
	}
	return p, nil
}

func (s *Store) load() catalogFile {
	var data catalogFile
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return catalogFile{}
	}
	return data
}

func (s *Store) save(data catalogFile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// mergeCategories keeps seeds first, then non-seed entries deduplicated
// by legacy id. A later entry with the same id replaces an earlier
// non-seed one; a seed id can never be replaced.
func mergeCategories(seeds, entries []models.Category) []models.Category {
	out := make([]models.Category, 0, len(seeds)+len(entries))
	index := make(map[string]int, len(seeds)+len(entries))
	for _, c := range seeds {
		index[c.LegacyID] = len(out)
		out = append(out, c)
	}
	seedCount := len(out)
	for _, c := range entries {
		if i, ok := index[c.LegacyID]; ok {
			if i >= seedCount {
				out[i] = c
			}
			continue
		}
		index[c.LegacyID] = len(out)
		out = append(out, c)
	}
	return out
}

func mergePujas(seeds, entries []models.Puja) []models.Puja {
	out := make([]models.Puja, 0, len(seeds)+len(entries))
	index := make(map[string]int, len(seeds)+len(entries))
	for _, p := range seeds {
		index[p.LegacyID] = len(out)
		out = append(out, p)
	}
	seedCount := len(out)
	for _, p := range entries {
		if i, ok := index[p.LegacyID]; ok {
			if i >= seedCount {
				out[i] = p
			}
			continue
		}
		index[p.LegacyID] = len(out)
		out = append(out, p)
	}
	return out
}

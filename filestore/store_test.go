package filestore

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"panditji-api/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "catalog.json"))
}

func TestListCategoriesNeverEmpty(t *testing.T) {
	s := newTestStore(t)

	cats := s.ListCategories()
	if len(cats) == 0 {
		t.Fatal("expected seed categories with no backing file")
	}
	if !sort.SliceIsSorted(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name }) {
		t.Error("categories not sorted by name")
	}
}

func TestCreateCategory(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateCategory(models.Category{Name: "Festival Offerings"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.LegacyID == "" {
		t.Error("expected a generated id")
	}
	if created.Slug != "festival-offerings" {
		t.Errorf("slug = %q, want %q", created.Slug, "festival-offerings")
	}
	if created.ShowOnNavbar {
		t.Error("showOnNavbar should default to false")
	}

	// Survives a reload through a fresh store on the same path.
	reloaded := &Store{path: s.path}
	found := false
	for _, c := range reloaded.ListCategories() {
		if c.LegacyID == created.LegacyID {
			found = true
		}
	}
	if !found {
		t.Error("created category missing after reload")
	}
}

func TestCreateCategoryKeepsSeeds(t *testing.T) {
	s := newTestStore(t)

	seedCount := len(seedCategories())
	if _, err := s.CreateCategory(models.Category{Name: "Wedding Rituals"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	cats := s.ListCategories()
	if len(cats) != seedCount+1 {
		t.Fatalf("got %d categories, want %d", len(cats), seedCount+1)
	}
	for _, seed := range seedCategories() {
		found := false
		for _, c := range cats {
			if c.LegacyID == seed.LegacyID {
				found = true
			}
		}
		if !found {
			t.Errorf("seed %q missing after create", seed.LegacyID)
		}
	}
}

func TestMergeCategoriesSeedsWin(t *testing.T) {
	seeds := seedCategories()
	entries := []models.Category{
		{LegacyID: seeds[0].LegacyID, Name: "Hijacked"},
		{LegacyID: "user-1", Name: "User Category"},
		{LegacyID: "user-1", Name: "User Category v2"},
	}

	merged := mergeCategories(seeds, entries)

	byID := map[string]models.Category{}
	for _, c := range merged {
		byID[c.LegacyID] = c
	}
	if byID[seeds[0].LegacyID].Name != seeds[0].Name {
		t.Errorf("seed overridden: got %q", byID[seeds[0].LegacyID].Name)
	}
	// Later write wins for non-seed id collisions.
	if byID["user-1"].Name != "User Category v2" {
		t.Errorf("non-seed dedupe kept %q, want later entry", byID["user-1"].Name)
	}
	if len(merged) != len(seeds)+1 {
		t.Errorf("merged length = %d, want %d", len(merged), len(seeds)+1)
	}
}

func TestListPujasNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreatePuja(models.Puja{Name: "Navratri Puja", Price: 2100, Category: "Festival Specials"})
	if err != nil {
		t.Fatalf("CreatePuja: %v", err)
	}
	if first.PriceLabel != "From" {
		t.Errorf("priceLabel = %q, want default %q", first.PriceLabel, "From")
	}
	if first.CategorySlug != "festival-specials" {
		t.Errorf("categorySlug = %q, want %q", first.CategorySlug, "festival-specials")
	}

	pujas := s.ListPujas()
	if len(pujas) == 0 || pujas[0].LegacyID != first.LegacyID {
		t.Error("created puja should sort before the untimestamped seeds")
	}
	if len(pujas) != len(seedPujas())+1 {
		t.Errorf("got %d pujas, want %d", len(pujas), len(seedPujas())+1)
	}
}

func TestCorruptFileFallsBackToSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if got, want := len(s.ListCategories()), len(seedCategories()); got != want {
		t.Errorf("got %d categories from corrupt file, want %d seeds", got, want)
	}
	if got, want := len(s.ListPujas()), len(seedPujas()); got != want {
		t.Errorf("got %d pujas from corrupt file, want %d seeds", got, want)
	}
}

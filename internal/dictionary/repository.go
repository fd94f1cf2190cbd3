package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EntryRepository reads seed entries from an external source.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]Entry, error)
}

// DBEntryRepository reads entries from the dictionary_entries table.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindAll returns all entries ordered by word.
func (r *DBEntryRepository) FindAll(ctx context.Context) ([]Entry, error) {
	entries := make([]Entry, 0)
	if err := r.db.SelectContext(ctx, &entries, "SELECT word, definition FROM dictionary_entries ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_entries) > %w", err)
	}
	return entries, nil
}

// Seed loads the entries of every repository into the store after validating them.
// It returns the number of entries in the store afterwards.
func Seed(ctx context.Context, store *Store, repositories ...EntryRepository) (int, error) {
	for _, repository := range repositories {
		entries, err := repository.FindAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("repository.FindAll() > %w", err)
		}
		if err := ValidateEntries(entries); err != nil {
			return 0, fmt.Errorf("ValidateEntries() > %w", err)
		}
		store.Load(entries)
	}
	return store.Len(), nil
}

// YAMLEntryRepository reads entries from a YAML seed file.
type YAMLEntryRepository struct {
	path string
}

// NewYAMLEntryRepository creates a new YAMLEntryRepository.
func NewYAMLEntryRepository(path string) *YAMLEntryRepository {
	return &YAMLEntryRepository{path: path}
}

// FindAll returns the entries of the file.
func (r *YAMLEntryRepository) FindAll(_ context.Context) ([]Entry, error) {
	return ReadYAMLFile(r.path)
}

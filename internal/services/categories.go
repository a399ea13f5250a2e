package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"walletalert/internal/core"
	"walletalert/internal/store"
)

type CategoryService struct {
	store store.CategoryStore

	// Collapses concurrent first-reads for the same owner into one seeding
	// attempt. Seeding stays best-effort: a seed that still loses a race at
	// the store level is discarded, not surfaced.
	seeds singleflight.Group
}

func NewCategoryService(st store.CategoryStore) *CategoryService {
	return &CategoryService{store: st}
}

// ListCategories seeds the default set on the owner's first read, then
// returns the owner's categories in insertion order.
func (s *CategoryService) ListCategories(ctx context.Context, ownerID string) ([]core.Category, error) {
	cats, err := s.store.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	if _, err, _ := s.seeds.Do(ownerID, func() (any, error) {
		return nil, s.seedDefaults(ctx, ownerID)
	}); err != nil {
		return nil, err
	}

	return s.store.ListCategories(ctx, ownerID)
}

func (s *CategoryService) seedDefaults(ctx context.Context, ownerID string) error {
	now := time.Now()
	for _, name := range store.DefaultCategories {
		c := core.Category{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.InsertCategory(ctx, c); err != nil {
			if core.IsConflict(err) {
				// Another seeder got here first.
				continue
			}
			return err
		}
	}
	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID, name string, emoji *string) (*core.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.NewValidationError("Category name is required")
	}

	now := time.Now()
	c := core.Category{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Emoji:     core.NormalizeEmoji(emoji),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory only ever changes the emoji; a payload without the emoji
// key is rejected before touching the store.
func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID, id string, changes core.CategoryUpdate) (*core.Category, error) {
	if !changes.EmojiSet {
		return nil, core.NewValidationError("Emoji update is required")
	}
	return s.store.UpdateCategoryEmoji(ctx, ownerID, id, core.NormalizeEmoji(changes.Emoji), time.Now())
}

// DeleteCategory returns the removed record. Transactions referencing the
// name keep their denormalized copy.
func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID, id string) (*core.Category, error) {
	return s.store.DeleteCategory(ctx, ownerID, id)
}

// CategoryExists matches case-insensitively on the trimmed name. An empty
// name is false, not an error. It reads the collection as-is and never
// triggers seeding.
func (s *CategoryService) CategoryExists(ctx context.Context, ownerID, name string) (bool, error) {
	key := core.CategoryKey(name)
	if key == "" {
		return false, nil
	}

	cats, err := s.store.ListCategories(ctx, ownerID)
	if err != nil {
		return false, err
	}
	for _, c := range cats {
		if core.CategoryKey(c.Name) == key {
			return true, nil
		}
	}
	return false, nil
}

package service

import (
	"context"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/rs/zerolog"
)

// ItemRepository is the persistence contract the item service depends
// on. The production implementation lives in the repository package;
// tests substitute an in-memory fake.
type ItemRepository interface {
	Create(ctx context.Context, name, description string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, id int64, name, description *string) (*model.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ItemService implements the item store operations: validation happens
// here, persistence in the repository.
type ItemService struct {
	repo   ItemRepository
	logger *zerolog.Logger
}

// NewItemService constructs an ItemService.
func NewItemService(logger *zerolog.Logger, repo ItemRepository) *ItemService {
	return &ItemService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new item. The name must be at least two characters
// after trimming; violations are reported as a validation error and
// nothing is persisted.
func (s *ItemService) Create(ctx context.Context, name, description string) (*model.Item, error) {
	trimmed, fieldErr := validateName("name", name)
	if fieldErr != nil {
		return nil, errs.NewValidationError([]errs.FieldError{*fieldErr})
	}

	item, err := s.repo.Create(ctx, trimmed, description)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("item_id", item.ID).Msg("item created")
	return item, nil
}

// List returns all items sorted by creation time descending.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

// Get returns the item with the given id or a NotFound error.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update: nil fields keep their stored value.
// A provided name is validated under the same rule as Create. The
// updated_at timestamp is refreshed on success.
func (s *ItemService) Update(ctx context.Context, id int64, name, description *string) (*model.Item, error) {
	if name != nil {
		trimmed, fieldErr := validateName("name", *name)
		if fieldErr != nil {
			return nil, errs.NewValidationError([]errs.FieldError{*fieldErr})
		}
		name = &trimmed
	}

	item, err := s.repo.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("item_id", item.ID).Msg("item updated")
	return item, nil
}

// Delete removes the item and reports whether a row was deleted. It is
// idempotent: deleting a missing id yields false, not an error.
func (s *ItemService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Debug().Int64("item_id", id).Msg("item deleted")
	}
	return deleted, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "wisekey/internal/errors"
	"wisekey/internal/model"
	"wisekey/internal/repository"
)

// PropertyService exposes listing operations scoped to the owning user.
// A listing owned by someone else behaves exactly like a missing one.
type PropertyService interface {
	Create(ctx context.Context, ownerID uint, property *model.Property) (*model.Property, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Property, error)
	List(ctx context.Context, ownerID uint) ([]model.Property, error)
	Update(ctx context.Context, ownerID, id uint, updated *model.Property) (*model.Property, error)
	Delete(ctx context.Context, ownerID, id uint) error
	Search(ctx context.Context, ownerID uint, filter repository.SearchFilter) ([]model.Property, error)
}

type propertyService struct {
	repo repository.PropertyRepository
}

// NewPropertyService builds a PropertyService.
func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) Create(ctx context.Context, ownerID uint, property *model.Property) (*model.Property, error) {
	property.ID = 0
	property.OwnerID = ownerID
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

func (s *propertyService) Get(ctx context.Context, ownerID, id uint) (*model.Property, error) {
	property, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return property, nil
}

func (s *propertyService) List(ctx context.Context, ownerID uint) ([]model.Property, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update replaces the listing's attributes in full. The row identity and
// ownership of the stored record are preserved.
func (s *propertyService) Update(ctx context.Context, ownerID, id uint, updated *model.Property) (*model.Property, error) {
	existing, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return updated, nil
}

func (s *propertyService) Delete(ctx context.Context, ownerID, id uint) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (s *propertyService) Search(ctx context.Context, ownerID uint, filter repository.SearchFilter) ([]model.Property, error) {
	return s.repo.Search(ctx, ownerID, filter)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrPropertyNotFound
	}
	return err
}

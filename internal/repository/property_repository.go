package repository

import (
	"context"

	"gorm.io/gorm"

	"wisekey/internal/model"
)

// SearchFilter holds optional predicates for listing search. Nil fields
// are skipped; set fields are combined with AND.
type SearchFilter struct {
	City            *string
	District        *string
	TransactionType *string
	Condition       *string
	Currency        *string
	MinPrice        *float64
	MaxPrice        *float64
	MinArea         *float64
	MaxArea         *float64
	Rooms           *int
	Bedrooms        *int
}

// PropertyRepository defines persistence operations for listings. Every
// read and mutation is scoped by owner; a row owned by someone else is
// indistinguishable from a missing one.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Property, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Property, error)
	Update(ctx context.Context, property *model.Property) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
	Search(ctx context.Context, ownerID uint, filter SearchFilter) ([]model.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository builds a GORM-backed repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Property{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *propertyRepository) Search(ctx context.Context, ownerID uint, filter SearchFilter) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.City != nil {
		q = q.Where("city = ?", *filter.City)
	}
	if filter.District != nil {
		q = q.Where("district = ?", *filter.District)
	}
	if filter.TransactionType != nil {
		q = q.Where("transaction_type = ?", *filter.TransactionType)
	}
	if filter.Condition != nil {
		q = q.Where("`condition` = ?", *filter.Condition)
	}
	if filter.Currency != nil {
		q = q.Where("currency = ?", *filter.Currency)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinArea != nil {
		q = q.Where("area_sqm >= ?", *filter.MinArea)
	}
	if filter.MaxArea != nil {
		q = q.Where("area_sqm <= ?", *filter.MaxArea)
	}
	if filter.Rooms != nil {
		q = q.Where("rooms = ?", *filter.Rooms)
	}
	if filter.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *filter.Bedrooms)
	}

	var properties []model.Property
	if err := q.Order("id DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

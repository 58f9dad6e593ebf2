package model

import "time"

// Property represents a real-estate listing owned by exactly one user.
// Every descriptive attribute beyond the title is optional; pointer fields
// distinguish "not provided" from zero values.
type Property struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	OwnerID uint   `json:"owner_id" gorm:"not null;index"`
	Title   string `json:"title" gorm:"size:255;not null"`

	TransactionType *string `json:"transaction_type,omitempty" gorm:"size:50"` // buy / rent / daily_rent

	City     *string `json:"city,omitempty" gorm:"size:120;index"`
	District *string `json:"district,omitempty" gorm:"size:120"`
	Street   *string `json:"street,omitempty" gorm:"size:255"`

	Currency *string  `json:"currency,omitempty" gorm:"size:10"` // GEL / USD
	Price    *float64 `json:"price,omitempty" gorm:"index"`

	AreaSqm *float64 `json:"area_sqm,omitempty"`

	Rooms     *int `json:"rooms,omitempty"`
	Bedrooms  *int `json:"bedrooms,omitempty"`
	Bathrooms *int `json:"bathrooms,omitempty"`

	Floor         *int  `json:"floor,omitempty"`
	TotalFloors   *int  `json:"total_floors,omitempty"`
	NotFirstFloor *bool `json:"not_first_floor,omitempty"`

	Condition *string `json:"condition,omitempty" gorm:"size:50"` // black_frame/white_frame/green_frame/old_renov/new_renov

	BuildingType       *string `json:"building_type,omitempty" gorm:"size:50"`
	HeatingType        *string `json:"heating_type,omitempty" gorm:"size:50"`
	HasAirConditioning *bool   `json:"has_air_conditioning,omitempty"`

	ParkingType *string `json:"parking_type,omitempty" gorm:"size:50"`
	HasBalcony  *bool   `json:"has_balcony,omitempty"`
	PetsAllowed *bool   `json:"pets_allowed,omitempty"`
	Furnished   *string `json:"furnished,omitempty" gorm:"size:50"`

	Description *string `json:"description,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}

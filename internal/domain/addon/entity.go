package addon

import (
	"errors"
	"strings"
	"time"

	"bounce-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("add-on name cannot be empty")
	ErrNegativePrice      = errors.New("add-on price cannot be negative")
	ErrInvalidMaxQuantity = errors.New("add-on max quantity must be at least 1")
)

// AddOn is a catalog item rented alongside the main asset.
type AddOn struct {
	id           uuid.UUID
	name         string
	category     string
	pricePerUnit money.Cents
	maxQuantity  int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAddOn(id uuid.UUID, name, category string, pricePerUnit money.Cents, maxQuantity int, isActive bool) (*AddOn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pricePerUnit < 0 {
		return nil, ErrNegativePrice
	}
	if maxQuantity < 1 {
		return nil, ErrInvalidMaxQuantity
	}
	return &AddOn{
		id:           id,
		name:         name,
		category:     strings.TrimSpace(category),
		pricePerUnit: pricePerUnit,
		maxQuantity:  maxQuantity,
		isActive:     isActive,
	}, nil
}

func ReconstructAddOn(
	id uuid.UUID,
	name, category string,
	pricePerUnit money.Cents,
	maxQuantity int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *AddOn {
	return &AddOn{
		id:           id,
		name:         name,
		category:     category,
		pricePerUnit: pricePerUnit,
		maxQuantity:  maxQuantity,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ClampQuantity bounds a requested quantity to [0, maxQuantity].
func (a *AddOn) ClampQuantity(requested int) int {
	if requested <= 0 {
		return 0
	}
	if requested > a.maxQuantity {
		return a.maxQuantity
	}
	return requested
}

func (a *AddOn) ID() uuid.UUID             { return a.id }
func (a *AddOn) Name() string              { return a.name }
func (a *AddOn) Category() string          { return a.category }
func (a *AddOn) PricePerUnit() money.Cents { return a.pricePerUnit }
func (a *AddOn) MaxQuantity() int          { return a.maxQuantity }
func (a *AddOn) IsActive() bool            { return a.isActive }
func (a *AddOn) CreatedAt() time.Time      { return a.createdAt }
func (a *AddOn) UpdatedAt() time.Time      { return a.updatedAt }

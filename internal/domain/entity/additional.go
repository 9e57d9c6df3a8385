package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdditionalCategory groups add-ons and controls which products may offer
// them (via the product_additional_categories link table).
type AdditionalCategory struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;unique;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Additionals []Additional `gorm:"foreignKey:CategoryID" json:"-"`
	Products    []Product    `gorm:"many2many:product_additional_categories" json:"-"`
}

// BeforeCreate generates a UUID before creating a new additional category
func (c *AdditionalCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdditionalCategory model
func (AdditionalCategory) TableName() string {
	return "additional_categories"
}

// Additional is an add-on that can be attached to a sale item, priced
// independently of the product it accompanies.
type Additional struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	PriceCents int64          `gorm:"column:price_cents;default:0" json:"-"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *AdditionalCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new additional
func (a *Additional) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Additional model
func (Additional) TableName() string {
	return "additionals"
}

// PriceDecimal returns the price in currency units.
func (a *Additional) PriceDecimal() float64 {
	return float64(a.PriceCents) / 100
}

// MarshalJSON emits the price as a decimal value
func (a Additional) MarshalJSON() ([]byte, error) {
	type Alias Additional
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(a),
		Price: a.PriceDecimal(),
	})
}

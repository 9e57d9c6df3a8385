package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents one completed checkout transaction. A sale and its items
// are created atomically and are only ever read or wholly replaced by an
// edit; the total always equals the sum of item subtotals.
type Sale struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	PaymentMethodID uuid.UUID      `gorm:"type:uuid;not null;index" json:"payment_method_id"`
	TotalCents      int64          `gorm:"default:0" json:"-"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User          User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Items         []SaleItem    `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// TotalDecimal returns the sale total in currency units.
func (s *Sale) TotalDecimal() float64 {
	return float64(s.TotalCents) / 100
}

// MarshalJSON emits the total as a decimal value
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(s),
		Total: s.TotalDecimal(),
	})
}

// SaleItem is one product entry within a sale. IsDelivery marks whether the
// item was fulfilled as delivery or consumed on premises.
type SaleItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	UnitPriceCents int64          `gorm:"not null" json:"-"`
	IsDelivery     bool           `gorm:"default:false" json:"is_delivery"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product     Product              `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Additionals []SaleItemAdditional `gorm:"foreignKey:SaleItemID" json:"additionals,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SubtotalCents is quantity x unit price plus every additional's
// quantity x unit price.
func (i *SaleItem) SubtotalCents() int64 {
	total := i.UnitPriceCents * int64(i.Quantity)
	for _, a := range i.Additionals {
		total += a.UnitPriceCents * int64(a.Quantity)
	}
	return total
}

// UnitPriceDecimal returns the unit price in currency units.
func (i *SaleItem) UnitPriceDecimal() float64 {
	return float64(i.UnitPriceCents) / 100
}

// MarshalJSON emits the unit price as a decimal value
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(i),
		UnitPrice: i.UnitPriceDecimal(),
	})
}

// SaleItemAdditional is an add-on selection attached to a sale item, with
// its own quantity and price snapshot.
type SaleItemAdditional struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleItemID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_item_id"`
	AdditionalID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"additional_id"`
	Quantity       int            `gorm:"not null;default:1" json:"quantity"`
	UnitPriceCents int64          `gorm:"not null" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Additional Additional `gorm:"foreignKey:AdditionalID" json:"additional,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item additional
func (a *SaleItemAdditional) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItemAdditional model
func (SaleItemAdditional) TableName() string {
	return "sale_item_additionals"
}

// MarshalJSON emits the unit price as a decimal value
func (a SaleItemAdditional) MarshalJSON() ([]byte, error) {
	type Alias SaleItemAdditional
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(a),
		UnitPrice: float64(a.UnitPriceCents) / 100,
	})
}

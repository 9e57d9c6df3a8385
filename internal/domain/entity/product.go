package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item that can be sold at the register.
//
// Stock uses the register's convention: a negative value means the product
// is not stock-tracked (unlimited). Suspended products stay out of new sales
// but remain resolvable for historical records.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	PriceCents    *int64         `gorm:"column:price_cents" json:"-"` // nil when the price is decided at sale time
	Category      *string        `gorm:"size:255;index" json:"category,omitempty"`
	VariablePrice bool           `gorm:"default:false" json:"variable_price"`
	Suspended     bool           `gorm:"default:false" json:"suspended"`
	Stock         int            `gorm:"default:-1" json:"stock"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	AdditionalCategories []AdditionalCategory `gorm:"many2many:product_additional_categories" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// PriceDecimal returns the price in currency units, or nil for unpriced
// variable-price products.
func (p *Product) PriceDecimal() *float64 {
	if p.PriceCents == nil {
		return nil
	}
	v := float64(*p.PriceCents) / 100
	return &v
}

// SetPriceFromDecimal stores a currency value as cents; nil clears the price.
func (p *Product) SetPriceFromDecimal(price *float64) {
	if price == nil {
		p.PriceCents = nil
		return
	}
	cents := int64(*price*100 + 0.5)
	p.PriceCents = &cents
}

// Tracked reports whether stock accounting applies to this product.
func (p *Product) Tracked() bool {
	return p.Stock >= 0
}

// MarshalJSON emits the price as a decimal value
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price *float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.PriceDecimal(),
	})
}

// Category groups products for filtering and labeling; it carries no pricing
// semantics. Products reference categories by name, matching the register's
// free-text category field.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

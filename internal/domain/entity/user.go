package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an operator account: either the store admin or a cashier.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Login     string         `gorm:"size:100;unique;not null" json:"login"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash; empty means login disabled
	Role      enum.Role      `gorm:"size:20;not null;index" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// CanLogin reports whether the account has a usable password. Clearing a
// cashier's password suspends their access without deleting sale history.
func (u *User) CanLogin() bool {
	return u.Password != ""
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Card represents a credit card tracked by the owner. Only non-sensitive
// fields live here; the full number, expiry, CVV and holder name are kept
// in the secrets store keyed by the card ID.
type Card struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	BankName    string          `json:"bank_name" gorm:"size:255;not null"`
	CardName    string          `json:"card_name" gorm:"size:255;not null"`
	Network     string          `json:"network" gorm:"size:64;not null"`
	LastFour    string          `json:"last_four" gorm:"size:4;not null"`
	CreditLimit decimal.Decimal `json:"credit_limit" gorm:"type:decimal(20,2);not null"`
	// BillDay is the day of month the statement is generated (1-31).
	BillDay int `json:"bill_day" gorm:"not null"`
	// DueDay is the day of month payment is due (1-31).
	DueDay    int            `json:"due_day" gorm:"not null"`
	Color     string         `json:"color" gorm:"size:9"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Cycles []BillCycle `json:"cycles,omitempty" gorm:"foreignKey:CardID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CardSecureDetails holds the sensitive card fields. Stored only in the
// secrets store, never in MySQL.
type CardSecureDetails struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"` // MM/YY
	CVV            string `json:"cvv"`
	CardHolderName string `json:"card_holder_name"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderAddress stores the shipping/billing address pair for a direct order.
type OrderAddress struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"column:order_id;type:uuid;not null"`
	Kind        string    `gorm:"column:kind;not null;default:'shipping'"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	Address1    string    `gorm:"column:address_1;not null"`
	Address2    *string   `gorm:"column:address_2"`
	City        string    `gorm:"column:city;not null"`
	Province    string    `gorm:"column:province"`
	PostalCode  string    `gorm:"column:postal_code;not null"`
	CountryCode string    `gorm:"column:country_code;not null;default:'us'"`
	Phone       *string   `gorm:"column:phone"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (OrderAddress) TableName() string {
	return "order_addresses"
}

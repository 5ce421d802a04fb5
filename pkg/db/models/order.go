package models

import (
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	"github.com/google/uuid"
)

// Order is a locally persisted order created through the direct path. The
// legacy path leaves order storage to the commerce backend entirely.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Email           string            `gorm:"column:email;not null"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	Currency        string            `gorm:"column:currency;not null;default:'usd'"`
	RegionID        *string           `gorm:"column:region_id"`
	PaymentIntentID *string           `gorm:"column:payment_intent_id"`
	SubtotalCents   int               `gorm:"column:subtotal_cents;not null"`
	TotalCents      int               `gorm:"column:total_cents;not null"`
	AddressID       *uuid.UUID        `gorm:"column:address_id;type:uuid"`
	Address         *OrderAddress     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	LineItems       []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

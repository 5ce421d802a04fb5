package models

import (
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	"github.com/google/uuid"
)

// OrderLineItem snapshots one purchased cart entry on a direct order.
type OrderLineItem struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	OrderID        uuid.UUID      `gorm:"column:order_id;type:uuid;not null"`
	ProductID      string         `gorm:"column:product_id;not null"`
	VariantID      string         `gorm:"column:variant_id;not null"`
	Title          string         `gorm:"column:title;not null"`
	Variant        string         `gorm:"column:variant"`
	Type           enums.ItemType `gorm:"column:type;not null"`
	UnitPriceCents int            `gorm:"column:unit_price_cents;not null"`
	Quantity       int            `gorm:"column:quantity;not null"`
	Yardage        *string        `gorm:"column:yardage"`
	TotalCents     int            `gorm:"column:total_cents;not null"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (OrderLineItem) TableName() string {
	return "order_line_items"
}

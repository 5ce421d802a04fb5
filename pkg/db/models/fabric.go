package models

import (
	"time"

	"github.com/google/uuid"
)

// Fabric is the canonical catalog listing for a fabric product.
type Fabric struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SKU              string    `gorm:"column:sku;not null" json:"sku"`
	Name             string    `gorm:"column:name;not null" json:"name"`
	Description      *string   `gorm:"column:description" json:"description,omitempty"`
	Category         string    `gorm:"column:category;not null" json:"category"`
	ColorFamily      string    `gorm:"column:color_family;not null" json:"color_family"`
	Pattern          string    `gorm:"column:pattern" json:"pattern"`
	Usage            string    `gorm:"column:usage" json:"usage"`
	PriceCents       int       `gorm:"column:price_cents;not null" json:"price_cents"`
	SwatchPriceCents int       `gorm:"column:swatch_price_cents;not null;default:0" json:"swatch_price_cents"`
	VariantID        string    `gorm:"column:variant_id" json:"variant_id"`
	SwatchVariantID  string    `gorm:"column:swatch_variant_id" json:"swatch_variant_id"`
	Thumbnail        *string   `gorm:"column:thumbnail" json:"thumbnail,omitempty"`
	InStock          bool      `gorm:"column:in_stock;not null;default:true" json:"in_stock"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Fabric) TableName() string {
	return "fabrics"
}

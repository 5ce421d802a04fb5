package orders

import (
	"context"
	"testing"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type gormTx struct {
	db *gorm.DB
}

func (g gormTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderLineItem{}, &models.OrderAddress{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB, enabled bool) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Tx:                    gormTx{db: db},
		Repo:                  NewRepository(db),
		LegacyCheckoutEnabled: enabled,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validInput() CreateOrderInput {
	yardage := decimal.NewFromFloat(3.5)
	return CreateOrderInput{
		Email: "shopper@example.com",
		Items: []CreateItemInput{
			{
				ProductID:      "P1",
				VariantID:      "V1",
				Title:          "Emerald Velvet",
				Variant:        "Swatch Sample",
				Type:           enums.ItemTypeSwatch,
				UnitPriceCents: 500,
				Quantity:       2,
			},
			{
				ProductID:      "P1",
				VariantID:      "V2",
				Title:          "Emerald Velvet",
				Variant:        "By the yard",
				Type:           enums.ItemTypeFabric,
				UnitPriceCents: 4500,
				Quantity:       1,
				Yardage:        &yardage,
			},
		},
		ShippingAddress: &AddressInput{
			Address1:    "1 Bobbin Lane",
			City:        "Tulsa",
			PostalCode:  "74104",
			CountryCode: "us",
		},
	}
}

func TestCreateDirectPersistsAllRows(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, true)

	order, err := svc.CreateDirect(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(order.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.LineItems))
	}
	// swatch 2*500 + fabric 3.5yd*4500
	if order.SubtotalCents != 16750 {
		t.Fatalf("expected subtotal 16750, got %d", order.SubtotalCents)
	}
	if order.Address == nil || order.Address.Kind != "shipping" {
		t.Fatalf("expected shipping address attached, got %+v", order.Address)
	}
	if order.AddressID == nil {
		t.Fatal("expected linking update to set address_id")
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
}

func TestCreateDirectRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, true)

	// Dropping the address table makes the third insert fail mid-transaction.
	if err := db.Migrator().DropTable(&models.OrderAddress{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.CreateDirect(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected transaction failure")
	}

	var orderCount, itemCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if err := db.Model(&models.OrderLineItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if orderCount != 0 || itemCount != 0 {
		t.Fatalf("expected full rollback, got %d orders and %d items", orderCount, itemCount)
	}
}

func TestCreateDirectHonorsFeatureGate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, false)

	_, err := svc.CreateDirect(context.Background(), validInput())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeFeatureDisabled {
		t.Fatalf("expected LEGACY_CHECKOUT_DISABLED, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows written, got %d", count)
	}
}

func TestCreateDirectRejectsUnknownItemType(t *testing.T) {
	svc := newTestService(t, newTestDB(t), true)

	input := validInput()
	input.Items[0].Type = "bolt"
	_, err := svc.CreateDirect(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByIDMissingOrder(t *testing.T) {
	svc := newTestService(t, newTestDB(t), true)

	_, err := svc.GetByID(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

package persistence

import (
	"testing"

	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SupplierModel{},
		&models.PurchaseModel{},
		&models.FreightCostModel{},
		&models.CustomsDeclarationModel{},
		&models.VehicleModel{},
		&models.CustomerModel{},
		&models.UserModel{},
		&models.SaleModel{},
		&models.InvoiceModel{},
		&models.PaymentModel{},
		&models.CommissionTierModel{},
		&models.CommissionPeriodModel{},
		&models.CommissionSummaryModel{},
		&models.CommissionPayoutModel{},
	)
	require.NoError(t, err)

	return db
}

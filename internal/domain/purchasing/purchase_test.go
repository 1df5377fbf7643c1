package purchasing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartrade/backend/internal/domain/shared/valueobject"
)

func createTestPurchase(t *testing.T) *Purchase {
	p, err := NewPurchase(
		time.Now().AddDate(0, 0, -30),
		uuid.New(),
		decimal.NewFromInt(10000),
		valueobject.USD,
		decimal.NewFromInt(135),
	)
	require.NoError(t, err)
	return p
}

func createTestFreight(t *testing.T) *FreightCost {
	f, err := NewFreightCost(
		FreightMethodSea,
		decimal.NewFromInt(40000),
		valueobject.DZD,
		decimal.NewFromInt(1),
		decimal.NewFromInt(6000),
		decimal.NewFromInt(4000),
	)
	require.NoError(t, err)
	return f
}

func createTestCustoms(t *testing.T) *CustomsDeclaration {
	c, err := NewCustomsDeclaration(
		time.Now().AddDate(0, 0, -10),
		"D-2024-0042",
		decimal.NewFromInt(1400000),
		decimal.NewFromInt(10),
		decimal.NewFromInt(120000),
		decimal.NewFromInt(19),
		decimal.NewFromInt(70000),
		decimal.NewFromInt(10000),
	)
	require.NoError(t, err)
	return c
}

func TestNewPurchase(t *testing.T) {
	p := createTestPurchase(t)

	assert.True(t, p.PriceDZD.Equal(decimal.NewFromInt(1350000)))
	assert.Equal(t, 1, p.GetVersion())
	assert.Len(t, p.GetDomainEvents(), 1)
	assert.Equal(t, EventTypePurchaseCreated, p.GetDomainEvents()[0].EventType())
}

func TestNewPurchase_Validation(t *testing.T) {
	supplierID := uuid.New()
	fob := decimal.NewFromInt(10000)
	rate := decimal.NewFromInt(135)
	yesterday := time.Now().AddDate(0, 0, -1)

	tests := []struct {
		name string
		fn   func() (*Purchase, error)
	}{
		{"future date", func() (*Purchase, error) {
			return NewPurchase(time.Now().AddDate(0, 0, 2), supplierID, fob, valueobject.USD, rate)
		}},
		{"zero date", func() (*Purchase, error) {
			return NewPurchase(time.Time{}, supplierID, fob, valueobject.USD, rate)
		}},
		{"nil supplier", func() (*Purchase, error) {
			return NewPurchase(yesterday, uuid.Nil, fob, valueobject.USD, rate)
		}},
		{"negative fob", func() (*Purchase, error) {
			return NewPurchase(yesterday, supplierID, decimal.NewFromInt(-1), valueobject.USD, rate)
		}},
		{"invalid currency", func() (*Purchase, error) {
			return NewPurchase(yesterday, supplierID, fob, "XXX", rate)
		}},
		{"zero rate", func() (*Purchase, error) {
			return NewPurchase(yesterday, supplierID, fob, valueobject.USD, decimal.Zero)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.Error(t, err)
		})
	}
}

func TestPurchase_LandedCost_PurchaseOnly(t *testing.T) {
	p := createTestPurchase(t)

	// With no freight and no customs the landed cost is the purchase price alone.
	assert.True(t, p.LandedCost().Amount().Equal(decimal.NewFromInt(1350000)))
}

func TestPurchase_LandedCost_AllSegments(t *testing.T) {
	p := createTestPurchase(t)
	require.NoError(t, p.AttachFreight(createTestFreight(t)))
	require.NoError(t, p.AttachCustoms(createTestCustoms(t)))

	// 1,350,000 + 50,000 + 200,000
	assert.True(t, p.LandedCost().Amount().Equal(decimal.NewFromInt(1600000)))
}

func TestPurchase_LandedCost_Additive(t *testing.T) {
	p := createTestPurchase(t)
	freight := createTestFreight(t)
	customs := createTestCustoms(t)

	expected := p.PriceDZD.Add(freight.TotalDZD).Add(customs.TotalDZD)

	require.NoError(t, p.AttachFreight(freight))
	require.NoError(t, p.AttachCustoms(customs))

	assert.True(t, p.LandedCost().Amount().Equal(expected))
}

func TestPurchase_AttachFreight_Duplicate(t *testing.T) {
	p := createTestPurchase(t)
	require.NoError(t, p.AttachFreight(createTestFreight(t)))

	err := p.AttachFreight(createTestFreight(t))
	assert.Error(t, err)
}

func TestPurchase_AttachCustoms_Duplicate(t *testing.T) {
	p := createTestPurchase(t)
	require.NoError(t, p.AttachCustoms(createTestCustoms(t)))

	err := p.AttachCustoms(createTestCustoms(t))
	assert.Error(t, err)
}

func TestPurchase_CIFValue(t *testing.T) {
	p := createTestPurchase(t)
	assert.True(t, p.CIFValue().Amount().Equal(decimal.NewFromInt(1350000)))

	require.NoError(t, p.AttachFreight(createTestFreight(t)))
	assert.True(t, p.CIFValue().Amount().Equal(decimal.NewFromInt(1400000)))
}

func TestNewFreightCost_Totals(t *testing.T) {
	// 2000 USD at 135 plus 6,000 insurance and 4,000 other costs.
	f, err := NewFreightCost(
		FreightMethodAir,
		decimal.NewFromInt(2000),
		valueobject.USD,
		decimal.NewFromInt(135),
		decimal.NewFromInt(6000),
		decimal.NewFromInt(4000),
	)
	require.NoError(t, err)
	assert.True(t, f.TotalDZD.Equal(decimal.NewFromInt(280000)))
}

func TestNewFreightCost_InvalidMethod(t *testing.T) {
	_, err := NewFreightCost(
		FreightMethod("rail"),
		decimal.NewFromInt(100),
		valueobject.DZD,
		decimal.NewFromInt(1),
		decimal.Zero,
		decimal.Zero,
	)
	assert.Error(t, err)
}

func TestNewCustomsDeclaration_Totals(t *testing.T) {
	c := createTestCustoms(t)
	assert.True(t, c.TotalDZD.Equal(decimal.NewFromInt(200000)))
}

func TestNewCustomsDeclarationFromCIF(t *testing.T) {
	// duty = 1,400,000 * 10% = 140,000
	// vat  = (1,400,000 + 140,000) * 19% = 292,600
	c, err := NewCustomsDeclarationFromCIF(
		time.Now().AddDate(0, 0, -5),
		"D-2024-0043",
		decimal.NewFromInt(1400000),
		decimal.NewFromInt(10),
		decimal.NewFromInt(19),
		decimal.NewFromInt(5000),
	)
	require.NoError(t, err)
	assert.True(t, c.ImportDutyDZD.Equal(decimal.NewFromInt(140000)))
	assert.True(t, c.VATAmountDZD.Equal(decimal.NewFromInt(292600)))
	assert.True(t, c.TotalDZD.Equal(decimal.NewFromInt(437600)))
}

func TestCustomsDeclaration_MarkCleared(t *testing.T) {
	c := createTestCustoms(t)

	err := c.MarkCleared(c.DeclarationDate.AddDate(0, 0, -1))
	assert.Error(t, err)
	assert.False(t, c.IsCleared)

	err = c.MarkCleared(c.DeclarationDate.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, c.IsCleared)
	require.NotNil(t, c.ClearanceDate)
}

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("Chery Export Co", "China", "Li Wei", "+8613800000000", "", valueobject.USD)
	require.NoError(t, err)
	assert.True(t, s.IsActive)
	assert.Equal(t, "China", s.Country)
}

func TestNewSupplier_MissingContact(t *testing.T) {
	_, err := NewSupplier("Chery Export Co", "China", "Li Wei", "", "", valueobject.USD)
	assert.Error(t, err)
}

package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVehicle(t *testing.T) *Vehicle {
	v, err := NewVehicle("LVSHCAMB4KE012345", "Chery", "Tiggo 8", 2023, "White", uuid.New())
	require.NoError(t, err)
	return v
}

func createAvailableVehicle(t *testing.T) *Vehicle {
	v := createTestVehicle(t)
	require.NoError(t, v.MarkAtCustoms())
	require.NoError(t, v.MarkAvailable())
	return v
}

func TestVehicleStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  VehicleStatus
		isValid bool
	}{
		{VehicleStatusInTransit, true},
		{VehicleStatusAtCustoms, true},
		{VehicleStatusAvailable, true},
		{VehicleStatusReserved, true},
		{VehicleStatusSold, true},
		{VehicleStatus("scrapped"), false},
		{VehicleStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestVehicleStatus_IsSellable(t *testing.T) {
	assert.True(t, VehicleStatusAvailable.IsSellable())
	assert.True(t, VehicleStatusReserved.IsSellable())
	assert.False(t, VehicleStatusInTransit.IsSellable())
	assert.False(t, VehicleStatusAtCustoms.IsSellable())
	assert.False(t, VehicleStatusSold.IsSellable())
}

func TestNewVehicle(t *testing.T) {
	v := createTestVehicle(t)

	assert.Equal(t, VehicleStatusInTransit, v.Status)
	assert.Len(t, v.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeVehicleRegistered, v.GetDomainEvents()[0].EventType())
}

func TestNewVehicle_Validation(t *testing.T) {
	purchaseID := uuid.New()

	tests := []struct {
		name string
		fn   func() (*Vehicle, error)
	}{
		{"short vin", func() (*Vehicle, error) {
			return NewVehicle("SHORT", "Chery", "Tiggo 8", 2023, "White", purchaseID)
		}},
		{"empty make", func() (*Vehicle, error) {
			return NewVehicle("LVSHCAMB4KE012345", "", "Tiggo 8", 2023, "White", purchaseID)
		}},
		{"empty model", func() (*Vehicle, error) {
			return NewVehicle("LVSHCAMB4KE012345", "Chery", "", 2023, "White", purchaseID)
		}},
		{"year too old", func() (*Vehicle, error) {
			return NewVehicle("LVSHCAMB4KE012345", "Chery", "Tiggo 8", 1999, "White", purchaseID)
		}},
		{"year too new", func() (*Vehicle, error) {
			return NewVehicle("LVSHCAMB4KE012345", "Chery", "Tiggo 8", time.Now().Year()+2, "White", purchaseID)
		}},
		{"nil purchase", func() (*Vehicle, error) {
			return NewVehicle("LVSHCAMB4KE012345", "Chery", "Tiggo 8", 2023, "White", uuid.Nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.Error(t, err)
		})
	}
}

func TestVehicle_ArrivalChain(t *testing.T) {
	v := createTestVehicle(t)

	require.NoError(t, v.MarkAtCustoms())
	assert.Equal(t, VehicleStatusAtCustoms, v.Status)

	require.NoError(t, v.MarkAvailable())
	assert.Equal(t, VehicleStatusAvailable, v.Status)

	// Cannot go back to customs once available.
	assert.Error(t, v.MarkAtCustoms())
}

func TestVehicle_Reserve(t *testing.T) {
	v := createAvailableVehicle(t)
	traderID := uuid.New()

	require.NoError(t, v.Reserve(traderID, 0))
	assert.Equal(t, VehicleStatusReserved, v.Status)
	require.NotNil(t, v.ReservedBy)
	assert.Equal(t, traderID, *v.ReservedBy)
	require.NotNil(t, v.ReservationExpires)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, DefaultReservationDays), *v.ReservationExpires, time.Minute)
}

func TestVehicle_Reserve_NotAvailable(t *testing.T) {
	v := createTestVehicle(t)
	err := v.Reserve(uuid.New(), 7)
	assert.Error(t, err)

	v = createAvailableVehicle(t)
	require.NoError(t, v.Reserve(uuid.New(), 7))
	// A reserved vehicle cannot be reserved again.
	assert.Error(t, v.Reserve(uuid.New(), 7))
}

func TestVehicle_ReleaseReservation(t *testing.T) {
	v := createAvailableVehicle(t)
	require.NoError(t, v.Reserve(uuid.New(), 7))

	require.NoError(t, v.ReleaseReservation())
	assert.Equal(t, VehicleStatusAvailable, v.Status)
	assert.Nil(t, v.ReservedBy)
	assert.Nil(t, v.ReservationDate)
	assert.Nil(t, v.ReservationExpires)

	assert.Error(t, v.ReleaseReservation())
}

func TestVehicle_MarkSold(t *testing.T) {
	v := createAvailableVehicle(t)
	require.NoError(t, v.Reserve(uuid.New(), 7))

	require.NoError(t, v.MarkSold())
	assert.Equal(t, VehicleStatusSold, v.Status)
	assert.Nil(t, v.ReservedBy)

	// Terminal: cannot sell twice or re-reserve.
	assert.Error(t, v.MarkSold())
	assert.Error(t, v.Reserve(uuid.New(), 7))
}

func TestVehicle_MarkSold_NotSellable(t *testing.T) {
	v := createTestVehicle(t)
	assert.Error(t, v.MarkSold())
}

func TestVehicle_ReservationExpired(t *testing.T) {
	v := createAvailableVehicle(t)
	assert.False(t, v.ReservationExpired())

	require.NoError(t, v.Reserve(uuid.New(), 7))
	assert.False(t, v.ReservationExpired())

	past := time.Now().Add(-time.Hour)
	v.ReservationExpires = &past
	assert.True(t, v.ReservationExpired())
}

func TestVehicle_DaysInStock(t *testing.T) {
	v := createTestVehicle(t)
	assert.Equal(t, 0, v.DaysInStock())

	v = createAvailableVehicle(t)
	v.CreatedAt = time.Now().AddDate(0, 0, -120)
	assert.Equal(t, 120, v.DaysInStock())
	assert.True(t, v.IsSlowMoving())
}

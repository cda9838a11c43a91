package parcel_test

import (
	"testing"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParty(t *testing.T, name, county, phone string) parcel.Party {
	t.Helper()

	zone, err := kernel.NewZone(county)
	require.NoError(t, err)
	phoneNumber, err := kernel.NewPhoneNumber(phone)
	require.NoError(t, err)

	party, err := parcel.NewParty(name, "42 Moi Avenue", zone, phoneNumber, "", "")
	require.NoError(t, err)
	return party
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	cost, err := kernel.NewMoney(950)
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		parcel.GenerateTrackingCode(),
		kernel.NewUUID(),
		testParty(t, "Alice Wanjiku", "Nairobi", "0712345678"),
		testParty(t, "Bob Otieno", "Kiambu", "0722000111"),
		"books",
		2.5,
		nil,
		"",
		parcel.PayNow,
		cost,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("should create parcel in pending pickup with payment pending", func(t *testing.T) {
		p := testParcel(t)

		assert.Equal(t, parcel.PendingPickup, p.Status())
		assert.Equal(t, parcel.PaymentPending, p.PaymentStatus())
		assert.Equal(t, 950, p.Cost().Amount())
		assert.Equal(t, p.Cost(), p.TotalCost())
		assert.Regexp(t, `^TRK\d{8}$`, p.TrackingCode().String())
		assert.NoError(t, p.Validate())
		assert.False(t, p.CreatedAt().IsZero())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		cost, _ := kernel.NewMoney(500)
		for _, weight := range []float64{0, -1.5} {
			_, err := parcel.NewParcel(
				kernel.NewUUID(),
				parcel.GenerateTrackingCode(),
				kernel.NewUUID(),
				testParty(t, "Alice", "Nairobi", "0712345678"),
				testParty(t, "Bob", "Kiambu", "0722000111"),
				"books",
				weight,
				nil,
				"",
				parcel.PayOnDelivery,
				cost,
			)
			require.Error(t, err, "weight %v", weight)
		}
	})

	t.Run("should reject zero-value parties and ids", func(t *testing.T) {
		cost, _ := kernel.NewMoney(500)
		_, err := parcel.NewParcel(
			kernel.UUID{},
			parcel.TrackingCode{},
			kernel.UUID{},
			parcel.Party{},
			parcel.Party{},
			"books",
			1,
			nil,
			"",
			parcel.PaymentMethodUnknown,
			cost,
		)
		require.Error(t, err)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("nil and zero-value parcels fail", func(t *testing.T) {
		var nilParcel *parcel.Parcel
		require.ErrorIs(t, nilParcel.Validate(), parcel.ErrParcelIsNotConstructed)

		zero := &parcel.Parcel{}
		require.ErrorIs(t, zero.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_Lifecycle(t *testing.T) {
	t.Run("assign then complete", func(t *testing.T) {
		p := testParcel(t)

		require.NoError(t, p.Assign())
		assert.Equal(t, parcel.InTransit, p.Status())

		require.NoError(t, p.Complete())
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("cancel only before pickup", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.Cancel())
		assert.Equal(t, parcel.Cancelled, p.Status())

		assigned := testParcel(t)
		require.NoError(t, assigned.Assign())
		require.Error(t, assigned.Cancel())
		assert.Equal(t, parcel.InTransit, assigned.Status(), "failed cancel must not mutate status")
	})

	t.Run("delivered parcel cannot be cancelled or reassigned", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.Assign())
		require.NoError(t, p.Complete())

		require.Error(t, p.Cancel())
		require.Error(t, p.Assign())
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("update status follows forward rules", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.UpdateStatus(parcel.InTransit))
		require.Error(t, p.UpdateStatus(parcel.PendingPickup))
		require.NoError(t, p.UpdateStatus(parcel.Delivered))
	})
}

func TestParcel_Payment(t *testing.T) {
	t.Run("complete payment leaves operational status alone", func(t *testing.T) {
		p := testParcel(t)
		p.CompletePayment()

		assert.Equal(t, parcel.PaymentCompleted, p.PaymentStatus())
		assert.Equal(t, parcel.PendingPickup, p.Status())
	})

	t.Run("force deliver moves any non-final parcel to delivered", func(t *testing.T) {
		fromPending := testParcel(t)
		require.NoError(t, fromPending.ForceDeliver())
		assert.Equal(t, parcel.Delivered, fromPending.Status())

		fromTransit := testParcel(t)
		require.NoError(t, fromTransit.Assign())
		require.NoError(t, fromTransit.ForceDeliver())
		assert.Equal(t, parcel.Delivered, fromTransit.Status())
	})

	t.Run("force deliver is idempotent on delivered", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.ForceDeliver())
		require.NoError(t, p.ForceDeliver())
	})

	t.Run("force deliver fails on cancelled", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.Cancel())
		require.Error(t, p.ForceDeliver())
		assert.Equal(t, parcel.Cancelled, p.Status())
	})

	t.Run("fail payment allows a later attempt to complete", func(t *testing.T) {
		p := testParcel(t)
		p.FailPayment()
		assert.Equal(t, parcel.PaymentFailed, p.PaymentStatus())
		p.CompletePayment()
		assert.Equal(t, parcel.PaymentCompleted, p.PaymentStatus())
	})
}

func TestParcel_Annotations(t *testing.T) {
	p := testParcel(t)

	p.UpdateLocation("Thika Road depot")
	assert.Equal(t, "Thika Road depot", p.CurrentLocation())

	eta := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p.SetEstimatedDelivery(eta)
	require.NotNil(t, p.EstimatedDelivery())
	assert.Equal(t, eta, *p.EstimatedDelivery())

	adjusted, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	p.AdjustTotalCost(adjusted)
	assert.Equal(t, 1200, p.TotalCost().Amount())
	assert.Equal(t, 950, p.Cost().Amount())
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should restore a persisted parcel", func(t *testing.T) {
		created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
		updated := created.Add(time.Hour)
		cost, _ := kernel.NewMoney(950)
		total, _ := kernel.NewMoney(1000)
		code, err := parcel.ParseTrackingCode("TRK12345678")
		require.NoError(t, err)

		p, err := parcel.RestoreParcel(
			kernel.NewUUID(),
			code,
			kernel.NewUUID(),
			testParty(t, "Alice", "Nairobi", "0712345678"),
			testParty(t, "Bob", "Kiambu", "0722000111"),
			"books",
			2.5,
			nil,
			"fragile",
			parcel.PayNow,
			parcel.PaymentCompleted,
			parcel.InTransit,
			cost,
			total,
			"Westlands hub",
			nil,
			created,
			updated,
		)
		require.NoError(t, err)

		assert.Equal(t, parcel.InTransit, p.Status())
		assert.Equal(t, parcel.PaymentCompleted, p.PaymentStatus())
		assert.Equal(t, 1000, p.TotalCost().Amount())
		assert.Equal(t, "Westlands hub", p.CurrentLocation())
		assert.Equal(t, created, p.CreatedAt())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		cost, _ := kernel.NewMoney(950)
		code, err := parcel.ParseTrackingCode("TRK12345678")
		require.NoError(t, err)

		_, err = parcel.RestoreParcel(
			kernel.NewUUID(),
			code,
			kernel.NewUUID(),
			testParty(t, "Alice", "Nairobi", "0712345678"),
			testParty(t, "Bob", "Kiambu", "0722000111"),
			"books",
			2.5,
			nil,
			"",
			parcel.PayNow,
			parcel.PaymentPending,
			parcel.Unknown,
			cost,
			cost,
			"",
			nil,
			time.Now(),
			time.Now(),
		)
		require.Error(t, err)
	})
}

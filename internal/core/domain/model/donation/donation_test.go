package donation_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingDonation(t *testing.T, createdAt time.Time) *donation.Donation {
	t.Helper()

	d, err := donation.NewDonation(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"30 vegetable curries",
		30,
		"12 Market Street",
		createdAt,
	)
	require.NoError(t, err)
	return d
}

func TestNewDonation(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("creates pending donation", func(t *testing.T) {
		d := newPendingDonation(t, createdAt)

		assert.Equal(t, donation.Pending, d.Status())
		assert.Nil(t, d.Courier())
		assert.Nil(t, d.TargetCamp())
		assert.Nil(t, d.AcceptedAt())
		assert.Nil(t, d.Rating())
		assert.Equal(t, createdAt, d.CreatedAt())
	})

	t.Run("requires food description", func(t *testing.T) {
		_, err := donation.NewDonation(kernel.NewUUID(), kernel.NewUUID(), "", 10, "addr", createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires pickup address", func(t *testing.T) {
		_, err := donation.NewDonation(kernel.NewUUID(), kernel.NewUUID(), "soup", 10, "", createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires positive quantity", func(t *testing.T) {
		_, err := donation.NewDonation(kernel.NewUUID(), kernel.NewUUID(), "soup", 0, "addr", createdAt)
		require.Error(t, err)
	})

	t.Run("requires valid ids", func(t *testing.T) {
		_, err := donation.NewDonation(kernel.UUID{}, kernel.NewUUID(), "soup", 10, "addr", createdAt)
		require.Error(t, err)

		_, err = donation.NewDonation(kernel.NewUUID(), kernel.UUID{}, "soup", 10, "addr", createdAt)
		require.Error(t, err)
	})
}

func TestDonation_Validate(t *testing.T) {
	t.Run("constructed donation is valid", func(t *testing.T) {
		d := newPendingDonation(t, time.Now())
		require.NoError(t, d.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var d donation.Donation
		require.ErrorIs(t, d.Validate(), donation.ErrDonationIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var d *donation.Donation
		require.ErrorIs(t, d.Validate(), donation.ErrDonationIsNotConstructed)
	})
}

func TestDonation_Accept(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("pending donation accepts", func(t *testing.T) {
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		acceptedAt := now.Add(5 * time.Minute)

		require.NoError(t, d.Accept(courierID, acceptedAt))

		assert.Equal(t, donation.Accepted, d.Status())
		require.NotNil(t, d.Courier())
		assert.True(t, d.Courier().IsEqual(courierID))
		require.NotNil(t, d.AcceptedAt())
		assert.Equal(t, acceptedAt, *d.AcceptedAt())
	})

	t.Run("second accept fails", func(t *testing.T) {
		d := newPendingDonation(t, now)
		first := kernel.NewUUID()
		require.NoError(t, d.Accept(first, now))

		err := d.Accept(kernel.NewUUID(), now)

		require.Error(t, err)
		assert.True(t, d.Courier().IsEqual(first), "winner keeps the assignment")
	})

	t.Run("invalid courier id fails", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.Error(t, d.Accept(kernel.UUID{}, now))
		assert.Equal(t, donation.Pending, d.Status())
	})
}

func TestDonation_Collect(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("assigned courier collects", func(t *testing.T) {
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Accept(courierID, now))

		collectedAt := now.Add(10 * time.Minute)
		require.NoError(t, d.Collect(courierID, collectedAt))

		assert.Equal(t, donation.Collected, d.Status())
		require.NotNil(t, d.CollectedAt())
		assert.Equal(t, collectedAt, *d.CollectedAt())
	})

	t.Run("other courier is rejected", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.NoError(t, d.Accept(kernel.NewUUID(), now))

		err := d.Collect(kernel.NewUUID(), now)

		require.ErrorIs(t, err, donation.ErrCourierMismatch)
		assert.Equal(t, donation.Accepted, d.Status())
	})

	t.Run("pending donation cannot be collected", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.Error(t, d.Collect(kernel.NewUUID(), now))
	})
}

func TestDonation_DeliverTo(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	campID := kernel.NewUUID()

	t.Run("accepted delivers directly", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.NoError(t, d.Accept(kernel.NewUUID(), now))

		deliveredAt := now.Add(20 * time.Minute)
		require.NoError(t, d.DeliverTo(campID, deliveredAt))

		assert.Equal(t, donation.Verifying, d.Status())
		require.NotNil(t, d.TargetCamp())
		assert.True(t, d.TargetCamp().IsEqual(campID))
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, deliveredAt, *d.DeliveredAt())
	})

	t.Run("collected delivers", func(t *testing.T) {
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Accept(courierID, now))
		require.NoError(t, d.Collect(courierID, now))

		require.NoError(t, d.DeliverTo(campID, now))
		assert.Equal(t, donation.Verifying, d.Status())
	})

	t.Run("pending cannot deliver", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.Error(t, d.DeliverTo(campID, now))
		assert.Nil(t, d.TargetCamp())
	})
}

func TestDonation_Confirm(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	d := newPendingDonation(t, now)
	courierID := kernel.NewUUID()
	require.NoError(t, d.Accept(courierID, now))
	require.NoError(t, d.Collect(courierID, now))
	require.NoError(t, d.DeliverTo(kernel.NewUUID(), now))

	require.NoError(t, d.Confirm())
	assert.Equal(t, donation.Delivered, d.Status())

	require.Error(t, d.Confirm(), "delivered is terminal")
}

func TestDonation_Rate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	deliveredDonation := func(t *testing.T) *donation.Donation {
		t.Helper()
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Accept(courierID, now))
		require.NoError(t, d.Collect(courierID, now))
		require.NoError(t, d.DeliverTo(kernel.NewUUID(), now))
		require.NoError(t, d.Confirm())
		return d
	}

	t.Run("delivered donation can be rated", func(t *testing.T) {
		d := deliveredDonation(t)

		require.NoError(t, d.Rate(5, "great"))

		require.NotNil(t, d.Rating())
		assert.Equal(t, 5, *d.Rating())
		assert.Equal(t, "great", d.Review())
	})

	t.Run("re-rating overwrites", func(t *testing.T) {
		d := deliveredDonation(t)
		require.NoError(t, d.Rate(3, "ok"))

		require.NoError(t, d.Rate(4, "better than remembered"))

		assert.Equal(t, 4, *d.Rating())
		assert.Equal(t, "better than remembered", d.Review())
	})

	t.Run("score out of range fails", func(t *testing.T) {
		d := deliveredDonation(t)

		require.ErrorIs(t, d.Rate(0, ""), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, d.Rate(6, ""), errs.ErrValueIsOutOfRange)
		assert.Nil(t, d.Rating())
	})

	t.Run("undelivered donation cannot be rated", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.Error(t, d.Rate(5, "premature"))
	})
}

func TestDonation_ReleasePickup(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("accepted pickup releases", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.NoError(t, d.Accept(kernel.NewUUID(), now))

		require.NoError(t, d.ReleasePickup())

		assert.Equal(t, donation.Pending, d.Status())
		assert.Nil(t, d.Courier())
		assert.Nil(t, d.AcceptedAt())
	})

	t.Run("collected pickup is never released", func(t *testing.T) {
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Accept(courierID, now))
		require.NoError(t, d.Collect(courierID, now))

		require.Error(t, d.ReleasePickup())
		assert.Equal(t, donation.Collected, d.Status())
		assert.NotNil(t, d.Courier())
	})
}

func TestDonation_PickupExpired(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	t.Run("fresh pickup has not expired", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.NoError(t, d.Accept(kernel.NewUUID(), now))

		assert.False(t, d.PickupExpired(now.Add(29*time.Minute), window))
	})

	t.Run("stale pickup has expired", func(t *testing.T) {
		d := newPendingDonation(t, now)
		require.NoError(t, d.Accept(kernel.NewUUID(), now))

		assert.True(t, d.PickupExpired(now.Add(31*time.Minute), window))
	})

	t.Run("collected donation never expires", func(t *testing.T) {
		d := newPendingDonation(t, now)
		courierID := kernel.NewUUID()
		require.NoError(t, d.Accept(courierID, now))
		require.NoError(t, d.Collect(courierID, now))

		assert.False(t, d.PickupExpired(now.Add(24*time.Hour), window))
	})
}

func TestRestoreDonation(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	courierID := kernel.NewUUID()
	campID := kernel.NewUUID()
	rating := 4

	t.Run("restores delivered donation", func(t *testing.T) {
		acceptedAt := now.Add(time.Minute)
		collectedAt := now.Add(2 * time.Minute)
		deliveredAt := now.Add(3 * time.Minute)

		d, err := donation.RestoreDonation(
			kernel.NewUUID(), kernel.NewUUID(), "bread", 12, "addr",
			donation.Delivered, &courierID, &campID,
			now, &acceptedAt, &collectedAt, &deliveredAt, &rating, "solid",
		)

		require.NoError(t, err)
		assert.Equal(t, donation.Delivered, d.Status())
		assert.Equal(t, 4, *d.Rating())
		assert.Equal(t, "solid", d.Review())
	})

	t.Run("rejects courier on pending donation", func(t *testing.T) {
		_, err := donation.RestoreDonation(
			kernel.NewUUID(), kernel.NewUUID(), "bread", 12, "addr",
			donation.Pending, &courierID, nil,
			now, nil, nil, nil, nil, "",
		)
		require.Error(t, err)
	})

	t.Run("rejects missing courier on accepted donation", func(t *testing.T) {
		acceptedAt := now
		_, err := donation.RestoreDonation(
			kernel.NewUUID(), kernel.NewUUID(), "bread", 12, "addr",
			donation.Accepted, nil, nil,
			now, &acceptedAt, nil, nil, nil, "",
		)
		require.Error(t, err)
	})

	t.Run("rejects camp before verifying", func(t *testing.T) {
		acceptedAt := now
		_, err := donation.RestoreDonation(
			kernel.NewUUID(), kernel.NewUUID(), "bread", 12, "addr",
			donation.Accepted, &courierID, &campID,
			now, &acceptedAt, nil, nil, nil, "",
		)
		require.Error(t, err)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		acceptedAt := now
		deliveredAt := now
		badRating := 9
		_, err := donation.RestoreDonation(
			kernel.NewUUID(), kernel.NewUUID(), "bread", 12, "addr",
			donation.Delivered, &courierID, &campID,
			now, &acceptedAt, nil, &deliveredAt, &badRating, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

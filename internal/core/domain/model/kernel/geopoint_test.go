package kernel_test

import (
	"testing"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(28.6139, 77.2090)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 28.6139, point.Latitude(), 1e-9)
		assert.InDelta(t, 77.2090, point.Longitude(), 1e-9)
	})

	t.Run("boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180)
		require.NoError(t, err)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var point kernel.GeoPoint
		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	p1, _ := kernel.NewGeoPoint(28.6139, 77.2090)
	p2, _ := kernel.NewGeoPoint(28.6139, 77.2090)
	p3, _ := kernel.NewGeoPoint(19.0760, 72.8777)

	equal, err := p1.IsEqual(p2)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = p1.IsEqual(p3)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.GeoPoint
	_, err = p1.IsEqual(zero)
	require.Error(t, err)
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(28.6139, 77.2090)

		meters, err := point.DistanceTo(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, meters, 1e-6)
	})

	t.Run("known city pair", func(t *testing.T) {
		delhi, _ := kernel.NewGeoPoint(28.6139, 77.2090)
		mumbai, _ := kernel.NewGeoPoint(19.0760, 72.8777)

		meters, err := delhi.DistanceTo(mumbai)

		require.NoError(t, err)
		// Great-circle distance Delhi-Mumbai is roughly 1,150 km.
		assert.InDelta(t, 1_150_000, meters, 20_000)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 10)
		b, _ := kernel.NewGeoPoint(11, 11)

		ab, err := a.DistanceTo(b)
		require.NoError(t, err)
		ba, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-6)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(10, 10)
		var zero kernel.GeoPoint

		_, err := point.DistanceTo(zero)
		require.Error(t, err)
	})
}

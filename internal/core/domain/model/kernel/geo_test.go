package kernel_test

import (
	"testing"

	"sharebite/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with coordinates and address", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(12.9716, 77.5946, "Bangalore")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 12.9716, p.Latitude(), 1e-9)
		assert.InDelta(t, 77.5946, p.Longitude(), 1e-9)
		assert.Equal(t, "Bangalore", p.Address())
		assert.True(t, p.HasCoordinates())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-90, 180, "")
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(90, -180, "")
		require.NoError(t, err)
	})

	t.Run("should fail on latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail on longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -200, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestNewAddressGeoPoint(t *testing.T) {
	t.Run("should create point without coordinates", func(t *testing.T) {
		p := kernel.NewAddressGeoPoint("12 Main St")

		require.NoError(t, p.Validate())
		assert.False(t, p.HasCoordinates())
		assert.Equal(t, "12 Main St", p.Address())
	})

	t.Run("empty address is allowed", func(t *testing.T) {
		p := kernel.NewAddressGeoPoint("")

		require.NoError(t, p.Validate())
		assert.False(t, p.HasCoordinates())
	})
}

func TestGeoPoint_DistanceKmTo(t *testing.T) {
	t.Run("known distance between cities", func(t *testing.T) {
		// Bangalore to Chennai, roughly 290 km great-circle.
		bangalore, _ := kernel.NewGeoPoint(12.9716, 77.5946, "")
		chennai, _ := kernel.NewGeoPoint(13.0827, 80.2707, "")

		d, err := bangalore.DistanceKmTo(chennai)

		require.NoError(t, err)
		assert.InDelta(t, 290, d, 10)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(10, 10, "")

		d, err := p.DistanceKmTo(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("fails when a point has no coordinates", func(t *testing.T) {
		withCoords, _ := kernel.NewGeoPoint(10, 10, "")
		addressOnly := kernel.NewAddressGeoPoint("somewhere")

		_, err := withCoords.DistanceKmTo(addressOnly)
		require.Error(t, err)
		assert.Equal(t, kernel.ErrNoCoordinates, err)

		_, err = addressOnly.DistanceKmTo(withCoords)
		require.Error(t, err)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityResolver_ExtractCity(t *testing.T) {
	resolver := services.NewCityResolver()

	t.Run("should find city in full address", func(t *testing.T) {
		city, err := resolver.ExtractCity("221B Baker Street, Andheri West, Mumbai, Maharashtra 400058")

		require.NoError(t, err)
		assert.Equal(t, "mumbai", city)
	})

	t.Run("should match case-insensitively and trim whitespace", func(t *testing.T) {
		city, err := resolver.ExtractCity("Flat 4,  PUNE , 411001")

		require.NoError(t, err)
		assert.Equal(t, "pune", city)
	})

	t.Run("should return first matching component", func(t *testing.T) {
		city, err := resolver.ExtractCity("Delhi, Mumbai")

		require.NoError(t, err)
		assert.Equal(t, "delhi", city)
	})

	t.Run("should fail when no component names a known city", func(t *testing.T) {
		_, err := resolver.ExtractCity("42 Nowhere Lane, Atlantis")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail on empty address", func(t *testing.T) {
		_, err := resolver.ExtractCity("")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCityResolver_TierFor(t *testing.T) {
	resolver := services.NewCityResolver()

	t.Run("should map classified cities to their tier", func(t *testing.T) {
		assert.Equal(t, rate.Tier1, resolver.TierFor("Mumbai"))
		assert.Equal(t, rate.Tier2, resolver.TierFor("jaipur"))
		assert.Equal(t, rate.Tier3, resolver.TierFor("patna"))
	})

	t.Run("should default unclassified cities to the lowest tier", func(t *testing.T) {
		assert.Equal(t, rate.Tier4, resolver.TierFor("coimbatore"))
		assert.Equal(t, rate.Tier4, resolver.TierFor("unknown-city"))
	})
}

func TestCityResolver_ResolveTier(t *testing.T) {
	resolver := services.NewCityResolver()

	t.Run("should resolve address to tier", func(t *testing.T) {
		tier, err := resolver.ResolveTier("MG Road, Bangalore, Karnataka")

		require.NoError(t, err)
		assert.Equal(t, rate.Tier1, tier)
	})

	t.Run("should default serviced but unclassified cities", func(t *testing.T) {
		tier, err := resolver.ResolveTier("Cantonment, Varanasi, Uttar Pradesh")

		require.NoError(t, err)
		assert.Equal(t, rate.Tier4, tier)
	})

	t.Run("should propagate unknown address error", func(t *testing.T) {
		_, err := resolver.ResolveTier("Somewhere Else")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

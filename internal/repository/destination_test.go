package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escapegenie/api/internal/model"
)

func TestBuildSearchQuery(t *testing.T) {
	t.Parallel()

	t.Run("base filter with any budget and no terms", func(t *testing.T) {
		t.Parallel()
		query, args := buildSearchQuery(SearchFilter{
			TripScope:    "international",
			TravelerType: "solo",
			Budget:       model.CostTierAny,
		})

		assert.Contains(t, query, "tags LIKE $1 AND tags LIKE $2")
		assert.NotContains(t, query, "cost_tier = ")
		assert.NotContains(t, query, " OR ")
		assert.Contains(t, query, "ORDER BY name LIMIT 30")
		assert.Equal(t, []any{"%international%", "%solo%"}, args)
	})

	t.Run("budget adds an equality condition", func(t *testing.T) {
		t.Parallel()
		query, args := buildSearchQuery(SearchFilter{
			TripScope:    "domestic",
			TravelerType: "family",
			Budget:       model.CostTierBudget,
		})

		assert.Contains(t, query, "cost_tier = $3")
		assert.Equal(t, []any{"%domestic%", "%family%", "budget"}, args)
	})

	t.Run("terms join into a single OR group", func(t *testing.T) {
		t.Parallel()
		query, args := buildSearchQuery(SearchFilter{
			TripScope:    "international",
			TravelerType: "couple",
			Budget:       model.CostTierLuxury,
			Terms:        []string{"beach", "romance"},
		})

		assert.Contains(t, query, "AND (tags LIKE $4 OR tags LIKE $5)")
		require.Len(t, args, 5)
		assert.Equal(t, "%beach%", args[3])
		assert.Equal(t, "%romance%", args[4])
	})

	t.Run("placeholders stay contiguous without budget", func(t *testing.T) {
		t.Parallel()
		query, args := buildSearchQuery(SearchFilter{
			TripScope:    "international",
			TravelerType: "solo",
			Budget:       model.CostTierAny,
			Terms:        []string{"history"},
		})

		assert.Contains(t, query, "AND (tags LIKE $3)")
		assert.Equal(t, []any{"%international%", "%solo%", "%history%"}, args)
	})

	t.Run("terms are embedded as placeholders never literals", func(t *testing.T) {
		t.Parallel()
		hostile := "x'; DROP TABLE destinations; --"
		query, args := buildSearchQuery(SearchFilter{
			TripScope:    "international",
			TravelerType: "solo",
			Budget:       model.CostTierAny,
			Terms:        []string{hostile},
		})

		assert.NotContains(t, query, "DROP TABLE")
		assert.Contains(t, args, "%"+hostile+"%")
	})
}

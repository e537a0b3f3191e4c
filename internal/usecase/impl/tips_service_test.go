package impl

import (
	"testing"
	"time"

	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/infra/tips"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tipIDs(list []entity.CareerTip) []int {
	ids := make([]int, 0, len(list))
	for _, tip := range list {
		ids = append(ids, tip.ID)
	}

	return ids
}

func TestTipsService_DailyIsDeterministic(t *testing.T) {
	svc := NewTipsService()
	day := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	first := svc.Daily(day)
	require.Len(t, first, 3)

	// Any moment of the same UTC day yields the same selection.
	later := svc.Daily(day.Add(13 * time.Hour))
	assert.Equal(t, tipIDs(first), tipIDs(later))

	// No duplicates within a day's selection.
	seen := make(map[int]bool)
	for _, tip := range first {
		assert.False(t, seen[tip.ID], "tip %d selected twice", tip.ID)
		seen[tip.ID] = true
	}
}

func TestTipsService_RandomReturnsCatalogTip(t *testing.T) {
	svc := NewTipsService()
	catalog := tips.Catalog()

	byID := make(map[int]entity.CareerTip, len(catalog))
	for _, tip := range catalog {
		byID[tip.ID] = tip
	}

	for range 10 {
		got := svc.Random()
		want, ok := byID[got.ID]
		require.True(t, ok, "random tip %d not in catalog", got.ID)
		assert.Equal(t, want, got)
	}
}

func TestTipsService_ByCategory(t *testing.T) {
	svc := NewTipsService()

	resume, err := svc.ByCategory("resume")
	require.NoError(t, err)
	require.NotEmpty(t, resume)
	for _, tip := range resume {
		assert.Equal(t, "resume", tip.Category)
	}

	_, err = svc.ByCategory("astrology")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTipsService_AllReturnsCopy(t *testing.T) {
	svc := NewTipsService()

	all := svc.All()
	require.Len(t, all, len(tips.Catalog()))

	all[0].Title = "mutated"

	again := svc.All()
	assert.NotEqual(t, "mutated", again[0].Title)
}

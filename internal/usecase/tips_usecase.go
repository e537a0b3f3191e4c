// Package usecase contains the application-specific business rules.
package usecase

import (
	"time"

	"jobhud/internal/domain/entity"
)

// TipsUsecase serves the static career-tip catalog. All operations are pure
// and in-memory; there is no store access and no failure mode beyond an
// unknown category.
type TipsUsecase interface {
	// Daily returns the day's three tips. The selection is a deterministic
	// function of the date, so every caller sees the same tips for the
	// whole day.
	Daily(now time.Time) []entity.CareerTip

	// Random returns one uniformly chosen tip.
	Random() entity.CareerTip

	// ByCategory returns all tips in a category, or ErrNotFound when the
	// category has none.
	ByCategory(category string) ([]entity.CareerTip, error)

	// All returns the whole catalog.
	All() []entity.CareerTip
}

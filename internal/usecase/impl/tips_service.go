// Package impl contains the implementation of the application's business logic.
package impl

import (
	"math/rand/v2"
	"time"

	"jobhud/internal/domain/entity"
	domainerrors "jobhud/internal/domain/errors"
	"jobhud/internal/infra/tips"
	"jobhud/internal/usecase"

	"github.com/pkg/errors"
)

const dailyTipCount = 3

// tipsService implements the TipsUsecase interface over the static catalog.
// All state is immutable after construction, so the service is safe for
// concurrent use without locking.
type tipsService struct {
	catalog []entity.CareerTip
}

// NewTipsService is the constructor for tipsService.
func NewTipsService() usecase.TipsUsecase {
	return &tipsService{catalog: tips.Catalog()}
}

// Daily returns the day's three tips. The shuffle is seeded from the UTC
// date, so the selection is stable for the whole day and identical across
// instances.
func (srv *tipsService) Daily(now time.Time) []entity.CareerTip {
	day := now.UTC()
	rng := rand.New(rand.NewPCG(uint64(day.Year()), uint64(day.YearDay())))

	shuffled := make([]entity.CareerTip, len(srv.catalog))
	copy(shuffled, srv.catalog)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:dailyTipCount]
}

// Random returns one uniformly chosen tip.
func (srv *tipsService) Random() entity.CareerTip {
	return srv.catalog[rand.IntN(len(srv.catalog))]
}

// ByCategory returns all tips in a category.
func (srv *tipsService) ByCategory(category string) ([]entity.CareerTip, error) {
	var filtered []entity.CareerTip
	for _, tip := range srv.catalog {
		if tip.Category == category {
			filtered = append(filtered, tip)
		}
	}

	if len(filtered) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "no tips found for this category")
	}

	return filtered, nil
}

// All returns the whole catalog.
func (srv *tipsService) All() []entity.CareerTip {
	out := make([]entity.CareerTip, len(srv.catalog))
	copy(out, srv.catalog)

	return out
}

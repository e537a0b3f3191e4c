package handler

import (
	"net/http"
	"time"

	"jobhud/internal/delivery/http/response"
	"jobhud/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TipsHandler holds dependencies for career-tip handlers.
type TipsHandler struct {
	uc usecase.TipsUsecase
}

// NewTipsHandler is the constructor for TipsHandler, injected by Fx.
func NewTipsHandler(uc usecase.TipsUsecase) *TipsHandler {
	return &TipsHandler{uc: uc}
}

// Daily returns the day's tips together with the UTC date they belong to.
func (h *TipsHandler) Daily(c echo.Context) error {
	now := time.Now().UTC()
	tips := h.uc.Daily(now)

	return response.Success(c, http.StatusOK, map[string]any{
		"date": now.Format(time.DateOnly),
		"tips": tips,
	}, "Daily tips retrieved successfully")
}

// Random returns one randomly chosen tip.
func (h *TipsHandler) Random(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Random(), "Random tip retrieved successfully")
}

// ByCategory returns all tips in the requested category.
func (h *TipsHandler) ByCategory(c echo.Context) error {
	tips, err := h.uc.ByCategory(c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tips, "Tips retrieved successfully")
}

// All returns the whole catalog.
func (h *TipsHandler) All(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.All(), "Tips retrieved successfully")
}

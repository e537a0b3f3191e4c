package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobhud/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipsHandler_Daily(t *testing.T) {
	handler := NewTipsHandler(impl.NewTipsService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tips/daily", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Daily(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Date string `json:"date"`
			Tips []struct {
				ID       int    `json:"id"`
				Title    string `json:"title"`
				Category string `json:"category"`
			} `json:"tips"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Tips, 3)

	date, err := time.Parse(time.DateOnly, body.Data.Date)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(time.DateOnly), date.Format(time.DateOnly))
}

func TestTipsHandler_ByCategoryUnknown(t *testing.T) {
	handler := NewTipsHandler(impl.NewTipsService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tips/category/astrology", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("astrology")

	// The handler surfaces the error; status mapping is the error
	// middleware's concern.
	err := handler.ByCategory(c)
	require.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yashcodes29/Farm-wise/pkg/weather"
)

type WeatherCtrl struct{ client *weather.Client }

func New(client *weather.Client) *WeatherCtrl { return &WeatherCtrl{client: client} }

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location is required"})
	}
	days, _ := strconv.Atoi(c.QueryParam("days"))

	fc, err := h.client.FetchForecast(c.Request().Context(), location, days)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrUnavailable):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		case errors.Is(err, weather.ErrLocationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		default:
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "weather unavailable"})
		}
	}
	return c.JSON(http.StatusOK, fc)
}

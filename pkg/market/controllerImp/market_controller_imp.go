package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yashcodes29/Farm-wise/pkg/ai"
	"github.com/yashcodes29/Farm-wise/pkg/market"
)

type MarketCtrl struct {
	source market.Source
	llm    ai.Client
}

func New(source market.Source, llm ai.Client) *MarketCtrl {
	return &MarketCtrl{source: source, llm: llm}
}

// Prices serves the tabular source by default. source=llm selects the
// free-text path the older dashboards used; it is kept only for them.
func (h *MarketCtrl) Prices(c echo.Context) error {
	var commodities []string
	if raw := c.QueryParam("commodities"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				commodities = append(commodities, s)
			}
		}
	}

	if c.QueryParam("source") == "llm" {
		summary, err := h.llm.PriceSummary(c.Request().Context(), commodities)
		if err != nil {
			if errors.Is(err, ai.ErrUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to fetch prices"})
		}
		return c.JSON(http.StatusOK, echo.Map{"summary": summary})
	}

	recs, err := h.source.Latest(c.Request().Context(), commodities)
	if err != nil {
		if errors.Is(err, market.ErrUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to fetch market prices"})
	}
	if recs == nil {
		recs = []market.PriceRecord{}
	}
	return c.JSON(http.StatusOK, echo.Map{"records": recs})
}

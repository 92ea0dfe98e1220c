package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/ai"
)

type AnalyzeCtrl struct{ llm ai.Client }

func NewAnalyzeCtrl(llm ai.Client) *AnalyzeCtrl { return &AnalyzeCtrl{llm: llm} }

// Analyze forwards the health-check form to the LLM and returns its
// free-text assessment as a plain text body, like the original dashboard
// expects.
func (h *AnalyzeCtrl) Analyze(c echo.Context) error {
	var obs entities.CropObservation
	if err := c.Bind(&obs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}

	result, err := h.llm.AnalyzeCrop(c.Request().Context(), obs)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"error":   err.Error(),
				"message": "To enable AI crop analysis, add GROQ_API_KEY to your .env file",
			})
		}
		return c.String(http.StatusBadGateway, "Error analyzing crop data.")
	}
	return c.String(http.StatusOK, result)
}

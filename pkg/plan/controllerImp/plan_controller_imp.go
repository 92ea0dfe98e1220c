package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashcodes29/Farm-wise/pkg/plan/controller"
	"github.com/yashcodes29/Farm-wise/pkg/plan/service"
	"github.com/yashcodes29/Farm-wise/pkg/plan/types"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) controller.PlanController {
	return &PlanCtrl{svc: svc}
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	var req types.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	plan, err := h.svc.Generate(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"plan": plan})
}

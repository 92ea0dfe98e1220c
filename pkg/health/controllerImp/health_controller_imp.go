package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Flags says which optional services were configured at startup.
type Flags struct {
	Database bool
	Groq     bool
	Weather  bool
	Market   bool
}

type HealthCtrl struct {
	db    *gorm.DB
	flags Flags
}

func NewHealthCtrl(db *gorm.DB, flags Flags) *HealthCtrl {
	return &HealthCtrl{db: db, flags: flags}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbState := "not configured"
	if h.flags.Database && h.db != nil {
		dbState = "configured"
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbState = "unreachable"
		}
	}

	onOff := func(ok bool) string {
		if ok {
			return "configured"
		}
		return "not configured"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":     "healthy",
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"services": echo.Map{
			"server":   "running",
			"database": dbState,
			"groq":     onOff(h.flags.Groq),
			"weather":  onOff(h.flags.Weather),
			"market":   onOff(h.flags.Market),
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

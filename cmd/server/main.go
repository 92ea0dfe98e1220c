package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/yashcodes29/Farm-wise/config"
	"github.com/yashcodes29/Farm-wise/database"
	"github.com/yashcodes29/Farm-wise/router"

	// Analyze
	analyzeCtrlImp "github.com/yashcodes29/Farm-wise/pkg/analyze/controllerImp"

	// Plan
	planCtrlImp "github.com/yashcodes29/Farm-wise/pkg/plan/controllerImp"
	planSvc "github.com/yashcodes29/Farm-wise/pkg/plan/serviceImp"

	// Forum
	forumCtrlImp "github.com/yashcodes29/Farm-wise/pkg/forum/controllerImp"
	forumRepoImp "github.com/yashcodes29/Farm-wise/pkg/forum/repositoryImp"

	// Adapters
	"github.com/yashcodes29/Farm-wise/pkg/ai"
	"github.com/yashcodes29/Farm-wise/pkg/market"
	marketCtrlImp "github.com/yashcodes29/Farm-wise/pkg/market/controllerImp"
	"github.com/yashcodes29/Farm-wise/pkg/weather"
	weatherCtrlImp "github.com/yashcodes29/Farm-wise/pkg/weather/controllerImp"

	// Health
	healthCtrlImp "github.com/yashcodes29/Farm-wise/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate; forum degrades without it
	var db *gorm.DB
	forumRepo := forumRepoImp.NewDisabled()
	if cfg.DBPath != "" {
		opened, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Printf("WARN: open sqlite: %v - Forum features will be disabled", err)
		} else {
			db = opened
			forumRepo = forumRepoImp.New(db)
		}
	} else {
		log.Printf("WARN: DB_PATH empty - Forum features will be disabled")
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) LLM (disabled fallback when no key)
	var llm ai.Client
	if cfg.GroqAPIKey != "" {
		llm = ai.NewGroq(cfg.GroqEndpoint, cfg.GroqAPIKey, cfg.GroqModel)
	} else {
		llm = ai.NewDisabled()
	}

	// 5) Weather + market adapters
	wx := weather.New(cfg.WeatherEndpoint, cfg.WeatherAPIKey)

	var prices market.Source
	if cfg.MarketAPIKey != "" {
		prices = market.NewGov(cfg.MarketEndpoint, cfg.MarketAPIKey, cfg.MarketResourceID)
	} else {
		prices = market.NewStatic(cfg.MarketXLSX)
	}

	// 6) Controllers
	anCtrl := analyzeCtrlImp.NewAnalyzeCtrl(llm)
	plCtrl := planCtrlImp.NewPlanCtrl(planSvc.NewPlanService())
	fCtrl := forumCtrlImp.New(forumRepo)
	wxCtrl := weatherCtrlImp.New(wx)
	mkCtrl := marketCtrlImp.New(prices, llm)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, healthCtrlImp.Flags{
		Database: db != nil,
		Groq:     cfg.GroqAPIKey != "",
		Weather:  cfg.WeatherAPIKey != "",
		Market:   cfg.MarketAPIKey != "",
	})

	// 7) Router
	r := router.New(e, anCtrl, plCtrl, fCtrl, wxCtrl, mkCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

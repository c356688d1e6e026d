package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaoqi-icu/negoprep/internal/logging"
)

// RouterConfig bundles everything NewRouter needs.
type RouterConfig struct {
	Mode string // gin mode: "debug" | "release" | "test"

	Plan   *PlanHandler
	Report *ReportHandler
	Health *HealthHandler

	// MetricsHandler, when non-nil, is mounted at MetricsPath.
	MetricsHandler http.Handler
	MetricsPath    string

	// Recorder, when non-nil, observes every request.
	Recorder HTTPRecorder

	Log logging.Logger
}

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(cfg.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(cfg.Log))
	r.Use(cors())
	if cfg.Recorder != nil {
		r.Use(observeRequests(cfg.Recorder))
	}

	r.GET("/healthz", cfg.Health.healthz)
	r.GET("/readyz", cfg.Health.readyz)
	if cfg.MetricsHandler != nil {
		r.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}

	v1 := r.Group("/api/v1")

	plan := v1.Group("/plan")
	{
		plan.GET("", cfg.Plan.getPlan)
		plan.GET("/completion", cfg.Plan.getCompletion)
		plan.PATCH("/goals", cfg.Plan.patchGoals)
		plan.PATCH("/strategy", cfg.Plan.patchStrategy)
		plan.PATCH("/anchor", cfg.Plan.patchAnchor)
		plan.PATCH("/report-settings", cfg.Plan.patchReportSettings)
		plan.PUT("/step", cfg.Plan.putStep)
		plan.PUT("/buffer", cfg.Plan.putBuffer)
		plan.POST("/reset", cfg.Plan.postReset)
		plan.POST("/example", cfg.Plan.postExample)

		plan.POST("/issues", cfg.Plan.postIssue)
		plan.PATCH("/issues/:id", cfg.Plan.patchIssue)
		plan.DELETE("/issues/:id", cfg.Plan.deleteIssue)

		plan.POST("/batna-options", cfg.Plan.postBatnaOption)
		plan.PATCH("/batna-options/:id", cfg.Plan.patchBatnaOption)
		plan.DELETE("/batna-options/:id", cfg.Plan.deleteBatnaOption)
		plan.POST("/batna/recalculate", cfg.Plan.postRecalculateBatna)

		plan.POST("/stakeholders", cfg.Plan.postStakeholder)
		plan.PATCH("/stakeholders/:id", cfg.Plan.patchStakeholder)
		plan.DELETE("/stakeholders/:id", cfg.Plan.deleteStakeholder)
	}

	report := v1.Group("/report")
	{
		report.GET("", cfg.Report.getReport)
		report.POST("/export", cfg.Report.postExport)
	}

	return r
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaoqi-icu/negoprep/internal/domain/negotiation"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	apperrors "github.com/zaoqi-icu/negoprep/pkg/errors"
)

// PlanHandler exposes the negotiation aggregate and its mutations.
type PlanHandler struct {
	store *planning.Store
	log   logging.Logger
}

// NewPlanHandler returns a PlanHandler backed by store.
func NewPlanHandler(store *planning.Store, log logging.Logger) *PlanHandler {
	return &PlanHandler{store: store, log: log.Named("http.plan")}
}

// planResponse is the GET /plan payload: the aggregate plus the derived
// per-step completion status.
type planResponse struct {
	Data       *negotiation.NegotiationData `json:"data"`
	Completion negotiation.CompletionStatus `json:"completion"`
}

func (h *PlanHandler) getPlan(c *gin.Context) {
	c.JSON(http.StatusOK, planResponse{
		Data:       h.store.Get(),
		Completion: h.store.Completion(),
	})
}

func (h *PlanHandler) getCompletion(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Completion())
}

func (h *PlanHandler) patchGoals(c *gin.Context) {
	var in planning.GoalsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	h.store.UpdateGoals(c.Request.Context(), in)
	c.JSON(http.StatusOK, h.store.Get().Goals)
}

func (h *PlanHandler) patchStrategy(c *gin.Context) {
	var in planning.StrategyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	h.store.UpdateStrategy(c.Request.Context(), in)
	c.JSON(http.StatusOK, h.store.Get().Strategy)
}

func (h *PlanHandler) patchAnchor(c *gin.Context) {
	var in planning.AnchorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	h.store.UpdateAnchorStrategy(c.Request.Context(), in)
	c.JSON(http.StatusOK, h.store.Get().AnchorStrategy)
}

func (h *PlanHandler) patchReportSettings(c *gin.Context) {
	var in planning.ReportSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	h.store.UpdateReportSettings(c.Request.Context(), in)
	c.JSON(http.StatusOK, h.store.Get().ReportSettings)
}

type stepRequest struct {
	Step int `json:"step"`
}

func (h *PlanHandler) putStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidBody(c, err)
		return
	}
	if req.Step < negotiation.StepGoals || req.Step > negotiation.StepReview {
		writeError(c, apperrors.Newf(apperrors.ErrCodeValidation, "step %d is out of range [1, 8]", req.Step))
		return
	}
	h.store.SetCurrentStep(c.Request.Context(), req.Step)
	c.JSON(http.StatusOK, h.store.Get().Metadata)
}

type bufferRequest struct {
	Buffer float64 `json:"buffer"`
}

func (h *PlanHandler) putBuffer(c *gin.Context) {
	var req bufferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidBody(c, err)
		return
	}
	h.store.SetBottomLineBuffer(c.Request.Context(), req.Buffer)
	c.JSON(http.StatusOK, gin.H{"bottomLineBuffer": req.Buffer})
}

func (h *PlanHandler) postReset(c *gin.Context) {
	h.store.ResetData(c.Request.Context())
	c.JSON(http.StatusOK, h.store.Get())
}

type exampleRequest struct {
	Variant string `json:"variant"`
}

func (h *PlanHandler) postExample(c *gin.Context) {
	var req exampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidBody(c, err)
		return
	}
	variant, err := negotiation.ParseExampleVariant(req.Variant)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.LoadExample(c.Request.Context(), variant); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Get())
}

func (h *PlanHandler) postIssue(c *gin.Context) {
	var in planning.IssueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	created := h.store.AddIssue(c.Request.Context(), in)
	c.JSON(http.StatusCreated, created)
}

func (h *PlanHandler) patchIssue(c *gin.Context) {
	var in planning.IssueUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	id := c.Param("id")
	if !h.store.UpdateIssue(c.Request.Context(), id, in) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanIssueNotFound, "issue %s not found", id))
		return
	}
	c.JSON(http.StatusOK, h.store.Get().IssueByID(id))
}

func (h *PlanHandler) deleteIssue(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveIssue(c.Request.Context(), id) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanIssueNotFound, "issue %s not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) postBatnaOption(c *gin.Context) {
	var in planning.BatnaOptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	created := h.store.AddBatnaOption(c.Request.Context(), in)
	c.JSON(http.StatusCreated, created)
}

func (h *PlanHandler) patchBatnaOption(c *gin.Context) {
	var in planning.BatnaOptionUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	id := c.Param("id")
	if !h.store.UpdateBatnaOption(c.Request.Context(), id, in) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanBatnaNotFound, "batna option %s not found", id))
		return
	}
	c.JSON(http.StatusOK, h.store.Get().BatnaOptionByID(id))
}

func (h *PlanHandler) deleteBatnaOption(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveBatnaOption(c.Request.Context(), id) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanBatnaNotFound, "batna option %s not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// batnaResult is the recalculation payload: the selected option (null when
// none exist) and the floor derived from the stored buffer.
type batnaResult struct {
	Best   *negotiation.BatnaOption `json:"best"`
	Floor  float64                  `json:"floor"`
	Buffer float64                  `json:"buffer"`
}

func (h *PlanHandler) postRecalculateBatna(c *gin.Context) {
	best := h.store.CalculateBestBatna(c.Request.Context())
	buffer := h.store.Get().BottomLineBuffer
	c.JSON(http.StatusOK, batnaResult{
		Best:   best,
		Floor:  negotiation.ComputeFloor(best, buffer),
		Buffer: buffer,
	})
}

func (h *PlanHandler) postStakeholder(c *gin.Context) {
	var in planning.StakeholderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	created := h.store.AddStakeholder(c.Request.Context(), in)
	c.JSON(http.StatusCreated, created)
}

func (h *PlanHandler) patchStakeholder(c *gin.Context) {
	var in planning.StakeholderUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeInvalidBody(c, err)
		return
	}
	id := c.Param("id")
	if !h.store.UpdateStakeholder(c.Request.Context(), id, in) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanStakeholderNotFound, "stakeholder %s not found", id))
		return
	}
	c.JSON(http.StatusOK, h.store.Get().StakeholderByID(id))
}

func (h *PlanHandler) deleteStakeholder(c *gin.Context) {
	id := c.Param("id")
	if !h.store.RemoveStakeholder(c.Request.Context(), id) {
		writeError(c, apperrors.Newf(apperrors.ErrCodePlanStakeholderNotFound, "stakeholder %s not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}

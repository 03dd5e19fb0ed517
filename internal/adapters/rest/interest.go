package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/internal/ports/input"
)

func (h *Handler) createProjectInterest(c *gin.Context) {
	var req createProjectInterestRequest
	if !h.bind(c, &req) {
		return
	}
	interest, err := h.interests.ExpressInterest(c.Request.Context(), input.NewProjectInterest{
		ProjectID:      req.ProjectID,
		StudentGroupID: req.StudentGroupID,
		Message:        req.Message,
	})
	if err != nil {
		h.fail(c, err, "errors.express_interest_failed")
		return
	}
	c.JSON(http.StatusCreated, interest)
}

func (h *Handler) getProjectInterest(c *gin.Context) {
	interest, err := h.interests.GetInterest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_interest_failed")
		return
	}
	c.JSON(http.StatusOK, interest)
}

func (h *Handler) getStudentGroupInterests(c *gin.Context) {
	interests, err := h.interests.GetInterestsByStudentGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_interests_failed")
		return
	}
	c.JSON(http.StatusOK, interests)
}

func (h *Handler) updateProjectInterestStatus(c *gin.Context) {
	var req updateStatusRequest
	if !h.bind(c, &req) {
		return
	}
	interest, err := h.interests.UpdateInterestStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err, "errors.update_interest_failed")
		return
	}
	c.JSON(http.StatusOK, interest)
}

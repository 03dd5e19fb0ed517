package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/internal/ports/input"
)

func (h *Handler) createEntrepreneur(c *gin.Context) {
	var req createEntrepreneurRequest
	if !h.bind(c, &req) {
		return
	}
	entrepreneur, err := h.registration.RegisterEntrepreneur(c.Request.Context(), input.NewEntrepreneur{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err, "errors.create_entrepreneur_failed")
		return
	}
	c.JSON(http.StatusCreated, entrepreneur)
}

func (h *Handler) getEntrepreneur(c *gin.Context) {
	entrepreneur, err := h.registration.GetEntrepreneur(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_entrepreneur_failed")
		return
	}
	c.JSON(http.StatusOK, entrepreneur)
}

func (h *Handler) createStudentGroup(c *gin.Context) {
	var req createStudentGroupRequest
	if !h.bind(c, &req) {
		return
	}
	group, err := h.registration.RegisterStudentGroup(c.Request.Context(), input.NewStudentGroup{
		RepresentativeName: req.RepresentativeName,
		Email:              req.Email,
		RA:                 req.RA,
		Semester:           req.Semester,
		Members:            req.Members,
		Interests:          req.Interests,
		Password:           req.Password,
	})
	if err != nil {
		h.fail(c, err, "errors.create_student_group_failed")
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *Handler) getStudentGroup(c *gin.Context) {
	group, err := h.registration.GetStudentGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_student_group_failed")
		return
	}
	c.JSON(http.StatusOK, group)
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/internal/domain"
	"projecthub/internal/ports/input"
)

func (h *Handler) listProjects(c *gin.Context) {
	filter := domain.ProjectFilter{
		ProjectType:  c.Query("projectType"),
		BusinessArea: c.Query("businessArea"),
		Deadline:     c.Query("deadline"),
		Complexity:   c.Query("complexity"),
	}
	projects, err := h.projects.ListProjects(c.Request.Context(), filter, c.Query("sort"))
	if err != nil {
		h.fail(c, err, "errors.fetch_projects_failed")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.projects.GetProjectDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_project_failed")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if !h.bind(c, &req) {
		return
	}
	project, err := h.projects.CreateProject(c.Request.Context(), input.NewProject{
		EntrepreneurID: req.EntrepreneurID,
		Title:          req.Title,
		Description:    req.Description,
		ProjectType:    req.ProjectType,
		BusinessArea:   req.BusinessArea,
		Deadline:       req.Deadline,
		Complexity:     req.Complexity,
		Technologies:   req.Technologies,
	})
	if err != nil {
		h.fail(c, err, "errors.create_project_failed")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) updateProjectStatus(c *gin.Context) {
	var req updateStatusRequest
	if !h.bind(c, &req) {
		return
	}
	project, err := h.projects.UpdateProjectStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err, "errors.update_project_failed")
		return
	}
	c.JSON(http.StatusOK, project)
}

package rest

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a new gin engine. An origin list
// containing "*" allows any origin.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	registerValidation()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AddAllowHeaders("Accept-Language")
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/projects", h.listProjects)
		api.GET("/projects/:id", h.getProject)
		api.POST("/projects", h.createProject)
		api.PATCH("/projects/:id/status", h.updateProjectStatus)

		api.POST("/entrepreneurs", h.createEntrepreneur)
		api.GET("/entrepreneurs/:id", h.getEntrepreneur)

		api.POST("/student-groups", h.createStudentGroup)
		api.GET("/student-groups/:id", h.getStudentGroup)
		api.GET("/student-groups/:id/interests", h.getStudentGroupInterests)

		api.POST("/project-interests", h.createProjectInterest)
		api.GET("/project-interests/:id", h.getProjectInterest)
		api.PATCH("/project-interests/:id/status", h.updateProjectInterestStatus)

		api.GET("/events", h.listEvents)
		api.GET("/events/upcoming", h.listUpcomingEvents)
		api.GET("/events/:id", h.getEvent)
		api.POST("/events", h.createEvent)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": h.msg(c, "errors.route_not_found", nil)})
	})

	return r
}

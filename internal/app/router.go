package app

import (
	"skillmatrix/docs"
	"skillmatrix/internal/config"
	"skillmatrix/internal/middleware"
	"skillmatrix/internal/model"
	"skillmatrix/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Catalog reads, available to every authenticated user.
		authGroup.GET("/teams", c.catalog.Teams)
		authGroup.GET("/teams/:teamId/projects", c.catalog.Projects)
		authGroup.GET("/projects/:projectId/components", c.catalog.Components)
		authGroup.GET("/assessments", c.catalog.Assessments)

		authGroup.GET("/users", c.user.Users)
		authGroup.GET("/users/:userId", c.user.User)
		authGroup.GET("/users/:userId/levels", c.user.Levels)
		authGroup.GET("/users/:userId/attempts", c.user.Attempts)
		authGroup.GET("/users/:userId/invites", c.user.Invites)

		// Attempt lifecycle, driven by the invited developer.
		authGroup.POST("/assessments/start/:inviteId", c.assessment.StartAttempt)
		authGroup.GET("/assessments/attempts/:attemptId/questions", c.assessment.AttemptQuestions)
		authGroup.POST("/assessments/submit/:attemptId", c.assessment.SubmitAttempt)

		// Authoring and grading, restricted to admins.
		admin := authGroup.Group("")
		admin.Use(middleware.RoleMiddleware(model.RoleRoot, model.RoleTeamAdmin))
		{
			admin.GET("/components/:componentId/questions", c.catalog.Questions)
			admin.POST("/assessments", c.catalog.CreateAssessment)
			admin.POST("/assessments/invite", c.assessment.CreateInvite)
			admin.POST("/assessments/grade", c.grade.GradeAnswer)
			admin.GET("/assessments/pending-review", c.grade.ListPendingReview)
		}
	}
}

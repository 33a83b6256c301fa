package router

import (
	"net/http"

	"stackoverfaux/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, questionHandler *handlers.QuestionHandler, userHandler *handlers.UserHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.List)
		questions.POST("", questionHandler.Create)
		questions.GET("/:id", questionHandler.Detail)
		questions.PUT("/:id", questionHandler.Update)
		questions.DELETE("/:id", questionHandler.Delete)
		questions.GET("/:id/answers", questionHandler.ListAnswers)
		questions.POST("/:id/answers", questionHandler.AddAnswer)
		questions.GET("/user/:userId", questionHandler.ListByUser)
		questions.GET("/user/:userId/answers", questionHandler.ListAnswersByUser)
	}

	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Detail)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
		users.GET("/:id/questions", userHandler.Questions)
	}
}

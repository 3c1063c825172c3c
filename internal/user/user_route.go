package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("", handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.HEAD("/:id", handler.Head)
		users.GET("/:id/exists", handler.Exists)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the directory endpoints. writeGuards run before
// every mutating handler (rate limiting, idempotency).
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	writeGuards ...gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", guarded(writeGuards, handler.Create)...)
	}
}

func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, h)
}

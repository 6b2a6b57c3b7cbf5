package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the ledger endpoints plus the balance view under
// /employees/:id. writeGuards run before every mutating handler.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	writeGuards ...gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", guarded(writeGuards, handler.Apply)...)
		leaves.POST("/:id/decision", guarded(writeGuards, handler.Decide)...)
		leaves.POST("/:id/approve", guarded(writeGuards, handler.Approve)...)
		leaves.POST("/:id/reject", guarded(writeGuards, handler.Reject)...)
	}

	r.GET("/employees/:id/balance", handler.GetBalance)
}

func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, h)
}

package app

import (
	"net/http"

	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/counter"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Core is the directory and ledger pair every boundary drives.
type Core struct {
	Directory employee.Service
	Ledger    leave.Service
}

// NewCore builds fresh in-memory state. Both components draw ids from one
// counter store, each under its own counter type.
func NewCore(publisher kafka.EventPublisher, logger *zap.Logger) *Core {
	ids := counter.NewRepository()

	employeeRepo := employee.NewRepository()
	leaveRepo := leave.NewRepository()

	directory := employee.NewService(employeeRepo, ids, publisher, logger)
	ledger := leave.NewService(leaveRepo, directory, ids, publisher, logger)

	return &Core{Directory: directory, Ledger: ledger}
}

func registerModules(
	router *gin.Engine,
	core *Core,
	rdb redis.Cmdable,
	logger *zap.Logger,
	writeGuards ...gin.HandlerFunc,
) {
	employeeHandler := employee.NewHandler(core.Directory, logger)
	leaveHandler := leave.NewHandler(core.Ledger, logger)

	router.GET("/healthz", healthHandler(rdb))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, writeGuards...)
		leave.RegisterRoutes(api, leaveHandler, writeGuards...)
	}
}

func healthHandler(rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if rdb != nil {
			if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
				status["redis"] = "down"
			} else {
				status["redis"] = "up"
			}
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}

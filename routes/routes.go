package routes

import (
	"github.com/Piyush-Dabare/vikas/config"
	"github.com/Piyush-Dabare/vikas/controller"
	"github.com/Piyush-Dabare/vikas/middleware"
	"github.com/Piyush-Dabare/vikas/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

const (
	apiTitle   = "Date Filtering API"
	apiVersion = "1.0.0"
)

func SetupRouter(cfg *config.ConfigManager, datasetSvc service.DatasetService) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RecoveryMiddleware,
		middleware.ZerologMiddleware(),
		middleware.CORS(cfg),
		middleware.RateLimiter(cfg),
	)

	// --- 1. Services ---
	querySvc := service.NewQueryService(datasetSvc)

	// --- 2. Public API ---
	controller.NewDataController(querySvc).RegisterRoutes(r)

	// --- 3. Operational API, documented at /docs ---
	api := humagin.New(r, huma.DefaultConfig(apiTitle, apiVersion))
	controller.NewSystemController(datasetSvc).RegisterRoutes(api)

	return r
}

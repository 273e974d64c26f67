// server/internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"rural-health-api-server/config"
	"rural-health-api-server/internal/api/handlers"
	"rural-health-api-server/internal/medreq"
	"rural-health-api-server/internal/s3"
)

// SetupRouter wires the handlers to their routes. All dependencies are
// constructed once in main and passed in here.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	requestService *medreq.Service,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	// The browser front-end is served from a different origin.
	if len(cfg.Server.AllowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
		router.Use(cors.New(corsConfig))
	} else {
		router.Use(cors.Default())
	}

	requestHandler := &handlers.RequestHandler{Service: requestService}
	webSocketHandler := &handlers.WebSocketHandler{Service: requestService}
	doctorHandler := &handlers.DoctorHandler{DB: db}
	audioTipHandler := &handlers.AudioTipHandler{DB: db, S3Uploader: s3Uploader}

	apiV1 := router.Group("/api/v1")
	{
		// Live dashboard feed
		apiV1.GET("/ws/requests", webSocketHandler.ServeRequests)

		// Medicine request lifecycle
		requests := apiV1.Group("/requests")
		{
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("", requestHandler.GetAllRequests)
			requests.GET("/:id", requestHandler.GetRequestByID)
			requests.POST("/:id/accept", requestHandler.AcceptRequest)
			requests.POST("/:id/deliver", requestHandler.DeliverRequest)
		}

		// Doctor directory
		apiV1.GET("/doctors", doctorHandler.GetAllDoctors)

		// Audio health tips
		audioTips := apiV1.Group("/audio-tips")
		{
			audioTips.GET("", audioTipHandler.GetAllAudioTips)
			audioTips.POST("", audioTipHandler.CreateAudioTip)
		}
	}

	return router
}

package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pawhub/pet-care-backend/internal/assistant"
	assistantHttp "github.com/pawhub/pet-care-backend/internal/assistant/http"
	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/booking"
	bookingHttp "github.com/pawhub/pet-care-backend/internal/booking/http"
	"github.com/pawhub/pet-care-backend/internal/cart"
	cartHttp "github.com/pawhub/pet-care-backend/internal/cart/http"
	"github.com/pawhub/pet-care-backend/internal/changefeed"
	changefeedHttp "github.com/pawhub/pet-care-backend/internal/changefeed/http"
	"github.com/pawhub/pet-care-backend/internal/message"
	messageHttp "github.com/pawhub/pet-care-backend/internal/message/http"
	"github.com/pawhub/pet-care-backend/internal/order"
	orderHttp "github.com/pawhub/pet-care-backend/internal/order/http"
	"github.com/pawhub/pet-care-backend/internal/pet"
	petHttp "github.com/pawhub/pet-care-backend/internal/pet/http"
	"github.com/pawhub/pet-care-backend/internal/user"
	"github.com/pawhub/pet-care-backend/internal/vaccination"
	vaccinationHttp "github.com/pawhub/pet-care-backend/internal/vaccination/http"
)

// Config carries everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UploadDir    string

	UserService        user.Service
	PetService         pet.Service
	BookingService     booking.Service
	CartService        cart.Service
	OrderService       order.Service
	MessageService     message.Service
	VaccinationService vaccination.Service
	Hub                *changefeed.Hub
	Assistant          *assistant.Assistant

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// vetMiddleware: Further checks if the authenticated user is a vet.
	vetMiddleware := RequireVet(cfg.UserService)

	// Uploaded pet photos are served directly.
	r.Static("/uploads", cfg.UploadDir)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	petHandler := petHttp.NewHandler(cfg.PetService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	cartHandler := cartHttp.NewHandler(cfg.CartService)
	orderHandler := orderHttp.NewHandler(cfg.OrderService)
	messageHandler := messageHttp.NewHandler(cfg.MessageService, cfg.UserService)
	vaccinationHandler := vaccinationHttp.NewHandler(cfg.VaccinationService)
	changefeedHandler := changefeedHttp.NewHandler(cfg.Hub)
	assistantHandler := assistantHttp.NewHandler(cfg.Assistant)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		petHttp.RegisterRoutes(v1, petHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, vetMiddleware)
		cartHttp.RegisterRoutes(v1, cartHandler, authMiddleware)
		orderHttp.RegisterRoutes(v1, orderHandler, authMiddleware)
		messageHttp.RegisterRoutes(v1, messageHandler, authMiddleware, vetMiddleware)
		vaccinationHttp.RegisterRoutes(v1, vaccinationHandler, authMiddleware)
		changefeedHttp.RegisterRoutes(v1, changefeedHandler, authMiddleware)
		assistantHttp.RegisterRoutes(v1, assistantHandler, authMiddleware)
	}

	return r
}

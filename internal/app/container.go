package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pawhub/pet-care-backend/internal/api"
	"github.com/pawhub/pet-care-backend/internal/assistant"
	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/booking"
	"github.com/pawhub/pet-care-backend/internal/cart"
	"github.com/pawhub/pet-care-backend/internal/changefeed"
	"github.com/pawhub/pet-care-backend/internal/message"
	"github.com/pawhub/pet-care-backend/internal/order"
	"github.com/pawhub/pet-care-backend/internal/pet"
	"github.com/pawhub/pet-care-backend/internal/pkg/storage"
	"github.com/pawhub/pet-care-backend/internal/user"
	"github.com/pawhub/pet-care-backend/internal/vaccination"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	CallBaseURL  string
	UploadDir    string
	GeminiAPIKey string
	GeminiModel  string
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Hub        *changefeed.Hub
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	hub := changefeed.NewHub()

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	aiAssistant, err := assistant.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init assistant: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Pet Module
	petRepo := pet.NewPgxRepository(cfg.DBPool)
	petService := pet.NewService(petRepo, store, storage.NewImageProcessor())

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, petService, cfg.CallBaseURL)

	// Cart Module
	cartRepo := cart.NewPgxRepository(cfg.DBPool)
	cartService := cart.NewService(cartRepo)

	// Order Module
	orderRepo := order.NewPgxRepository(cfg.DBPool)
	orderService := order.NewService(orderRepo, cartService)

	// Message Module
	messageRepo := message.NewPgxRepository(cfg.DBPool)
	messageService := message.NewService(messageRepo)

	// Vaccination Module
	vaccinationRepo := vaccination.NewPgxRepository(cfg.DBPool)
	vaccinationService := vaccination.NewService(vaccinationRepo, petService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UploadDir:          cfg.UploadDir,
		UserService:        userService,
		PetService:         petService,
		BookingService:     bookingService,
		CartService:        cartService,
		OrderService:       orderService,
		MessageService:     messageService,
		VaccinationService: vaccinationService,
		Hub:                hub,
		Assistant:          aiAssistant,
		JWTManager:         jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Hub:        hub,
	}, nil
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/hyperlocal-backend/docs"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/realtime"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// RouterConfig reúne as dependências da camada HTTP
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string

	Logger ports.Logger
	I18n   *i18n.Service
	Hub    *realtime.Hub

	AuthService      *services.AuthService
	UserService      *services.UserService
	FranchiseService *services.FranchiseService
	CustomerService  *services.CustomerService
	ProductService   *services.ProductService
	SaleService      *services.SaleService
	TicketService    *services.TicketService
}

// NewRouter monta o gin.Engine com middlewares e todas as rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.Language(cfg.I18n))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.ping")})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/api/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := NewAuthHandler(cfg.AuthService)
	userHandler := NewUserHandler(cfg.UserService)
	franchiseHandler := NewFranchiseHandler(cfg.FranchiseService)
	customerHandler := NewCustomerHandler(cfg.CustomerService)
	productHandler := NewProductHandler(cfg.ProductService)
	saleHandler := NewSaleHandler(cfg.SaleService)
	ticketHandler := NewTicketHandler(cfg.TicketService, cfg.Hub)

	requireAuth := middleware.RequireAuth(cfg.AuthService, dto.AbortWithError)

	auth := router.Group("/auth")
	{
		auth.POST("/signin", authHandler.SignIn)
		auth.GET("/signed", requireAuth, authHandler.Signed)
	}

	users := router.Group("/user", requireAuth)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.PATCH("/:id/role", userHandler.UpdateUserRole)
		users.PATCH("/:id/password", userHandler.UpdatePassword)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	franchises := router.Group("/franchise", requireAuth)
	{
		franchises.POST("", franchiseHandler.CreateFranchise)
		franchises.GET("", franchiseHandler.ListFranchises)
		franchises.GET("/:id", franchiseHandler.GetFranchise)
		franchises.PATCH("/:id", franchiseHandler.UpdateFranchise)
		franchises.PATCH("/:id/user", franchiseHandler.SetOwner)
		franchises.POST("/:id/score", franchiseHandler.RecalculateScore)
		franchises.DELETE("/:id", franchiseHandler.DeleteFranchise)
	}

	customers := router.Group("/customer", requireAuth)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PATCH("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	products := router.Group("/product", requireAuth)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PATCH("/:id", productHandler.UpdateProduct)
		products.PATCH("/:id/plan", productHandler.UpdateProductPlan)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	sales := router.Group("/sale", requireAuth)
	{
		sales.POST("", saleHandler.CreateSale)
		sales.GET("", saleHandler.ListSales)
		sales.GET("/franchise/:franchiseId", saleHandler.ListByFranchise())
		sales.GET("/customer/:customerId", saleHandler.ListByCustomer())
		sales.GET("/user/:userId", saleHandler.ListByUser())
		sales.GET("/product/:productId", saleHandler.ListByProduct())
		sales.GET("/:id", saleHandler.GetSale)
		sales.PATCH("/:id", saleHandler.UpdateSale)
		sales.DELETE("/:id", saleHandler.DeleteSale)
	}

	tickets := router.Group("/ticket", requireAuth)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", ticketHandler.ListTickets)
		tickets.GET("/feed", ticketHandler.Feed)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.PATCH("/:id/status", ticketHandler.UpdateTicketStatus)
		tickets.DELETE("/:id", ticketHandler.DeleteTicket)
	}

	return router
}

package router

import (
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/config"
	"github.com/catvAlbuss/minimarketsystem/internal/handler"
	"github.com/catvAlbuss/minimarketsystem/internal/middleware"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
	"github.com/catvAlbuss/minimarketsystem/internal/service"
	"github.com/catvAlbuss/minimarketsystem/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Role groups. Admin roles can manage accounts and catalog; staff roles
// cover the day-to-day register and logistics screens.
var (
	adminRoles = []string{"root", "managment", "administrator_general", "administrator"}
	allRoles   = []string{
		"root", "managment", "administrator_general", "logistic_general",
		"administrator", "logistic", "cashier", "asistente",
	}
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleDetailRepo := repository.NewSaleDetailRepository(db)
	buyRepo := repository.NewBuyRepository(db)
	buyDetailRepo := repository.NewBuyDetailRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	branchSvc := service.NewBranchService(branchRepo, userRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo)
	providerSvc := service.NewProviderService(providerRepo, productRepo)
	promotionSvc := service.NewPromotionService(promotionRepo, productRepo)
	saleSvc := service.NewSaleService(saleRepo, customerRepo, userRepo, productRepo, dispatcher, cfg.PDFStoragePath)
	saleDetailSvc := service.NewSaleDetailService(saleDetailRepo, saleRepo, productRepo)
	buySvc := service.NewBuyService(buyRepo, providerRepo, userRepo)
	buyDetailSvc := service.NewBuyDetailService(buyDetailRepo, buyRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	providersH := handler.NewProvidersHandler(providerSvc)
	promotionsH := handler.NewPromotionsHandler(promotionSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	saleDetailsH := handler.NewSaleDetailsHandler(saleDetailSvc)
	buysH := handler.NewBuysHandler(buySvc)
	buyDetailsH := handler.NewBuyDetailsHandler(buyDetailSvc)
	priceH := handler.NewPriceLookupHandler(productRepo, rdb)
	dashboardH := handler.NewDashboardHandler(db, saleRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/price/:code", priceH.GetPorCodigo)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard", middleware.RequireRole(allRoles...), dashboardH.Get)

		users := v1.Group("/users", middleware.RequireRole(adminRoles...))
		{
			users.POST("", usersH.Crear)
			users.GET("", usersH.Listar)
			users.PUT("/:id", usersH.Actualizar)
			users.DELETE("/:id", usersH.Eliminar)
		}

		branches := v1.Group("/branches", middleware.RequireRole(adminRoles...))
		{
			branches.POST("", branchesH.Crear)
			branches.GET("", branchesH.Listar)
			branches.PUT("/:id", branchesH.Actualizar)
			branches.DELETE("/:id", branchesH.Eliminar)
		}

		// Customers — any authenticated role can register and edit
		customers := v1.Group("/customers", middleware.RequireRole(allRoles...))
		{
			customers.POST("", customersH.Crear)
			customers.GET("", customersH.Listar)
			customers.PUT("/:id", customersH.Actualizar)
			customers.DELETE("/:id", customersH.Eliminar)
		}

		v1.GET("/categories", middleware.RequireRole(allRoles...), categoriesH.Listar)
		categories := v1.Group("/categories", middleware.RequireRole(adminRoles...))
		{
			categories.POST("", categoriesH.Crear)
			categories.PUT("/:id", categoriesH.Actualizar)
			categories.DELETE("/:id", categoriesH.Eliminar)
		}

		v1.GET("/products", middleware.RequireRole(allRoles...), productsH.Listar)
		products := v1.Group("/products", middleware.RequireRole(adminRoles...))
		{
			products.POST("", productsH.Crear)
			products.PUT("/:id", productsH.Actualizar)
			products.DELETE("/:id", productsH.Eliminar)
		}

		providers := v1.Group("/providers", middleware.RequireRole(adminRoles...))
		{
			providers.POST("", providersH.Crear)
			providers.GET("", providersH.Listar)
			providers.PUT("/:id", providersH.Actualizar)
			providers.DELETE("/:id", providersH.Eliminar)
		}

		v1.GET("/promotions", middleware.RequireRole(allRoles...), promotionsH.Listar)
		promotions := v1.Group("/promotions", middleware.RequireRole(adminRoles...))
		{
			promotions.POST("", promotionsH.Crear)
			promotions.PUT("/:id", promotionsH.Actualizar)
			promotions.DELETE("/:id", promotionsH.Eliminar)
		}

		sales := v1.Group("/sales", middleware.RequireRole(allRoles...))
		{
			sales.POST("", salesH.Crear)
			sales.GET("", salesH.Listar)
			sales.PUT("/:id", salesH.Actualizar)
			sales.DELETE("/:id", salesH.Eliminar)
			sales.GET("/:id/voucher", salesH.Voucher)
			sales.POST("/:id/send-voucher", salesH.EnviarVoucher)
		}

		saleDetails := v1.Group("/sale-details", middleware.RequireRole(allRoles...))
		{
			saleDetails.POST("", saleDetailsH.Crear)
			saleDetails.GET("", saleDetailsH.Listar)
			saleDetails.PUT("/:id", saleDetailsH.Actualizar)
			saleDetails.DELETE("/:id", saleDetailsH.Eliminar)
		}

		buys := v1.Group("/buys", middleware.RequireRole(allRoles...))
		{
			buys.POST("", buysH.Crear)
			buys.GET("", buysH.Listar)
			buys.PUT("/:id", buysH.Actualizar)
			buys.DELETE("/:id", buysH.Eliminar)
		}

		buyDetails := v1.Group("/buy-details", middleware.RequireRole(allRoles...))
		{
			buyDetails.POST("", buyDetailsH.Crear)
			buyDetails.GET("", buyDetailsH.Listar)
			buyDetails.PUT("/:id", buyDetailsH.Actualizar)
			buyDetails.DELETE("/:id", buyDetailsH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

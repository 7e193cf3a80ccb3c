// Package v1 provides HTTP API version 1.
package v1

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"fakturo/internal/domain"
	"fakturo/internal/domain/artifact"
	"fakturo/internal/domain/auth"
	"fakturo/internal/domain/catalogs/category"
	"fakturo/internal/domain/catalogs/client"
	"fakturo/internal/domain/catalogs/country"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/internal/domain/catalogs/subcategory"
	"fakturo/internal/domain/catalogs/supplier"
	"fakturo/internal/domain/catalogs/supplierproduct"
	"fakturo/internal/domain/catalogs/suppliersector"
	"fakturo/internal/domain/documents/delivery"
	"fakturo/internal/domain/documents/invoice"
	"fakturo/internal/domain/warehouse"
	"fakturo/internal/infrastructure/http/v1/handlers"
	"fakturo/internal/infrastructure/http/v1/middleware"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/catalog_repo"
	"fakturo/internal/infrastructure/storage/sqlite/document_repo"
	"fakturo/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// DB is the opened sqlite database
	DB *sql.DB

	// Logger for request logging
	Logger *logger.Logger

	// ArtifactStore persists rendered documents
	ArtifactStore artifact.Store

	// AuthService for login and token validation
	AuthService *auth.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Storage wiring
	txm := sqlite.NewTxManager(cfg.DB)
	numGen := sqlite.NewNumerator(txm)

	clientRepo := catalog_repo.NewClientRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	supplierRepo := catalog_repo.NewSupplierRepo(txm)
	categoryRepo := catalog_repo.NewCategoryRepo(txm)
	subcategoryRepo := catalog_repo.NewSubcategoryRepo(txm)
	countryRepo := catalog_repo.NewCountryRepo(txm)
	sectorRepo := catalog_repo.NewSupplierSectorRepo(txm)
	supplierProductRepo := catalog_repo.NewSupplierProductRepo(txm)
	warehouseRepo := catalog_repo.NewWarehouseRepo(txm)
	invoiceRepo := document_repo.NewInvoiceRepo(txm)
	deliveryRepo := document_repo.NewDeliveryRepo(txm)

	// Services
	clientSvc := domain.NewCatalogService[*client.Client](clientRepo, txm, "client")
	productSvc := product.NewService(productRepo, txm)
	supplierSvc := supplier.NewService(supplierRepo, txm)
	categorySvc := domain.NewCatalogService[*category.Category](categoryRepo, txm, "category")
	subcategorySvc := domain.NewCatalogService[*subcategory.Subcategory](subcategoryRepo, txm, "subcategory")
	countrySvc := domain.NewCatalogService[*country.Country](countryRepo, txm, "country")
	sectorSvc := domain.NewCatalogService[*suppliersector.SupplierSector](sectorRepo, txm, "supplier sector")
	supplierProductSvc := domain.NewCatalogService[*supplierproduct.SupplierProduct](supplierProductRepo, txm, "supplier product")
	warehouseSvc := warehouse.NewService(warehouseRepo, productRepo, txm)
	invoiceSvc := invoice.NewService(invoiceRepo, clientRepo, productRepo, cfg.ArtifactStore, numGen, txm)
	deliverySvc := delivery.NewService(deliveryRepo, clientRepo, productRepo, numGen, txm)

	// Handlers
	base := handlers.NewBaseHandler()
	clientH := handlers.NewCatalogHandler(base, clientSvc, func() *client.Client { return &client.Client{} })
	productH := handlers.NewProductHandler(base, productSvc)
	supplierH := handlers.NewSupplierHandler(base, supplierSvc)
	categoryH := handlers.NewCatalogHandler(base, categorySvc, func() *category.Category { return &category.Category{} })
	subcategoryH := handlers.NewCatalogHandler(base, subcategorySvc, func() *subcategory.Subcategory { return &subcategory.Subcategory{} })
	countryH := handlers.NewCatalogHandler(base, countrySvc, func() *country.Country { return &country.Country{} })
	sectorH := handlers.NewCatalogHandler(base, sectorSvc, func() *suppliersector.SupplierSector { return &suppliersector.SupplierSector{} })
	supplierProductH := handlers.NewCatalogHandler(base, supplierProductSvc, func() *supplierproduct.SupplierProduct { return &supplierproduct.SupplierProduct{} })
	warehouseGroupH := handlers.NewCatalogHandler(base, warehouseSvc.CatalogService, func() *warehouse.Group { return &warehouse.Group{} })
	warehouseH := handlers.NewWarehouseHandler(base, warehouseSvc)
	invoiceH := handlers.NewInvoiceHandler(base, invoiceSvc)
	deliveryH := handlers.NewDeliveryHandler(base, deliverySvc)
	documentH := handlers.NewDocumentHandler(base, cfg.ArtifactStore)
	authH := handlers.NewAuthHandler(base, cfg.AuthService)
	healthH := handlers.NewHealthHandler(cfg.DB)

	// Health endpoints (no auth)
	health := router.Group("/health")
	{
		health.GET("/live", healthH.Live)
		health.GET("/ready", healthH.Ready)
	}

	// API v1
	apiV1 := router.Group("/api/v1")

	// Auth (no token required)
	apiV1.POST("/auth/login", authH.Login)

	// Everything else requires a valid token
	protected := apiV1.Group("")
	protected.Use(middleware.Auth(cfg.AuthService))

	registerCatalog(protected, "/clients", clientH)
	registerCatalog(protected, "/categories", categoryH)
	registerCatalog(protected, "/subcategories", subcategoryH)
	registerCatalog(protected, "/countries", countryH)
	registerCatalog(protected, "/supplier-sectors", sectorH)
	registerCatalog(protected, "/supplier-products", supplierProductH)

	products := protected.Group("/products")
	{
		products.GET("", productH.List)
		products.POST("", productH.Create)
		products.GET("/code/:code", productH.GetByCode)
		products.GET("/:id", productH.Get)
		products.PUT("/:id", productH.Update)
		products.DELETE("/:id", productH.Delete)
		products.POST("/:id/deactivate", productH.Deactivate)
	}

	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", supplierH.List)
		suppliers.POST("", supplierH.Create)
		suppliers.GET("/:id", supplierH.Get)
		suppliers.PUT("/:id", supplierH.Update)
		suppliers.DELETE("/:id", supplierH.Delete)
		suppliers.POST("/:id/deactivate", supplierH.Deactivate)
	}

	groups := protected.Group("/warehouse-groups")
	{
		groups.GET("", warehouseGroupH.List)
		groups.POST("", warehouseGroupH.Create)
		groups.GET("/:id", warehouseH.Get)
		groups.PUT("/:id", warehouseGroupH.Update)
		groups.DELETE("/:id", warehouseH.Delete)
		groups.POST("/:id/items", warehouseH.AddItem)
		groups.DELETE("/:id/items/:productId", warehouseH.DeleteItem)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", invoiceH.List)
		invoices.POST("", invoiceH.Create)
		invoices.GET("/:id", invoiceH.Get)
		invoices.PUT("/:id", invoiceH.Update)
		invoices.PATCH("/:id/status", invoiceH.UpdateStatus)
		invoices.DELETE("/:id", invoiceH.Delete)
	}
	protected.GET("/clients/:id/invoices", invoiceH.History)

	deliveries := protected.Group("/deliveries")
	{
		deliveries.GET("", deliveryH.List)
		deliveries.POST("", deliveryH.Create)
		deliveries.GET("/:id", deliveryH.Get)
		deliveries.DELETE("/:id", deliveryH.Delete)
	}

	documents := protected.Group("/documents")
	{
		documents.PUT("/:type/:year/:month/:number", documentH.Save)
		documents.GET("/:type/:year/:month/:number", documentH.Load)
		documents.DELETE("/:type/:year/:month/:number", documentH.Delete)
	}

	return router
}

// catalogRoutes is the generic CRUD surface shared by flat catalogs.
type catalogRoutes interface {
	List(*gin.Context)
	Create(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func registerCatalog(rg *gin.RouterGroup, path string, h catalogRoutes) {
	g := rg.Group(path)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

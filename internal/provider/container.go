package provider

import (
	"github.com/warungkita/internal/config"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo    repository.AdminRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	VariantRepo  repository.VariantRepository
	MovementRepo repository.StockMovementRepository
	OrderRepo    repository.OrderRepository
	ShipmentRepo repository.ShipmentRepository
	ChannelRepo  repository.ChannelRepository
	CustomerRepo repository.CustomerRepository
	PurchaseRepo repository.PurchaseOrderRepository
	ExpenseRepo  repository.ExpenseRepository
	ReportRepo   repository.ReportRepository

	// Services
	AuthService     *service.AuthService
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	QuoteService    *service.QuoteService
	OrderService    *service.OrderService
	PurchaseService *service.PurchaseService
	StockService    *service.StockService
	CustomerService *service.CustomerService
	ExpenseService  *service.ExpenseService
	ReportService   *service.ReportService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.MovementRepo = repository.NewStockMovementRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ShipmentRepo = repository.NewShipmentRepository(db)
	c.ChannelRepo = repository.NewChannelRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.PurchaseRepo = repository.NewPurchaseOrderRepository(db)
	c.ExpenseRepo = repository.NewExpenseRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.VariantRepo, c.CategoryRepo)
	c.QuoteService = service.NewQuoteService(c.VariantRepo, c.Config.Shipping)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.VariantRepo, c.MovementRepo, c.ShipmentRepo, c.ChannelRepo, c.CustomerRepo, c.QuoteService)
	c.PurchaseService = service.NewPurchaseService(c.PurchaseRepo, c.VariantRepo, c.MovementRepo)
	c.StockService = service.NewStockService(c.VariantRepo, c.MovementRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.ExpenseService = service.NewExpenseService(c.ExpenseRepo)
	c.ReportService = service.NewReportService(c.ReportRepo, c.ExpenseRepo, c.Config.Report)
}

package router

import (
	"github.com/warungkita/internal/config"
	adminhandlers "github.com/warungkita/internal/http/handlers/admin"
	publichandlers "github.com/warungkita/internal/http/handlers/public"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and all API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
			public.GET("/categories", publicHandler.GetCategories)
			public.POST("/quote", publicHandler.QuoteCart)
			public.POST("/checkout", publicHandler.Checkout)
			public.GET("/orders/by-order-no/:order_no", publicHandler.GetOrderByNo)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/me", adminHandler.Me)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.GET("/categories/:id", adminHandler.GetCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)
				authorized.GET("/products/:id/variants", adminHandler.ListVariants)
				authorized.POST("/products/:id/variants", adminHandler.CreateVariant)
				authorized.PUT("/variants/:id", adminHandler.UpdateVariant)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.POST("/orders/pos", adminHandler.CreatePOSSale)
				authorized.POST("/orders/import", adminHandler.ImportOrder)
				authorized.POST("/orders/:id/pay", adminHandler.MarkOrderPaid)
				authorized.POST("/orders/:id/ship", adminHandler.ShipOrder)
				authorized.POST("/orders/:id/complete", adminHandler.CompleteOrder)
				authorized.POST("/orders/:id/cancel", adminHandler.CancelOrder)
				authorized.GET("/channels", adminHandler.ListChannels)

				authorized.GET("/purchase-orders", adminHandler.ListPurchaseOrders)
				authorized.POST("/purchase-orders", adminHandler.CreatePurchaseOrder)
				authorized.GET("/purchase-orders/:id", adminHandler.GetPurchaseOrder)
				authorized.PUT("/purchase-orders/:id", adminHandler.UpdatePurchaseOrder)
				authorized.POST("/purchase-orders/:id/receive", adminHandler.ReceivePurchaseOrder)

				authorized.POST("/stock/adjust", adminHandler.AdjustStock)
				authorized.GET("/stock/movements", adminHandler.ListStockMovements)

				authorized.POST("/customers", adminHandler.CreateCustomer)
				authorized.GET("/customers/:id", adminHandler.GetCustomer)
				authorized.PUT("/customers/:id", adminHandler.UpdateCustomer)
				authorized.GET("/customers/:id/addresses", adminHandler.ListCustomerAddresses)
				authorized.POST("/customers/:id/addresses", adminHandler.CreateCustomerAddress)
				authorized.DELETE("/customers/:id/addresses/:address_id", adminHandler.DeleteCustomerAddress)

				authorized.GET("/expenses", adminHandler.ListExpenses)
				authorized.POST("/expenses", adminHandler.CreateExpense)
				authorized.PUT("/expenses/:id", adminHandler.UpdateExpense)
				authorized.DELETE("/expenses/:id", adminHandler.DeleteExpense)

				authorized.GET("/reports/sales", adminHandler.GetSalesReport)
				authorized.GET("/reports/profit-loss", adminHandler.GetProfitLossReport)
				authorized.GET("/reports/sales/export", adminHandler.ExportSalesReport)
			}
		}
	}

	return r
}

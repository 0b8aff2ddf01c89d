package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps agrupa los handlers que el router necesita.
type RouterDeps struct {
	Inventory  *InventoryHandler
	Purchases  *PurchaseHandler
	Production *ProductionHandler
	Recipes    *RecipeHandler
	Reminders  *ReminderHandler
	Sales      *SalesHandler
	Suppliers  *SupplierHandler
	Customers  *CustomerHandler
}

// Router registra todas las rutas de la API.
// Las rutas fijas van antes que las rutas con :id para que Fiber no
// capture "low-stock" o "active" como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	items := api.Group("/items")
	items.Post("/", deps.Inventory.CreateItem)
	items.Get("/", deps.Inventory.ListItems)
	items.Get("/finished-products", deps.Inventory.ListFinishedProducts)
	items.Get("/low-stock", deps.Inventory.ListLowStock)
	items.Get("/:id", deps.Inventory.GetItem)
	items.Put("/:id", deps.Inventory.UpdateItem)
	items.Delete("/:id", deps.Inventory.DeleteItem)
	items.Get("/:id/movements", deps.Inventory.ListMovements)

	api.Post("/purchases", deps.Purchases.Create)
	api.Post("/adjustments", deps.Inventory.RegisterAdjustment)

	batches := api.Group("/batches")
	batches.Post("/", deps.Production.CreateBatch)
	batches.Get("/active", deps.Production.ListActive)
	batches.Get("/history", deps.Production.ListHistory)
	batches.Get("/:id", deps.Production.GetBatch)
	batches.Post("/:id/complete", deps.Production.CompleteBatch)
	batches.Post("/:id/fail", deps.Production.FailBatch)
	batches.Get("/:id/reminders", deps.Production.ListBatchReminders)

	recipes := api.Group("/recipes")
	recipes.Post("/", deps.Recipes.Create)
	recipes.Get("/", deps.Recipes.List)
	recipes.Get("/:id", deps.Recipes.GetByID)
	recipes.Put("/:id", deps.Recipes.Update)
	recipes.Delete("/:id", deps.Recipes.Delete)

	reminders := api.Group("/reminders")
	reminders.Get("/pending", deps.Reminders.ListPending)
	reminders.Post("/:id/snooze", deps.Reminders.Snooze)
	reminders.Post("/:id/complete", deps.Reminders.Complete)

	salesGroup := api.Group("/sales")
	salesGroup.Post("/", deps.Sales.Create)
	salesGroup.Get("/", deps.Sales.List)
	salesGroup.Get("/:id", deps.Sales.GetByID)
	salesGroup.Get("/:id/receipt.pdf", deps.Sales.Receipt)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", deps.Suppliers.Create)
	suppliers.Get("/", deps.Suppliers.List)
	suppliers.Get("/:id", deps.Suppliers.GetByID)
	suppliers.Put("/:id", deps.Suppliers.Update)

	customers := api.Group("/customers")
	customers.Post("/", deps.Customers.Create)
	customers.Get("/", deps.Customers.List)
	customers.Get("/:id", deps.Customers.GetByID)
	customers.Put("/:id", deps.Customers.Update)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/api/validation"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Categories     *handlers.CategoriesHandler
	Products       *handlers.ProductsHandler
	Carts          *handlers.CartsHandler
	Orders         *handlers.OrdersHandler
	Addresses      *handlers.AddressesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. On protected routes the token gate runs
// before field validation, so unauthenticated callers never receive
// field-level feedback.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	verify := cfg.AuthMiddleware.Handle

	users := app.Group("/api/users")
	users.Post("/register", validation.Body(
		validation.Required("username", "username is required"),
		validation.Email("email", "email is required"),
		validation.StrongPassword("password", "Strong password is required"),
	), cfg.Users.Register)
	users.Post("/login", validation.Body(
		validation.Email("email", "email is required"),
		validation.StrongPassword("password", "Strong password is required"),
	), cfg.Users.Login)
	users.Get("/me", verify, cfg.Users.Me)
	users.Post("/profile", verify, validation.Body(
		validation.Required("imageUrl", "Image Url is Required"),
	), cfg.Users.UpdateProfilePicture)
	users.Post("/change-password", verify, validation.Body(
		validation.StrongPassword("password", "Strong Password is required"),
	), cfg.Users.ChangePassword)

	addresses := app.Group("/api/addresses")
	addressRules := validation.Body(
		validation.Required("mobile", "mobile is required"),
		validation.Required("flat", "flat is required"),
		validation.Required("street", "street is required"),
		validation.Required("city", "city is required"),
		validation.Required("state", "state is required"),
		validation.Required("country", "country is required"),
		validation.Required("pinCode", "pinCode is required"),
	)
	addresses.Post("/new", verify, addressRules, cfg.Addresses.Create)
	addresses.Put("/:addressId", verify, addressRules, cfg.Addresses.Update)
	addresses.Get("/me", verify, cfg.Addresses.GetMine)
	addresses.Delete("/:addressId", verify, cfg.Addresses.Delete)

	categories := app.Group("/api/categories")
	categoryRules := validation.Body(
		validation.Required("name", "name is required"),
		validation.Required("description", "description is required"),
	)
	categories.Post("/", verify, categoryRules, cfg.Categories.Create)
	categories.Post("/:categoryId", verify, categoryRules, cfg.Categories.CreateSubCategory)
	categories.Get("/", cfg.Categories.List)

	products := app.Group("/api/products")
	productRules := validation.Body(
		validation.Required("title", "title is required"),
		validation.Required("description", "description is required"),
		validation.Required("imageUrl", "imageUrl is required"),
		validation.Required("price", "price is required"),
		validation.Required("quantity", "quantity is required"),
		validation.Required("categoryId", "categoryId is required"),
		validation.Required("subCategoryId", "subCategoryId is required"),
	)
	products.Post("/", verify, productRules, cfg.Products.Create)
	products.Put("/:productId", verify, productRules, cfg.Products.Update)
	products.Get("/", verify, cfg.Products.List)
	products.Get("/categories/:categoryId", verify, cfg.Products.ListByCategory)
	products.Get("/:productId", verify, cfg.Products.Get)
	products.Delete("/:productId", verify, cfg.Products.Delete)

	carts := app.Group("/api/carts")
	cartRules := validation.Body(
		validation.Required("products", "products is required"),
		validation.Required("total", "total is required"),
		validation.Required("tax", "tax is required"),
		validation.Required("grandTotal", "grandTotal is required"),
	)
	carts.Post("/", verify, cartRules, cfg.Carts.Create)
	carts.Get("/me", verify, cfg.Carts.GetMine)

	orders := app.Group("/api/orders")
	orders.Post("/place", verify, validation.Body(
		validation.Required("products", "products is required"),
		validation.Required("total", "total is required"),
		validation.Required("tax", "tax is required"),
		validation.Required("grandTotal", "grandTotal is required"),
		validation.Required("paymentType", "paymentType is required"),
	), cfg.Orders.Place)
	orders.Get("/all", verify, cfg.Orders.ListAll)
	orders.Get("/me", verify, cfg.Orders.ListMine)
	orders.Post("/:orderId", verify, validation.Body(
		validation.Required("orderStatus", "orderStatus is required"),
	), cfg.Orders.UpdateStatus)
}

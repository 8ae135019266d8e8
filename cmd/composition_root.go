package cmd

import (
	"time"

	httpin "flavorverse/internal/adapters/in/http"
	"flavorverse/internal/adapters/out/postgres/orderrepo"
	"flavorverse/internal/core/application/usecases/commands"
	"flavorverse/internal/core/application/usecases/queries"
	"flavorverse/internal/core/application/validation"
	"flavorverse/internal/core/domain/services"
	"flavorverse/internal/core/ports"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config    Config
	orderRepo ports.OrderRepository
	lifecycle services.OrderLifecycle
	validator *validation.Validator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:    config,
		orderRepo: orderrepo.NewGormOrderRepository(gormDB),
		lifecycle: services.NewOrderLifecycle(func() time.Time { return time.Now().UTC() }),
		validator: validation.NewValidator(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderRepo, c.lifecycle)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepo, c.lifecycle)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetUserOrderQueryHandler() queries.GetUserOrderQueryHandler {
	return queries.NewGetUserOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateListUserOrdersQueryHandler(),
		c.CreateGetUserOrderQueryHandler(),
		c.validator,
		c.config.IsDevelopment(),
	)
}

func (c *CompositionRoot) CreateAuthMiddleware() ([]echo.MiddlewareFunc, error) {
	return httpin.RequireBearer(httpin.AuthConfig{
		JWTSecret: c.config.Auth.JWTSecret,
		Issuer:    c.config.Auth.JWTIssuer,
		Audience:  c.config.Auth.JWTAudience,
	})
}

// MountRoutes registers the order API, the liveness route and the API docs on e.
func (c *CompositionRoot) MountRoutes(e *echo.Echo) error {
	auth, err := c.CreateAuthMiddleware()
	if err != nil {
		return err
	}
	httpin.RegisterRoutes(e, c.config.HTTP.Prefix, c.CreateHTTPServer(), auth)

	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		return err
	}
	return httpin.RegisterDocs(e, doc)
}

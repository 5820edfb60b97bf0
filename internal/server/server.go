package server

import (
	"app/internal/config"
	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Category      *handler.CategoryHandler
	Product       *handler.ProductHandler
	AdminProduct  *handler.AdminProductHandler
	Like          *handler.LikeHandler
	Review        *handler.ReviewHandler
	Checkout      *handler.CheckoutHandler
	AdminCheckout *handler.AdminCheckoutHandler
	Payment       *handler.PaymentHandler
}

// Newはechoを組み立てる。起動はしない（テストからも使う）。
func New(cfg config.Config, logger *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.RequestLogger(logger))

	h.Auth.RegisterRoutes(e, cfg)
	h.Category.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.Like.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.AdminCheckout.RegisterRoutes(e, cfg)
	h.Payment.RegisterRoutes(e, cfg)

	return e
}

func Start(cfg config.Config, logger *zap.Logger, h Handlers) error {
	e := New(cfg, logger, h)
	return e.Start(":" + cfg.Port)
}

package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/gateway"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Like{},
		&model.Review{},
		&model.Checkout{},
		&model.CheckoutItem{},
		&model.Payment{},
		&model.AuditLog{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	likeRepo := infraRepo.NewLikeGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//決済ゲートウェイ
	midtransGW := gateway.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, reviewRepo)
	likeUC := usecase.NewLikeUsecase(likeRepo, productRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cfg.StockDecrement)
	adminOrderUC := usecase.NewAdminOrderUsecase(checkoutRepo, auditRepo)
	paymentUC := usecase.NewPaymentUsecase(checkoutRepo, paymentRepo, userRepo, midtransGW, logger)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Category:      handler.NewCategoryHandler(categoryUC),
		Product:       handler.NewProductHandler(productUC, reviewUC),
		AdminProduct:  handler.NewAdminProductHandler(productUC),
		Like:          handler.NewLikeHandler(likeUC),
		Review:        handler.NewReviewHandler(reviewUC),
		Checkout:      handler.NewCheckoutHandler(checkoutUC),
		AdminCheckout: handler.NewAdminCheckoutHandler(adminOrderUC),
		Payment:       handler.NewPaymentHandler(paymentUC),
	}

	//Server起動
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := server.Start(cfg, logger, handlers); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.GoEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

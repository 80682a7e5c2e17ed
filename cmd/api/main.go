package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "invest-platform-backend/internal/adapter/http"
	"invest-platform-backend/internal/adapter/middleware"
	"invest-platform-backend/internal/adapter/repository/mysql"
	"invest-platform-backend/internal/auth"
	"invest-platform-backend/internal/config"
	"invest-platform-backend/internal/infrastructure/cache"
	"invest-platform-backend/internal/infrastructure/db"
	"invest-platform-backend/internal/infrastructure/mailer"
	dealuc "invest-platform-backend/internal/usecase/deal"
	investuc "invest-platform-backend/internal/usecase/invest"
	onboardinguc "invest-platform-backend/internal/usecase/onboarding"
	reviewuc "invest-platform-backend/internal/usecase/review"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.MailGatewayURL != "" {
		mail = mailer.NewGateway(cfg.MailGatewayURL, cfg.MailAPIKey, cfg.MailFrom)
	}

	deals := mysql.NewDealRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	partners := mysql.NewPartnerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	dealUC := dealuc.NewUsecase(deals, uow)
	reviewUC := reviewuc.NewUsecase(users, uow, mail)
	investUC := investuc.NewUsecase(uow, mail)
	onboardingUC := onboardinguc.NewUsecase(partners, uow, mail)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(users)
	dealH := httpadp.NewDealHandler(dealUC)
	reviewH := httpadp.NewReviewHandler(reviewUC)
	investH := httpadp.NewInvestHandler(investUC)
	appH := httpadp.NewApplicationHandler(onboardingUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/login", authH.Login)

	api := e.Group("", middleware.RequireAuth(),
		middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.POST("/deals", dealH.CreateDeal)
	api.GET("/deals/:deal_id", dealH.GetDeal)
	api.POST("/deals/:deal_id/update-requests", dealH.SubmitUpdateRequest)
	api.POST("/update-requests/:request_id/review", reviewH.ReviewUpdateRequest)
	api.POST("/deals/:deal_id/investments", investH.Invest)
	api.POST("/deals/:deal_id/investments/preview", investH.PreviewInvest)
	api.POST("/applications/:application_id/approve", appH.ApproveApplication)
	api.POST("/applications/:application_id/reject", appH.RejectApplication)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

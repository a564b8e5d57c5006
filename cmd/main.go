package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/shophub/order-placement-service/docs"
	"github.com/shophub/order-placement-service/internal/app"
	"github.com/shophub/order-placement-service/internal/config"
	"github.com/shophub/order-placement-service/internal/handler"
	"github.com/shophub/order-placement-service/internal/postgres"
	"github.com/shophub/order-placement-service/internal/repo"
	"github.com/shophub/order-placement-service/internal/service"
	"github.com/shophub/order-placement-service/internal/userclient"
	"github.com/shophub/order-placement-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Placement Service API
// @version         1.0
// @description     Carts and orders with user enrichment from the remote user service
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	users := userclient.New(logger, conf.UserService)

	cartService := service.NewCartService(logger, txManager, store, users)
	orderService := service.NewOrderService(logger, txManager, store, store)

	cartHandler := handler.NewCartHandler(logger, cartService)
	orderHandler := handler.NewOrderHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(cartHandler, orderHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/tablescope/tablescope-backend/api"
	"github.com/tablescope/tablescope-backend/infra"
	"github.com/tablescope/tablescope-backend/repositories"
	"github.com/tablescope/tablescope-backend/usecases"
	"github.com/tablescope/tablescope-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		Port:           utils.GetRequiredEnv[string]("PORT"),
		FrontendUrl:    utils.GetEnv("FRONTEND_URL", ""),
		RequestTimeout: time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECOND", 10)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "tablescope"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolSize:      utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
	}
	redisConfig := infra.RedisConfig{
		Address:  utils.GetRequiredEnv[string]("REDIS_ADDRESS"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
	}

	logger := utils.NewLogger(apiConfig.Env)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig)
	if err != nil {
		logger.ErrorContext(ctx, "could not connect to PostgreSQL", "error", err.Error())
		return err
	}
	redisClient, err := infra.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logger.ErrorContext(ctx, "could not connect to Redis", "error", err.Error())
		return err
	}

	uc := usecases.Usecases{
		ExecutorGetter: repositories.NewExecutorGetter(pool),
		Repository:     repositories.NewTablescopeDbRepository(),
		QueryStore:     repositories.NewQueryStoreRepository(redisClient),
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "error while shutting down the server", "error", err.Error())
		return err
	}
	pool.Close()
	if err := redisClient.Close(); err != nil {
		logger.ErrorContext(ctx, "error while closing the redis client", "error", err.Error())
	}

	return nil
}

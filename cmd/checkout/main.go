package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/ecommerce/internal/checkout/application"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
	"github.com/wyfcoding/ecommerce/internal/checkout/infrastructure/client"
	checkoutredis "github.com/wyfcoding/ecommerce/internal/checkout/infrastructure/persistence/redis"
	"github.com/wyfcoding/ecommerce/internal/checkout/infrastructure/postal"
	httpserver "github.com/wyfcoding/ecommerce/internal/checkout/interfaces/http"
	"github.com/wyfcoding/ecommerce/pkg/storefront"
	"github.com/wyfcoding/pkg/cache"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var configPath = flag.String("config", "configs/checkout/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 配置
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	sfCfg, err := storefront.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load storefront config: %v", err))
	}

	// 2. 日志
	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	// 4. Redis（结算草稿）
	redisCache, err := cache.NewRedisCache(&cfg.Data.Redis, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	// 5. 仓储与外部服务
	draftRepo := checkoutredis.NewDraftRedisRepository(redisCache.GetClient(), sfCfg.DraftTTL())
	cartGateway := client.NewCartClient(sfCfg.CartBaseURL)
	orderSubmitter := client.NewOrderClient(sfCfg.OrderBaseURL)
	postalLookup := postal.NewViaCEPClient(sfCfg.ViaCEPBaseURL)

	// 6. 应用服务
	checkoutSvc := application.NewCheckoutService(
		draftRepo, cartGateway, orderSubmitter, postalLookup, domain.DefaultShippingMethods())

	// 7. 接口层
	gin.SetMode(gin.ReleaseMode)
	if cfg.Server.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	httpHandler := httpserver.NewHandler(checkoutSvc)
	httpHandler.RegisterRoutes(r.Group("/api"))

	// 8. 启动
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
		server := &http.Server{Addr: addr, Handler: r}
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}

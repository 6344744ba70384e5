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
	"github.com/wyfcoding/ecommerce/internal/cart/application"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/ecommerce/internal/cart/infrastructure/client"
	"github.com/wyfcoding/ecommerce/internal/cart/infrastructure/messaging"
	"github.com/wyfcoding/ecommerce/internal/cart/infrastructure/persistence/mysql"
	cartredis "github.com/wyfcoding/ecommerce/internal/cart/infrastructure/persistence/redis"
	"github.com/wyfcoding/ecommerce/internal/cart/interfaces/consumer"
	httpserver "github.com/wyfcoding/ecommerce/internal/cart/interfaces/http"
	"github.com/wyfcoding/ecommerce/pkg/storefront"
	"github.com/wyfcoding/pkg/cache"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var configPath = flag.String("config", "configs/cart/config.toml", "config file path")

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

	// 4. 数据库（优惠券）
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(&mysql.CouponModel{}, &mysql.CouponRedemptionModel{}); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Redis（购物车快照）
	redisCache, err := cache.NewRedisCache(&cfg.Data.Redis, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	// 6. Kafka
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)

	// 7. 定价参数
	threshold, err := sfCfg.Threshold()
	if err != nil {
		panic(err)
	}
	shippingRate, err := sfCfg.ShippingRate()
	if err != nil {
		panic(err)
	}
	engine := domain.NewPricingEngine(domain.PricingConfig{
		FreeShippingThreshold: threshold,
		FlatShippingRate:      shippingRate,
	})

	// 8. 仓储与外部服务
	cartRepo := cartredis.NewCartRedisRepository(redisCache.GetClient())
	couponRepo := mysql.NewCouponRepository(db.RawDB())
	catalogClient := client.NewCatalogClient(sfCfg.CatalogBaseURL)
	publisher := messaging.NewKafkaPublisher(kafkaProducer)

	// 9. 应用服务
	cartSvc := application.NewCartService(cartRepo, couponRepo, catalogClient, engine, publisher)

	// 10. 订单事件消费（优惠券用量投影）
	consumerCfg := cfg.MessageQueue.Kafka
	consumerCfg.GroupID = "cart-coupon-usage-group"
	consumerCfg.Topic = "order.created"
	usageConsumer := kafka.NewConsumer(&consumerCfg, logger, metricsImpl)
	usageHandler := consumer.NewCouponUsageHandler(couponRepo, logger.Logger)
	usageHandler.Subscribe(context.Background(), usageConsumer)

	// 11. 接口层
	gin.SetMode(gin.ReleaseMode)
	if cfg.Server.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	httpHandler := httpserver.NewHandler(cartSvc)
	httpHandler.RegisterRoutes(r.Group("/api"))

	// 12. 启动
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

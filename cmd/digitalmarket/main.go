package main

import (
	"context"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	goredis "github.com/redis/go-redis/v9"
	"github.com/valdes557/digitalmarket/internal/adapter/auth"
	"github.com/valdes557/digitalmarket/internal/adapter/client/cinetpay"
	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"github.com/valdes557/digitalmarket/internal/adapter/dltoken"
	"github.com/valdes557/digitalmarket/internal/adapter/handler/http"
	"github.com/valdes557/digitalmarket/internal/adapter/logger"
	"github.com/valdes557/digitalmarket/internal/adapter/notifier"
	"github.com/valdes557/digitalmarket/internal/adapter/objectstore"
	"github.com/valdes557/digitalmarket/internal/adapter/ratelimit"
	"github.com/valdes557/digitalmarket/internal/adapter/storage"
	"github.com/valdes557/digitalmarket/internal/adapter/storage/repository"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"github.com/valdes557/digitalmarket/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}
	downloadTokens, err := dltoken.New()
	if err != nil {
		log.Error("download token service creating error", zap.Error(err))
		return
	}

	gateway, err := cinetpay.NewClient(conf.Gateway, log.Named("CinetPay"))
	if err != nil {
		log.Error("payment gateway creating error", zap.Error(err))
		return
	}

	var files port.FileStore = objectstore.Disabled{}
	if conf.Storage.Endpoint != "" {
		store, err := objectstore.NewMinioStore(ctx, conf.Storage, log.Named("Minio"))
		if err != nil {
			log.Error("object store creating error", zap.Error(err))
			return
		}
		files = store
	}

	var events port.Notifier = notifier.Noop{Logger: log.Named("Notifier")}
	if conf.Broker.AMQPURL != "" {
		amqpNotifier, err := notifier.New(conf.Broker.AMQPURL, log.Named("Notifier"))
		if err != nil {
			log.Error("notifier creating error", zap.Error(err))
			return
		}
		defer amqpNotifier.Close()
		events = amqpNotifier
	}

	var limiter http.RateLimiter
	if conf.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: conf.Redis.Addr})
		limiter = ratelimit.NewRedisLimiter(client,
			conf.Redis.DownloadLimit,
			time.Duration(conf.Redis.DownloadWindowSeconds)*time.Second)
	}

	serviceConf, err := marketplaceConfig(conf.Marketplace, conf.HTTP)
	if err != nil {
		log.Error("marketplace config error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, downloadTokens,
		gateway, files, events, serviceConf, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	downloadHandler, err := http.NewDownloadHandler(svc, log.Named("Download handler"))
	if err != nil {
		log.Error("download handler creating error", zap.Error(err))
		return
	}
	withdrawalHandler, err := http.NewWithdrawalHandler(svc, log.Named("Withdrawal handler"))
	if err != nil {
		log.Error("withdrawal handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, limiter,
		userHandler, orderHandler, paymentHandler, downloadHandler, withdrawalHandler,
		log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

func marketplaceConfig(m *config.Marketplace, h *config.HTTP) (service.Config, error) {
	rate, err := decimal.NewFromFloat64(m.CommissionRate)
	if err != nil {
		return service.Config{}, fmt.Errorf("commission rate: %w", err)
	}
	minWithdrawal, err := decimal.NewFromFloat64(m.MinWithdrawal)
	if err != nil {
		return service.Config{}, fmt.Errorf("min withdrawal: %w", err)
	}

	return service.Config{
		CommissionRate:      rate,
		MaxDownloadsDefault: int32(m.MaxDownloadsDefault),
		LinkTTL:             time.Duration(m.LinkTTLMinutes) * time.Minute,
		RedirectTTL:         time.Duration(m.RedirectTTLSeconds) * time.Second,
		MinWithdrawal:       minWithdrawal,
		Currency:            m.Currency,
		PublicURL:           h.PublicURL,
	}, nil
}

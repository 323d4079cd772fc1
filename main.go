// @title StudyHive API
// @version 1.0
// @description REST backend for the StudyHive study-session marketplace.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"

	"studyhive/bootstrap"
	"studyhive/config"
	"studyhive/database"
	"studyhive/internal/repository"
	"studyhive/internal/routes"
	"studyhive/internal/services"
)

func main() {
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.LoadConfig()
	if err != nil {
		glog.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		glog.Fatalf("%v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			glog.Warningf("mongo disconnect: %v", err)
		}
	}()

	// One account per email
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		glog.Fatalf("ensure indexes failed: %v", err)
	}

	var revocations services.RevocationStore
	if cfg.RedisURL != "" {
		rdb, err := services.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			glog.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		revocations = services.NewRedisRevocationStore(rdb, cfg.TokenTTL)
		glog.Info("role revocations stored in Redis")
	} else {
		revocations = services.NewMemoryRevocationStore(cfg.TokenTTL)
		glog.Warning("REDIS_URL not set, role revocations are kept in memory")
	}

	var intents services.IntentCreator
	if cfg.StripeKey != "" {
		intents = services.NewStripeIntents(cfg.StripeKey)
	} else {
		glog.Warning("STRIPE_KEY not set, payment intents are disabled")
	}

	app := routes.NewApp(routes.Deps{
		Users:     repository.NewUserRepository(db),
		Courses:   repository.NewCourseRepository(db),
		Bookings:  repository.NewBookingRepository(db),
		Reviews:   repository.NewReviewRepository(db),
		Notes:     repository.NewNoteRepository(db),
		Materials: repository.NewMaterialRepository(db),

		Tokens:      services.NewTokenService(cfg.SecretToken, cfg.TokenTTL),
		Revocations: revocations,
		Payments:    services.NewPaymentService(intents),

		Ping:           func(ctx context.Context) error { return database.Ping(ctx, client) },
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	go shutdownOnSignal(app.ShutdownWithTimeout)

	glog.Infof("studyhive (%s) listening on :%s", cfg.Environment, cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		glog.Fatalf("listen: %v", err)
	}
}

func shutdownOnSignal(shutdown func(time.Duration) error) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	glog.Info("shutting down")
	if err := shutdown(10 * time.Second); err != nil {
		glog.Warningf("shutdown: %v", err)
	}
}

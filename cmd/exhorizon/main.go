package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/srgjo27/exhorizon/internal/adapter/handler"
	"github.com/srgjo27/exhorizon/internal/adapter/portability"
	"github.com/srgjo27/exhorizon/internal/adapter/repository/filestore"
	"github.com/srgjo27/exhorizon/internal/adapter/repository/mongostore"
	"github.com/srgjo27/exhorizon/internal/adapter/repository/redisstore"
	"github.com/srgjo27/exhorizon/internal/adapter/repository/sqlstore"
	"github.com/srgjo27/exhorizon/internal/core/ports"
	"github.com/srgjo27/exhorizon/internal/core/services"
	"github.com/srgjo27/exhorizon/internal/platform/config"
	"github.com/srgjo27/exhorizon/internal/platform/database"
	"github.com/srgjo27/exhorizon/internal/platform/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	dotenvErr := config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 2
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		ServiceName: "exhorizon",
		Development: cfg.LogDevelopment,
	})
	defer log.Sync()

	if dotenvErr != nil {
		log.Debug(".env not loaded, using process environment", zap.Error(dotenvErr))
	}

	ctx := context.Background()

	repo, closeRepo, err := openRepository(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
		fmt.Fprintln(os.Stderr, handler.Notice(err))
		return 1
	}
	defer closeRepo()

	planService := services.NewPlanService(repo, services.WithLogger(log))
	if err := planService.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, handler.Notice(err))
		return 1
	}

	var font []byte
	if cfg.PDFFont != "" {
		if font, err = os.ReadFile(cfg.PDFFont); err != nil {
			log.Error("failed to read PDF_FONT", zap.String("path", cfg.PDFFont), zap.Error(err))
			fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
			return 2
		}
	}

	backup := portability.NewJSONBackup()
	itinerary := portability.NewPDFItinerary(time.Local, cfg.WeekdayLocale(), portability.WithFont(font))
	transferService := services.NewTransferService(planService, cfg.ProductName,
		[]ports.Exporter{backup, portability.NewXLSXReport(time.Local), itinerary},
		[]ports.Importer{backup, portability.NewXLSXPreview(), portability.NewLegacyXLSImport()},
		services.WithTransferLogger(log),
	)

	planHandler := handler.NewPlanHandler(planService, transferService, cfg.WeekdayLocale(), cfg.ExportDir, os.Stdin, os.Stdout)

	if err := planHandler.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, handler.Notice(err))
		return 1
	}

	return 0
}

func openRepository(ctx context.Context, cfg config.App, log *zap.Logger) (ports.PlanRepository, func(), error) {
	switch cfg.StorageDriver {
	case "postgres", "mysql":
		dialect, err := sqlstore.DialectFor(cfg.StorageDriver)
		if err != nil {
			return nil, nil, err
		}

		db, err := database.NewDB(database.Config{
			Driver:   cfg.StorageDriver,
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
		}, log)
		if err != nil {
			return nil, nil, err
		}

		repo := sqlstore.NewPlanRepository(db, dialect, cfg.StorageSlot)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("redis connected", zap.String("addr", client.Options().Addr))
		return redisstore.NewPlanRepository(client, cfg.StorageSlot), func() { client.Close() }, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		coll := client.Database(cfg.MongoDatabase).Collection(mongostore.Collection)
		return mongostore.NewPlanRepository(coll, cfg.StorageSlot), func() { client.Disconnect(context.Background()) }, nil
	}

	repo := filestore.NewPlanRepository(filepath.Clean(cfg.DataDir), cfg.StorageSlot)
	log.Debug("using local snapshot file", zap.String("path", repo.Path()))
	return repo, func() {}, nil
}

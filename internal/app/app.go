package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/voice-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/voice-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/voice-backend/internal/delivery/v1/http"
	audioInfra "github.com/DRSN-tech/voice-backend/internal/infrastructure/audio"
	"github.com/DRSN-tech/voice-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/voice-backend/internal/infrastructure/minio"
	ml_service "github.com/DRSN-tech/voice-backend/internal/infrastructure/ml-service"
	"github.com/DRSN-tech/voice-backend/internal/proto"
	s3Repo "github.com/DRSN-tech/voice-backend/internal/repository/minio"
	"github.com/DRSN-tech/voice-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/voice-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/DRSN-tech/voice-backend/internal/repository/qdrant"
	"github.com/DRSN-tech/voice-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/voice-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/clients"
	"github.com/DRSN-tech/voice-backend/pkg/closer"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/DRSN-tech/voice-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	// appCtx живёт до самого конца shutdown: на нём висят фоновые задачи
	// (outbox worker, очистка MinIO)
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	userConv := pgdbConv.NewUserConverterImpl()
	versionConv := pgdbConv.NewEmbeddingVersionConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewUserInfoConverterImpl()

	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	versionRepo := pgdb.NewEmbeddingVersionRepo(db.Pool, versionConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	audioRepo := s3Repo.NewAudioSampleRepo(minioClient, cfg.Minio)

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCancel()

	embRepo := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	conn, err := grpc.NewClient(
		cfg.Ml.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // энкодер доступен только из внутренней сети, без TLS
	)
	if err != nil {
		logger.Errorf(err, "failed to initialize grpc client")
		os.Exit(1)
	}
	defer conn.Close()

	encoderClient := proto.NewSpeakerEncoderClient(conn)
	encoder := ml_service.NewMLService(encoderClient, cfg.Ml.MaxConcurrent, cfg.Ml.MaxRetries, logger)
	samplesInfra := minioInfra.NewMinioInfrastructure(audioRepo, cfg.Minio, logger, appCtx)
	transcoder := audioInfra.NewTranscoder(cfg.Audio, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("kafka topic not ensured, producer will retry on write: %v", err)
	}

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(appCtx)

	verificationUC := usecase.NewVerificationUC(
		userRepo,
		embRepo,
		versionRepo,
		outboxRepo,
		cacheRepo,
		db.Pool,
		encoder,
		transcoder,
		samplesInfra,
		logger,
	)

	userUC := usecase.NewUserUC(
		userRepo,
		embRepo,
		cacheRepo,
		logger,
	)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(verificationUC, logger)

	grpcErrCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC server starting on %s:%s", cfg.Grpc.NetworkMode, cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(userUC, verificationUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// Закрытие в LIFO-порядке: сначала входящий трафик, затем фоновая работа,
	// последними — клиенты хранилищ
	cl := closer.NewCloser(2 * time.Second)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return qdrantClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return samplesInfra.WaitForCleanup(ctx)
	})
	cl.Add(func(ctx context.Context) error {
		return grpcSrv.Stop(ctx)
	})
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

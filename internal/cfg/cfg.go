package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

type Config struct {
	Minio  *MinIOCfg
	Http   *HTTPConfig
	Grpc   *GRPCConfig
	Db     *PGDBCfg
	Qdrant *QdrantCfg
	Redis  *RedisCfg
	Ml     *MLServiceCfg
	Kafka  *KafkaCfg
	Audio  *AudioCfg
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Бакет для архива голосовых записей
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type QdrantCfg struct {
	Port                 int
	Host                 string
	ApiKey               string
	QdrantCollectionName string // имя коллекции в Qdrant
	UseTLS               bool
	VectorSize           uint64
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	UserTTL     time.Duration
}

type MLServiceCfg struct {
	Addr          string
	MaxConcurrent int
	MaxRetries    int
}

// AudioCfg — настройки транскодирования в канонический формат
// (одноканальный WAV с частотой дискретизации SampleRate).
type AudioCfg struct {
	FFmpegPath string
	SampleRate int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	const op = "cfg.Load"

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	qdrant, err := loadQdrantCfg(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	audio, err := loadAudioCfg(log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Config{
		Minio:  minio,
		Http:   http,
		Grpc:   loadGRPCConfig(),
		Db:     db,
		Qdrant: qdrant,
		Redis:  redis,
		Ml:     loadMLServiceCfg(),
		Kafka:  kafka,
		Audio:  audio,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}
	brokers := strings.Split(brokerStr, ",")

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		return nil, fmt.Errorf("KAFKA_TOPIC environment variable is required")
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	networkMode := getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode)

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             topic,
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       networkMode,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnv("BUCKET_NAME"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadQdrantCfg(logger logger.Logger) (*QdrantCfg, error) {
	const (
		defaultQdrantGRPCPort = "6334"
		defaultUseTLS         = false
		// размерность выхода wespeaker-voxceleb-resnet34-LM
		defaultVectorSize = "256"
	)

	strPort := getEnvOrDefault("QDRANT_GRPC_PORT", defaultQdrantGRPCPort)
	port, err := strconv.Atoi(strPort)
	if err != nil {
		logger.Errorf(err, "invalid QDRANT_PORT")
		return nil, err
	}

	useTLS, err := strconv.ParseBool(getEnvOrDefault("QDRANT_USE_TLS", strconv.FormatBool(defaultUseTLS)))
	if err != nil {
		logger.Errorf(err, "invalid QDRANT_USE_TLS")
		return nil, err
	}

	strVectorSize := getEnvOrDefault("VECTOR_SIZE", defaultVectorSize)
	vectorSize, err := strconv.ParseUint(strVectorSize, 10, 64)
	if err != nil {
		logger.Errorf(err, "invalid VECTOR_SIZE")
		return nil, err
	}

	return &QdrantCfg{
		Host:                 getEnv("QDRANT_HOST"),
		Port:                 port,
		ApiKey:               getEnv("QDRANT__SERVICE__API_KEY"),
		QdrantCollectionName: getEnv("COLLECTION_NAME"),
		UseTLS:               useTLS,
		VectorSize:           vectorSize,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultUserTTL      = 3 * time.Minute
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetriesStr := getEnvOrDefault("MAX_RETRIES", strconv.Itoa(defaultMaxRetries))
	maxRetries, err := strconv.Atoi(maxRetriesStr)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	userTTL, err := parseDurationEnv("USER_TTL", defaultUserTTL)
	if err != nil {
		log.Errorf(err, "invalid USER_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		UserTTL:     userTTL,
	}, nil
}

func loadMLServiceCfg() *MLServiceCfg {
	const (
		defaultHost          = "speaker-encoder"
		defaultPort          = "50051"
		defaultMaxConcurrent = 8
		defaultMaxRetries    = 3
	)

	host := getEnvOrDefault("ML_HOST", defaultHost)
	port := getEnvOrDefault("ML_PORT", defaultPort)

	maxConcurrent, err := parseIntEnv("ML_MAX_CONCURRENT", defaultMaxConcurrent)
	if err != nil {
		maxConcurrent = defaultMaxConcurrent
	}

	return &MLServiceCfg{
		Addr:          host + ":" + port,
		MaxConcurrent: maxConcurrent,
		MaxRetries:    defaultMaxRetries,
	}
}

func loadAudioCfg(log logger.Logger) (*AudioCfg, error) {
	const (
		defaultFFmpegPath = "ffmpeg"
		defaultSampleRate = "16000"
	)

	sampleRate, err := strconv.Atoi(getEnvOrDefault("AUDIO_SAMPLE_RATE", defaultSampleRate))
	if err != nil {
		log.Errorf(err, "invalid AUDIO_SAMPLE_RATE")
		return nil, err
	}

	return &AudioCfg{
		FFmpegPath: getEnvOrDefault("FFMPEG_PATH", defaultFFmpegPath),
		SampleRate: sampleRate,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

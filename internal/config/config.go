package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// devJWTSecret is only accepted when APP_ENV=dev.
const devJWTSecret = "league-registry-dev-secret"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	ShutdownTimeout            time.Duration
	LogLevel                   logging.Level
	StorageDriver              string
	DBURL                      string
	DBDisablePreparedBinary    bool
	DBMaxOpenConns             int
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	AuthJWTSecret              string
	AuthTokenTTL               time.Duration
	AuthIssuer                 string
	AuthBcryptCost             int
	AuthAllowAdminSignup       bool
	ListDefaultLimit           int
	ListMaxLimit               int
	HydrateWorkers             int
	NATSEnabled                bool
	NATSURL                    string
	NATSSubjectPrefix          string
	NATSCircuitEnabled         bool
	NATSCircuitFailureCount    int
	NATSCircuitOpenTimeout     time.Duration
	NATSCircuitHalfOpenMaxReq  int
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if shutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	storageDriver, err := parseStorageDriver(getEnv("STORAGE_DRIVER", StorageMemory))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	authSecret := strings.TrimSpace(getEnv("AUTH_JWT_SECRET", ""))
	if authSecret == "" {
		if appEnv != EnvDev {
			return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required when APP_ENV=%s", appEnv)
		}
		authSecret = devJWTSecret
	}
	authTokenTTL, err := time.ParseDuration(getEnv("AUTH_TOKEN_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_TOKEN_TTL: %w", err)
	}
	if authTokenTTL <= 0 {
		return Config{}, fmt.Errorf("AUTH_TOKEN_TTL must be > 0")
	}
	authBcryptCost, err := getEnvAsInt("AUTH_BCRYPT_COST", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_BCRYPT_COST: %w", err)
	}
	if authBcryptCost < 4 || authBcryptCost > 31 {
		return Config{}, fmt.Errorf("AUTH_BCRYPT_COST must be between 4 and 31")
	}
	authAllowAdminSignup, err := strconv.ParseBool(getEnv("AUTH_ALLOW_ADMIN_SIGNUP", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_ALLOW_ADMIN_SIGNUP: %w", err)
	}

	listDefaultLimit, err := getEnvAsInt("LIST_DEFAULT_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIST_DEFAULT_LIMIT: %w", err)
	}
	listMaxLimit, err := getEnvAsInt("LIST_MAX_LIMIT", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIST_MAX_LIMIT: %w", err)
	}
	if listDefaultLimit <= 0 || listMaxLimit <= 0 {
		return Config{}, fmt.Errorf("LIST_DEFAULT_LIMIT and LIST_MAX_LIMIT must be > 0")
	}
	if listDefaultLimit > listMaxLimit {
		return Config{}, fmt.Errorf("LIST_DEFAULT_LIMIT must be <= LIST_MAX_LIMIT")
	}
	hydrateWorkers, err := getEnvAsInt("HYDRATE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse HYDRATE_WORKERS: %w", err)
	}
	if hydrateWorkers < 1 {
		return Config{}, fmt.Errorf("HYDRATE_WORKERS must be >= 1")
	}

	natsEnabled, err := strconv.ParseBool(getEnv("NATS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NATS_ENABLED: %w", err)
	}
	natsURL := strings.TrimSpace(getEnv("NATS_URL", "nats://127.0.0.1:4222"))
	if natsEnabled && natsURL == "" {
		return Config{}, fmt.Errorf("NATS_URL is required when NATS_ENABLED=true")
	}
	natsCircuitEnabled, err := strconv.ParseBool(getEnv("NATS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NATS_CIRCUIT_ENABLED: %w", err)
	}
	natsCircuitFailureCount, err := getEnvAsInt("NATS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NATS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if natsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NATS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	natsCircuitOpenTimeout, err := time.ParseDuration(getEnv("NATS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NATS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if natsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NATS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	natsCircuitHalfOpenMaxReq, err := getEnvAsInt("NATS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NATS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if natsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("NATS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "league-registry-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ShutdownTimeout:            shutdownTimeout,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StorageDriver:              storageDriver,
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		DBMaxOpenConns:             dbMaxOpenConns,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:             swaggerEnabled,
		AuthJWTSecret:              authSecret,
		AuthTokenTTL:               authTokenTTL,
		AuthIssuer:                 strings.TrimSpace(getEnv("AUTH_ISSUER", "league-registry")),
		AuthBcryptCost:             authBcryptCost,
		AuthAllowAdminSignup:       authAllowAdminSignup,
		ListDefaultLimit:           listDefaultLimit,
		ListMaxLimit:               listMaxLimit,
		HydrateWorkers:             hydrateWorkers,
		NATSEnabled:                natsEnabled,
		NATSURL:                    natsURL,
		NATSSubjectPrefix:          strings.TrimSpace(getEnv("NATS_SUBJECT_PREFIX", "league")),
		NATSCircuitEnabled:         natsCircuitEnabled,
		NATSCircuitFailureCount:    natsCircuitFailureCount,
		NATSCircuitOpenTimeout:     natsCircuitOpenTimeout,
		NATSCircuitHalfOpenMaxReq:  natsCircuitHalfOpenMaxReq,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.NATSSubjectPrefix == "" {
		return Config{}, fmt.Errorf("NATS_SUBJECT_PREFIX cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseStorageDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageMemory, StoragePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", v, StorageMemory, StoragePostgres)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

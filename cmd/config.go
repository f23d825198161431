package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mylegacyregistry/adapters/myredis"
	"mylegacyregistry/domain"
	"mylegacyregistry/tracing"

	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Environment variables.
const (
	envHTTPPort        = "SERVICE_PORT_HTTP"
	envRootPath        = "ROOT_PATH"
	envBackend         = "REGISTRY_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envKeyPrefix       = "REGISTRY_KEY_PREFIX"
	envRefreshInterval = "REGISTRY_REFRESH_INTERVAL"
	envSeedFile        = "REGISTRY_SEED_FILE"
	envTracingExporter = "TRACING_EXPORTER"
	envServiceName     = "SERVICE_NAME"
)

type RegistryConfig struct {
	Backend         string
	KeyPrefix       string
	RefreshInterval time.Duration
	SeedFile        string
}

type MyLegacyRegistryConfig struct {
	HTTPPort int
	RootPath string
	Registry RegistryConfig
	Redis    myredis.RedisConfig
	Tracing  tracing.Config
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required, REDIS_ADDR too when the redis backend is selected.
func LoadConfig() (*MyLegacyRegistryConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(envRootPath, domain.DefaultRootPath)
	v.SetDefault(envBackend, BackendMemory)
	v.SetDefault(envKeyPrefix, "instance")
	v.SetDefault(envRefreshInterval, 30*time.Second)
	v.SetDefault(envTracingExporter, tracing.ExporterNone)
	v.SetDefault(envServiceName, tracing.DefaultServiceName)

	httpPortStr := v.GetString(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
	}

	rootPath := strings.TrimRight(v.GetString(envRootPath), "/")
	if len(rootPath) < 2 || rootPath[0] != '/' {
		return nil, fmt.Errorf("invalid %s %q: must start with / and not be the server root", envRootPath, rootPath)
	}

	backend := v.GetString(envBackend)
	redisAddr := v.GetString(envRedisAddr)
	switch backend {
	case BackendMemory:
	case BackendRedis:
		if redisAddr == "" {
			return nil, fmt.Errorf("%s is required for the %s backend", envRedisAddr, BackendRedis)
		}
	default:
		return nil, fmt.Errorf("invalid %s %q: expected %s or %s", envBackend, backend, BackendMemory, BackendRedis)
	}

	refreshInterval := v.GetDuration(envRefreshInterval)
	if refreshInterval <= 0 {
		return nil, fmt.Errorf("invalid %s %q: must be a positive duration", envRefreshInterval, v.GetString(envRefreshInterval))
	}

	exporter := v.GetString(envTracingExporter)
	switch exporter {
	case tracing.ExporterNone, tracing.ExporterStdout:
	default:
		return nil, fmt.Errorf("invalid %s %q: expected %s or %s", envTracingExporter, exporter, tracing.ExporterNone, tracing.ExporterStdout)
	}

	return &MyLegacyRegistryConfig{
		HTTPPort: httpPort,
		RootPath: rootPath,
		Registry: RegistryConfig{
			Backend:         backend,
			KeyPrefix:       v.GetString(envKeyPrefix),
			RefreshInterval: refreshInterval,
			SeedFile:        v.GetString(envSeedFile),
		},
		Redis: myredis.RedisConfig{
			Addr: redisAddr,
		},
		Tracing: tracing.Config{
			Enabled:     exporter != tracing.ExporterNone,
			Exporter:    exporter,
			ServiceName: v.GetString(envServiceName),
		},
	}, nil
}

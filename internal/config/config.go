package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultPath = "./config"

	keyTokens     = "authorized_tokens"
	keyRoutes     = "client_routes"
	keyDebugRoute = "debug_route"
	keyValidate   = "route_url_validation"

	routeURLTag = "required,http_url"
)

type Config struct {
	API       API       `mapstructure:"api"`
	Forwarder Forwarder `mapstructure:"forwarder"`

	Tokens     TokenTable   `mapstructure:"-"`
	Routes     RoutingTable `mapstructure:"-"`
	DebugRoute string       `mapstructure:"-"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Forwarder struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func Load(logger *zap.Logger) (*Config, error) {
	return LoadFrom(defaultPath, logger)
}

// LoadFrom reads .env, an optional config.yml under path and the process
// environment, in increasing order of precedence. Malformed token or route
// tables are logged and replaced by empty ones.
func LoadFrom(path string, logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.port", ":8080")
	v.SetDefault("forwarder.timeout", 5*time.Second)
	v.SetDefault(keyValidate, true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Tokens = TokenTable{loadTable(v.GetString(keyTokens), "AUTHORIZED_TOKENS", logger)}

	routes := loadTable(v.GetString(keyRoutes), "CLIENT_ROUTES", logger)
	cfg.DebugRoute = strings.TrimSpace(v.GetString(keyDebugRoute))

	if v.GetBool(keyValidate) {
		validate := validator.New()
		routes = dropInvalidRoutes(validate, routes, logger)

		if cfg.DebugRoute != "" && validate.Var(cfg.DebugRoute, routeURLTag) != nil {
			logger.Warn("Ignoring invalid DEBUG_ROUTE", zap.String("url", cfg.DebugRoute))
			cfg.DebugRoute = ""
		}
	}
	cfg.Routes = RoutingTable{routes}

	logger.Info("Configuration loaded",
		zap.Int("tokens", cfg.Tokens.Len()),
		zap.Int("routes", cfg.Routes.Len()),
		zap.Bool("debug_route", cfg.DebugRoute != ""),
		zap.String("port", cfg.API.Port),
		zap.Duration("forward_timeout", cfg.Forwarder.Timeout))

	return &cfg, nil
}

func loadTable(raw, name string, logger *zap.Logger) Table {
	t, err := ParseTable(raw)
	if err != nil {
		logger.Warn("Malformed JSON mapping, using empty table",
			zap.String("variable", name),
			zap.Error(err))
		return Table{}
	}
	return t
}

func dropInvalidRoutes(validate *validator.Validate, routes Table, logger *zap.Logger) Table {
	for _, key := range routes.Keys() {
		url, _ := routes.Get(key)
		if err := validate.Var(url, routeURLTag); err != nil {
			logger.Warn("Dropping route with invalid URL",
				zap.String("receiver", key),
				zap.String("url", url))
			routes = routes.without(key)
		}
	}
	return routes
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AckPolicy decides what the async notification endpoint answers when the
// token cannot be verified.
type AckPolicy string

const (
	// AckPolicySignalFailure answers with an error so the gateway retries the callback.
	AckPolicySignalFailure AckPolicy = "signal-failure"
	// AckPolicyAlways acknowledges receipt even when verification failed.
	AckPolicyAlways AckPolicy = "ack-always"
)

// GatewayConfig holds the defaults substituted into gateway requests and the
// browser-return targets. It is built once and passed by value.
type GatewayConfig struct {
	DefaultCurrency int    `mapstructure:"default_currency"`
	ReturnURL       string `mapstructure:"return_url"`
	CancelURL       string `mapstructure:"cancel_url"`
	NotificationURL string `mapstructure:"notification_url"`
	ContractNumber  string `mapstructure:"contract_number"`
	ConfirmationURL string `mapstructure:"confirmation_url"`
	ErrorURL        string `mapstructure:"error_url"`

	AckPolicy AckPolicy `mapstructure:"ack_policy"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ProviderConfig selects the gateway SDK behind the integration.
//
//   - "sandbox": in-memory gateway, no network (also forced by PAYMENT_GATEWAY_MOCK)
//   - "mercadopago": Mercado Pago checkout via the official SDK
type ProviderConfig struct {
	Name                   string `mapstructure:"name"`
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
}

// OrdersConfig configures the shop-side order store written by the order listener.
type OrdersConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Table   string `mapstructure:"table"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Provider ProviderConfig `mapstructure:"provider"`
	Orders   OrdersConfig   `mapstructure:"orders"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads configs/config.yaml when present and WEBPAY_* environment
// variables (e.g. WEBPAY_GATEWAY_DEFAULT_CURRENCY).
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")

	v.SetEnvPrefix("WEBPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("gateway.default_currency", 978)
	v.SetDefault("gateway.return_url", "http://localhost:8080/payline/back-to-shop")
	v.SetDefault("gateway.cancel_url", "http://localhost:8080/payline/back-to-shop")
	v.SetDefault("gateway.notification_url", "http://localhost:8080/payline/notification")
	v.SetDefault("gateway.contract_number", "")
	v.SetDefault("gateway.confirmation_url", "/")
	v.SetDefault("gateway.error_url", "/")
	v.SetDefault("gateway.ack_policy", string(AckPolicySignalFailure))

	v.SetDefault("provider.name", "sandbox")
	v.SetDefault("provider.mercadopago_access_token", "")

	v.SetDefault("orders.enabled", false)
	v.SetDefault("orders.table", "order_payments")
}

func (c Config) Validate() error {
	if c.Gateway.DefaultCurrency <= 0 {
		return fmt.Errorf("%w: gateway.default_currency must be a positive ISO 4217 code", ErrInvalidConfig)
	}
	switch c.Gateway.AckPolicy {
	case AckPolicySignalFailure, AckPolicyAlways:
	default:
		return fmt.Errorf("%w: unknown gateway.ack_policy %q", ErrInvalidConfig, c.Gateway.AckPolicy)
	}
	switch strings.ToLower(c.Provider.Name) {
	case "sandbox", "mercadopago":
	default:
		return fmt.Errorf("%w: unknown provider.name %q", ErrInvalidConfig, c.Provider.Name)
	}
	return nil
}

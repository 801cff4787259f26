package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no configs/config.yaml is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 978, cfg.Gateway.DefaultCurrency)
	assert.Equal(t, "", cfg.Gateway.ContractNumber)
	assert.Equal(t, AckPolicySignalFailure, cfg.Gateway.AckPolicy)
	assert.Equal(t, "sandbox", cfg.Provider.Name)
	assert.False(t, cfg.Orders.Enabled)
	assert.Equal(t, "order_payments", cfg.Orders.Table)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WEBPAY_GATEWAY_DEFAULT_CURRENCY", "840")
	t.Setenv("WEBPAY_GATEWAY_CONTRACT_NUMBER", "1234567")
	t.Setenv("WEBPAY_GATEWAY_ACK_POLICY", "ack-always")
	t.Setenv("WEBPAY_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 840, cfg.Gateway.DefaultCurrency)
	assert.Equal(t, "1234567", cfg.Gateway.ContractNumber)
	assert.Equal(t, AckPolicyAlways, cfg.Gateway.AckPolicy)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte(`
gateway:
  default_currency: 756
  confirmation_url: https://shop.example/done
  error_url: https://shop.example/error
provider:
  name: sandbox
orders:
  enabled: true
  table: orders_test
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yaml, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 756, cfg.Gateway.DefaultCurrency)
	assert.Equal(t, "https://shop.example/done", cfg.Gateway.ConfirmationURL)
	assert.Equal(t, "https://shop.example/error", cfg.Gateway.ErrorURL)
	assert.True(t, cfg.Orders.Enabled)
	assert.Equal(t, "orders_test", cfg.Orders.Table)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WEBPAY_GATEWAY_ACK_POLICY", "sometimes")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Gateway:  GatewayConfig{DefaultCurrency: 978, AckPolicy: AckPolicySignalFailure},
		Provider: ProviderConfig{Name: "MercadoPago"},
	}
	assert.NoError(t, valid.Validate())

	noCurrency := valid
	noCurrency.Gateway.DefaultCurrency = 0
	assert.ErrorIs(t, noCurrency.Validate(), ErrInvalidConfig)

	badProvider := valid
	badProvider.Provider.Name = "paypal"
	assert.ErrorIs(t, badProvider.Validate(), ErrInvalidConfig)
}

package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the service configuration, sourced from the environment.
type Config struct {
	Port        string
	Environment string
	APIKeys     []string

	Network     string
	StarknetRPC string

	ServerAccountAddress string
	ServerPrivateKey     string
	AutoswapprAddress    string

	DefaultSlippageBps int
	TxDeadlineSecs     int

	RateLimitRPM   float64
	RateLimitBurst int
}

func Load() (*Config, error) {
	// a missing .env file is not an error; the environment still applies
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("API_KEYS", "local-dev-key-1,hackathon-demo-key")
	viper.SetDefault("NETWORK", "sepolia")
	viper.SetDefault("STARKNET_RPC", "https://starknet-sepolia.public.blastapi.io/rpc/v0_9")
	viper.SetDefault("SERVER_ACCOUNT_ADDRESS", "0x1234567890abcdef")
	viper.SetDefault("SERVER_PRIVATE_KEY", "0x1234567890abcdef")
	viper.SetDefault("AUTOSWAPPR_ADDRESS", "0x04deb7a3d89e7a4a7a03df748de45d81b2dc418f446b9cc837c5cbd8897895c9")
	viper.SetDefault("DEFAULT_SLIPPAGE_BPS", 50)
	viper.SetDefault("TX_DEADLINE_SECS", 600)
	viper.SetDefault("RATE_LIMIT_RPM", 100)
	viper.SetDefault("RATE_LIMIT_BURST", 25)

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		Environment:          viper.GetString("ENVIRONMENT"),
		APIKeys:              splitKeys(viper.GetString("API_KEYS")),
		Network:              viper.GetString("NETWORK"),
		StarknetRPC:          viper.GetString("STARKNET_RPC"),
		ServerAccountAddress: viper.GetString("SERVER_ACCOUNT_ADDRESS"),
		ServerPrivateKey:     viper.GetString("SERVER_PRIVATE_KEY"),
		AutoswapprAddress:    viper.GetString("AUTOSWAPPR_ADDRESS"),
		DefaultSlippageBps:   viper.GetInt("DEFAULT_SLIPPAGE_BPS"),
		TxDeadlineSecs:       viper.GetInt("TX_DEADLINE_SECS"),
		RateLimitRPM:         viper.GetFloat64("RATE_LIMIT_RPM"),
		RateLimitBurst:       viper.GetInt("RATE_LIMIT_BURST"),
	}

	return cfg, nil
}

// DefaultSlippagePct converts the configured basis points into a percentage.
func (c *Config) DefaultSlippagePct() float64 {
	return float64(c.DefaultSlippageBps) / 100
}

func splitKeys(raw string) []string {
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

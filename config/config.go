package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	account "storefront/account/logic"
	cart "storefront/cart/logic"
	"storefront/common"
	coupon "storefront/coupon/logic"
)

// EnvPrefix prefixes every environment override, e.g. STOREFRONT_DURABLE_PATH.
const EnvPrefix = "STOREFRONT"

type Config struct {
	Durable DurableConfig  `mapstructure:"durable"`
	Session SessionConfig  `mapstructure:"session"`
	Keys    KeysConfig     `mapstructure:"keys"`
	Log     LogConfig      `mapstructure:"log"`
	Coupons []CouponConfig `mapstructure:"coupons"`
}

type DurableConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig selects the session region. An empty RedisURL keeps the
// session in process memory, so it ends with the process.
type SessionConfig struct {
	RedisURL string        `mapstructure:"redis_url"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type KeysConfig struct {
	Cart    string `mapstructure:"cart"`
	Account string `mapstructure:"account"`
	Session string `mapstructure:"session"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type CouponConfig struct {
	Code     string  `mapstructure:"code"`
	Discount float64 `mapstructure:"discount"`
	Expires  string  `mapstructure:"expires"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("durable.path", "storefront.db")
	v.SetDefault("session.redis_url", "")
	v.SetDefault("session.prefix", "storefront")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("keys.cart", cart.DefaultCartKey)
	v.SetDefault("keys.account", account.DefaultAccountKey)
	v.SetDefault("keys.session", account.DefaultSessionKey)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads storefront.yaml and STOREFRONT_* environment variables. An
// explicit path must exist; without one a missing file just means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("storefront")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		v.AddConfigPath("$HOME/.storefront/")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at wiring time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Durable.Path) == "" {
		return errors.New("durable.path is required")
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative, got %s", c.Session.TTL)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Catalog builds the coupon catalog, falling back to the built-in one when
// no coupons are configured.
func (c *Config) Catalog() (*coupon.Catalog, error) {
	if len(c.Coupons) == 0 {
		return coupon.DefaultCatalog(), nil
	}
	coupons := make([]coupon.Coupon, 0, len(c.Coupons))
	for _, cc := range c.Coupons {
		expires, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(cc.Expires), time.Local)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: invalid expires %q: %w", cc.Code, cc.Expires, err)
		}
		coupons = append(coupons, coupon.Coupon{
			Code:         cc.Code,
			DiscountRate: cc.Discount,
			ExpiresOn:    common.Date(expires.Year(), expires.Month(), expires.Day()),
		})
	}
	catalog, err := coupon.NewCatalog(coupons...)
	if err != nil {
		return nil, fmt.Errorf("invalid coupons: %w", err)
	}
	return catalog, nil
}

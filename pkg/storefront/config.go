// Package storefront 加载各服务共用的店面参数：
// 运费门槛、草稿有效期、外部服务地址等，来自配置文件的 [storefront] 表。
package storefront

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config 店面参数
type Config struct {
	// 免运费小计门槛
	FreeShippingThreshold string `mapstructure:"free_shipping_threshold"`
	// 未达门槛时的固定运费
	FlatShippingRate string `mapstructure:"flat_shipping_rate"`
	// 结算草稿有效期（小时）
	DraftTTLHours int `mapstructure:"draft_ttl_hours"`
	// viaCEP 地址查询服务
	ViaCEPBaseURL string `mapstructure:"viacep_base_url"`
	// 同域其他服务地址
	CatalogBaseURL string `mapstructure:"catalog_base_url"`
	CartBaseURL    string `mapstructure:"cart_base_url"`
	OrderBaseURL   string `mapstructure:"order_base_url"`
}

// Load 从 TOML 配置文件读取 [storefront] 表，支持环境变量覆盖。
// 缺省值取参考实现的参数：满 200 免运费，固定运费 15，草稿保留 24 小时。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.SetDefault("storefront.free_shipping_threshold", "200.00")
	v.SetDefault("storefront.flat_shipping_rate", "15.00")
	v.SetDefault("storefront.draft_ttl_hours", 24)
	v.SetDefault("storefront.viacep_base_url", "https://viacep.com.br")
	v.SetDefault("storefront.catalog_base_url", "http://localhost:8081")
	v.SetDefault("storefront.cart_base_url", "http://localhost:8082")
	v.SetDefault("storefront.order_base_url", "http://localhost:8084")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.UnmarshalKey("storefront", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal storefront config: %w", err)
	}
	return &cfg, nil
}

// Threshold 免运费门槛的金额值
func (c *Config) Threshold() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.FreeShippingThreshold)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid free_shipping_threshold %q: %w", c.FreeShippingThreshold, err)
	}
	return d, nil
}

// ShippingRate 固定运费的金额值
func (c *Config) ShippingRate() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.FlatShippingRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid flat_shipping_rate %q: %w", c.FlatShippingRate, err)
	}
	return d, nil
}

// DraftTTL 草稿有效期
func (c *Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLHours) * time.Hour
}

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed config.yaml
var DefaultConfigYAML []byte

// DefaultJWTSecret 内置配置中的占位密钥，release 模式下禁止使用
const DefaultJWTSecret = "change-me-in-production"

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Email     EmailConfig     `mapstructure:"email"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port                   string `mapstructure:"port"`
	Mode                   string `mapstructure:"mode"`
	BaseURL                string `mapstructure:"base_url"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // mysql / postgres
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	TimeZone     string `mapstructure:"timezone"` // postgres 会话时区，IANA 名称
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"` // silent / error / warn / info
}

// JWTConfig 会话令牌配置
type JWTConfig struct {
	Secret       string        `mapstructure:"secret"`
	ExpireHours  int           `mapstructure:"expire_hours"`
	RememberDays int           `mapstructure:"remember_days"`
	CookieName   string        `mapstructure:"cookie_name"`
	ExpireTime   time.Duration `mapstructure:"-"`
	RememberTime time.Duration `mapstructure:"-"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// DashboardConfig 首页汇总配置
type DashboardConfig struct {
	// RecentLimit 最近交易列表条数
	RecentLimit int `mapstructure:"recent_limit"`
	// SummaryWindow 参与收支合计的最近收入/支出条数，0 表示全部历史
	SummaryWindow int `mapstructure:"summary_window"`
}

// AuthConfig 登录相关配置
type AuthConfig struct {
	SigninMaxAttempts   int `mapstructure:"signin_max_attempts"`
	SigninWindowSeconds int `mapstructure:"signin_window_seconds"`
}

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Println("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/moneytrack")
		externalViper.AddConfigPath("$HOME/.moneytrack")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 MONEYTRACK_DATABASE_HOST
	v.SetEnvPrefix("MONEYTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults 填充派生字段，非法值回退为默认值
func applyDefaults(cfg *Config) {
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	if cfg.JWT.RememberDays <= 0 {
		cfg.JWT.RememberDays = 30
	}
	if cfg.JWT.CookieName == "" {
		cfg.JWT.CookieName = "session_token"
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour
	cfg.JWT.RememberTime = time.Duration(cfg.JWT.RememberDays) * 24 * time.Hour

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.Database.TimeZone == "" {
		cfg.Database.TimeZone = "UTC"
	}
	if cfg.Dashboard.RecentLimit <= 0 {
		cfg.Dashboard.RecentLimit = 5
	}
	if cfg.Dashboard.SummaryWindow < 0 {
		cfg.Dashboard.SummaryWindow = 5
	}
	if cfg.Auth.SigninMaxAttempts <= 0 {
		cfg.Auth.SigninMaxAttempts = 10
	}
	if cfg.Auth.SigninWindowSeconds <= 0 {
		cfg.Auth.SigninWindowSeconds = 60
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
}

// Validate 校验配置是否可用于启动
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret 不能为空")
	}
	if c.Server.Mode == "release" && c.JWT.Secret == DefaultJWTSecret {
		return errors.New("release 模式下必须配置 jwt.secret")
	}
	return nil
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", cfg.Server.Port, cfg.Server.Mode)
	log.Printf("  数据库: %s %s@%s:%s/%s",
		cfg.Database.Driver,
		cfg.Database.Username,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName)
	log.Printf("  会话有效期: %v (记住我: %v)", cfg.JWT.ExpireTime, cfg.JWT.RememberTime)
	log.Printf("  邮件服务: %v", cfg.Email.Enabled)
}

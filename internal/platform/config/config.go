// Package config はアプリケーション設定を、任意の YAML ファイル、
// .env ファイル（本番以外）、環境変数から読み込みます。
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix はすべての環境変数の先頭に付きます（例: YB_SESSION_SECRET）。
const EnvPrefix = "YB"

// Config は設定のルートです。
type Config struct {
	AppEnv    string          `mapstructure:"app_env"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	Password  PasswordConfig  `mapstructure:"password"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Mail      MailConfig      `mapstructure:"mail"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig は HTTP サーバの設定を保持します。
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// Mode は gin のモード（debug / release / test）です。
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig は gorm のダイアレクトと DSN を選びます。
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver"`
	DSN            string        `mapstructure:"dsn"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig はセッションストアの接続設定です。Addr が空なら Redis は無効です。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig はセッション Cookie と有効期間を制御します。
type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	CookieName   string        `mapstructure:"cookie_name"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	RememberTTL  time.Duration `mapstructure:"remember_ttl"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// PasswordConfig はパスワードのハッシュ方式（bcrypt または sha256）を選びます。
type PasswordConfig struct {
	Hasher string `mapstructure:"hasher"`
}

// CORSConfig は許可するオリジンの一覧です。空なら CORS は無効です。
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// MailConfig は SendGrid のウェルカムメールを設定します。API キーが無ければ無効です。
type MailConfig struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	FromAddress    string `mapstructure:"from_address"`
	FromName       string `mapstructure:"from_name"`
}

// BootstrapConfig は初回起動時の補助機能を制御します。
type BootstrapConfig struct {
	DemoUser bool `mapstructure:"demo_user"`
}

// LogConfig は logrus の設定です。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IsProduction は APP_ENV が production かどうかを返します。
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load は設定を読み込みます。configFile は空でもよく、その場合は ./config.yaml と
// ./config/config.yaml を探し、ファイルが無くてもエラーにしません。
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// APP_ENV はプレフィックス無しで読む
	_ = v.BindEnv("app_env", "APP_ENV")
	if !strings.EqualFold(v.GetString("app_env"), "production") {
		// .envを読み込む（開発時のみ、無くてもよい）
		_ = godotenv.Load()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	// 環境変数はカンマ区切り
	if len(cfg.CORS.Origins) == 1 && strings.Contains(cfg.CORS.Origins[0], ",") {
		cfg.CORS.Origins = splitList(cfg.CORS.Origins[0])
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "users.db")
	v.SetDefault("database.connect_timeout", 60*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "yb_session")
	v.SetDefault("session.default_ttl", 24*time.Hour)
	v.SetDefault("session.remember_ttl", 30*24*time.Hour)
	v.SetDefault("session.secure_cookie", false)
	v.SetDefault("password.hasher", "bcrypt")
	v.SetDefault("cors.origins", []string{})
	v.SetDefault("mail.sendgrid_api_key", "")
	v.SetDefault("mail.from_address", "donotreply@youthbalance.app")
	v.SetDefault("mail.from_name", "Youth Balance")
	v.SetDefault("bootstrap.demo_user", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Session.Secret == "" {
		return fmt.Errorf("session.secret must be set (%s_SESSION_SECRET)", EnvPrefix)
	}
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn must be set")
	}
	switch cfg.Password.Hasher {
	case "bcrypt", "sha256":
	default:
		return fmt.Errorf("unsupported password.hasher %q", cfg.Password.Hasher)
	}
	if cfg.Session.DefaultTTL <= 0 || cfg.Session.RememberTTL <= 0 {
		return errors.New("session lifetimes must be positive")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

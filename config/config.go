package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // sqlite, mysql
	Path            string `mapstructure:"path"`   // sqlite 数据库文件
	ReadOnly        bool   `mapstructure:"read_only"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	LogLevel        string `mapstructure:"log_level"`         // silent, error, warn, info
	SlowThresholdMS int    `mapstructure:"slow_threshold_ms"` // 慢查询阈值（毫秒）
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"`         // 为空时只输出到 stdout
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // 单个日志文件大小（MB）
	MaxBackups int    `mapstructure:"max_backups"`  // 保留的旧文件数
	MaxAgeDays int    `mapstructure:"max_age_days"` // 保留天数
	Compress   bool   `mapstructure:"compress"`
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Default 返回未提供配置文件时使用的默认配置
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			Path:            "questions.db",
			ReadOnly:        true,
			LogLevel:        "warn",
			SlowThresholdMS: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含本地覆盖，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("database.driver", def.Database.Driver)
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("database.read_only", def.Database.ReadOnly)
	v.SetDefault("database.log_level", def.Database.LogLevel)
	v.SetDefault("database.slow_threshold_ms", def.Database.SlowThresholdMS)
	v.SetDefault("log.level", def.Log.Level)

	// 环境变量覆盖
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

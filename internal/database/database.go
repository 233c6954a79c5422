// Package database 打开数据库连接。连接通过参数显式传递给各个 repository，不保存全局单例。
package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/qs3c/aa_questions/config"
	"github.com/qs3c/aa_questions/internal/pkg/logger"
)

// Open 根据驱动类型打开连接，失败直接返回错误，不做重试
func Open(cfg *config.DatabaseConfig, zl *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite, "":
		dialector = sqlite.Open(SQLiteDSN(cfg))
	case config.DriverMySQL:
		dialector = mysql.Open(MySQLDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	slow := time.Duration(cfg.SlowThresholdMS) * time.Millisecond
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.NewGormLogger(zl, logger.GormLevel(cfg.LogLevel), slow),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driverName(cfg), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driverName(cfg) == config.DriverSQLite {
		// 单文件库：所有调用方串行共享同一个连接
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", driverName(cfg), err)
	}

	zl.Info("database connected", zap.String("driver", driverName(cfg)), zap.Bool("read_only", cfg.ReadOnly))
	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLiteDSN 以 URI 形式打开，路径逐段转义，避免 # 或 ? 截断参数。
// 只读模式下文件不存在会报错而不是新建。
func SQLiteDSN(cfg *config.DatabaseConfig) string {
	segments := strings.Split(cfg.Path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	q := url.Values{}
	if cfg.ReadOnly {
		q.Set("mode", "ro")
	} else {
		q.Set("mode", "rwc")
	}
	u := &url.URL{Scheme: "file", Opaque: strings.Join(segments, "/"), RawQuery: q.Encode()}
	return u.String()
}

func MySQLDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

func driverName(cfg *config.DatabaseConfig) string {
	if cfg.Driver == "" {
		return config.DriverSQLite
	}
	return cfg.Driver
}

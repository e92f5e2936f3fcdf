package database

import (
	"database/sql"
	"fmt"
	"threadboard/internal/pkg/config"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase 初始化数据库连接，返回共享同一连接池的 gorm 和 sqlx 句柄
func InitDatabase(cfg config.DatabaseConfig, debug bool) (*gorm.DB, *sqlx.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	// 配置 GORM
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		PrepareStmt:            true, // 预编译 SQL 缓存
		SkipDefaultTransaction: true, // 需要事务的地方显式开启
		TranslateError:         true, // 唯一索引冲突转为 gorm.ErrDuplicatedKey
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// 获取底层 SQL DB 对象以配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	configureConnectionPool(sqlDB, cfg)

	// gorm postgres 驱动底层为 pgx stdlib，sqlx 按 pgx 选择 $n 占位符
	return db, sqlx.NewDb(sqlDB, "pgx"), nil
}

// configureConnectionPool 配置数据库连接池
func configureConnectionPool(sqlDB *sql.DB, cfg config.DatabaseConfig) {
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	// 设置连接的最大生命周期
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 设置连接的最大空闲时间
	sqlDB.SetConnMaxIdleTime(time.Minute * 30)
}

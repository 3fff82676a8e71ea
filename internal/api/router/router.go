package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zsyayo112/campsite-manage-sub000/config"
	"github.com/zsyayo112/campsite-manage-sub000/internal/api/handler"
	"github.com/zsyayo112/campsite-manage-sub000/internal/api/middleware"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/jwt"
	"github.com/zsyayo112/campsite-manage-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 公开接口（免登录）
		public := v1.Group("/public")
		{
			// 预订表单提交挂限流，防脚本刷单
			public.POST("/bookings", middleware.RateLimit(rdb, 10, time.Minute), h.Booking.SubmitPublic)
			public.GET("/packages", h.Catalog.ListPublicPackages)
		}

		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// 员工端路由（需要认证）
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			authorized.GET("/auth/me", h.Auth.Me)

			// 客户模块
			customers := authorized.Group("/customers")
			{
				customers.GET("", h.Customer.ListCustomers)
				customers.GET("/:id", h.Customer.GetCustomer)
				customers.PUT("/:id", h.Customer.UpdateCustomer)
			}

			// 预订模块
			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.ListBookings)
				bookings.GET("/:id", h.Booking.GetBooking)
				bookings.POST("", h.Booking.CreateBooking)
				bookings.PUT("/:id/status", h.Booking.UpdateBookingStatus)
				bookings.PUT("/:id/deposit", h.Booking.UpdateBookingDeposit)
				bookings.POST("/:id/convert", h.Booking.ConvertBooking)
				bookings.DELETE("/:id", middleware.RoleAuth("admin"), h.Booking.DeleteBooking)
			}

			// 订单模块
			orders := authorized.Group("/orders")
			{
				orders.GET("", h.Order.ListOrders)
				orders.GET("/:id", h.Order.GetOrder)
				orders.POST("", h.Order.CreateOrder)
				orders.PUT("/:id/status", h.Order.UpdateOrderStatus)
				orders.PUT("/:id/payment", h.Order.UpdateOrderPayment)
				orders.DELETE("/:id", middleware.RoleAuth("admin"), h.Order.DeleteOrder)
			}

			// 套餐模块
			packages := authorized.Group("/packages")
			{
				packages.GET("", h.Catalog.ListPackages)
				packages.GET("/:id", h.Catalog.GetPackage)
				packages.POST("", middleware.RoleAuth("admin"), h.Catalog.CreatePackage)
				packages.PUT("/:id", middleware.RoleAuth("admin"), h.Catalog.UpdatePackage)
				packages.DELETE("/:id", middleware.RoleAuth("admin"), h.Catalog.DeletePackage)
			}

			// 活动项目模块
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Catalog.ListProjects)
				projects.GET("/:id", h.Catalog.GetProject)
				projects.POST("", middleware.RoleAuth("admin"), h.Catalog.CreateProject)
				projects.PUT("/:id", middleware.RoleAuth("admin"), h.Catalog.UpdateProject)
				projects.DELETE("/:id", middleware.RoleAuth("admin"), h.Catalog.DeleteProject)
			}

			// 教练模块
			coaches := authorized.Group("/coaches")
			{
				coaches.GET("", h.Catalog.ListCoaches)
				coaches.POST("", middleware.RoleAuth("admin"), h.Catalog.CreateCoach)
				coaches.PUT("/:id", middleware.RoleAuth("admin"), h.Catalog.UpdateCoach)
				coaches.DELETE("/:id", middleware.RoleAuth("admin"), h.Catalog.DeleteCoach)
			}

			// 排期模块
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("", h.Schedule.ListSchedules)
				schedules.GET("/:id", h.Schedule.GetSchedule)
				schedules.POST("/check-conflicts", h.Schedule.CheckConflicts)
				schedules.POST("", h.Schedule.CreateSchedule)
				schedules.PUT("/:id", h.Schedule.UpdateSchedule)
				schedules.DELETE("/:id", h.Schedule.DeleteSchedule)
			}

			// 接驳模块
			shuttles := authorized.Group("/shuttles")
			{
				shuttles.GET("", h.Shuttle.ListShuttles)
				shuttles.GET("/:id", h.Shuttle.GetShuttle)
				shuttles.POST("", h.Shuttle.CreateShuttle)
				shuttles.DELETE("/:id", h.Shuttle.DeleteShuttle)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go

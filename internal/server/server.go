package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"workforce/internal/auth"
	"workforce/internal/cache"
	"workforce/internal/config"
	"workforce/internal/handler"
	"workforce/internal/middleware"
	"workforce/internal/repository"
	"workforce/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := runMigrations(db, cfg); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Migrations applied")

	// Redis is optional; /me just skips the cache when it is unreachable.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️  Redis unavailable, user cache disabled: %v", err)
		rdb = nil
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	companyUserRepo := repository.NewCompanyUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	counterRepo := repository.NewCounterRepository(db)

	// Initialize services
	assignmentService := service.NewAssignmentService(
		assignmentRepo, employeeRepo, projectRepo, companyUserRepo, vehicleRepo, counterRepo,
	)

	expiryHours, _ := strconv.Atoi(cfg.JWTExpiryHours)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, expiryHours)
	userCache := cache.NewUserCache(rdb)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, issuer, userCache)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	employeeHandler := handler.NewEmployeeHandler(employeeRepo, counterRepo)
	roleHandler := handler.NewRoleHandler(roleRepo, counterRepo)
	permissionHandler := handler.NewPermissionHandler(permissionRepo, counterRepo)
	masterHandler := handler.NewMasterHandler(masterRepo, companyUserRepo)
	vehicleHandler := handler.NewVehicleHandler(vehicleRepo)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		authorized.GET("/me", userHandler.Me)

		// Assignment routes
		authorized.POST("/assignments/bulk", assignmentHandler.BulkAssign)
		authorized.GET("/assignments", assignmentHandler.List)
		authorized.GET("/assignments/available", assignmentHandler.Available)
		authorized.PUT("/assignments/:id", assignmentHandler.Update)
		authorized.DELETE("/assignments/:id", assignmentHandler.Delete)

		// Employee routes
		authorized.POST("/employees", employeeHandler.Create)
		authorized.GET("/employees", employeeHandler.List)
		authorized.POST("/employees/import", employeeHandler.Import)
		authorized.GET("/employees/:id", employeeHandler.GetByID)
		authorized.PUT("/employees/:id", employeeHandler.Update)
		authorized.DELETE("/employees/:id", employeeHandler.Delete)
		authorized.GET("/employees/company/:companyId", employeeHandler.ListByCompany)
		authorized.GET("/employees/company/:companyId/workers", employeeHandler.ListWorkersByCompany)

		// Role and permission routes
		authorized.GET("/roles", roleHandler.List)
		authorized.POST("/roles", roleHandler.Create)
		authorized.GET("/roles/:id", roleHandler.GetByID)
		authorized.PUT("/roles/:id", roleHandler.Update)
		authorized.DELETE("/roles/:id", roleHandler.Delete)
		authorized.GET("/permissions", permissionHandler.List)
		authorized.POST("/permissions", permissionHandler.Create)
		authorized.PUT("/permissions/:id", permissionHandler.Update)
		authorized.DELETE("/permissions/:id", permissionHandler.Delete)

		// Master-data routes
		authorized.GET("/master/trades", masterHandler.GetTrades)
		authorized.GET("/master/materials", masterHandler.GetMaterials)
		authorized.GET("/master/tools", masterHandler.GetTools)
		authorized.GET("/master/clients", masterHandler.GetClients)
		authorized.GET("/master/users", masterHandler.GetUsersByRole)

		// Vehicle routes
		authorized.GET("/vehicles", vehicleHandler.List)
		authorized.GET("/vehicles/:id", vehicleHandler.GetByID)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func runMigrations(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, cfg.DBName, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}

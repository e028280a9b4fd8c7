package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/convert"
	"github.com/CodeBridge/Converter/internal/discovery"
	"github.com/CodeBridge/Converter/internal/server"
	"github.com/CodeBridge/Converter/internal/translate"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	// .env 只是开发期便利，不存在就算了
	_ = godotenv.Load()

	if err := config.LoadConfig(*configFile); err != nil {
		fmt.Printf("Warning: failed to load config file %s: %v. Using defaults.\n", *configFile, err)
		config.ApplyDefaults()
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.GlobalConfig.Server
	logger.Info("Starting CodeBridge Converter Server...", zap.Int("port", cfg.Port))

	apiKey := os.Getenv("TOGETHER_API_KEY")
	if apiKey == "" {
		logger.Warn("TOGETHER_API_KEY not set, conversion between languages will fail")
	}

	service := convert.NewService(translate.NewClient(apiKey), logger)
	srv := server.NewServer(service, logger)

	// 服务注册与发现
	registry := discovery.NewRegistry(
		config.GlobalConfig.Redis.Addr,
		"converter",
		fmt.Sprintf("localhost:%d", cfg.Port),
		service.QueueDepth,
		logger,
	)
	registry.Start()
	defer registry.Stop()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Router(),
		// 转换要等翻译服务加一轮编译运行，写超时必须放宽
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	// 优雅退出
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutting down server...")
		registry.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("Server listening", zap.String("addr", httpServer.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to serve", zap.Error(err))
	}
}

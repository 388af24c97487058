package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/valentintorulya-hash/LoM/internal/agent"
	"github.com/valentintorulya-hash/LoM/internal/engine"
	"github.com/valentintorulya-hash/LoM/internal/server"
	"github.com/valentintorulya-hash/LoM/internal/version"
	"github.com/valentintorulya-hash/LoM/pkg/catalog"
	"github.com/valentintorulya-hash/LoM/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var savePath string
	var bots int
	// Флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed for item and enemy rolls (0 for random)")
	flag.StringVar(&savePath, "save", "", "Path to the save file (overrides LOM_SAVE_PATH)")
	flag.IntVar(&bots, "bots", 0, "Number of headless autoplayer agents to attach")
	flag.Parse()

	logger.Log.Info("Starting Land of Mushrooms...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if savePath != "" {
		cfg.SavePath = savePath
	}

	// 2. Каталог контента
	cat, err := catalog.Load()
	if err != nil {
		logger.Log.Fatal("Failed to load content catalog:", err)
	}

	// 3. Инициализация ядра
	gameService := engine.NewService(cfg, cat, engine.SystemClock{})
	if gameService.LoadSave() {
		logger.Log.Info("Resuming saved run.")
	} else {
		logger.Log.Info("Starting a fresh run.")
	}
	gameService.Start()

	for i := 0; i < bots; i++ {
		go agent.NewBot(fmt.Sprintf("bot-%d", i), gameService).Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	gameService.SaveNow()

	logger.Log.Info("Done.")
}

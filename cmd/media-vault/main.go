// @title           media-vault API
// @version         1.0
// @description     Хранение и раздача аудио/видео с поддержкой byte-range и общей квотой хранилища
// @BasePath        /
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/EgorLis/media-vault/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

// File: cmd/service/main.go
// @title        User Directory API
// @version      1.0
// @description  使用者目錄：從遠端載入使用者，並在記憶體中新增、編輯、刪除
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}

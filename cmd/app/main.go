package main

import (
	"portfolio-api/internal/app"
	"portfolio-api/pkg/config"

	_ "portfolio-api/docs" // Swagger docs
)

// @title           Portfolio API
// @version         1.0
// @description     Blog, media, contact, newsletter and multilingual content backend for the portfolio site.

// @contact.name   Benjamin Kyamoneka Mpey

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /admin/login.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}

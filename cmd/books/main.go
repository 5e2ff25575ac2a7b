package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/book-review/books/app"
	"github.com/Astemirdum/book-review/books/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title Book review API
// @version 1.0
// @description Book evaluations and Google Books search.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithReadTimeout(30*time.Second),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}

package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/config"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/controller"
	"github.com/yoshiyuki-ishikawa/color-mood-log/pkg/db"
)

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".color-mood-log", "config.yaml")
	}

	return filepath.Join(home, ".color-mood-log", "config.yaml")
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(configPath())
	if err != nil {
		panic(err)
	}

	filePerms := 0o666

	// the terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(cfg.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		panic(err)
	}

	defer logFile.Close()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log.Logger = log.With().Caller().Logger().Level(level).Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Msg("starting application...")

	database, err := db.NewDatabase(ctx, cfg.DB)
	if err != nil {
		panic(err)
	}

	defer database.Close()

	controller, err := controller.NewController(ctx, database, cfg.FirstWeekday())
	if err != nil {
		panic(err)
	}

	controller.Go()
}

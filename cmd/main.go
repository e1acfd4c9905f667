package main

import (
	"database/sql"
	"log"

	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"

	"work-hours-bot/config"
	"work-hours-bot/internal/app/service"
	"work-hours-bot/internal/delivery/telegram"
	"work-hours-bot/internal/delivery/telegram/router"
	"work-hours-bot/internal/repository/file"
	"work-hours-bot/internal/repository/sqlite"
	"work-hours-bot/pkg/calendar"
	"work-hours-bot/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zl, err := logger.New(cfg.LogFormat)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		sugar.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		sugar.Fatalf("migrating database: %v", err)
	}

	rates := service.NewPayRateService(file.NewPayRateStore(cfg.PayRateFile))
	workTimeRepo := sqlite.NewSqliteWorkTimeRepo(db)
	workTimes := service.NewWorkTimeService(workTimeRepo, rates)
	week := service.NewWeekService(workTimeRepo)
	schedule := service.NewScheduleService(sqlite.NewSqliteScheduleRepo(db))

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		sugar.Fatalf("starting bot: %v", err)
	}

	handler := &telegram.Handler{
		Bot:       bot,
		Log:       sugar,
		WorkTimes: workTimes,
		Rates:     rates,
		Week:      week,
		Schedule:  schedule,
		Calendar:  &calendar.CalendarController{Bot: bot},
		Router:    router.New(sugar),
	}
	handler.Register()

	sugar.Info("work-hours bot is up")
	bot.Start()
}

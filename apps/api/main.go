package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/Lemoonautt/Unigestion-PJ/apps/api/echo"
	"github.com/Lemoonautt/Unigestion-PJ/core"
	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
	"github.com/Lemoonautt/Unigestion-PJ/core/user"
	emailsvc "github.com/Lemoonautt/Unigestion-PJ/services/email"
	logsvc "github.com/Lemoonautt/Unigestion-PJ/services/logger"
	"github.com/Lemoonautt/Unigestion-PJ/storage/database"
	"github.com/Lemoonautt/Unigestion-PJ/storage/inmem"
	"github.com/Lemoonautt/Unigestion-PJ/storage/recordstore"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	defer logger.Close()

	// set up validators
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	store := recordstore.NewClient(conf.Store)
	acadSvc := academic.NewService(conf, store, mailSvc, logger)
	if err := acadSvc.Load(context.Background()); err != nil {
		logger.Fatal("loading academic records", err)
	}

	// accounts live in postgres when configured, in memory otherwise (DEV)
	var usrRepo user.Repository
	if conf.Database.Name != "" {
		db, err := database.Open(conf)
		if err != nil {
			logger.Fatal("opening DB", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(db); err != nil {
			logger.Fatal("ensuring DB schema", err)
		}
		usrRepo = database.NewUserRepository(db)
	} else {
		usrRepo = inmem.NewUserRepository()
	}
	usrSvc := user.NewService(usrRepo)

	app := echoapi.NewServer(conf, &echoapi.Options{
		AcademicSvc: acadSvc,
		UserSvc:     usrSvc,
		Logger:      logger,
		Validate:    validate,
		Translator:  translator,
	})

	go app.Start()
	logger.Info("API server listening on " + conf.Server.Addr)

	// block until we receive a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info("shutdown signal received")
	case <-app.ShutdownSignal():
		logger.Info("shutting down on unrecoverable error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}

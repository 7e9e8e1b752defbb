package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/digitalforgex/institute/api/echo"
	"github.com/digitalforgex/institute/core"
	"github.com/digitalforgex/institute/core/institute"
	emailsvc "github.com/digitalforgex/institute/services/email"
	logsvc "github.com/digitalforgex/institute/services/logger"
	"github.com/digitalforgex/institute/storage/firestore"
	"github.com/digitalforgex/institute/storage/memstore"
)

func main() {
	std := log.New(os.Stdout, core.Conf.GetString("appName")+" ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	if err := run(logger); err != nil {
		logger.Fatal("server error", err)
	}
}

func run(logger core.Logger) error {
	var store core.Store
	if core.Conf.GetString("firestoreProjectID") != "" {
		fs, err := firestore.Open(context.Background())
		if err != nil {
			return err
		}
		defer fs.Close()
		store = fs
	} else {
		// local runs work out of the box, no project required
		store = memstore.Open()
	}

	var mail core.EmailService
	if core.Conf.GetString("sendgridApiKey") != "" {
		mail = emailsvc.NewSendgridService(logger)
	} else {
		mail = emailsvc.NewConsoleService()
	}

	svc := institute.NewService(store, logger, mail)

	app := echoapi.NewServer(&echoapi.Options{
		Address: core.Conf.GetString("address"),
		Svc:     svc,
		Logger:  logger,
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go app.Start()

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.Stop(ctx)
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
	"github.com/academia/dashboard/core/report"
	emailsvc "github.com/academia/dashboard/services/email"
	logsvc "github.com/academia/dashboard/services/logger"
	inmemdb "github.com/academia/dashboard/storage/inmem"
	"github.com/academia/dashboard/storage/restapi"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	var (
		academicGw academic.Gateway
		reportsGw  report.Gateway
		exporter   report.Exporter
	)
	if conf.Backend.InMemory {
		db := inmemdb.Open(nil)
		academicGw, reportsGw, exporter = db, db, db
	} else {
		client := restapi.NewClient(conf.Backend.BaseURL, conf.Backend.Timeout, nil)
		academicGw, reportsGw, exporter = client, client, client
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	validate, translator := core.NewValidator()
	academic.InitValidators(validate, translator)

	cli := commandLine{
		app: dashboard.New(dashboard.Deps{
			Academic: academicGw,
			Reports:  reportsGw,
			Exporter: exporter,
			Validate: validate,
			Log:      logger,
			CacheTTL: conf.Reports.CacheTTL,
		}),
		mailSvc: mailSvc,
		out:     os.Stdout,
		now:     time.Now,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}

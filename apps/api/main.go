package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/academia/dashboard/apps/api/echo"
	"github.com/academia/dashboard/core"
	"github.com/academia/dashboard/core/academic"
	"github.com/academia/dashboard/core/dashboard"
	"github.com/academia/dashboard/core/report"
	logsvc "github.com/academia/dashboard/services/logger"
	"github.com/academia/dashboard/services/metrics"
	inmemdb "github.com/academia/dashboard/storage/inmem"
	"github.com/academia/dashboard/storage/restapi"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DASHBOARD : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	prom := metrics.NewPrometheus(conf.Build)

	var (
		academicGw academic.Gateway
		reportsGw  report.Gateway
		exporter   report.Exporter
	)
	if conf.Backend.InMemory {
		db := inmemdb.Open(nil)
		academicGw, reportsGw, exporter = db, db, db
		logger.Info("using the in-memory academic backend")
	} else {
		client := restapi.NewClient(conf.Backend.BaseURL, conf.Backend.Timeout, prom)
		academicGw, reportsGw, exporter = client, client, client
	}

	validate, translator := core.NewValidator()
	academic.InitValidators(validate, translator)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	app := dashboard.New(dashboard.Deps{
		Academic: academicGw,
		Reports:  reportsGw,
		Exporter: exporter,
		Validate: validate,
		Log:      logger,
		Metrics:  prom,
		CacheTTL: conf.Reports.CacheTTL,
	})

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("backend").Set(conf.Backend.BaseURL)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			App:        app,
			Validate:   validate,
			Translator: translator,
			Metrics:    prom.Handler(),
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

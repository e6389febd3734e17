package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/andrelms/comercio-api/internal/config"
	"github.com/andrelms/comercio-api/internal/db"
	"github.com/andrelms/comercio-api/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func newLogger(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	log := newLogger(cfg.Env)

	conn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	if *migrateOnlyFlag {
		log.Info("migrations completed; exiting as requested")
		return
	}

	handler := server.New(conn, cfg.DeletePolicy, log)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}

	go func() {
		log.WithFields(logrus.Fields{"env": cfg.Env, "addr": srv.Addr}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server gracefully stopped")
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	echoweb "github.com/Perlera89/campus/apps/web/echo"
	"github.com/Perlera89/campus/core"
	apisvc "github.com/Perlera89/campus/services/api"
	logsvc "github.com/Perlera89/campus/services/logger"
	"github.com/Perlera89/campus/storage"
	inmemstorage "github.com/Perlera89/campus/storage/inmem"
	"github.com/Perlera89/campus/storage/redisdb"
	"github.com/Perlera89/campus/storage/sqlitedb"
	"github.com/Perlera89/campus/store"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	var logger core.Logger
	std := log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if conf.Debug || conf.TestMode {
		logger = core.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	logger.Enable(!conf.Debug)

	// set up storage
	st, err := openStorage(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer func() {
		if closer, ok := st.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.Error("failed to close storage", err)
			}
		}
	}()

	// set up stores; the session store restores the persisted token pair
	sessions := store.NewSessionStore(st)
	if err := sessions.Load(context.Background()); err != nil {
		logger.Error(fmt.Sprintf("restoring session: %v", err), err)
	}

	client := apisvc.NewClient(conf)

	// =========================================================================
	// Start Web Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	server := echoweb.NewServer(
		&echoweb.Options{
			Address:  conf.Web.Address,
			Conf:     conf,
			Logger:   logger,
			Client:   client,
			Sessions: sessions,
			Shutdown: func() { shutdownCh <- syscall.SIGTERM },
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	sig := <-shutdownCh
	logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), conf.Web.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}

func openStorage(conf *core.Config) (storage.Storage, error) {
	switch conf.Storage.Engine {
	case "inmem":
		return inmemstorage.Open(), nil
	case "redis":
		return redisdb.Open(conf)
	case "sqlite", "":
		return sqlitedb.Open(conf)
	default:
		return nil, fmt.Errorf("unknown storage engine %q", conf.Storage.Engine)
	}
}

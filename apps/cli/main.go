package main

import (
	"io"
	"log"
	"os"

	"github.com/Perlera89/campus/core"
	apisvc "github.com/Perlera89/campus/services/api"
	"github.com/Perlera89/campus/storage"
	inmemstorage "github.com/Perlera89/campus/storage/inmem"
	"github.com/Perlera89/campus/storage/sqlitedb"
	"github.com/Perlera89/campus/store"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up storage; the session survives between invocations
	var st storage.Storage
	if conf.Storage.Engine == "inmem" {
		st = inmemstorage.Open()
	} else {
		db, err := sqlitedb.Open(conf)
		errAndDie(err)
		st = db
	}
	defer func() {
		if closer, ok := st.(io.Closer); ok {
			closer.Close()
		}
	}()

	// start CLI
	cli := commandLine{
		out:      os.Stdout,
		client:   apisvc.NewClient(conf),
		sessions: store.NewSessionStore(st),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

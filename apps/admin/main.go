package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/storage/database"
	mongodb "github.com/trezcool/hrms/storage/database/mongo"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, conf)
	errAndDie(err)
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	// start CLI
	cli := commandLine{
		db:      db,
		empRepo: mongodb.NewEmployeeRepository(db),
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

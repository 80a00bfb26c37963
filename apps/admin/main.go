package main

import (
	"log"
	"os"

	"github.com/Lemoonautt/Unigestion-PJ/core"
	"github.com/Lemoonautt/Unigestion-PJ/core/user"
	"github.com/Lemoonautt/Unigestion-PJ/storage/database"
	"github.com/Lemoonautt/Unigestion-PJ/storage/inmem"
	"github.com/Lemoonautt/Unigestion-PJ/storage/recordstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	var usrRepo user.Repository
	if conf.Database.Name != "" {
		db, err := database.Open(conf)
		errAndDie(err)
		defer db.Close()
		errAndDie(database.EnsureSchema(db))
		usrRepo = database.NewUserRepository(db)
	} else {
		usrRepo = inmem.NewUserRepository()
	}

	cli := commandLine{
		usrRepo: usrRepo,
		store:   recordstore.NewClient(conf.Store),
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

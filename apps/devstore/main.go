package main

import (
	"flag"
	"log"

	"github.com/Lemoonautt/Unigestion-PJ/core"
	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
	"github.com/Lemoonautt/Unigestion-PJ/storage/database"
	"github.com/Lemoonautt/Unigestion-PJ/storage/inmem"
)

// devstore is the reference record-store deployment: schemaless CRUD over the
// academic collections, backed by postgres when configured and by memory
// otherwise. The API server's store client points at it (storeBaseUrl).
func main() {
	addr := flag.String("addr", ":3001", "listen address")
	seedPath := flag.String("seed", "", "JSON file to preload the in-memory store from")
	flag.Parse()

	conf := core.NewConfig()

	var store academic.Store
	if conf.Database.Name != "" {
		db, err := database.Open(conf)
		if err != nil {
			log.Fatalf("opening DB: %v", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(db); err != nil {
			log.Fatalf("ensuring DB schema: %v", err)
		}
		store = database.NewStore(db)
	} else if *seedPath != "" {
		s, err := inmem.NewStoreFromFile(*seedPath)
		if err != nil {
			log.Fatalf("loading seed file: %v", err)
		}
		store = s
	} else {
		store = inmem.NewStore()
	}

	app := newApp(store, false)
	app.Logger.Fatal(app.Start(*addr))
}

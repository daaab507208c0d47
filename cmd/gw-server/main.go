package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"guestwall/internal/server"
	"guestwall/internal/shared"
)

func main() {
	cfg, err := shared.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Persistence comes up before the listener; connect failure kills the
	// process (no degraded mode).
	var store server.Store
	switch cfg.Driver {
	case shared.DriverSQLite:
		dbDir := filepath.Dir(cfg.DBPath)
		if dbDir != "." && dbDir != "" {
			if err := os.MkdirAll(dbDir, 0700); err != nil {
				log.Fatalf("failed to create db dir %s: %v", dbDir, err)
			}
		}
		db, err := server.OpenDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("failed to open db %s: %v", cfg.DBPath, err)
		}
		store = server.NewSQLiteStore(db)
		log.Printf("db: sqlite %s", cfg.DBPath)
	case shared.DriverMongo:
		ms, err := server.ConnectMongo(context.Background(), cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatalf("failed to connect mongo: %v", err)
		}
		store = ms
		log.Printf("db: mongo %s", cfg.DBName)
	}

	api := &server.API{Store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("/add", api.RequireIdentity(api.AddEntry))
	mux.HandleFunc("/all", api.RequireIdentity(api.ListEntries))
	mux.HandleFunc("/whoami", api.RequireIdentity(api.WhoAmI))
	mux.Handle("/", http.FileServer(http.Dir(cfg.PublicDir)))

	log.Printf("gw-server listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}

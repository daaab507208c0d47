package main

import (
	"context"
	"fmt"
	"log"

	"guestwall/internal/server"
	"guestwall/internal/shared"
)

func main() {
	cfg, err := shared.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	var store server.Store
	switch cfg.Driver {
	case shared.DriverSQLite:
		db, err := server.OpenDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("OpenDB failed: %v", err)
		}
		defer db.Close()
		store = server.NewSQLiteStore(db)
		fmt.Println("Backend: sqlite", cfg.DBPath)
	case shared.DriverMongo:
		ms, err := server.ConnectMongo(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatalf("connect failed: %v", err)
		}
		defer ms.Close(ctx)
		store = ms
		fmt.Println("Backend: mongo", cfg.DBName)
	}

	entries, err := store.ListAll(ctx)
	if err != nil {
		log.Fatalf("list failed: %v", err)
	}

	fmt.Println("Entries:", len(entries))
	for i, e := range entries {
		if i >= 3 {
			break
		}
		fmt.Printf(" - %s  %s  %q\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.UserID, e.Text)
	}
}

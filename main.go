package main

import (
	"fmt"
	"log"

	"github.com/Sumit10612/wealth-manager/internal/config"
	"github.com/Sumit10612/wealth-manager/internal/database"
	"github.com/Sumit10612/wealth-manager/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.Auth.Password == config.InsecureDefaultPassword {
		log.Printf("WARNING: running with the default password; set APP_PASSWORD")
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations and seed defaults
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s (db: %s)", addr, cfg.Database.Path)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

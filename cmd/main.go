package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"

	"github.com/robfig/cron/v3"
)

func main() {
	config.InitDB()

	catalog := services.NewCatalog()
	advisor := services.NewAdvisorService(catalog)
	store := services.NewSessionStore()
	hub := services.NewRealtimeHub()

	services.InitAdvisor(advisor, store)
	services.InitAlertDeps(config.DB, hub)

	// day counters roll over at local midnight
	c := cron.New()
	if _, err := c.AddFunc("0 0 * * *", store.ResetDaily); err != nil {
		log.Fatalf("failed to schedule daily reset: %v", err)
	}
	c.Start()

	r := routes.SetupRouter(hub)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

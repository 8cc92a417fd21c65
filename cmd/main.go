package main

import (
	"log"
	"os"

	"github.com/Lullucoder/DietSphere/config"
	"github.com/Lullucoder/DietSphere/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

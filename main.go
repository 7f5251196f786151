package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/http/controller"
	routes "github.com/Jeremi16/synify-be/http/route"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	ctrl := controller.InitController(cfg)

	defer ctrl.Infra.Logger.Shutdown(context.Background())

	r := routes.SetupRouter(ctrl)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

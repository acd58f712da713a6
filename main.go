package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airportops/internal/auth"
	"airportops/internal/config"
	api "airportops/internal/http"
	"airportops/internal/http/handlers"
	"airportops/internal/pagination"
	"airportops/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	pager := pagination.Validator{MaxPageSize: cfg.PageSettings.MaxPageSize}
	apiUsers := repositories.ApiUserRepository{DB: db}
	issuer := auth.TokenIssuer{Users: apiUsers, Cfg: cfg.Authentication}

	h := api.Handlers{
		System:       handlers.SystemHandler{DB: db},
		Auth:         handlers.AuthHandler{Issuer: issuer},
		Airlines:     handlers.AirlineHandler{Repo: repositories.AirlineRepository{DB: db}, Pager: pager},
		Destinations: handlers.DestinationHandler{Repo: repositories.DestinationRepository{DB: db}, Pager: pager},
		Pilots:       handlers.PilotHandler{Repo: repositories.PilotRepository{DB: db}, Pager: pager},
		TravelClass:  handlers.TravelClassHandler{Repo: repositories.TravelClassRepository{DB: db}, Pager: pager},
		Flights:      handlers.FlightHandler{Repo: repositories.FlightRepository{DB: db}, Pager: pager},
		Passengers:   handlers.PassengerHandler{Repo: repositories.PassengerRepository{DB: db}, Pager: pager},
		Tickets:      handlers.TicketHandler{Repo: repositories.TicketRepository{DB: db}, Pager: pager},
		ApiUsers:     handlers.ApiUserHandler{Repo: apiUsers, Pager: pager},
	}

	r := api.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

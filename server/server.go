package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecotrack/wastenexus/config"
	"github.com/ecotrack/wastenexus/db"
	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/mailingservices"
	"github.com/ecotrack/wastenexus/server/response"
	"github.com/ecotrack/wastenexus/services"
)

type Server struct {
	Config                *config.Config
	Mail                  *mailingservices.Mailgun
	AuthRepository        db.AuthRepository
	AuthService           services.AuthService
	RewardService         services.RewardService
	TransactionRepository db.TransactionRepository
	WasteReportService    services.WasteReportService
	CollectionJobService  services.CollectionJobService
	MarketplaceService    services.MarketplaceService
	EventService          services.EventService
	WorkerTaskService     services.WorkerTaskService
}

// Start runs the HTTP server until an interrupt, then drains in-flight
// requests for up to ten seconds.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("server exited")
}

// decode binds a JSON body to v, running binding-tag validation.
func decode(c *gin.Context, v interface{}) error {
	return c.ShouldBindJSON(v)
}

// parseUUIDParam reads a UUID path parameter, responding 400 on a bad value.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.JSON(c, "", http.StatusBadRequest, nil, errs.New(fmt.Sprintf("invalid %s", name), http.StatusBadRequest))
		return uuid.Nil, false
	}
	return id, true
}

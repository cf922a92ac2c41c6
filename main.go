package main

import (
	"log"

	"github.com/ecotrack/wastenexus/config"
	"github.com/ecotrack/wastenexus/db"
	"github.com/ecotrack/wastenexus/mailingservices"
	"github.com/ecotrack/wastenexus/server"
	"github.com/ecotrack/wastenexus/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	mailgunClient := &mailingservices.Mailgun{}
	mailgunClient.Init()

	gormDB := db.GetDB(conf)

	authRepo := db.NewAuthRepo(gormDB)
	transactionRepo := db.NewTransactionRepo(gormDB)
	reportRepo := db.NewWasteReportRepo(gormDB)
	jobRepo := db.NewCollectionJobRepo(gormDB)
	marketplaceRepo := db.NewMarketplaceRepo(gormDB)
	eventRepo := db.NewEventRepo(gormDB)
	taskRepo := db.NewWorkerTaskRepo(gormDB)

	authService := services.NewAuthService(authRepo, mailgunClient, conf)
	rewardService := services.NewRewardService(transactionRepo, authRepo, conf)
	reportService := services.NewWasteReportService(reportRepo, rewardService, conf)
	jobService := services.NewCollectionJobService(jobRepo, rewardService, conf)
	marketplaceService := services.NewMarketplaceService(marketplaceRepo, rewardService, conf)
	eventService := services.NewEventService(eventRepo, rewardService, conf)
	taskService := services.NewWorkerTaskService(taskRepo, rewardService, conf)

	s := &server.Server{
		Config:                conf,
		Mail:                  mailgunClient,
		AuthRepository:        authRepo,
		AuthService:           authService,
		RewardService:         rewardService,
		TransactionRepository: transactionRepo,
		WasteReportService:    reportService,
		CollectionJobService:  jobService,
		MarketplaceService:    marketplaceService,
		EventService:          eventService,
		WorkerTaskService:     taskService,
	}

	s.Start()
}

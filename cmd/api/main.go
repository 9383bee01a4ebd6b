package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/cognito"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/stripepay"
	"github.com/vfg2006/ads-manager-api/infrastructure/queue/sqs"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/infrastructure/storage/s3"
	"github.com/vfg2006/ads-manager-api/internal/api"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/tasks"
	"github.com/vfg2006/ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/ads-manager-api/internal/usecases/ads"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/billing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer db.Close()

	store := kvstore.New(db)

	campaignRepo := repository.NewCampaignRepository(store)
	campaignAdRepo := repository.NewCampaignAdRepository(store)
	adRepo := repository.NewAdRepository(store)
	accountRepo := repository.NewFBAccountRepository(store)
	userRepo := repository.NewUserRepository(store)
	taskRepo := repository.NewTaskRepository(store)
	changelogRepo := repository.NewChangeLogRepository(store)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração da AWS")
	}

	queue := sqs.New(awssqs.NewFromConfig(awsCfg), cfg.AWS.TaskQueueURL)
	uploader := s3.New(awss3.NewFromConfig(awsCfg), cfg.AWS.UploadsBucket, cfg.AWS.Region)
	cognitoClient := cognito.New(cip.NewFromConfig(awsCfg))

	gateway := metaclient.New(cfg.Meta)
	payments := stripepay.New(cfg.Stripe.APIKey)

	authenticator := authenticating.NewService(cognitoClient, userRepo)
	accountService := account.NewService(accountRepo, campaignRepo, changelogRepo, gateway)
	campaignService := campaign.NewService(
		campaignRepo, campaignAdRepo, adRepo, accountRepo, taskRepo, gateway, queue,
	)
	adsService := ads.NewService(adRepo, campaignAdRepo, campaignRepo, accountRepo, gateway, uploader)
	insightingService := insighting.NewService(accountRepo, userRepo, changelogRepo, gateway)
	billingService := billing.NewService(userRepo, payments)

	reconciler := campaign.NewReconciler(campaignRepo, accountRepo, gateway)
	enqueuer := tasks.NewEnqueuer(taskRepo, queue)
	runner := tasks.NewRunner(taskRepo, campaignRepo, reconciler, adsService)

	if cfg.Worker.Enabled {
		go queue.Consume(ctx, runner.Handle)
		logrus.Info("Executor de tarefas iniciado")
	}

	syncService := scheduler.NewCampaignSyncService(accountRepo, campaignService, cfg.Sync)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Account:       accountService,
		Campaign:      campaignService,
		Ads:           adsService,
		Insighting:    insightingService,
		Billing:       billingService,
		Enqueuer:      enqueuer,
		TaskRepo:      taskRepo,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// Package scheduler agenda as rotinas recorrentes da aplicação
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// AccountSyncer reconcilia o espelho local das campanhas de uma conta
type AccountSyncer interface {
	SyncAccount(ctx context.Context, account *domain.FBAccount) error
}

// CampaignSyncService agenda a reconciliação diária do espelho local de
// campanhas com a plataforma
type CampaignSyncService struct {
	scheduler   *gocron.Scheduler
	config      config.SyncConfig
	accountRepo repository.FBAccountRepository
	syncer      AccountSyncer
	syncRunning bool
	syncMutex   sync.Mutex
}

// NewCampaignSyncService cria o serviço de sincronização agendada
func NewCampaignSyncService(
	accountRepo repository.FBAccountRepository,
	syncer AccountSyncer,
	cfg config.SyncConfig,
) *CampaignSyncService {
	return &CampaignSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		accountRepo: accountRepo,
		syncer:      syncer,
	}
}

// Start agenda a sincronização e dispara o agendador. O agendador é
// parado quando o contexto é cancelado.
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Sincronização de campanhas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).
		Info("Iniciando agendador de sincronização de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "falha ao agendar sincronização de campanhas")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de sincronização de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts percorre as contas ativas e reconcilia cada uma.
// Execuções sobrepostas são ignoradas.
func (s *CampaignSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Sincronização de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startedAt := time.Now()

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		log.L.WithError(err).Error("Falha ao listar contas para sincronização")
		return
	}

	synced := 0
	for _, account := range accounts {
		if !account.Status {
			continue
		}

		logger := log.L.WithField("fb_account_id", account.FBAccountID)

		if err := s.syncer.SyncAccount(ctx, account); err != nil {
			logger.WithError(err).Error("Falha ao sincronizar campanhas da conta")
			continue
		}

		synced++
	}

	log.L.WithFields(log.Fields{
		"accounts": synced,
		"duration": time.Since(startedAt).String(),
	}).Info("Sincronização de campanhas concluída")
}

package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// ErrAccountNotFound indica que a conta não existe ou não pertence ao usuário
var ErrAccountNotFound = errors.New("conta de anúncios não encontrada")

// ErrInvalidStatus indica um valor de status que não é um booleano
var ErrInvalidStatus = errors.New("status deve ser true ou false")

// Service expõe as operações das contas de anúncios
type Service struct {
	accountRepo   repository.FBAccountRepository
	campaignRepo  repository.CampaignRepository
	changelogRepo repository.ChangeLogRepository
	gateway       metaclient.Client
}

// NewService cria o serviço de contas
func NewService(
	accountRepo repository.FBAccountRepository,
	campaignRepo repository.CampaignRepository,
	changelogRepo repository.ChangeLogRepository,
	gateway metaclient.Client,
) *Service {
	return &Service{
		accountRepo:   accountRepo,
		campaignRepo:  campaignRepo,
		changelogRepo: changelogRepo,
		gateway:       gateway,
	}
}

// ListAccounts devolve as contas vinculadas ao e-mail do usuário
func (s *Service) ListAccounts(ctx context.Context, email string) ([]*domain.FBAccount, error) {
	accounts, err := s.accountRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar contas", err)
	}

	return accounts, nil
}

// ParseStatus aceita apenas um booleano ou as strings "true" e
// "false". Qualquer outro valor é rejeitado: o valor vem do cliente e
// nunca é interpretado como código.
func ParseStatus(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true", "True":
			return true, nil
		case "false", "False":
			return false, nil
		}
	}

	return false, ErrInvalidStatus
}

// UpdateStatus liga ou desliga a conta. Desligar pausa em cascata
// todas as campanhas da conta, na plataforma e no espelho local.
func (s *Service) UpdateStatus(ctx context.Context, userID, fbAccountID string, rawStatus interface{}) error {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return apiErrors.Validation(err.Error())
	}

	account, err := s.accountRepo.GetForUser(ctx, fbAccountID, userID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar conta", err)
	}
	if account == nil {
		return apiErrors.NotFound(ErrAccountNotFound.Error())
	}

	if err := s.accountRepo.Update(ctx, fbAccountID, userID, map[string]interface{}{"status": status}); err != nil {
		return apiErrors.Storage("falha ao atualizar conta", err)
	}

	if !status {
		s.pauseAllCampaigns(ctx, account)
	}

	description := "Conta desativada"
	if status {
		description = "Conta ativada"
	}
	s.recordChange(ctx, fbAccountID, description)

	return nil
}

// recordChange alimenta o feed de notificações do painel. Falhas não
// interrompem a operação que gerou a entrada.
func (s *Service) recordChange(ctx context.Context, fbAccountID, description string) {
	entry := &domain.ChangeEntry{
		EntryID:     uuid.New().String(),
		FBAccountID: fbAccountID,
		Description: description,
		ChangedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.changelogRepo.Add(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao registrar alteração da conta")
	}
}

// pauseAllCampaigns pausa as campanhas da conta e desliga a expansão
// e a otimização automáticas de cada uma. Falhas individuais são
// registradas e não interrompem a cascata.
func (s *Service) pauseAllCampaigns(ctx context.Context, account *domain.FBAccount) {
	campaigns, err := s.campaignRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Falha ao listar campanhas para pausar")
		return
	}

	for _, campaign := range campaigns {
		logger := log.ForContext(ctx).WithField("campaign_id", campaign.CampaignID)

		err := s.gateway.UpdateCampaign(account.AccessToken, campaign.CampaignID, map[string]interface{}{
			"status": "PAUSED",
		})
		if err != nil {
			logger.WithError(err).Warn("Falha ao pausar campanha na plataforma")
			continue
		}

		err = s.campaignRepo.Update(ctx, campaign.CampaignID, map[string]interface{}{
			"status":       "PAUSED",
			"auto_expand":  false,
			"ad_optimizer": false,
		})
		if err != nil {
			logger.WithError(err).Warn("Falha ao pausar campanha no espelho local")
		}
	}
}

// UpdateConversionEvent troca o evento de conversão padrão da conta
func (s *Service) UpdateConversionEvent(ctx context.Context, userID, fbAccountID, event string) error {
	if event == "" {
		return apiErrors.MissingField("conversion_event")
	}

	account, err := s.accountRepo.GetForUser(ctx, fbAccountID, userID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar conta", err)
	}
	if account == nil {
		return apiErrors.NotFound(ErrAccountNotFound.Error())
	}

	err = s.accountRepo.Update(ctx, fbAccountID, userID, map[string]interface{}{"conversion_event": event})
	if err != nil {
		return apiErrors.Storage("falha ao atualizar conta", err)
	}

	s.recordChange(ctx, fbAccountID, "Evento de conversão alterado para "+event)

	return nil
}

package campaign

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/infrastructure/queue/sqs"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// defaultEvents são os eventos de otimização padrão da plataforma
var defaultEvents = []string{
	"PURCHASE",
	"LEAD",
	"COMPLETE_REGISTRATION",
	"ADD_TO_CART",
	"INITIATE_CHECKOUT",
	"SUBSCRIBE",
}

// Service expõe as operações de leitura e gestão de campanhas
type Service struct {
	campaignRepo   repository.CampaignRepository
	campaignAdRepo repository.CampaignAdRepository
	adRepo         repository.AdRepository
	accountRepo    repository.FBAccountRepository
	taskRepo       repository.TaskRepository
	gateway        metaclient.Client
	publisher      sqs.Publisher
}

// NewService cria o serviço de campanhas
func NewService(
	campaignRepo repository.CampaignRepository,
	campaignAdRepo repository.CampaignAdRepository,
	adRepo repository.AdRepository,
	accountRepo repository.FBAccountRepository,
	taskRepo repository.TaskRepository,
	gateway metaclient.Client,
	publisher sqs.Publisher,
) *Service {
	return &Service{
		campaignRepo:   campaignRepo,
		campaignAdRepo: campaignAdRepo,
		adRepo:         adRepo,
		accountRepo:    accountRepo,
		taskRepo:       taskRepo,
		gateway:        gateway,
		publisher:      publisher,
	}
}

func (s *Service) account(ctx context.Context, fbAccountID, userID string) (*domain.FBAccount, error) {
	account, err := s.accountRepo.GetForUser(ctx, fbAccountID, userID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao buscar conta de anúncios", err)
	}
	if account == nil {
		return nil, apiErrors.NotFound(ErrAccountNotFound.Error())
	}
	return account, nil
}

// GetCampaign monta a visão completa da campanha. A leitura também é o
// ponto de reparo: um evento de conversão gravado no formato legado é
// regravado no formato atual antes de responder.
func (s *Service) GetCampaign(ctx context.Context, userID, fbAccountID, campaignID string) (*domain.CampaignDetails, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	local, err := s.campaignRepo.Get(ctx, campaignID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao buscar campanha", err)
	}
	if local == nil {
		return nil, apiErrors.NotFound(ErrCampaignNotFound.Error())
	}

	if local.ConversionEventLegacy {
		log.ForContext(ctx).WithField("campaign_id", campaignID).
			Info("Evento de conversão no formato legado, regravando")

		err := s.campaignRepo.Update(ctx, campaignID, map[string]interface{}{
			"conversion_event": map[string]interface{}{
				"name": local.ConversionEvent.Name,
				"kind": string(local.ConversionEvent.Kind),
			},
		})
		if err != nil {
			return nil, apiErrors.Storage("falha ao regravar evento de conversão", err)
		}
	}

	remote, err := s.gateway.GetCampaign(account.AccessToken, campaignID, campaignReadFields)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao ler campanha na plataforma", err)
	}

	adSets, err := s.gateway.ListAdSets(account.AccessToken, campaignID, adSetReadFields)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar conjuntos de anúncios", err)
	}

	details := &domain.CampaignDetails{
		CampaignID:           campaignID,
		CampaignName:         remote.Name,
		CampaignType:         local.CampaignType,
		CampaignStatus:       remote.IsActive(),
		CampaignObjective:    remote.Objective,
		DailyBudget:          minorUnitsToMajor(remote.DailyBudget),
		CPAGoal:              local.CPAGoal,
		OptimizationEvent:    local.ConversionEvent.Name,
		Exclusions:           []interface{}{},
		AutoExpansionStatus:  local.ExpansionEnabled,
		AutoExpansionLevel:   local.ExpNumberOfSets,
		NamingConvention:     local.ExpNameTemplate,
		AdOptimizationStatus: local.OptEnabled,
		AdOptimizationLevel:  local.OptNumberOfAds,
		InProgress:           local.InProgress,
	}

	if created, err := time.Parse("2006-01-02T15:04:05-0700", remote.CreatedTime); err == nil {
		details.DateCreated = &created
	}

	if len(adSets) > 0 {
		fillTargeting(details, adSets[0].Targeting())
	}

	details.AvailableEvents, err = s.SelectableEvents(ctx, account)
	if err != nil {
		return nil, err
	}

	details.AdsEnabled, err = s.campaignAds(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return details, nil
}

// fillTargeting projeta a segmentação do primeiro conjunto na visão da
// campanha, assumindo que todos os conjuntos compartilham a mesma base
func fillTargeting(details *domain.CampaignDetails, targeting map[string]interface{}) {
	if ageMin, ok := asInt(targeting["age_min"]); ok {
		details.AgeMin = &ageMin
	}
	if ageMax, ok := asInt(targeting["age_max"]); ok {
		details.AgeMax = &ageMax
	}
	if genders, ok := targeting["genders"].([]interface{}); ok {
		details.Gender = genders
	}
	if geo, ok := targeting["geo_locations"].(map[string]interface{}); ok {
		if countries, ok := geo["countries"].([]interface{}); ok && len(countries) > 0 {
			if country, ok := countries[0].(string); ok {
				details.Country = &country
			}
		}
	}
	if exclusions, ok := targeting["excluded_custom_audiences"].([]interface{}); ok {
		details.Exclusions = exclusions
	}
}

func (s *Service) campaignAds(ctx context.Context, campaignID string) ([]domain.CampaignAdInfo, error) {
	links, err := s.campaignAdRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar anúncios da campanha", err)
	}

	ads := make([]domain.CampaignAdInfo, 0, len(links))
	for _, link := range links {
		ad, err := s.adRepo.Get(ctx, link.AdID)
		if err != nil {
			return nil, apiErrors.Storage("falha ao buscar anúncio", err)
		}
		if ad == nil {
			continue
		}
		ads = append(ads, domain.CampaignAdInfo{
			ID:         ad.AdID,
			Name:       ad.Name,
			InCampaign: ad.Enabled,
			Preview:    ad.Preview,
		})
	}

	return ads, nil
}

// ListCampaigns devolve as campanhas da conta. O status e o orçamento
// são atualizados em lote a partir da plataforma, e as divergências são
// regravadas no espelho local.
func (s *Service) ListCampaigns(ctx context.Context, userID, fbAccountID string) ([]domain.CampaignSummary, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	locals, err := s.campaignRepo.ListByAccount(ctx, fbAccountID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar campanhas", err)
	}

	byID := make(map[string]*domain.Campaign, len(locals))
	ids := make([]string, 0, len(locals))
	for _, local := range locals {
		byID[local.CampaignID] = local
		ids = append(ids, local.CampaignID)
	}

	remotes := map[string]*metadomain.Campaign{}
	if len(ids) > 0 {
		results, err := s.gateway.GetCampaignsBatch(account.AccessToken, ids, campaignReadFields)
		if err != nil {
			return nil, apiErrors.RemoteAPI("falha ao ler campanhas na plataforma", err)
		}

		for _, result := range results {
			campaignID, _ := result.Metadata.(string)
			if result.Err != nil {
				// campanhas removidas na plataforma não derrubam a listagem
				log.ForContext(ctx).WithError(result.Err).
					WithField("campaign_id", campaignID).
					Warn("Falha ao ler campanha na listagem")
				continue
			}

			var remote metadomain.Campaign
			if err := json.Unmarshal(result.Body, &remote); err != nil {
				continue
			}
			remotes[campaignID] = &remote
		}
	}

	summaries := make([]domain.CampaignSummary, 0, len(locals))
	for _, local := range locals {
		summary := domain.CampaignSummary{
			CampaignID:   local.CampaignID,
			CampaignName: local.Name,
			CampaignType: local.CampaignType,
			Status:       local.Status == "ACTIVE",
			DailyBudget:  local.Budget,
			CreatedAt:    local.CreatedAt,
			InProgress:   local.InProgress,
		}

		if remote, ok := remotes[local.CampaignID]; ok {
			summary.CampaignName = remote.Name
			summary.Status = remote.IsActive()
			summary.DailyBudget = minorUnitsToMajor(remote.DailyBudget)

			s.syncMirror(ctx, local, remote, summary.DailyBudget)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// syncMirror regrava no espelho local os campos que divergiram da plataforma
func (s *Service) syncMirror(ctx context.Context, local *domain.Campaign, remote *metadomain.Campaign, budget decimal.Decimal) {
	fields := map[string]interface{}{}

	if local.Name != remote.Name {
		fields["campaign_name"] = remote.Name
	}
	if local.Status != remote.EffectiveStatus {
		fields["status"] = remote.EffectiveStatus
	}
	if !local.Budget.Equal(budget) {
		fields["budget"] = budget.InexactFloat64()
	}

	if len(fields) == 0 {
		return
	}

	if err := s.campaignRepo.Update(ctx, local.CampaignID, fields); err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("campaign_id", local.CampaignID).
			Warn("Falha ao sincronizar espelho da campanha")
	}
}

// AccountEvents lista os eventos de otimização disponíveis para a conta
func (s *Service) AccountEvents(ctx context.Context, userID, fbAccountID string) ([]domain.SelectableEvent, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	return s.SelectableEvents(ctx, account)
}

// SyncAccount reconcilia o espelho local de todas as campanhas da
// conta com a plataforma. É usado pela rotina agendada, que roda fora
// de uma requisição: não há verificação de usuário.
func (s *Service) SyncAccount(ctx context.Context, account *domain.FBAccount) error {
	locals, err := s.campaignRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		return apiErrors.Storage("falha ao listar campanhas", err)
	}
	if len(locals) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Campaign, len(locals))
	ids := make([]string, 0, len(locals))
	for _, local := range locals {
		byID[local.CampaignID] = local
		ids = append(ids, local.CampaignID)
	}

	results, err := s.gateway.GetCampaignsBatch(account.AccessToken, ids, campaignReadFields)
	if err != nil {
		return apiErrors.RemoteAPI("falha ao ler campanhas na plataforma", err)
	}

	for _, result := range results {
		campaignID, _ := result.Metadata.(string)
		local, ok := byID[campaignID]
		if !ok {
			continue
		}
		if result.Err != nil {
			log.ForContext(ctx).WithError(result.Err).
				WithField("campaign_id", campaignID).
				Warn("Falha ao ler campanha na sincronização")
			continue
		}

		var remote metadomain.Campaign
		if err := json.Unmarshal(result.Body, &remote); err != nil {
			continue
		}

		s.syncMirror(ctx, local, &remote, minorUnitsToMajor(remote.DailyBudget))
	}

	return nil
}

// DeleteCampaign marca a campanha como removida na plataforma e apaga o
// espelho local com os vínculos de anúncios
func (s *Service) DeleteCampaign(ctx context.Context, userID, fbAccountID, campaignID string) error {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return err
	}

	err = s.gateway.UpdateCampaign(account.AccessToken, campaignID, map[string]interface{}{
		"status": "DELETED",
	})
	if err != nil {
		// a campanha pode já ter sido removida direto na plataforma;
		// a limpeza local segue mesmo assim
		log.ForContext(ctx).WithError(err).
			WithField("campaign_id", campaignID).
			Warn("Falha ao marcar campanha como removida na plataforma")
	}

	if err := s.campaignAdRepo.DeleteByCampaign(ctx, campaignID); err != nil {
		return apiErrors.Storage("falha ao remover vínculos de anúncios", err)
	}

	if err := s.campaignRepo.Delete(ctx, campaignID); err != nil {
		return apiErrors.Storage("falha ao remover campanha", err)
	}

	return nil
}

// RequestUpdate enfileira a atualização da campanha e devolve o id da
// tarefa para acompanhamento
func (s *Service) RequestUpdate(ctx context.Context, userID, fbAccountID, campaignID string, fields map[string]interface{}) (string, error) {
	if len(fields) == 0 {
		return "", apiErrors.Validation(ErrNothingToUpdate.Error())
	}

	if _, err := s.account(ctx, fbAccountID, userID); err != nil {
		return "", err
	}

	local, err := s.campaignRepo.Get(ctx, campaignID)
	if err != nil {
		return "", apiErrors.Storage("falha ao buscar campanha", err)
	}
	if local == nil {
		return "", apiErrors.NotFound(ErrCampaignNotFound.Error())
	}

	taskID := uuid.New().String()

	err = s.taskRepo.Create(ctx, &domain.AsyncResult{
		TaskID: taskID,
		Task:   domain.TaskUpdateCampaign,
		Status: domain.TaskStatusQueued,
	})
	if err != nil {
		return "", apiErrors.Storage("falha ao registrar tarefa", err)
	}

	if err := s.campaignRepo.Update(ctx, campaignID, map[string]interface{}{"in_progress": true}); err != nil {
		return "", apiErrors.Storage("falha ao marcar campanha em atualização", err)
	}

	message := domain.TaskMessage{
		Task:   domain.TaskUpdateCampaign,
		TaskID: taskID,
		Params: map[string]interface{}{
			"user_id":       userID,
			"fb_account_id": fbAccountID,
			"campaign_id":   campaignID,
			"fields":        fields,
		},
	}

	if err := s.publisher.Publish(ctx, message); err != nil {
		return "", apiErrors.Internal("falha ao enfileirar tarefa", err)
	}

	return taskID, nil
}

// SelectableEvents lista os eventos de otimização disponíveis para a
// conta: os padrão da plataforma mais as conversões personalizadas
func (s *Service) SelectableEvents(ctx context.Context, account *domain.FBAccount) ([]domain.SelectableEvent, error) {
	events := make([]domain.SelectableEvent, 0, len(defaultEvents))
	for _, name := range defaultEvents {
		events = append(events, domain.SelectableEvent{
			Label: name,
			Event: domain.ConversionEvent{Name: name, Kind: domain.ConversionEventDefault},
		})
	}

	conversions, err := s.gateway.ListCustomConversions(account.AccessToken, account.FBAccountID, 100)
	if err != nil {
		// conversões personalizadas são um extra: a falha não derruba a leitura
		log.ForContext(ctx).WithError(err).Warn("Falha ao listar conversões personalizadas")
		return events, nil
	}

	for _, conversion := range conversions {
		events = append(events, domain.SelectableEvent{
			Label: conversion.Name,
			Event: domain.ConversionEvent{
				Name: conversion.ID,
				Kind: domain.ConversionEventCustomConversion,
			},
		})
	}

	return events, nil
}

// minorUnitsToMajor converte o orçamento em centavos da plataforma
// para o valor decimal exibido no painel
func minorUnitsToMajor(value string) decimal.Decimal {
	cents, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return cents.Div(decimal.NewFromInt(100))
}

func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

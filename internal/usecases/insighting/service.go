// Package insighting monta as métricas de desempenho e as informações
// do painel do usuário
package insighting

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// ErrAccountNotFound indica que a conta não existe ou não pertence ao usuário
var ErrAccountNotFound = errors.New("conta de anúncios não encontrada")

var insightFields = []string{"spend", "impressions", "clicks", "cpc", "ctr", "purchase_roas"}

// InsightsFilter delimita o período das métricas
type InsightsFilter struct {
	DatePreset string
	Since      string
	Until      string
}

// DashboardInfo é a visão inicial do painel do usuário
type DashboardInfo struct {
	User     *domain.User        `json:"user"`
	Accounts []*domain.FBAccount `json:"accounts"`
}

// Service expõe as leituras de métricas e do painel
type Service struct {
	accountRepo   repository.FBAccountRepository
	userRepo      repository.UserRepository
	changelogRepo repository.ChangeLogRepository
	gateway       metaclient.Client
}

// NewService cria o serviço de métricas
func NewService(
	accountRepo repository.FBAccountRepository,
	userRepo repository.UserRepository,
	changelogRepo repository.ChangeLogRepository,
	gateway metaclient.Client,
) *Service {
	return &Service{
		accountRepo:   accountRepo,
		userRepo:      userRepo,
		changelogRepo: changelogRepo,
		gateway:       gateway,
	}
}

// AccountInsights lê as métricas agregadas da conta
func (s *Service) AccountInsights(ctx context.Context, userID, fbAccountID string, filter InsightsFilter) ([]map[string]interface{}, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	return s.insights(account, "act_"+account.FBAccountID, filter)
}

// CampaignInsights lê as métricas de uma campanha
func (s *Service) CampaignInsights(ctx context.Context, userID, fbAccountID, campaignID string, filter InsightsFilter) ([]map[string]interface{}, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	return s.insights(account, campaignID, filter)
}

func (s *Service) insights(account *domain.FBAccount, objectID string, filter InsightsFilter) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(insightFields, ","))
	params.Set("time_increment", "1")

	switch {
	case filter.Since != "" && filter.Until != "":
		params.Set("time_range", `{"since":"`+filter.Since+`","until":"`+filter.Until+`"}`)
	case filter.DatePreset != "":
		params.Set("date_preset", filter.DatePreset)
	default:
		// o painel mostra a série diária dos últimos 14 dias
		params.Set("date_preset", "last_14d")
	}

	insights, err := s.gateway.GetInsights(account.AccessToken, objectID, params)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao ler métricas", err)
	}

	return insights, nil
}

// Dashboard monta as informações iniciais do painel: o usuário, as
// contas vinculadas e a moeda de cada uma
func (s *Service) Dashboard(ctx context.Context, userID string) (*DashboardInfo, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao buscar usuário", err)
	}
	if user == nil {
		return nil, apiErrors.NotFound("usuário não encontrado")
	}

	accounts, err := s.accountRepo.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar contas", err)
	}

	for _, account := range accounts {
		if account.Currency != "" {
			continue
		}

		currency, err := s.gateway.GetAccountCurrency(account.AccessToken, account.FBAccountID)
		if err != nil {
			log.ForContext(ctx).WithError(err).
				WithField("fb_account_id", account.FBAccountID).
				Warn("Falha ao ler moeda da conta")
			continue
		}

		account.Currency = currency
		if err := s.accountRepo.Update(ctx, account.FBAccountID, account.UserID, map[string]interface{}{"currency": currency}); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Falha ao gravar moeda da conta")
		}
	}

	return &DashboardInfo{User: user, Accounts: accounts}, nil
}

// Changelog devolve o feed de alterações da conta, usado pelo painel
// como notificações
func (s *Service) Changelog(ctx context.Context, userID, fbAccountID string) ([]*domain.ChangeEntry, error) {
	if _, err := s.account(ctx, fbAccountID, userID); err != nil {
		return nil, err
	}

	entries, err := s.changelogRepo.ListByAccount(ctx, fbAccountID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar alterações da conta", err)
	}

	return entries, nil
}

func (s *Service) account(ctx context.Context, fbAccountID, userID string) (*domain.FBAccount, error) {
	account, err := s.accountRepo.GetForUser(ctx, fbAccountID, userID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao buscar conta", err)
	}
	if account == nil {
		return nil, apiErrors.NotFound(ErrAccountNotFound.Error())
	}
	return account, nil
}

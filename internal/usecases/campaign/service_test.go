package campaign

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type serviceMocks struct {
	campaignRepo   *repomocks.MockCampaignRepository
	campaignAdRepo *repomocks.MockCampaignAdRepository
	adRepo         *repomocks.MockAdRepository
	accountRepo    *repomocks.MockFBAccountRepository
	taskRepo       *repomocks.MockTaskRepository
	gateway        *metamocks.MockClient
}

type stubPublisher struct {
	published []interface{}
}

func (p *stubPublisher) Publish(_ context.Context, payload interface{}) error {
	p.published = append(p.published, payload)
	return nil
}

func newService(t *testing.T) (*Service, *serviceMocks, *stubPublisher) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		campaignRepo:   repomocks.NewMockCampaignRepository(ctrl),
		campaignAdRepo: repomocks.NewMockCampaignAdRepository(ctrl),
		adRepo:         repomocks.NewMockAdRepository(ctrl),
		accountRepo:    repomocks.NewMockFBAccountRepository(ctrl),
		taskRepo:       repomocks.NewMockTaskRepository(ctrl),
		gateway:        metamocks.NewMockClient(ctrl),
	}

	publisher := &stubPublisher{}

	service := NewService(
		m.campaignRepo, m.campaignAdRepo, m.adRepo,
		m.accountRepo, m.taskRepo, m.gateway, publisher,
	)

	return service, m, publisher
}

func TestGetCampaign(t *testing.T) {
	account := &domain.FBAccount{
		FBAccountID: "acc-1",
		UserID:      "user-1",
		AccessToken: "token-1",
	}

	remote := &metadomain.Campaign{
		ID:              "camp-1",
		Name:            "Campanha",
		Objective:       "OUTCOME_SALES",
		EffectiveStatus: "ACTIVE",
		DailyBudget:     "5000",
	}

	t.Run("evento legado é regravado no formato atual durante a leitura", func(t *testing.T) {
		service, m, _ := newService(t)

		m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		m.campaignRepo.EXPECT().Get(gomock.Any(), "camp-1").Return(&domain.Campaign{
			CampaignID: "camp-1",
			CPAGoal:    decimal.NewFromFloat(12.75),
			ConversionEvent: domain.ConversionEvent{
				Name: "PURCHASE",
				Kind: domain.ConversionEventDefault,
			},
			ConversionEventLegacy: true,
		}, nil)

		// o reparo persiste o par estruturado
		m.campaignRepo.EXPECT().Update(gomock.Any(), "camp-1", map[string]interface{}{
			"conversion_event": map[string]interface{}{
				"name": "PURCHASE",
				"kind": "default",
			},
		}).Return(nil)

		m.gateway.EXPECT().GetCampaign("token-1", "camp-1", campaignReadFields).Return(remote, nil)
		m.gateway.EXPECT().ListAdSets("token-1", "camp-1", adSetReadFields).Return(nil, nil)
		m.gateway.EXPECT().ListCustomConversions("token-1", "acc-1", 100).Return(nil, nil)
		m.campaignAdRepo.EXPECT().ListByCampaign(gomock.Any(), "camp-1").Return(nil, nil)

		details, err := service.GetCampaign(context.Background(), "user-1", "acc-1", "camp-1")

		require.NoError(t, err)
		assert.Equal(t, "PURCHASE", details.OptimizationEvent)
		// o valor do cpa_goal é servido como foi gravado
		assert.True(t, details.CPAGoal.Equal(decimal.NewFromFloat(12.75)))
		assert.True(t, details.CampaignStatus)
		assert.True(t, details.DailyBudget.Equal(decimal.NewFromInt(50)))
	})

	t.Run("evento no formato atual não dispara regravação", func(t *testing.T) {
		service, m, _ := newService(t)

		m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		m.campaignRepo.EXPECT().Get(gomock.Any(), "camp-1").Return(&domain.Campaign{
			CampaignID: "camp-1",
			ConversionEvent: domain.ConversionEvent{
				Name: "LEAD",
				Kind: domain.ConversionEventDefault,
			},
		}, nil)

		m.gateway.EXPECT().GetCampaign("token-1", "camp-1", campaignReadFields).Return(remote, nil)
		m.gateway.EXPECT().ListAdSets("token-1", "camp-1", adSetReadFields).Return([]metadomain.AdSet{
			{
				"id": "adset-1",
				"targeting": map[string]interface{}{
					"age_min": float64(25),
					"geo_locations": map[string]interface{}{
						"countries": []interface{}{"BR"},
					},
				},
			},
		}, nil)
		m.gateway.EXPECT().ListCustomConversions("token-1", "acc-1", 100).Return([]metadomain.CustomConversion{
			{ID: "conv-1", Name: "Compra no checkout"},
		}, nil)
		m.campaignAdRepo.EXPECT().ListByCampaign(gomock.Any(), "camp-1").Return(nil, nil)

		details, err := service.GetCampaign(context.Background(), "user-1", "acc-1", "camp-1")

		require.NoError(t, err)
		require.NotNil(t, details.AgeMin)
		assert.Equal(t, 25, *details.AgeMin)
		require.NotNil(t, details.Country)
		assert.Equal(t, "BR", *details.Country)

		// eventos padrão mais a conversão personalizada da conta
		require.Len(t, details.AvailableEvents, len(defaultEvents)+1)
		last := details.AvailableEvents[len(details.AvailableEvents)-1]
		assert.Equal(t, "Compra no checkout", last.Label)
		assert.Equal(t, domain.ConversionEventCustomConversion, last.Event.Kind)
	})
}

func TestListCampaigns(t *testing.T) {
	account := &domain.FBAccount{
		FBAccountID: "acc-1",
		UserID:      "user-1",
		AccessToken: "token-1",
	}

	t.Run("divergência com a plataforma é regravada no espelho", func(t *testing.T) {
		service, m, _ := newService(t)

		m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{
				CampaignID: "camp-1",
				Name:       "Nome antigo",
				Status:     "ACTIVE",
				Budget:     decimal.NewFromInt(50),
			},
		}, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"id":               "camp-1",
			"name":             "Nome novo",
			"effective_status": "PAUSED",
			"daily_budget":     "7000",
		})

		m.gateway.EXPECT().
			GetCampaignsBatch("token-1", []string{"camp-1"}, campaignReadFields).
			Return([]metaclient.BatchResult{
				{Code: 200, Body: body, Metadata: "camp-1"},
			}, nil)

		m.campaignRepo.EXPECT().Update(gomock.Any(), "camp-1", map[string]interface{}{
			"campaign_name": "Nome novo",
			"status":        "PAUSED",
			"budget":        float64(70),
		}).Return(nil)

		summaries, err := service.ListCampaigns(context.Background(), "user-1", "acc-1")

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Nome novo", summaries[0].CampaignName)
		assert.False(t, summaries[0].Status)
		assert.True(t, summaries[0].DailyBudget.Equal(decimal.NewFromInt(70)))
	})

	t.Run("campanha removida na plataforma não derruba a listagem", func(t *testing.T) {
		service, m, _ := newService(t)

		m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1", Name: "Sobrevivente", Status: "ACTIVE"},
		}, nil)

		m.gateway.EXPECT().
			GetCampaignsBatch("token-1", []string{"camp-1"}, campaignReadFields).
			Return([]metaclient.BatchResult{
				{
					Code:     400,
					Metadata: "camp-1",
					Err:      &metadomain.RequestError{StatusCode: 400},
				},
			}, nil)

		summaries, err := service.ListCampaigns(context.Background(), "user-1", "acc-1")

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Sobrevivente", summaries[0].CampaignName)
	})
}

func TestRequestUpdate(t *testing.T) {
	account := &domain.FBAccount{
		FBAccountID: "acc-1",
		UserID:      "user-1",
		AccessToken: "token-1",
	}

	t.Run("registra a tarefa, marca a campanha e publica na fila", func(t *testing.T) {
		service, m, publisher := newService(t)

		m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		m.campaignRepo.EXPECT().Get(gomock.Any(), "camp-1").Return(&domain.Campaign{CampaignID: "camp-1"}, nil)

		var created *domain.AsyncResult
		m.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, result *domain.AsyncResult) error {
				created = result
				return nil
			})

		m.campaignRepo.EXPECT().
			Update(gomock.Any(), "camp-1", map[string]interface{}{"in_progress": true}).
			Return(nil)

		taskID, err := service.RequestUpdate(context.Background(), "user-1", "acc-1", "camp-1", map[string]interface{}{
			"campaign_name": "Novo nome",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, taskID, created.TaskID)
		assert.Equal(t, domain.TaskStatusQueued, created.Status)

		require.Len(t, publisher.published, 1)
		message := publisher.published[0].(domain.TaskMessage)
		assert.Equal(t, domain.TaskUpdateCampaign, message.Task)
		assert.Equal(t, taskID, message.TaskID)
		assert.Equal(t, "camp-1", message.Params["campaign_id"])
	})

	t.Run("atualização vazia é rejeitada antes de qualquer escrita", func(t *testing.T) {
		service, _, publisher := newService(t)

		_, err := service.RequestUpdate(context.Background(), "user-1", "acc-1", "camp-1", nil)

		require.Error(t, err)
		assert.Empty(t, publisher.published)
	})
}

package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func TestReconcilerUpdateCampaign(t *testing.T) {
	account := &domain.FBAccount{
		FBAccountID: "acc-1",
		UserID:      "user-1",
		AccessToken: "token-1",
	}

	originalItem := kvstore.Item{
		"campaign_id":   "camp-1",
		"campaign_name": "Nome original",
		"budget":        float64(50),
	}

	originalCampaign := &metadomain.Campaign{
		ID:          "camp-1",
		Name:        "Nome original",
		Objective:   "OUTCOME_SALES",
		DailyBudget: "5000",
	}

	adSets := []metadomain.AdSet{
		{
			"id":        "adset-1",
			"targeting": map[string]interface{}{"age_min": float64(18)},
		},
	}

	setup := func(t *testing.T) (*Reconciler, *repomocks.MockCampaignRepository, *repomocks.MockFBAccountRepository, *metamocks.MockClient) {
		ctrl := gomock.NewController(t)
		campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
		accountRepo := repomocks.NewMockFBAccountRepository(ctrl)
		gateway := metamocks.NewMockClient(ctrl)

		return NewReconciler(campaignRepo, accountRepo, gateway), campaignRepo, accountRepo, gateway
	}

	expectCapture := func(campaignRepo *repomocks.MockCampaignRepository, accountRepo *repomocks.MockFBAccountRepository, gateway *metamocks.MockClient) {
		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		campaignRepo.EXPECT().GetItem(gomock.Any(), "camp-1").Return(originalItem, nil)
		gateway.EXPECT().GetCampaign("token-1", "camp-1", campaignReadFields).Return(originalCampaign, nil)
		gateway.EXPECT().ListAdSets("token-1", "camp-1", adSetReadFields).Return(adSets, nil)
	}

	t.Run("aplica as três etapas em ordem quando tudo dá certo", func(t *testing.T) {
		reconciler, campaignRepo, accountRepo, gateway := setup(t)
		expectCapture(campaignRepo, accountRepo, gateway)

		gomock.InOrder(
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"campaign_name": "Nome novo"}).
				Return(nil),
			gateway.EXPECT().
				UpdateCampaign("token-1", "camp-1", map[string]interface{}{"name": "Nome novo"}).
				Return(nil),
			gateway.EXPECT().
				UpdateAdSetsBatch("token-1", gomock.Any(), true).
				Return(nil, nil),
		)

		err := reconciler.UpdateCampaign(context.Background(), "user-1", "acc-1", "camp-1", map[string]interface{}{
			"campaign_name": "Nome novo",
			"age_min":       float64(21),
		})

		require.NoError(t, err)
	})

	t.Run("falha nos conjuntos reverte em ordem inversa com o estado original", func(t *testing.T) {
		reconciler, campaignRepo, accountRepo, gateway := setup(t)
		expectCapture(campaignRepo, accountRepo, gateway)

		batchErr := &metadomain.RequestError{
			StatusCode: 400,
			Detail:     metadomain.ErrorDetail{ErrorUserMsg: "Segmentação inválida"},
		}

		gomock.InOrder(
			// aplicação
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"campaign_name": "Nome novo"}).
				Return(nil),
			gateway.EXPECT().
				UpdateCampaign("token-1", "camp-1", map[string]interface{}{"name": "Nome novo"}).
				Return(nil),
			gateway.EXPECT().
				UpdateAdSetsBatch("token-1", gomock.Any(), true).
				Return(nil, batchErr),

			// reversão: conjuntos, campanha remota e registro local
			gateway.EXPECT().
				UpdateAdSetsBatch("token-1", gomock.Any(), false).
				Return(nil, nil),
			gateway.EXPECT().
				UpdateCampaign("token-1", "camp-1", originalCampaign.Export()).
				Return(nil),
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"campaign_name": "Nome original"}).
				Return(nil),
		)

		err := reconciler.UpdateCampaign(context.Background(), "user-1", "acc-1", "camp-1", map[string]interface{}{
			"campaign_name": "Nome novo",
			"age_min":       float64(21),
		})

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindRemoteAPI))
		assert.Contains(t, err.Error(), "Segmentação inválida")
	})

	t.Run("falha na campanha remota reverte apenas o registro local", func(t *testing.T) {
		reconciler, campaignRepo, accountRepo, gateway := setup(t)
		expectCapture(campaignRepo, accountRepo, gateway)

		remoteErr := &metadomain.RequestError{
			StatusCode: 400,
			Detail:     metadomain.ErrorDetail{Message: "objetivo inválido"},
		}

		gomock.InOrder(
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"campaign_name": "Nome novo"}).
				Return(nil),
			gateway.EXPECT().
				UpdateCampaign("token-1", "camp-1", map[string]interface{}{"name": "Nome novo"}).
				Return(remoteErr),

			// reversão: a campanha remota que falhou e o registro local
			gateway.EXPECT().
				UpdateCampaign("token-1", "camp-1", originalCampaign.Export()).
				Return(nil),
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"campaign_name": "Nome original"}).
				Return(nil),
		)

		err := reconciler.UpdateCampaign(context.Background(), "user-1", "acc-1", "camp-1", map[string]interface{}{
			"campaign_name": "Nome novo",
		})

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindRemoteAPI))
	})

	t.Run("campo que não existia antes é removido na reversão", func(t *testing.T) {
		reconciler, campaignRepo, accountRepo, gateway := setup(t)

		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		// o registro original não tem os campos de expansão
		campaignRepo.EXPECT().GetItem(gomock.Any(), "camp-1").Return(kvstore.Item{
			"campaign_id": "camp-1",
		}, nil)
		gateway.EXPECT().GetCampaign("token-1", "camp-1", campaignReadFields).Return(originalCampaign, nil)
		gateway.EXPECT().ListAdSets("token-1", "camp-1", adSetReadFields).Return(adSets, nil)

		storageErr := assert.AnError

		gomock.InOrder(
			// o espelho da campanha é gravado antes do estado de expansão
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"auto_expand": true}).
				Return(nil),
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"expansion_enabled": true, "exp_number_of_ad_sets": float64(3)}).
				Return(storageErr),

			// reversão com remoção: o valor nil apaga o atributo
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"auto_expand": nil}).
				Return(nil),
			campaignRepo.EXPECT().
				Update(gomock.Any(), "camp-1", map[string]interface{}{"expansion_enabled": nil, "exp_number_of_ad_sets": nil}).
				Return(nil),
		)

		err := reconciler.UpdateCampaign(context.Background(), "user-1", "acc-1", "camp-1", map[string]interface{}{
			"auto_expansion_status": true,
			"auto_expansion_level":  float64(3),
		})

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindStorage))
	})

	t.Run("conta de outro usuário é rejeitada sem nenhuma escrita", func(t *testing.T) {
		reconciler, _, accountRepo, _ := setup(t)

		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "intruso").Return(nil, nil)

		err := reconciler.UpdateCampaign(context.Background(), "intruso", "acc-1", "camp-1", map[string]interface{}{
			"campaign_name": "Nome novo",
		})

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindNotFound))
	})
}

package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name    string
		value   interface{}
		want    bool
		wantErr bool
	}{
		{name: "booleano verdadeiro", value: true, want: true},
		{name: "booleano falso", value: false, want: false},
		{name: "string true", value: "true", want: true},
		{name: "string False legada", value: "False", want: false},
		{name: "string arbitrária é rejeitada", value: "__import__('os')", wantErr: true},
		{name: "número é rejeitado", value: float64(1), wantErr: true},
		{name: "nulo é rejeitado", value: nil, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStatus(tc.value)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	account := &domain.FBAccount{
		FBAccountID: "acc-1",
		UserID:      "user-1",
		AccessToken: "token-1",
	}

	setup := func(t *testing.T) (*Service, *repomocks.MockFBAccountRepository, *repomocks.MockCampaignRepository, *metamocks.MockClient) {
		ctrl := gomock.NewController(t)
		accountRepo := repomocks.NewMockFBAccountRepository(ctrl)
		campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
		changelogRepo := repomocks.NewMockChangeLogRepository(ctrl)
		gateway := metamocks.NewMockClient(ctrl)

		changelogRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		return NewService(accountRepo, campaignRepo, changelogRepo, gateway), accountRepo, campaignRepo, gateway
	}

	t.Run("desligar a conta pausa todas as campanhas em cascata", func(t *testing.T) {
		service, accountRepo, campaignRepo, gateway := setup(t)

		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		accountRepo.EXPECT().Update(gomock.Any(), "acc-1", "user-1", map[string]interface{}{"status": false}).Return(nil)

		campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
			{CampaignID: "camp-2"},
		}, nil)

		paused := map[string]interface{}{"status": "PAUSED"}
		// o espelho local também desliga a expansão e a otimização
		mirrored := map[string]interface{}{"status": "PAUSED", "auto_expand": false, "ad_optimizer": false}
		gateway.EXPECT().UpdateCampaign("token-1", "camp-1", paused).Return(nil)
		campaignRepo.EXPECT().Update(gomock.Any(), "camp-1", mirrored).Return(nil)
		gateway.EXPECT().UpdateCampaign("token-1", "camp-2", paused).Return(nil)
		campaignRepo.EXPECT().Update(gomock.Any(), "camp-2", mirrored).Return(nil)

		err := service.UpdateStatus(context.Background(), "user-1", "acc-1", false)

		require.NoError(t, err)
	})

	t.Run("falha em uma campanha não interrompe a cascata", func(t *testing.T) {
		service, accountRepo, campaignRepo, gateway := setup(t)

		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		accountRepo.EXPECT().Update(gomock.Any(), "acc-1", "user-1", map[string]interface{}{"status": false}).Return(nil)

		campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
			{CampaignID: "camp-2"},
		}, nil)

		paused := map[string]interface{}{"status": "PAUSED"}
		mirrored := map[string]interface{}{"status": "PAUSED", "auto_expand": false, "ad_optimizer": false}
		gateway.EXPECT().UpdateCampaign("token-1", "camp-1", paused).
			Return(&metadomain.RequestError{StatusCode: 500})
		gateway.EXPECT().UpdateCampaign("token-1", "camp-2", paused).Return(nil)
		campaignRepo.EXPECT().Update(gomock.Any(), "camp-2", mirrored).Return(nil)

		err := service.UpdateStatus(context.Background(), "user-1", "acc-1", "false")

		require.NoError(t, err)
	})

	t.Run("ligar a conta não mexe nas campanhas", func(t *testing.T) {
		service, accountRepo, _, _ := setup(t)

		accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(account, nil)
		accountRepo.EXPECT().Update(gomock.Any(), "acc-1", "user-1", map[string]interface{}{"status": true}).Return(nil)

		err := service.UpdateStatus(context.Background(), "user-1", "acc-1", true)

		require.NoError(t, err)
	})

	t.Run("status inválido é rejeitado antes de qualquer escrita", func(t *testing.T) {
		service, _, _, _ := setup(t)

		err := service.UpdateStatus(context.Background(), "user-1", "acc-1", "talvez")

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindValidation))
	})
}

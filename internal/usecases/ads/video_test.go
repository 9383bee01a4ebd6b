package ads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func TestUploadVideoAd(t *testing.T) {
	params := domain.UploadVideoAdParams{
		UserID:      "user-1",
		FBAccountID: "acc-1",
		CampaignID:  "camp-1",
		AdName:      "Vídeo de lançamento",
		FileKey:     "uploads/video.mp4",
	}

	t.Run("espera o processamento e cria o anúncio no primeiro conjunto", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.gateway.EXPECT().
			CreateVideo("token-1", "acc-1", "https://bucket.s3.us-east-1.amazonaws.com/uploads/video.mp4", "Vídeo de lançamento").
			Return("video-1", nil)

		// o vídeo fica pronto na terceira consulta
		gomock.InOrder(
			m.gateway.EXPECT().GetVideoStatus("token-1", "video-1").Return("processing", nil),
			m.gateway.EXPECT().GetVideoStatus("token-1", "video-1").Return("processing", nil),
			m.gateway.EXPECT().GetVideoStatus("token-1", "video-1").Return("ready", nil),
		)

		m.gateway.EXPECT().ListAdSets("token-1", "camp-1", []string{"id"}).
			Return([]metadomain.AdSet{{"id": "adset-1"}}, nil)
		m.gateway.EXPECT().CreateCreative("token-1", "acc-1", gomock.Any()).Return("creative-1", nil)
		m.gateway.EXPECT().CreateAd("token-1", "acc-1", gomock.Any()).
			DoAndReturn(func(_, _ string, adParams map[string]interface{}) (string, error) {
				assert.Equal(t, "adset-1", adParams["adset_id"])
				return "ad-1", nil
			})

		// importação do anúncio recém-criado
		expectAccount(m)
		m.gateway.EXPECT().GetAd("token-1", "ad-1", adListFields).Return(&metadomain.Ad{
			ID:              "ad-1",
			Name:            "Vídeo de lançamento",
			EffectiveStatus: "ACTIVE",
			Creative:        metadomain.Creative{ID: "creative-1"},
		}, nil)
		m.gateway.EXPECT().GetCreativePreview("token-1", "creative-1", previewFormat).Return("<iframe/>", nil)
		m.adRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
		}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{{ID: "ad-1", Creative: metadomain.Creative{ID: "creative-1"}}}, nil)
		m.campaignAdRepo.EXPECT().Link(gomock.Any(), "camp-1", "creative-1").Return(nil)

		record, err := service.UploadVideoAd(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, "creative-1", record.AdID)
	})

	t.Run("vídeo que nunca fica pronto esgota as tentativas e devolve erro", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		sleeps := 0
		service.sleep = func() { sleeps++ }

		m.gateway.EXPECT().CreateVideo("token-1", "acc-1", gomock.Any(), gomock.Any()).Return("video-1", nil)
		m.gateway.EXPECT().GetVideoStatus("token-1", "video-1").Return("processing", nil).Times(videoPollAttempts)

		_, err := service.UploadVideoAd(context.Background(), params)

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindRemoteAPI))
		assert.Contains(t, err.Error(), ErrVideoNotReady.Error())
		assert.Equal(t, videoPollAttempts, sleeps)
	})

	t.Run("campanha sem conjuntos é rejeitada depois do processamento", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.gateway.EXPECT().CreateVideo("token-1", "acc-1", gomock.Any(), gomock.Any()).Return("video-1", nil)
		m.gateway.EXPECT().GetVideoStatus("token-1", "video-1").Return("ready", nil)
		m.gateway.EXPECT().ListAdSets("token-1", "camp-1", []string{"id"}).Return(nil, nil)

		_, err := service.UploadVideoAd(context.Background(), params)

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindValidation))
	})
}

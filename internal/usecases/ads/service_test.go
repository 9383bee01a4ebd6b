package ads

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

type adsMocks struct {
	adRepo         *repomocks.MockAdRepository
	campaignAdRepo *repomocks.MockCampaignAdRepository
	campaignRepo   *repomocks.MockCampaignRepository
	accountRepo    *repomocks.MockFBAccountRepository
	gateway        *metamocks.MockClient
}

type stubUploader struct {
	uploadURL string
}

func (u *stubUploader) PresignedUpload(context.Context, string) (string, error) {
	return u.uploadURL, nil
}

func (u *stubUploader) FileURL(key string) string {
	return "https://bucket.s3.us-east-1.amazonaws.com/" + key
}

func newAdsService(t *testing.T) (*Service, *adsMocks) {
	ctrl := gomock.NewController(t)

	m := &adsMocks{
		adRepo:         repomocks.NewMockAdRepository(ctrl),
		campaignAdRepo: repomocks.NewMockCampaignAdRepository(ctrl),
		campaignRepo:   repomocks.NewMockCampaignRepository(ctrl),
		accountRepo:    repomocks.NewMockFBAccountRepository(ctrl),
		gateway:        metamocks.NewMockClient(ctrl),
	}

	service := NewService(m.adRepo, m.campaignAdRepo, m.campaignRepo, m.accountRepo, m.gateway, &stubUploader{})
	service.sleep = func() {}

	return service, m
}

var testAccount = &domain.FBAccount{
	FBAccountID: "acc-1",
	UserID:      "user-1",
	AccessToken: "token-1",
	PageID:      "page-1",
}

func expectAccount(m *adsMocks) {
	m.accountRepo.EXPECT().GetForUser(gomock.Any(), "acc-1", "user-1").Return(testAccount, nil)
}

func TestBuildOwnershipTree(t *testing.T) {
	t.Run("mapeia cada campanha para os criativos que ela contém", func(t *testing.T) {
		service, m := newAdsService(t)

		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
			{CampaignID: "camp-2"},
		}, nil)

		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{
				{ID: "ad-1", Creative: metadomain.Creative{ID: "creative-1"}},
				{ID: "ad-2", Creative: metadomain.Creative{ID: "creative-2"}},
			}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-2", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{
				// o mesmo criativo reutilizado em outra campanha
				{ID: "ad-3", Creative: metadomain.Creative{ID: "creative-1"}},
			}, nil)

		tree, err := service.BuildOwnershipTree(context.Background(), testAccount)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"camp-1", "camp-2"}, tree.Owners("creative-1"))
		assert.ElementsMatch(t, []string{"camp-1"}, tree.Owners("creative-2"))
	})

	t.Run("falha na leitura de uma campanha não derruba a árvore", func(t *testing.T) {
		service, m := newAdsService(t)

		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
			{CampaignID: "camp-2"},
		}, nil)

		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return(nil, &metadomain.RequestError{StatusCode: 500})
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-2", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{
				{ID: "ad-1", Creative: metadomain.Creative{ID: "creative-1"}},
			}, nil)

		tree, err := service.BuildOwnershipTree(context.Background(), testAccount)

		require.NoError(t, err)
		require.Len(t, tree, 2)
		assert.Empty(t, tree["camp-1"])
		assert.ElementsMatch(t, []string{"camp-2"}, tree.Owners("creative-1"))
	})
}

func TestImportAd(t *testing.T) {
	remoteAd := &metadomain.Ad{
		ID:              "ad-77",
		Name:            "Criativo de verão",
		EffectiveStatus: "ACTIVE",
		CreatedTime:     "2026-08-01T10:00:00-0300",
		CampaignID:      "camp-1",
		Creative:        metadomain.Creative{ID: "creative-1"},
	}

	t.Run("grava o registro pelo criativo e vincula a origem e as demais campanhas donas", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.gateway.EXPECT().GetAd("token-1", "ad-77", adListFields).Return(remoteAd, nil)
		m.gateway.EXPECT().
			GetCreativePreview("token-1", "creative-1", previewFormat).
			Return("<iframe/>", nil)

		var saved *domain.Ad
		m.adRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ad *domain.Ad) error {
				saved = ad
				return nil
			})

		// árvore: o criativo roda em duas campanhas, incluindo a origem
		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
			{CampaignID: "camp-2"},
		}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{{ID: "ad-77", Creative: metadomain.Creative{ID: "creative-1"}}}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-2", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{{ID: "ad-90", Creative: metadomain.Creative{ID: "creative-1"}}}, nil)

		// a campanha de origem é vinculada uma única vez
		m.campaignAdRepo.EXPECT().Link(gomock.Any(), "camp-1", "creative-1").Return(nil)
		m.campaignAdRepo.EXPECT().Link(gomock.Any(), "camp-2", "creative-1").Return(nil)

		record, err := service.ImportAd(context.Background(), "user-1", "acc-1", "ad-77")

		require.NoError(t, err)
		require.NotNil(t, saved)
		// a chave canônica é o id do criativo, não o id do anúncio
		assert.Equal(t, "creative-1", record.AdID)
		assert.Equal(t, "Criativo de verão", record.Name)
		assert.True(t, record.Enabled)
		assert.Equal(t, "<iframe/>", record.Preview)
	})

	t.Run("campanha de origem sem outra cópia do criativo ainda recebe o vínculo", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		own := &metadomain.Ad{
			ID:         "ad-77",
			Name:       "Criativo de verão",
			CampaignID: "camp-own",
			Creative:   metadomain.Creative{ID: "creative-1"},
		}

		m.gateway.EXPECT().GetAd("token-1", "ad-77", adListFields).Return(own, nil)
		m.gateway.EXPECT().
			GetCreativePreview("token-1", "creative-1", previewFormat).
			Return("<iframe/>", nil)
		m.adRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		// a árvore não conhece a campanha de origem e nenhuma outra
		// campanha da conta contém o criativo
		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-other"},
		}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-other", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{{ID: "ad-5", Creative: metadomain.Creative{ID: "outro"}}}, nil)

		m.campaignAdRepo.EXPECT().Link(gomock.Any(), "camp-own", "creative-1").Return(nil)

		_, err := service.ImportAd(context.Background(), "user-1", "acc-1", "ad-77")

		require.NoError(t, err)
	})

	t.Run("reimportação regrava o registro com a pré-visualização atual", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.gateway.EXPECT().GetAd("token-1", "ad-77", adListFields).Return(remoteAd, nil)
		m.gateway.EXPECT().
			GetCreativePreview("token-1", "creative-1", previewFormat).
			Return("<iframe v2/>", nil)

		var saved *domain.Ad
		m.adRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ad *domain.Ad) error {
				saved = ad
				return nil
			})

		m.campaignRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]*domain.Campaign{
			{CampaignID: "camp-1"},
		}, nil)
		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{{ID: "ad-77", Creative: metadomain.Creative{ID: "creative-1"}}}, nil)
		m.campaignAdRepo.EXPECT().Link(gomock.Any(), "camp-1", "creative-1").Return(nil)

		_, err := service.ImportAd(context.Background(), "user-1", "acc-1", "ad-77")

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "<iframe v2/>", saved.Preview)
	})
}

func TestRemoveAdFromCampaign(t *testing.T) {
	t.Run("remove as instâncias do criativo e desfaz o vínculo", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.gateway.EXPECT().
			ListCampaignAds("token-1", "camp-1", adListFields, maxAdsPerCampaign).
			Return([]metadomain.Ad{
				{ID: "ad-1", Creative: metadomain.Creative{ID: "creative-1"}},
				{ID: "ad-2", Creative: metadomain.Creative{ID: "outro"}},
				{ID: "ad-3", Creative: metadomain.Creative{ID: "creative-1"}},
			}, nil)

		m.gateway.EXPECT().DeleteAdsBatch("token-1", []string{"ad-1", "ad-3"}).Return(nil, nil)
		m.campaignAdRepo.EXPECT().Unlink(gomock.Any(), "camp-1", "creative-1").Return(nil)

		err := service.RemoveAdFromCampaign(context.Background(), "user-1", "acc-1", "camp-1", "creative-1")

		require.NoError(t, err)
	})
}

func TestUpdateAdStatus(t *testing.T) {
	t.Run("anúncio inexistente devolve erro de não encontrado", func(t *testing.T) {
		service, m := newAdsService(t)
		expectAccount(m)

		m.adRepo.EXPECT().Get(gomock.Any(), "creative-1").Return(nil, nil)

		err := service.UpdateAdStatus(context.Background(), "user-1", "acc-1", "creative-1", true)

		require.Error(t, err)
		assert.True(t, apiErrors.IsKind(err, apiErrors.KindNotFound))
	})
}

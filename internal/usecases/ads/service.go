package ads

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/infrastructure/storage/s3"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

const previewFormat = "DESKTOP_FEED_STANDARD"

// Service expõe as operações de anúncios: importação, listagem e
// sincronização de status com a plataforma
type Service struct {
	adRepo         repository.AdRepository
	campaignAdRepo repository.CampaignAdRepository
	campaignRepo   repository.CampaignRepository
	accountRepo    repository.FBAccountRepository
	gateway        metaclient.Client
	uploader       s3.Uploader

	// sleep é injetável para os testes da espera de processamento de vídeo
	sleep func()
}

// NewService cria o serviço de anúncios
func NewService(
	adRepo repository.AdRepository,
	campaignAdRepo repository.CampaignAdRepository,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.FBAccountRepository,
	gateway metaclient.Client,
	uploader s3.Uploader,
) *Service {
	return &Service{
		adRepo:         adRepo,
		campaignAdRepo: campaignAdRepo,
		campaignRepo:   campaignRepo,
		accountRepo:    accountRepo,
		gateway:        gateway,
		uploader:       uploader,
		sleep:          defaultSleep,
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

// ImportAd importa um anúncio da plataforma para o espelho local. A
// identidade canônica é o criativo: o registro é regravado a cada
// importação e vinculado à campanha de origem e a todas as outras
// campanhas da conta que contêm o criativo.
func (s *Service) ImportAd(ctx context.Context, userID, fbAccountID, adID string) (*domain.Ad, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	remote, err := s.gateway.GetAd(account.AccessToken, adID, adListFields)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao ler anúncio na plataforma: "+metadomain.ReadableError(err), err)
	}
	if remote == nil || remote.Creative.ID == "" {
		return nil, apiErrors.NotFound(ErrAdNotFound.Error())
	}

	creativeID := remote.Creative.ID

	preview, err := s.gateway.GetCreativePreview(account.AccessToken, creativeID, previewFormat)
	if err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("creative_id", creativeID).
			Warn("Falha ao buscar pré-visualização do criativo")
	}

	// a regravação é intencional: reimportar é o caminho de reparo
	// quando a pré-visualização falhou em uma importação anterior
	record := &domain.Ad{
		AdID:        creativeID,
		FBAccountID: account.FBAccountID,
		Name:        remote.Name,
		Enabled:     remote.EffectiveStatus == "ACTIVE",
		CreatedAt:   remote.CreatedTime,
		Preview:     preview,
	}

	if err := s.adRepo.Save(ctx, record); err != nil {
		return nil, apiErrors.Storage("falha ao gravar anúncio", err)
	}

	// o vínculo com a campanha de origem é gravado antes da varredura
	// da árvore: ele existe mesmo quando nenhuma outra campanha da
	// conta contém o criativo
	linked := map[string]bool{}
	if remote.CampaignID != "" {
		if err := s.campaignAdRepo.Link(ctx, remote.CampaignID, creativeID); err != nil {
			return nil, apiErrors.Storage("falha ao vincular anúncio à campanha", err)
		}
		linked[remote.CampaignID] = true
	}

	tree, err := s.BuildOwnershipTree(ctx, account)
	if err != nil {
		return nil, apiErrors.Storage("falha ao montar árvore de campanhas", err)
	}

	for _, campaignID := range tree.Owners(creativeID) {
		if linked[campaignID] {
			continue
		}
		if err := s.campaignAdRepo.Link(ctx, campaignID, creativeID); err != nil {
			return nil, apiErrors.Storage("falha ao vincular anúncio à campanha", err)
		}
	}

	return record, nil
}

// AccountAds devolve os anúncios importados da conta com as campanhas
// onde cada um roda
func (s *Service) AccountAds(ctx context.Context, userID, fbAccountID string) ([]domain.AccountAd, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.adRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar anúncios", err)
	}

	campaignNames := map[string]string{}
	campaigns, err := s.campaignRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar campanhas", err)
	}
	for _, campaign := range campaigns {
		campaignNames[campaign.CampaignID] = campaign.Name
	}

	ads := make([]domain.AccountAd, 0, len(records))
	for _, record := range records {
		links, err := s.campaignAdRepo.ListByAd(ctx, record.AdID)
		if err != nil {
			return nil, apiErrors.Storage("falha ao listar vínculos do anúncio", err)
		}

		refs := make([]domain.AdCampaignRef, 0, len(links))
		for _, link := range links {
			refs = append(refs, domain.AdCampaignRef{
				CampaignID:   link.CampaignID,
				CampaignName: campaignNames[link.CampaignID],
			})
		}

		ads = append(ads, domain.AccountAd{
			ID:        record.AdID,
			Name:      record.Name,
			Status:    record.Enabled,
			CreatedAt: record.CreatedAt,
			Preview:   record.Preview,
			Campaigns: refs,
		})
	}

	return ads, nil
}

// AdNames devolve os nomes dos anúncios importados, usados pelo painel
// para validar duplicidade antes de um envio
func (s *Service) AdNames(ctx context.Context, userID, fbAccountID string) ([]string, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.adRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		return nil, apiErrors.Storage("falha ao listar anúncios", err)
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}

	return names, nil
}

// UpdateAdStatus liga ou desliga o anúncio no espelho local
func (s *Service) UpdateAdStatus(ctx context.Context, userID, fbAccountID, adID string, enabled bool) error {
	if _, err := s.account(ctx, fbAccountID, userID); err != nil {
		return err
	}

	record, err := s.adRepo.Get(ctx, adID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar anúncio", err)
	}
	if record == nil {
		return apiErrors.NotFound(ErrAdNotFound.Error())
	}

	return s.adRepo.Update(ctx, adID, map[string]interface{}{"ad_enabled": enabled})
}

// SyncCampaignAdStatus liga ou desliga, na plataforma, as instâncias do
// criativo dentro de uma campanha
func (s *Service) SyncCampaignAdStatus(ctx context.Context, userID, fbAccountID, campaignID, creativeID string, enabled bool) error {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return err
	}

	instances, err := s.campaignInstances(account, campaignID, creativeID)
	if err != nil {
		return err
	}

	status := "PAUSED"
	if enabled {
		status = "ACTIVE"
	}

	for _, instance := range instances {
		if err := s.gateway.UpdateAd(account.AccessToken, instance.ID, map[string]interface{}{"status": status}); err != nil {
			return apiErrors.RemoteAPI("falha ao atualizar anúncio na plataforma: "+metadomain.ReadableError(err), err)
		}
	}

	return nil
}

// RemoveAdFromCampaign remove as instâncias do criativo na campanha e
// desfaz o vínculo local
func (s *Service) RemoveAdFromCampaign(ctx context.Context, userID, fbAccountID, campaignID, creativeID string) error {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return err
	}

	instances, err := s.campaignInstances(account, campaignID, creativeID)
	if err != nil {
		return err
	}

	if len(instances) > 0 {
		ids := make([]string, 0, len(instances))
		for _, instance := range instances {
			ids = append(ids, instance.ID)
		}

		if _, err := s.gateway.DeleteAdsBatch(account.AccessToken, ids); err != nil {
			return apiErrors.RemoteAPI("falha ao remover anúncios na plataforma", err)
		}
	}

	if err := s.campaignAdRepo.Unlink(ctx, campaignID, creativeID); err != nil {
		return apiErrors.Storage("falha ao desfazer vínculo do anúncio", err)
	}

	return nil
}

// campaignInstances lista os anúncios da campanha que usam o criativo
func (s *Service) campaignInstances(account *domain.FBAccount, campaignID, creativeID string) ([]metadomain.Ad, error) {
	adsList, err := s.gateway.ListCampaignAds(account.AccessToken, campaignID, adListFields, maxAdsPerCampaign)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar anúncios da campanha", err)
	}

	instances := make([]metadomain.Ad, 0)
	for _, ad := range adsList {
		if ad.Creative.ID == creativeID {
			instances = append(instances, ad)
		}
	}

	return instances, nil
}

// CreativePreview devolve o iframe de pré-visualização de um criativo
func (s *Service) CreativePreview(ctx context.Context, userID, fbAccountID, creativeID string) (string, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return "", err
	}

	preview, err := s.gateway.GetCreativePreview(account.AccessToken, creativeID, previewFormat)
	if err != nil {
		return "", apiErrors.RemoteAPI("falha ao buscar pré-visualização", err)
	}

	return preview, nil
}

// PresignedUpload emite a URL assinada para o painel enviar um arquivo
// de mídia antes da criação do anúncio. A chave é gerada no servidor
// para que envios com o mesmo nome não colidam no bucket.
func (s *Service) PresignedUpload(ctx context.Context, userID, fbAccountID, fileName string) (*domain.UploadTicket, error) {
	if _, err := s.account(ctx, fbAccountID, userID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, apiErrors.Internal("falha ao gerar chave de envio", err)
	}

	fileKey := "uploads/" + id + "-" + fileName

	uploadURL, err := s.uploader.PresignedUpload(ctx, fileKey)
	if err != nil {
		return nil, apiErrors.Internal("falha ao assinar URL de envio", err)
	}

	return &domain.UploadTicket{FileKey: fileKey, UploadURL: uploadURL}, nil
}

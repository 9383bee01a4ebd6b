package ads

import (
	"context"
	"time"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

const (
	// videoPollAttempts e videoPollInterval controlam a espera pelo
	// processamento do vídeo na plataforma
	videoPollAttempts = 60
	videoStatusReady  = "ready"
)

func defaultSleep() {
	time.Sleep(1 * time.Second)
}

// UploadVideoAd cria um anúncio de vídeo: envia o vídeo a partir do
// arquivo já colocado no bucket, espera o processamento, cria o
// criativo e o anúncio no primeiro conjunto da campanha, e importa o
// resultado para o espelho local.
func (s *Service) UploadVideoAd(ctx context.Context, params domain.UploadVideoAdParams) (*domain.Ad, error) {
	account, err := s.account(ctx, params.FBAccountID, params.UserID)
	if err != nil {
		return nil, err
	}

	fileURL := s.uploader.FileURL(params.FileKey)

	videoID, err := s.gateway.CreateVideo(account.AccessToken, account.FBAccountID, fileURL, params.AdName)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao enviar vídeo: "+metadomain.ReadableError(err), err)
	}

	if err := s.waitVideoReady(ctx, account.AccessToken, videoID); err != nil {
		return nil, err
	}

	adSets, err := s.gateway.ListAdSets(account.AccessToken, params.CampaignID, []string{"id"})
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar conjuntos da campanha", err)
	}
	if len(adSets) == 0 {
		return nil, apiErrors.Validation(ErrCampaignWithoutAdSets.Error())
	}

	creativeID, err := s.gateway.CreateCreative(account.AccessToken, account.FBAccountID, map[string]interface{}{
		"name": params.AdName,
		"object_story_spec": map[string]interface{}{
			"page_id": account.PageID,
			"video_data": map[string]interface{}{
				"video_id": videoID,
			},
		},
	})
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao criar criativo: "+metadomain.ReadableError(err), err)
	}

	adID, err := s.gateway.CreateAd(account.AccessToken, account.FBAccountID, map[string]interface{}{
		"name":     params.AdName,
		"adset_id": adSets[0].ID(),
		"creative": map[string]interface{}{"creative_id": creativeID},
		"status":   "ACTIVE",
	})
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao criar anúncio: "+metadomain.ReadableError(err), err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":       adID,
		"creative_id": creativeID,
		"campaign_id": params.CampaignID,
	}).Info("Anúncio de vídeo criado")

	return s.ImportAd(ctx, params.UserID, params.FBAccountID, adID)
}

// waitVideoReady consulta o status do vídeo até ficar pronto, com um
// número fixo de tentativas
func (s *Service) waitVideoReady(ctx context.Context, token, videoID string) error {
	for attempt := 0; attempt < videoPollAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return apiErrors.Internal("espera de vídeo cancelada", err)
		}

		status, err := s.gateway.GetVideoStatus(token, videoID)
		if err != nil {
			return apiErrors.RemoteAPI("falha ao consultar status do vídeo", err)
		}

		if status == videoStatusReady {
			return nil
		}

		s.sleep()
	}

	return apiErrors.RemoteAPI(ErrVideoNotReady.Error(), ErrVideoNotReady)
}

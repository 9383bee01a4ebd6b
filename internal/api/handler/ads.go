package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/tasks"
	"github.com/vfg2006/ads-manager-api/internal/usecases/ads"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func ListAccountAds(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		accountAds, err := service.AccountAds(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, accountAds)
	})
}

func ListAdNames(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		names, err := service.AdNames(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, names)
	})
}

func ImportAd(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			AdID string `json:"ad_id"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}
		if body.AdID == "" {
			respondError(w, r, apiErrors.MissingField("ad_id"))
			return
		}

		record, err := service.ImportAd(r.Context(), id.UserID, param(r, "accountID"), body.AdID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusCreated, record, "Anúncio importado")
	})
}

func UpdateAdStatus(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		err = service.UpdateAdStatus(r.Context(), id.UserID, param(r, "accountID"), param(r, "adID"), body.Enabled)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Anúncio atualizado")
	})
}

func SyncCampaignAdStatus(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		err = service.SyncCampaignAdStatus(
			r.Context(), id.UserID, param(r, "accountID"),
			param(r, "campaignID"), param(r, "adID"), body.Enabled,
		)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Status sincronizado na plataforma")
	})
}

func RemoveAdFromCampaign(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		err = service.RemoveAdFromCampaign(
			r.Context(), id.UserID, param(r, "accountID"),
			param(r, "campaignID"), param(r, "adID"),
		)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Anúncio removido da campanha")
	})
}

func GetCreativePreview(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		preview, err := service.CreativePreview(r.Context(), id.UserID, param(r, "accountID"), param(r, "creativeID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, map[string]string{"preview": preview})
	})
}

func CreateUploadURL(service *ads.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			FileName string `json:"file_name"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}
		if body.FileName == "" {
			respondError(w, r, apiErrors.MissingField("file_name"))
			return
		}

		ticket, err := service.PresignedUpload(r.Context(), id.UserID, param(r, "accountID"), body.FileName)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, ticket)
	})
}

// CreateVideoAd enfileira a criação do anúncio de vídeo: a espera pelo
// processamento do vídeo na plataforma é longa demais para a requisição
func CreateVideoAd(enqueuer *tasks.Enqueuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			CampaignID string `json:"campaign_id"`
			AdName     string `json:"ad_name"`
			FileKey    string `json:"file_key"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}
		if body.CampaignID == "" {
			respondError(w, r, apiErrors.MissingField("campaign_id"))
			return
		}
		if body.FileKey == "" {
			respondError(w, r, apiErrors.MissingField("file_key"))
			return
		}

		taskID, err := enqueuer.Enqueue(r.Context(), domain.TaskUploadVideoAd, map[string]interface{}{
			"user_id":       id.UserID,
			"fb_account_id": param(r, "accountID"),
			"campaign_id":   body.CampaignID,
			"ad_name":       body.AdName,
			"file_key":      body.FileKey,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusAccepted, map[string]string{"task_id": taskID}, "Criação do anúncio enfileirada")
	})
}

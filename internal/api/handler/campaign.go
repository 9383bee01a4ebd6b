package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/usecases/campaign"
)

func ListCampaigns(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, campaigns)
	})
}

func GetCampaign(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		details, err := service.GetCampaign(r.Context(), id.UserID, param(r, "accountID"), param(r, "campaignID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, details)
	})
}

// UpdateCampaign enfileira a atualização e devolve o id da tarefa. O
// painel acompanha o andamento em GET /v1/tasks/:taskID.
func UpdateCampaign(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var fields map[string]interface{}
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, r, err)
			return
		}

		taskID, err := service.RequestUpdate(r.Context(), id.UserID, param(r, "accountID"), param(r, "campaignID"), fields)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusAccepted, map[string]string{"task_id": taskID}, "Atualização enfileirada")
	})
}

func DeleteCampaign(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		err = service.DeleteCampaign(r.Context(), id.UserID, param(r, "accountID"), param(r, "campaignID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusOK, nil, "Campanha removida")
	})
}

func ListAccountEvents(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		events, err := service.AccountEvents(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, events)
	})
}

func ListPixels(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		pixels, err := service.ListPixels(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, pixels)
	})
}

func ListMobileApps(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		apps, err := service.ListMobileApps(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, apps)
	})
}

func ListCustomAudiences(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		audiences, err := service.ListCustomAudiences(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, audiences)
	})
}

func ListPages(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		pages, err := service.ListPages(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, pages)
	})
}

func CreateLookalikeAudience(service *campaign.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var body struct {
			SourceAudienceID string  `json:"source_audience_id"`
			Country          string  `json:"country"`
			Ratio            float64 `json:"ratio"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, r, err)
			return
		}

		audienceID, err := service.CreateLookalikeAudience(
			r.Context(), id.UserID, param(r, "accountID"),
			body.SourceAudienceID, body.Country, body.Ratio,
		)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respond(w, http.StatusCreated, map[string]string{"audience_id": audienceID}, "Público criado")
	})
}

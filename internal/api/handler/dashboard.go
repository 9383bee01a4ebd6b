package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
)

func GetDashboard(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		info, err := service.Dashboard(r.Context(), id.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, info)
	})
}

func GetAccountInsights(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		insights, err := service.AccountInsights(r.Context(), id.UserID, param(r, "accountID"), insightsFilter(r))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, insights)
	})
}

func GetCampaignInsights(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		insights, err := service.CampaignInsights(
			r.Context(), id.UserID, param(r, "accountID"),
			param(r, "campaignID"), insightsFilter(r),
		)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, insights)
	})
}

func GetChangelog(service *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		entries, err := service.Changelog(r.Context(), id.UserID, param(r, "accountID"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondData(w, entries)
	})
}

func insightsFilter(r *http.Request) insighting.InsightsFilter {
	query := r.URL.Query()

	return insighting.InsightsFilter{
		DatePreset: query.Get("date_preset"),
		Since:      query.Get("since"),
		Until:      query.Get("until"),
	}
}

package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/ads-manager-api/internal/tasks"
	"github.com/vfg2006/ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/ads-manager-api/internal/usecases/ads"
	"github.com/vfg2006/ads-manager-api/internal/usecases/billing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(service *account.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/v1/accounts/:accountID/status",
			Method:  http.MethodPut,
			Handler: UpdateAccountStatus(service),
		},
		{
			Path:    "/v1/accounts/:accountID/conversion-event",
			Method:  http.MethodPut,
			Handler: UpdateAccountConversionEvent(service),
		},
	}
}

func Campaigns(service *campaign.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:accountID/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
		{
			Path:    "/v1/accounts/:accountID/events",
			Method:  http.MethodGet,
			Handler: ListAccountEvents(service),
		},
		{
			Path:    "/v1/accounts/:accountID/pixels",
			Method:  http.MethodGet,
			Handler: ListPixels(service),
		},
		{
			Path:    "/v1/accounts/:accountID/mobile-apps",
			Method:  http.MethodGet,
			Handler: ListMobileApps(service),
		},
		{
			Path:    "/v1/accounts/:accountID/custom-audiences",
			Method:  http.MethodGet,
			Handler: ListCustomAudiences(service),
		},
		{
			Path:    "/v1/accounts/:accountID/pages",
			Method:  http.MethodGet,
			Handler: ListPages(service),
		},
		{
			Path:    "/v1/accounts/:accountID/lookalike-audiences",
			Method:  http.MethodPost,
			Handler: CreateLookalikeAudience(service),
		},
	}
}

func Ads(service *ads.Service, enqueuer *tasks.Enqueuer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:accountID/ads",
			Method:  http.MethodGet,
			Handler: ListAccountAds(service),
		},
		{
			Path:    "/v1/accounts/:accountID/ads/names",
			Method:  http.MethodGet,
			Handler: ListAdNames(service),
		},
		{
			Path:    "/v1/accounts/:accountID/ads/import",
			Method:  http.MethodPost,
			Handler: ImportAd(service),
		},
		{
			Path:    "/v1/accounts/:accountID/ads/video",
			Method:  http.MethodPost,
			Handler: CreateVideoAd(enqueuer),
		},
		{
			Path:    "/v1/accounts/:accountID/ads/:adID/status",
			Method:  http.MethodPut,
			Handler: UpdateAdStatus(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID/ads/:adID/status",
			Method:  http.MethodPut,
			Handler: SyncCampaignAdStatus(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID/ads/:adID",
			Method:  http.MethodDelete,
			Handler: RemoveAdFromCampaign(service),
		},
		{
			Path:    "/v1/accounts/:accountID/creatives/:creativeID/preview",
			Method:  http.MethodGet,
			Handler: GetCreativePreview(service),
		},
		{
			Path:    "/v1/accounts/:accountID/uploads",
			Method:  http.MethodPost,
			Handler: CreateUploadURL(service),
		},
	}
}

func Tasks(taskRepo repository.TaskRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tasks/:taskID",
			Method:  http.MethodGet,
			Handler: GetTask(taskRepo),
		},
	}
}

func Insights(service *insighting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/accounts/:accountID/insights",
			Method:  http.MethodGet,
			Handler: GetAccountInsights(service),
		},
		{
			Path:    "/v1/accounts/:accountID/campaigns/:campaignID/insights",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
		{
			Path:    "/v1/accounts/:accountID/changelog",
			Method:  http.MethodGet,
			Handler: GetChangelog(service),
		},
	}
}

func Billing(service *billing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/billing/plans",
			Method:  http.MethodGet,
			Handler: ListPlans(service),
		},
		{
			Path:    "/v1/billing/subscribe",
			Method:  http.MethodPost,
			Handler: Subscribe(service),
		},
	}
}

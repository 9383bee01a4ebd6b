package ads

import (
	"context"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// adListFields são os campos lidos de cada anúncio ao montar a árvore
var adListFields = []string{"id", "name", "status", "effective_status", "created_time", "campaign_id", "creative"}

// maxAdsPerCampaign limita a leitura de anúncios por campanha
const maxAdsPerCampaign = 100

// BuildOwnershipTree mapeia cada campanha da conta para o conjunto de
// criativos que ela contém. A falha na leitura de uma campanha não
// derruba a árvore: a campanha entra vazia e o problema é registrado.
func (s *Service) BuildOwnershipTree(ctx context.Context, account *domain.FBAccount) (domain.OwnershipTree, error) {
	campaigns, err := s.campaignRepo.ListByAccount(ctx, account.FBAccountID)
	if err != nil {
		return nil, err
	}

	tree := make(domain.OwnershipTree, len(campaigns))
	for _, campaign := range campaigns {
		creatives := make(map[string]struct{})
		tree[campaign.CampaignID] = creatives

		adsList, err := s.gateway.ListCampaignAds(account.AccessToken, campaign.CampaignID, adListFields, maxAdsPerCampaign)
		if err != nil {
			log.ForContext(ctx).WithError(err).
				WithField("campaign_id", campaign.CampaignID).
				Warn("Falha ao listar anúncios da campanha na montagem da árvore")
			continue
		}

		for _, ad := range adsList {
			if ad.Creative.ID == "" {
				continue
			}
			creatives[ad.Creative.ID] = struct{}{}
		}
	}

	return tree, nil
}

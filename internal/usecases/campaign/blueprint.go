package campaign

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// Operações de apoio à montagem de campanhas: os recursos da conta que
// o painel oferece nos formulários

func (s *Service) ListPixels(ctx context.Context, userID, fbAccountID string) ([]metadomain.NamedObject, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	pixels, err := s.gateway.ListPixels(account.AccessToken, account.FBAccountID)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar pixels", err)
	}

	return pixels, nil
}

func (s *Service) ListMobileApps(ctx context.Context, userID, fbAccountID string) ([]metadomain.NamedObject, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	apps, err := s.gateway.ListMobileApps(account.AccessToken, account.FBAccountID)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar aplicativos", err)
	}

	return apps, nil
}

func (s *Service) ListCustomAudiences(ctx context.Context, userID, fbAccountID string) ([]metadomain.NamedObject, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	audiences, err := s.gateway.ListCustomAudiences(account.AccessToken, account.FBAccountID, 500)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar públicos personalizados", err)
	}

	return audiences, nil
}

func (s *Service) ListPages(ctx context.Context, userID, fbAccountID string) ([]metadomain.NamedObject, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return nil, err
	}

	pages, err := s.gateway.ListPages(account.AccessToken)
	if err != nil {
		return nil, apiErrors.RemoteAPI("falha ao listar páginas", err)
	}

	return pages, nil
}

// CreateLookalikeAudience cria um público semelhante a partir de um
// público personalizado existente
func (s *Service) CreateLookalikeAudience(ctx context.Context, userID, fbAccountID, sourceAudienceID, country string, ratio float64) (string, error) {
	account, err := s.account(ctx, fbAccountID, userID)
	if err != nil {
		return "", err
	}

	audienceID, err := s.gateway.CreateLookalikeAudience(account.AccessToken, account.FBAccountID, map[string]interface{}{
		"origin_audience_id": sourceAudienceID,
		"subtype":            "LOOKALIKE",
		"lookalike_spec": map[string]interface{}{
			"type":    "similarity",
			"ratio":   ratio,
			"country": country,
		},
	})
	if err != nil {
		return "", apiErrors.RemoteAPI("falha ao criar público semelhante: "+metadomain.ReadableError(err), err)
	}

	return audienceID, nil
}

package campaign

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

var campaignReadFields = []string{"name", "objective", "status", "effective_status", "daily_budget"}

var adSetReadFields = []string{"id", "name", "targeting", "promoted_object", "optimization_goal"}

// Reconciler aplica uma atualização de campanha nos três recursos
// envolvidos: o registro local, a campanha remota e os conjuntos de
// anúncios remotos. Uma falha em qualquer etapa reverte as etapas já
// aplicadas, em ordem inversa, reaplicando o estado original capturado
// antes da primeira escrita.
type Reconciler struct {
	campaignRepo repository.CampaignRepository
	accountRepo  repository.FBAccountRepository
	gateway      metaclient.Client
}

// NewReconciler cria o reconciliador de atualizações
func NewReconciler(
	campaignRepo repository.CampaignRepository,
	accountRepo repository.FBAccountRepository,
	gateway metaclient.Client,
) *Reconciler {
	return &Reconciler{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		gateway:      gateway,
	}
}

// step é uma etapa da atualização com sua compensação. A compensação é
// de melhor esforço: falhas são registradas e não interrompem a reversão.
type step struct {
	name       string
	apply      func() error
	compensate func()
}

// UpdateCampaign executa a atualização completa. Os campos chegam como
// o diff plano do painel e são traduzidos para cada recurso.
func (r *Reconciler) UpdateCampaign(ctx context.Context, userID, fbAccountID, campaignID string, fields map[string]interface{}) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":   campaignID,
		"fb_account_id": fbAccountID,
	})

	account, err := r.accountRepo.GetForUser(ctx, fbAccountID, userID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar conta de anúncios", err)
	}
	if account == nil {
		return apiErrors.NotFound(ErrAccountNotFound.Error())
	}
	token := account.AccessToken

	// captura do estado original, antes de qualquer escrita
	originalItem, err := r.campaignRepo.GetItem(ctx, campaignID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar campanha", err)
	}
	if originalItem == nil {
		return apiErrors.NotFound(ErrCampaignNotFound.Error())
	}

	originalCampaign, err := r.gateway.GetCampaign(token, campaignID, campaignReadFields)
	if err != nil {
		return apiErrors.RemoteAPI("falha ao ler campanha na plataforma", err)
	}

	adSets, err := r.gateway.ListAdSets(token, campaignID, adSetReadFields)
	if err != nil {
		return apiErrors.RemoteAPI("falha ao listar conjuntos de anúncios", err)
	}

	originalAdSets := make([]metadomain.AdSet, 0, len(adSets))
	for _, adSet := range adSets {
		originalAdSets = append(originalAdSets, adSet.Clone())
	}

	template := map[string]interface{}{}
	if len(adSets) > 0 {
		template = adSets[0].PromotedObject()
	}

	cs, err := buildChangeSets(fields, account, template, func(conversionID string) (string, error) {
		return r.gateway.GetCustomConversionRule(token, conversionID)
	})
	if err != nil {
		return apiErrors.Validation(err.Error())
	}

	steps := r.buildSteps(ctx, logger, token, campaignID, originalItem, originalCampaign, adSets, originalAdSets, cs)

	for i, s := range steps {
		if err := s.apply(); err != nil {
			logger.WithError(err).Errorf("Falha na etapa %s, revertendo alterações aplicadas", s.name)

			// a própria etapa que falhou também é compensada: uma
			// escrita em lote pode ter aplicado parte dos conjuntos
			for j := i; j >= 0; j-- {
				steps[j].compensate()
			}

			return err
		}
	}

	logger.Info("Atualização de campanha aplicada")

	return nil
}

func (r *Reconciler) buildSteps(
	ctx context.Context,
	logger log.Logger,
	token, campaignID string,
	originalItem kvstore.Item,
	originalCampaign *metadomain.Campaign,
	adSets, originalAdSets []metadomain.AdSet,
	cs *ChangeSet,
) []step {
	steps := make([]step, 0, 3)

	if cs.HasDBChanges() {
		steps = append(steps, step{
			name: "registro local",
			apply: func() error {
				if err := r.applyDBState(ctx, campaignID, cs); err != nil {
					return apiErrors.Storage("falha ao atualizar o registro da campanha", err)
				}
				return nil
			},
			compensate: func() {
				if err := r.revertDBState(ctx, campaignID, originalItem, cs); err != nil {
					logger.WithError(err).Error("Falha ao reverter o registro da campanha")
				}
			},
		})
	}

	if len(cs.RemoteCampaign) > 0 {
		steps = append(steps, step{
			name: "campanha remota",
			apply: func() error {
				if err := r.gateway.UpdateCampaign(token, campaignID, cs.RemoteCampaign); err != nil {
					return apiErrors.RemoteAPI("falha ao atualizar a campanha na plataforma: "+metadomain.ReadableError(err), err)
				}
				return nil
			},
			compensate: func() {
				if err := r.gateway.UpdateCampaign(token, campaignID, originalCampaign.Export()); err != nil {
					logger.WithError(err).Error("Falha ao reverter a campanha na plataforma")
				}
			},
		})
	}

	if cs.HasAdSetChanges() && len(adSets) > 0 {
		steps = append(steps, step{
			name: "conjuntos de anúncios",
			apply: func() error {
				updates := make([]metaclient.AdSetUpdate, 0, len(adSets))
				for _, adSet := range adSets {
					updates = append(updates, metaclient.AdSetUpdate{
						ID:     adSet.ID(),
						Params: adSetParams(adSet.Targeting(), cs),
					})
				}

				if _, err := r.gateway.UpdateAdSetsBatch(token, updates, true); err != nil {
					return apiErrors.RemoteAPI("falha ao atualizar os conjuntos de anúncios: "+metadomain.ReadableError(err), err)
				}
				return nil
			},
			compensate: func() {
				reverts := make([]metaclient.AdSetUpdate, 0, len(originalAdSets))
				for _, adSet := range originalAdSets {
					params := map[string]interface{}{"targeting": adSet.Targeting()}
					if promoted := adSet.PromotedObject(); len(promoted) > 0 {
						params["promoted_object"] = promoted
					}
					reverts = append(reverts, metaclient.AdSetUpdate{ID: adSet.ID(), Params: params})
				}

				if _, err := r.gateway.UpdateAdSetsBatch(token, reverts, false); err != nil {
					logger.WithError(err).Error("Falha ao reverter os conjuntos de anúncios")
				}
			},
		})
	}

	return steps
}

// applyDBState grava as mudanças locais. Na aplicação nenhum atributo
// é removido, apenas sobrescrito.
func (r *Reconciler) applyDBState(ctx context.Context, campaignID string, cs *ChangeSet) error {
	return r.updateDBState(ctx, campaignID, cs.DBCampaign, cs.DBExpansion, cs.DBOptimization, false)
}

// revertDBState reaplica os valores originais de todos os campos
// alterados. Atributos que não existiam antes são removidos.
func (r *Reconciler) revertDBState(ctx context.Context, campaignID string, original kvstore.Item, cs *ChangeSet) error {
	return r.updateDBState(ctx, campaignID,
		originalValues(cs.DBCampaign, original),
		originalValues(cs.DBExpansion, original),
		originalValues(cs.DBOptimization, original),
		true,
	)
}

func (r *Reconciler) updateDBState(ctx context.Context, campaignID string, campaignState, expansion, optimization map[string]interface{}, canDelete bool) error {
	for _, state := range []map[string]interface{}{campaignState, expansion, optimization} {
		if len(state) == 0 {
			continue
		}
		if !canDelete {
			state = withoutNilValues(state)
			if len(state) == 0 {
				continue
			}
		}
		if err := r.campaignRepo.Update(ctx, campaignID, state); err != nil {
			return err
		}
	}

	return nil
}

// originalValues monta o estado de reversão dos campos alterados. Um
// campo ausente no original vira nil, que remove o atributo.
func originalValues(changed map[string]interface{}, original kvstore.Item) map[string]interface{} {
	reverted := make(map[string]interface{}, len(changed))
	for key := range changed {
		if value, ok := original[key]; ok {
			reverted[key] = value
		} else {
			reverted[key] = nil
		}
	}
	return reverted
}

func withoutNilValues(state map[string]interface{}) map[string]interface{} {
	filtered := make(map[string]interface{}, len(state))
	for key, value := range state {
		if value != nil {
			filtered[key] = value
		}
	}
	return filtered
}

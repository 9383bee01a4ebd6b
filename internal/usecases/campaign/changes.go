package campaign

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// ChangeSet é a tradução do diff plano enviado pelo painel para os três
// destinos da atualização: o registro local, a campanha remota e os
// conjuntos de anúncios remotos
type ChangeSet struct {
	DBCampaign     map[string]interface{}
	DBExpansion    map[string]interface{}
	DBOptimization map[string]interface{}
	RemoteCampaign map[string]interface{}
	Targeting      map[string]interface{}
	PromotedObject map[string]interface{}
}

// HasDBChanges indica se há algo para gravar no registro local
func (c *ChangeSet) HasDBChanges() bool {
	return len(c.DBCampaign) > 0 || len(c.DBExpansion) > 0 || len(c.DBOptimization) > 0
}

// HasAdSetChanges indica se há algo para aplicar nos conjuntos de anúncios
func (c *ChangeSet) HasAdSetChanges() bool {
	return len(c.Targeting) > 0 || len(c.PromotedObject) > 0
}

// ruleResolver busca a regra de uma conversão personalizada na plataforma
type ruleResolver func(conversionID string) (string, error)

// buildChangeSets traduz os campos do painel. O template é o objeto
// promovido do primeiro conjunto da campanha, usado como base para
// recompor o objeto promovido quando o evento de otimização muda.
func buildChangeSets(
	fields map[string]interface{},
	account *domain.FBAccount,
	template map[string]interface{},
	resolveRule ruleResolver,
) (*ChangeSet, error) {
	cs := &ChangeSet{
		DBCampaign:     map[string]interface{}{},
		DBExpansion:    map[string]interface{}{},
		DBOptimization: map[string]interface{}{},
		RemoteCampaign: map[string]interface{}{},
		Targeting:      map[string]interface{}{},
	}

	for key, value := range fields {
		switch key {
		case "campaign_name":
			cs.DBCampaign["campaign_name"] = value
			cs.RemoteCampaign["name"] = value

		case "campaign_type":
			cs.DBCampaign["campaign_type"] = value

		case "campaign_objective":
			cs.RemoteCampaign["objective"] = value

		case "status":
			cs.DBCampaign["status"] = value
			cs.RemoteCampaign["status"] = value

		case "daily_budget":
			budget, err := numberFrom(value)
			if err != nil {
				return nil, errors.Wrap(err, "daily_budget inválido")
			}
			cs.DBCampaign["budget"] = budget.InexactFloat64()
			// a plataforma recebe o orçamento em centavos
			cs.RemoteCampaign["daily_budget"] = budget.Mul(decimal.NewFromInt(100)).IntPart()

		case "cpa_goal":
			// o valor é gravado como chega, sem reescalonamento
			goal, err := numberFrom(value)
			if err != nil {
				return nil, errors.Wrap(err, "cpa_goal inválido")
			}
			cs.DBCampaign["cpa_goal"] = goal.InexactFloat64()

		case "optimization_event":
			event, _ := domain.ParseConversionEvent(value)
			if event.IsZero() {
				return nil, errors.New("optimization_event inválido")
			}
			cs.DBCampaign["conversion_event"] = map[string]interface{}{
				"name": event.Name,
				"kind": string(event.Kind),
			}

			promoted, err := buildPromotedObject(event, account, template, resolveRule)
			if err != nil {
				return nil, err
			}
			cs.PromotedObject = promoted

		case "age_min":
			cs.Targeting["age_min"] = value
		case "age_max":
			cs.Targeting["age_max"] = value
		case "gender":
			cs.Targeting["genders"] = genderList(value)
		case "country":
			cs.Targeting["geo_locations"] = map[string]interface{}{
				"countries": []interface{}{value},
			}
		case "exclusions", "exclusions_added", "exclusions_removed":
			// públicos excluídos substituem a lista inteira, nunca
			// mesclam: as chaves de delta apenas disparam a reescrita
			// a partir da lista completa enviada em exclusions
			cs.Targeting["excluded_custom_audiences"] = exclusionsList(fields)

		case "auto_expansion_status":
			cs.DBCampaign["auto_expand"] = value
			cs.DBExpansion["expansion_enabled"] = value
		case "auto_expansion_level":
			cs.DBExpansion["exp_number_of_ad_sets"] = value
		case "naming_convention":
			cs.DBExpansion["exp_adset_name_template"] = value

		case "ad_optimization_status":
			cs.DBCampaign["ad_optimizer"] = value
			cs.DBOptimization["optimization_enabled"] = value
		case "ad_optimization_level":
			cs.DBOptimization["opt_number_of_ads"] = value

		default:
			log.L.WithField("field", key).Warn("Campo de atualização desconhecido ignorado")
		}
	}

	if !cs.HasDBChanges() && len(cs.RemoteCampaign) == 0 && !cs.HasAdSetChanges() {
		return nil, ErrNothingToUpdate
	}

	return cs, nil
}

// buildPromotedObject recompõe o objeto promovido dos conjuntos a
// partir do novo evento de otimização. O template vem do primeiro
// conjunto da campanha: assume-se que todos compartilham a mesma base.
func buildPromotedObject(
	event domain.ConversionEvent,
	account *domain.FBAccount,
	template map[string]interface{},
	resolveRule ruleResolver,
) (map[string]interface{}, error) {
	promoted := copyMap(template)

	if len(promoted) == 0 {
		log.L.Warn("Conjunto sem objeto promovido, montando a partir do pixel da conta")
		if account.PixelID != "" {
			promoted["pixel_id"] = account.PixelID
		}
	}

	switch event.Kind {
	case domain.ConversionEventCustomConversion:
		rule, err := resolveRule(event.Name)
		if err != nil {
			return nil, errors.Wrap(err, "falha ao buscar regra da conversão personalizada")
		}
		promoted["custom_event_type"] = "OTHER"
		promoted["pixel_rule"] = rule
	case domain.ConversionEventCustomEvent:
		// eventos personalizados viram OTHER com a regra de igualdade
		// sobre o nome do evento disparado pelo pixel
		promoted["custom_event_type"] = "OTHER"
		promoted["pixel_rule"] = map[string]interface{}{
			"event": map[string]interface{}{"eq": event.Name},
		}
	default:
		promoted["custom_event_type"] = event.Name
		delete(promoted, "pixel_rule")
	}

	return promoted, nil
}

// adSetParams monta a escrita de um conjunto: a segmentação nova é
// mesclada em profundidade sobre a existente, exceto os públicos
// excluídos, e o objeto promovido substitui o atual por inteiro
func adSetParams(targeting map[string]interface{}, cs *ChangeSet) map[string]interface{} {
	params := map[string]interface{}{}

	if len(cs.Targeting) > 0 {
		params["targeting"] = deepMergeExcept(targeting, cs.Targeting, map[string]bool{
			"excluded_custom_audiences": true,
		})
	}

	if len(cs.PromotedObject) > 0 {
		params["promoted_object"] = cs.PromotedObject
	}

	return params
}

// deepMergeExcept mescla overlay sobre base recursivamente. As chaves
// em replaceKeys substituem o valor inteiro em vez de mesclar.
func deepMergeExcept(base, overlay map[string]interface{}, replaceKeys map[string]bool) map[string]interface{} {
	merged := copyMap(base)

	for key, value := range overlay {
		overlayMap, overlayIsMap := value.(map[string]interface{})
		baseMap, baseIsMap := merged[key].(map[string]interface{})

		if overlayIsMap && baseIsMap && !replaceKeys[key] {
			merged[key] = deepMergeExcept(baseMap, overlayMap, replaceKeys)
			continue
		}

		merged[key] = value
	}

	return merged
}

func copyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

// exclusionsList devolve a lista completa de públicos excluídos do
// payload. Sem a chave exclusions a lista resultante é vazia.
func exclusionsList(fields map[string]interface{}) []interface{} {
	if list, ok := fields["exclusions"].([]interface{}); ok {
		return list
	}
	return []interface{}{}
}

func genderList(value interface{}) []interface{} {
	if list, ok := value.([]interface{}); ok {
		return list
	}
	return []interface{}{value}
}

func numberFrom(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, errors.Errorf("valor numérico inválido: %v", value)
	}
}

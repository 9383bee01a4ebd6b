package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionEventKind identifica a origem do evento de conversão
type ConversionEventKind string

const (
	ConversionEventDefault          ConversionEventKind = "default"
	ConversionEventCustomConversion ConversionEventKind = "custom_conversion"
	ConversionEventCustomEvent      ConversionEventKind = "custom_event"
)

// ConversionEvent é o descritor de evento de otimização de uma campanha.
// Sempre persistido como par {name, kind}, nunca como a string
// "{NAME,kind}" gerada por versões antigas do sistema.
type ConversionEvent struct {
	Name string              `json:"name" mapstructure:"name"`
	Kind ConversionEventKind `json:"kind" mapstructure:"kind"`
}

func (e ConversionEvent) IsZero() bool {
	return e.Name == ""
}

// ParseConversionEvent aceita os formatos encontrados no banco e nas
// requisições: o par {name, kind}, a lista [name, kind], uma string
// simples e a string legada com chaves. O segundo retorno indica se o
// valor estava no formato legado e precisa ser regravado.
func ParseConversionEvent(raw interface{}) (ConversionEvent, bool) {
	switch v := raw.(type) {
	case ConversionEvent:
		return v, false
	case map[string]interface{}:
		event := ConversionEvent{Kind: ConversionEventDefault}
		if name, ok := v["name"].(string); ok {
			event.Name = name
		}
		if kind, ok := v["kind"].(string); ok && kind != "" {
			event.Kind = ConversionEventKind(kind)
		}
		return event, false
	case []interface{}:
		event := ConversionEvent{Kind: ConversionEventDefault}
		if len(v) > 0 {
			if name, ok := v[0].(string); ok {
				event.Name = name
			}
		}
		if len(v) > 1 {
			if kind, ok := v[1].(string); ok && kind != "" {
				event.Kind = ConversionEventKind(kind)
			}
		}
		return event, false
	case string:
		if strings.Contains(v, "{") && strings.Contains(v, "}") {
			return ConversionEvent{Name: repairLegacyTuple(v), Kind: ConversionEventDefault}, true
		}
		return ConversionEvent{Name: v, Kind: ConversionEventDefault}, false
	default:
		return ConversionEvent{}, false
	}
}

// repairLegacyTuple extrai o nome do evento da string legada "{NAME,kind}"
func repairLegacyTuple(value string) string {
	value = strings.ReplaceAll(value, "{", "")
	value = strings.ReplaceAll(value, "}", "")
	return strings.Split(value, ",")[0]
}

// Campaign é o espelho local de uma campanha da plataforma de anúncios
type Campaign struct {
	CampaignID       string          `json:"campaign_id" mapstructure:"campaign_id"`
	FBAccountID      string          `json:"fb_account_id" mapstructure:"fb_account_id"`
	Name             string          `json:"campaign_name" mapstructure:"campaign_name"`
	CampaignType     string          `json:"campaign_type" mapstructure:"campaign_type"`
	Budget           decimal.Decimal `json:"budget" mapstructure:"-"`
	CPAGoal          decimal.Decimal `json:"cpa_goal" mapstructure:"-"`
	CreatedAt        string          `json:"created_at" mapstructure:"created_at"`
	ConversionEvent  ConversionEvent `json:"conversion_event" mapstructure:"-"`
	Status           string          `json:"status" mapstructure:"status"`
	AutoExpand       bool            `json:"auto_expand" mapstructure:"auto_expand"`
	AdOptimizer      bool            `json:"ad_optimizer" mapstructure:"ad_optimizer"`
	ExpansionEnabled bool            `json:"expansion_enabled" mapstructure:"expansion_enabled"`
	ExpNumberOfSets  int             `json:"exp_number_of_ad_sets" mapstructure:"exp_number_of_ad_sets"`
	ExpNameTemplate  string          `json:"exp_adset_name_template" mapstructure:"exp_adset_name_template"`
	OptEnabled       bool            `json:"optimization_enabled" mapstructure:"optimization_enabled"`
	OptNumberOfAds   int             `json:"opt_number_of_ads" mapstructure:"opt_number_of_ads"`
	InProgress       bool            `json:"in_progress" mapstructure:"in_progress"`

	// ConversionEventLegacy marca registros lidos no formato antigo,
	// que devem ser regravados pelo caminho de leitura da reconciliação
	ConversionEventLegacy bool `json:"-" mapstructure:"-"`
}

// CampaignDetails é a visão da campanha devolvida pela API, combinando o
// registro local com os campos lidos da plataforma
type CampaignDetails struct {
	CampaignID           string            `json:"campaign_id"`
	CampaignName         string            `json:"campaign_name"`
	CampaignType         string            `json:"campaign_type"`
	CampaignStatus       bool              `json:"campaign_status"`
	CampaignObjective    string            `json:"campaign_objective"`
	DailyBudget          decimal.Decimal   `json:"daily_budget"`
	CPAGoal              decimal.Decimal   `json:"cpa_goal"`
	DateCreated          *time.Time        `json:"date_created,omitempty"`
	OptimizationEvent    string            `json:"optimization_event"`
	AgeMin               *int              `json:"age_min,omitempty"`
	AgeMax               *int              `json:"age_max,omitempty"`
	Gender               interface{}       `json:"gender,omitempty"`
	Country              *string           `json:"country,omitempty"`
	Exclusions           []interface{}     `json:"exclusions"`
	AutoExpansionStatus  bool              `json:"auto_expansion_status"`
	AutoExpansionLevel   int               `json:"auto_expansion_level"`
	NamingConvention     string            `json:"naming_convention"`
	AdOptimizationStatus bool              `json:"ad_optimization_status"`
	AdOptimizationLevel  int               `json:"ad_optimization_level"`
	AvailableEvents      []SelectableEvent `json:"account_optimization_events"`
	AdsEnabled           []CampaignAdInfo  `json:"ads_enabled"`
	InProgress           bool              `json:"in_progress"`
}

// CampaignSummary é a linha da listagem de campanhas da conta
type CampaignSummary struct {
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	CampaignType string          `json:"campaign_type"`
	Status       bool            `json:"status"`
	DailyBudget  decimal.Decimal `json:"daily_budget"`
	CreatedAt    string          `json:"created_at"`
	InProgress   bool            `json:"in_progress"`
}

// SelectableEvent é um evento de otimização que o usuário pode escolher
type SelectableEvent struct {
	Label string          `json:"label"`
	Event ConversionEvent `json:"event"`
}

// CampaignAdInfo resume um anúncio na listagem de uma campanha
type CampaignAdInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InCampaign bool   `json:"in_campaign"`
	Preview    string `json:"preview"`
}

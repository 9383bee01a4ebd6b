package repository

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
)

// Partições da tabela única
const (
	pkCampaign    = "campaign"
	pkAd          = "ad"
	pkCampaignAd  = "campaign_ad"
	pkFBAccount   = "fb_account"
	pkUser        = "user"
	pkAsyncResult = "async_result"
	pkChangeLog   = "change_log"
)

// decodeItem converte os atributos jsonb no tipo do domínio
func decodeItem(item kvstore.Item, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return errors.Wrap(err, "falha ao criar decoder")
	}

	return errors.Wrap(decoder.Decode(map[string]interface{}(item)), "falha ao decodificar registro")
}

// encodeItem converte um tipo do domínio em atributos para gravação
func encodeItem(in interface{}) (kvstore.Item, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar registro")
	}

	var item kvstore.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, errors.Wrap(err, "falha ao converter registro")
	}

	return item, nil
}

// decimalFrom aceita os formatos numéricos encontrados nos registros
func decimalFrom(raw interface{}) decimal.Decimal {
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	}
	return decimal.Zero
}

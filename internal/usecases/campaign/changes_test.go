package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func noRule(string) (string, error) { return "", nil }

func TestBuildChangeSets(t *testing.T) {
	account := &domain.FBAccount{FBAccountID: "acc-1", PixelID: "pixel-1"}

	t.Run("distribui cada campo para o destino correto", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"campaign_name":         "Nova campanha",
			"daily_budget":          float64(25.5),
			"cpa_goal":              float64(12.75),
			"age_min":               float64(21),
			"auto_expansion_status": true,
		}, account, nil, noRule)

		require.NoError(t, err)

		assert.Equal(t, "Nova campanha", cs.DBCampaign["campaign_name"])
		assert.Equal(t, 25.5, cs.DBCampaign["budget"])
		assert.Equal(t, "Nova campanha", cs.RemoteCampaign["name"])
		// a plataforma recebe o orçamento em centavos
		assert.Equal(t, int64(2550), cs.RemoteCampaign["daily_budget"])
		assert.Equal(t, float64(21), cs.Targeting["age_min"])
		assert.Equal(t, true, cs.DBExpansion["expansion_enabled"])
	})

	t.Run("cpa_goal é gravado como chega, sem reescalonamento", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"cpa_goal": float64(12.75),
		}, account, nil, noRule)

		require.NoError(t, err)
		assert.Equal(t, 12.75, cs.DBCampaign["cpa_goal"])
	})

	t.Run("sem nenhum campo reconhecido devolve erro", func(t *testing.T) {
		_, err := buildChangeSets(map[string]interface{}{
			"campo_desconhecido": "x",
		}, account, nil, noRule)

		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("evento padrão recompõe o objeto promovido a partir do template", func(t *testing.T) {
		template := map[string]interface{}{
			"pixel_id":          "pixel-1",
			"custom_event_type": "LEAD",
			"pixel_rule":        `{"event":{"eq":"old"}}`,
		}

		cs, err := buildChangeSets(map[string]interface{}{
			"optimization_event": map[string]interface{}{"name": "PURCHASE", "kind": "default"},
		}, account, template, noRule)

		require.NoError(t, err)
		assert.Equal(t, "PURCHASE", cs.PromotedObject["custom_event_type"])
		assert.Equal(t, "pixel-1", cs.PromotedObject["pixel_id"])
		// regra de conversão personalizada anterior é descartada
		assert.NotContains(t, cs.PromotedObject, "pixel_rule")

		assert.Equal(t, map[string]interface{}{
			"name": "PURCHASE",
			"kind": "default",
		}, cs.DBCampaign["conversion_event"])
	})

	t.Run("conversão personalizada busca a regra na plataforma", func(t *testing.T) {
		resolved := false
		resolver := func(conversionID string) (string, error) {
			resolved = true
			assert.Equal(t, "conv-9", conversionID)
			return `{"url":{"i_contains":"obrigado"}}`, nil
		}

		cs, err := buildChangeSets(map[string]interface{}{
			"optimization_event": map[string]interface{}{"name": "conv-9", "kind": "custom_conversion"},
		}, account, map[string]interface{}{"pixel_id": "pixel-1"}, resolver)

		require.NoError(t, err)
		assert.True(t, resolved)
		assert.Equal(t, "OTHER", cs.PromotedObject["custom_event_type"])
		assert.Equal(t, `{"url":{"i_contains":"obrigado"}}`, cs.PromotedObject["pixel_rule"])
	})

	t.Run("evento personalizado vira OTHER com a regra de igualdade do pixel", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"optimization_event": map[string]interface{}{"name": "meu_evento", "kind": "custom_event"},
		}, account, map[string]interface{}{"pixel_id": "pixel-1"}, noRule)

		require.NoError(t, err)
		assert.Equal(t, "OTHER", cs.PromotedObject["custom_event_type"])
		assert.Equal(t, map[string]interface{}{
			"event": map[string]interface{}{"eq": "meu_evento"},
		}, cs.PromotedObject["pixel_rule"])
	})

	t.Run("chaves de delta de exclusões disparam a reescrita da lista completa", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"exclusions_added": []interface{}{map[string]interface{}{"id": "aud-3"}},
			"exclusions": []interface{}{
				map[string]interface{}{"id": "aud-1"},
				map[string]interface{}{"id": "aud-3"},
			},
		}, account, nil, noRule)

		require.NoError(t, err)
		assert.Equal(t, []interface{}{
			map[string]interface{}{"id": "aud-1"},
			map[string]interface{}{"id": "aud-3"},
		}, cs.Targeting["excluded_custom_audiences"])
	})

	t.Run("só a chave de remoção com lista ausente zera as exclusões", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"exclusions_removed": []interface{}{map[string]interface{}{"id": "aud-1"}},
		}, account, nil, noRule)

		require.NoError(t, err)
		assert.Equal(t, []interface{}{}, cs.Targeting["excluded_custom_audiences"])
	})

	t.Run("tipo da campanha e os interruptores espelham no registro local", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"campaign_type":          "conversion",
			"auto_expansion_status":  true,
			"ad_optimization_status": false,
		}, account, nil, noRule)

		require.NoError(t, err)
		assert.Equal(t, "conversion", cs.DBCampaign["campaign_type"])
		assert.Equal(t, true, cs.DBCampaign["auto_expand"])
		assert.Equal(t, false, cs.DBCampaign["ad_optimizer"])
		assert.Equal(t, true, cs.DBExpansion["expansion_enabled"])
		assert.Equal(t, false, cs.DBOptimization["optimization_enabled"])
	})

	t.Run("conjunto sem template usa o pixel da conta", func(t *testing.T) {
		cs, err := buildChangeSets(map[string]interface{}{
			"optimization_event": map[string]interface{}{"name": "PURCHASE"},
		}, account, nil, noRule)

		require.NoError(t, err)
		assert.Equal(t, "pixel-1", cs.PromotedObject["pixel_id"])
	})
}

func TestAdSetParams(t *testing.T) {
	t.Run("segmentação mescla em profundidade preservando o que não mudou", func(t *testing.T) {
		existing := map[string]interface{}{
			"age_min": float64(18),
			"age_max": float64(65),
			"geo_locations": map[string]interface{}{
				"countries":      []interface{}{"BR"},
				"location_types": []interface{}{"home"},
			},
		}

		cs := &ChangeSet{
			Targeting: map[string]interface{}{
				"age_min": float64(25),
				"geo_locations": map[string]interface{}{
					"countries": []interface{}{"US"},
				},
			},
		}

		params := adSetParams(existing, cs)
		targeting := params["targeting"].(map[string]interface{})

		assert.Equal(t, float64(25), targeting["age_min"])
		assert.Equal(t, float64(65), targeting["age_max"])

		geo := targeting["geo_locations"].(map[string]interface{})
		assert.Equal(t, []interface{}{"US"}, geo["countries"])
		// sub-chave não alterada sobrevive à mesclagem
		assert.Equal(t, []interface{}{"home"}, geo["location_types"])
	})

	t.Run("públicos excluídos substituem a lista inteira", func(t *testing.T) {
		existing := map[string]interface{}{
			"excluded_custom_audiences": []interface{}{
				map[string]interface{}{"id": "aud-1"},
				map[string]interface{}{"id": "aud-2"},
			},
		}

		cs := &ChangeSet{
			Targeting: map[string]interface{}{
				"excluded_custom_audiences": []interface{}{
					map[string]interface{}{"id": "aud-3"},
				},
			},
		}

		params := adSetParams(existing, cs)
		targeting := params["targeting"].(map[string]interface{})

		assert.Equal(t, []interface{}{
			map[string]interface{}{"id": "aud-3"},
		}, targeting["excluded_custom_audiences"])
	})

	t.Run("objeto promovido substitui o atual por inteiro", func(t *testing.T) {
		cs := &ChangeSet{
			PromotedObject: map[string]interface{}{
				"pixel_id":          "pixel-1",
				"custom_event_type": "PURCHASE",
			},
		}

		params := adSetParams(map[string]interface{}{}, cs)

		assert.Equal(t, cs.PromotedObject, params["promoted_object"])
		assert.NotContains(t, params, "targeting")
	})
}

package metadomain

// AdSet é o conjunto de anúncios como devolvido pela Graph API. O tipo
// preserva todos os atributos lidos, porque a reconciliação precisa
// reaplicar o estado completo original em uma reversão.
type AdSet map[string]interface{}

// ID devolve o identificador do conjunto
func (a AdSet) ID() string {
	if id, ok := a["id"].(string); ok {
		return id
	}
	return ""
}

// Targeting devolve o bloco de segmentação, nunca nil
func (a AdSet) Targeting() map[string]interface{} {
	if targeting, ok := a["targeting"].(map[string]interface{}); ok {
		return targeting
	}
	return map[string]interface{}{}
}

// PromotedObject devolve o objeto promovido do conjunto
func (a AdSet) PromotedObject() map[string]interface{} {
	if promoted, ok := a["promoted_object"].(map[string]interface{}); ok {
		return promoted
	}
	return map[string]interface{}{}
}

// Export devolve os atributos editáveis, sem o id, no formato aceito
// pelas escritas da Graph API
func (a AdSet) Export() map[string]interface{} {
	exported := make(map[string]interface{}, len(a))
	for key, value := range a {
		if key == "id" {
			continue
		}
		exported[key] = value
	}
	return exported
}

// Clone faz uma cópia profunda do conjunto, usada para capturar o
// estado original antes de qualquer mutação
func (a AdSet) Clone() AdSet {
	return AdSet(deepCopyMap(a))
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for key, value := range src {
		dst[key] = deepCopyValue(value)
	}
	return dst
}

func deepCopyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return deepCopyMap(v)
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, item := range v {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		return v
	}
}

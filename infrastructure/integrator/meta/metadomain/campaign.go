package metadomain

// Campaign é a projeção dos campos de campanha lidos da Graph API
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Objective       string `json:"objective"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	CreatedTime     string `json:"created_time"`
}

// Export devolve os campos editáveis no formato aceito pela Graph API,
// usado para reaplicar o estado original em uma reversão
func (c *Campaign) Export() map[string]interface{} {
	return map[string]interface{}{
		"name":         c.Name,
		"objective":    c.Objective,
		"daily_budget": c.DailyBudget,
	}
}

// IsActive interpreta o effective_status da campanha
func (c *Campaign) IsActive() bool {
	return c.EffectiveStatus == "ACTIVE"
}

package domain

// ChangeEntry registra uma alteração relevante feita na conta, exibida
// no feed de notificações do painel
type ChangeEntry struct {
	EntryID     string `json:"entry_id" mapstructure:"entry_id"`
	FBAccountID string `json:"fb_account_id" mapstructure:"fb_account_id"`
	Description string `json:"description" mapstructure:"description"`
	ChangedAt   string `json:"changed_at" mapstructure:"changed_at"`
}

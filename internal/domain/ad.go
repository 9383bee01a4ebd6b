package domain

// Ad é o registro local de um criativo importado. A chave canônica é o
// ID do criativo, para que o mesmo anúncio reutilizado em várias
// campanhas gere um único registro.
type Ad struct {
	AdID        string `json:"ad_id" mapstructure:"ad_id"`
	FBAccountID string `json:"fb_account_id" mapstructure:"fb_account_id"`
	Name        string `json:"ad_name" mapstructure:"ad_name"`
	Enabled     bool   `json:"ad_enabled" mapstructure:"ad_enabled"`
	CreatedAt   string `json:"created_at" mapstructure:"created_at"`
	Preview     string `json:"preview" mapstructure:"preview"`
}

// CampaignAd liga um criativo a uma campanha onde ele roda
type CampaignAd struct {
	CampaignID string `json:"campaign_id" mapstructure:"campaign_id"`
	AdID       string `json:"ad_id" mapstructure:"ad_id"`
}

// AdCampaignRef aponta uma campanha na listagem de anúncios da conta
type AdCampaignRef struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
}

// AccountAd é a visão de um anúncio devolvida pela listagem da conta
type AccountAd struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    bool            `json:"status"`
	CreatedAt string          `json:"created_at"`
	Preview   string          `json:"preview"`
	Campaigns []AdCampaignRef `json:"campaigns"`
}

// UploadTicket é a resposta da emissão de URL assinada de envio. O
// painel usa o FileKey depois, na criação do anúncio de vídeo.
type UploadTicket struct {
	FileKey   string `json:"file_key"`
	UploadURL string `json:"upload_url"`
}

// OwnershipTree mapeia cada campanha da conta para o conjunto de
// criativos que ela contém
type OwnershipTree map[string]map[string]struct{}

// Owners devolve as campanhas que contêm o criativo informado
func (t OwnershipTree) Owners(creativeID string) []string {
	owners := make([]string, 0)
	for campaignID, creatives := range t {
		if _, ok := creatives[creativeID]; ok {
			owners = append(owners, campaignID)
		}
	}
	return owners
}

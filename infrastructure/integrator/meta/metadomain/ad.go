package metadomain

// Creative é a referência ao criativo de um anúncio
type Creative struct {
	ID string `json:"id"`
}

// Ad é um anúncio como devolvido pela Graph API. O criativo é a
// identidade canônica: o mesmo criativo reaproveitado em várias
// campanhas aparece como anúncios distintos com o mesmo creative.id.
type Ad struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	CreatedTime     string   `json:"created_time"`
	CampaignID      string   `json:"campaign_id"`
	Creative        Creative `json:"creative"`
}

// NamedObject cobre os recursos da Graph API que só precisam de id e
// nome: pixels, aplicativos, públicos e páginas
type NamedObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomConversion é uma conversão personalizada da conta
type CustomConversion struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CustomEventType string `json:"custom_event_type"`
	Rule            string `json:"rule"`
}

// Video é o status de processamento de um vídeo enviado
type Video struct {
	ID     string `json:"id"`
	Status struct {
		VideoStatus string `json:"video_status"`
	} `json:"status"`
}

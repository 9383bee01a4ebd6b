package ads

import "github.com/pkg/errors"

var (
	// ErrAdNotFound indica que o anúncio não existe na plataforma ou no espelho
	ErrAdNotFound = errors.New("anúncio não encontrado")
	// ErrAccountNotFound indica que a conta não existe ou não pertence ao usuário
	ErrAccountNotFound = errors.New("conta de anúncios não encontrada")
	// ErrVideoNotReady indica que o vídeo não ficou pronto dentro do prazo
	ErrVideoNotReady = errors.New("vídeo não processado dentro do prazo")
	// ErrCampaignWithoutAdSets indica campanha sem conjunto para receber o anúncio
	ErrCampaignWithoutAdSets = errors.New("campanha sem conjuntos de anúncios")
)

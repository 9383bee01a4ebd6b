package campaign

import "github.com/pkg/errors"

var (
	// ErrCampaignNotFound indica que a campanha não existe no espelho local
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	// ErrAccountNotFound indica que a conta não existe ou não pertence ao usuário
	ErrAccountNotFound = errors.New("conta de anúncios não encontrada")
	// ErrNothingToUpdate indica uma atualização sem nenhum campo reconhecido
	ErrNothingToUpdate = errors.New("nenhum campo para atualizar")
)

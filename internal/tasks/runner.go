package tasks

import (
	"context"
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// CampaignUpdater aplica a atualização de campanha enfileirada
type CampaignUpdater interface {
	UpdateCampaign(ctx context.Context, userID, fbAccountID, campaignID string, fields map[string]interface{}) error
}

// VideoAdCreator cria o anúncio de vídeo enfileirado
type VideoAdCreator interface {
	UploadVideoAd(ctx context.Context, params domain.UploadVideoAdParams) (*domain.Ad, error)
}

// Runner consome as mensagens da fila e executa as tarefas. O registro
// da tarefa guarda o desfecho: a mensagem é sempre removida da fila.
type Runner struct {
	taskRepo     repository.TaskRepository
	campaignRepo repository.CampaignRepository
	updater      CampaignUpdater
	videoCreator VideoAdCreator
}

// NewRunner cria o executor de tarefas
func NewRunner(
	taskRepo repository.TaskRepository,
	campaignRepo repository.CampaignRepository,
	updater CampaignUpdater,
	videoCreator VideoAdCreator,
) *Runner {
	return &Runner{
		taskRepo:     taskRepo,
		campaignRepo: campaignRepo,
		updater:      updater,
		videoCreator: videoCreator,
	}
}

// Handle processa o corpo de uma mensagem da fila
func (r *Runner) Handle(ctx context.Context, body string) {
	var message domain.TaskMessage
	if err := json.Unmarshal([]byte(body), &message); err != nil {
		log.ForContext(ctx).WithError(err).Error("Mensagem ilegível na fila de tarefas")
		return
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"task":    message.Task,
		"task_id": message.TaskID,
	})

	if err := r.taskRepo.SetStatus(ctx, message.TaskID, domain.TaskStatusRunning, ""); err != nil {
		logger.WithError(err).Warn("Falha ao marcar tarefa como em execução")
	}

	result, err := r.run(ctx, message)
	if err != nil {
		logger.WithError(err).Error("Tarefa terminou com erro")

		if err := r.taskRepo.SetStatus(ctx, message.TaskID, domain.TaskStatusError, metadomain.ReadableError(err)); err != nil {
			logger.WithError(err).Error("Falha ao registrar erro da tarefa")
		}
		return
	}

	logger.Info("Tarefa concluída")

	if err := r.taskRepo.SetDone(ctx, message.TaskID, result); err != nil {
		logger.WithError(err).Error("Falha ao registrar conclusão da tarefa")
	}
}

func (r *Runner) run(ctx context.Context, message domain.TaskMessage) (interface{}, error) {
	switch message.Task {
	case domain.TaskUpdateCampaign:
		return r.updateCampaign(ctx, message.Params)
	case domain.TaskUploadVideoAd:
		return r.uploadVideoAd(ctx, message.Params)
	default:
		return nil, errors.Errorf("tarefa desconhecida: %s", message.Task)
	}
}

func (r *Runner) updateCampaign(ctx context.Context, rawParams map[string]interface{}) (interface{}, error) {
	var params domain.UpdateCampaignParams
	if err := mapstructure.Decode(rawParams, &params); err != nil {
		return nil, errors.Wrap(err, "parâmetros inválidos")
	}

	err := r.updater.UpdateCampaign(ctx, params.UserID, params.FBAccountID, params.CampaignID, params.Fields)

	// a campanha foi marcada como em atualização no enfileiramento;
	// o desbloqueio acontece aqui, com ou sem sucesso
	clearErr := r.campaignRepo.Update(ctx, params.CampaignID, map[string]interface{}{"in_progress": false})
	if clearErr != nil {
		log.ForContext(ctx).WithError(clearErr).
			WithField("campaign_id", params.CampaignID).
			Warn("Falha ao desmarcar campanha em atualização")
	}

	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"campaign_id": params.CampaignID}, nil
}

func (r *Runner) uploadVideoAd(ctx context.Context, rawParams map[string]interface{}) (interface{}, error) {
	var params domain.UploadVideoAdParams
	if err := mapstructure.Decode(rawParams, &params); err != nil {
		return nil, errors.Wrap(err, "parâmetros inválidos")
	}

	ad, err := r.videoCreator.UploadVideoAd(ctx, params)
	if err != nil {
		return nil, err
	}

	// o id do anúncio criado é o que o polling devolve ao painel
	return map[string]interface{}{"ad_id": ad.AdID}, nil
}

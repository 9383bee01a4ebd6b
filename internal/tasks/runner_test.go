package tasks

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type stubUpdater struct {
	calls []domain.UpdateCampaignParams
	err   error
}

func (s *stubUpdater) UpdateCampaign(_ context.Context, userID, fbAccountID, campaignID string, fields map[string]interface{}) error {
	s.calls = append(s.calls, domain.UpdateCampaignParams{
		UserID:      userID,
		FBAccountID: fbAccountID,
		CampaignID:  campaignID,
		Fields:      fields,
	})
	return s.err
}

type stubVideoCreator struct {
	calls []domain.UploadVideoAdParams
	err   error
}

func (s *stubVideoCreator) UploadVideoAd(_ context.Context, params domain.UploadVideoAdParams) (*domain.Ad, error) {
	s.calls = append(s.calls, params)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Ad{AdID: "creative-1"}, nil
}

func messageBody(t *testing.T, message domain.TaskMessage) string {
	t.Helper()

	body, err := json.Marshal(message)
	require.NoError(t, err)

	return string(body)
}

func TestRunnerHandle(t *testing.T) {
	setup := func(t *testing.T) (*repomocks.MockTaskRepository, *repomocks.MockCampaignRepository, *stubUpdater, *stubVideoCreator, *Runner) {
		ctrl := gomock.NewController(t)
		taskRepo := repomocks.NewMockTaskRepository(ctrl)
		campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
		updater := &stubUpdater{}
		videoCreator := &stubVideoCreator{}

		return taskRepo, campaignRepo, updater, videoCreator, NewRunner(taskRepo, campaignRepo, updater, videoCreator)
	}

	updateMessage := domain.TaskMessage{
		Task:   domain.TaskUpdateCampaign,
		TaskID: "task-1",
		Params: map[string]interface{}{
			"user_id":       "user-1",
			"fb_account_id": "acc-1",
			"campaign_id":   "camp-1",
			"fields":        map[string]interface{}{"daily_budget": 150.0},
		},
	}

	t.Run("atualização de campanha concluída marca done e desbloqueia a campanha", func(t *testing.T) {
		taskRepo, campaignRepo, updater, _, runner := setup(t)

		taskRepo.EXPECT().SetStatus(gomock.Any(), "task-1", domain.TaskStatusRunning, "").Return(nil)
		campaignRepo.EXPECT().Update(gomock.Any(), "camp-1", map[string]interface{}{"in_progress": false}).Return(nil)
		taskRepo.EXPECT().SetDone(gomock.Any(), "task-1", map[string]interface{}{"campaign_id": "camp-1"}).Return(nil)

		runner.Handle(context.Background(), messageBody(t, updateMessage))

		require.Len(t, updater.calls, 1)
		assert.Equal(t, "user-1", updater.calls[0].UserID)
		assert.Equal(t, "acc-1", updater.calls[0].FBAccountID)
		assert.Equal(t, "camp-1", updater.calls[0].CampaignID)
		assert.Equal(t, map[string]interface{}{"daily_budget": 150.0}, updater.calls[0].Fields)
	})

	t.Run("falha na atualização marca error com a mensagem legível e ainda desbloqueia", func(t *testing.T) {
		taskRepo, campaignRepo, updater, _, runner := setup(t)

		updater.err = &metadomain.RequestError{
			StatusCode: 400,
			Detail: metadomain.ErrorDetail{
				Message:      "Invalid parameter",
				ErrorUserMsg: "O orçamento é menor que o mínimo permitido",
			},
		}

		taskRepo.EXPECT().SetStatus(gomock.Any(), "task-1", domain.TaskStatusRunning, "").Return(nil)
		campaignRepo.EXPECT().Update(gomock.Any(), "camp-1", map[string]interface{}{"in_progress": false}).Return(nil)
		taskRepo.EXPECT().
			SetStatus(gomock.Any(), "task-1", domain.TaskStatusError, "O orçamento é menor que o mínimo permitido").
			Return(nil)

		runner.Handle(context.Background(), messageBody(t, updateMessage))
	})

	t.Run("subida de vídeo é despachada com os parâmetros decodificados", func(t *testing.T) {
		taskRepo, _, _, videoCreator, runner := setup(t)

		taskRepo.EXPECT().SetStatus(gomock.Any(), "task-2", domain.TaskStatusRunning, "").Return(nil)
		// o id do anúncio criado fica no resultado, lido pelo polling
		taskRepo.EXPECT().SetDone(gomock.Any(), "task-2", map[string]interface{}{"ad_id": "creative-1"}).Return(nil)

		runner.Handle(context.Background(), messageBody(t, domain.TaskMessage{
			Task:   domain.TaskUploadVideoAd,
			TaskID: "task-2",
			Params: map[string]interface{}{
				"user_id":       "user-1",
				"fb_account_id": "acc-1",
				"campaign_id":   "camp-1",
				"ad_name":       "Vídeo novo",
				"file_key":      "uploads/video.mp4",
			},
		}))

		require.Len(t, videoCreator.calls, 1)
		assert.Equal(t, "uploads/video.mp4", videoCreator.calls[0].FileKey)
		assert.Equal(t, "Vídeo novo", videoCreator.calls[0].AdName)
	})

	t.Run("tarefa desconhecida termina com error", func(t *testing.T) {
		taskRepo, _, updater, videoCreator, runner := setup(t)

		taskRepo.EXPECT().SetStatus(gomock.Any(), "task-3", domain.TaskStatusRunning, "").Return(nil)
		taskRepo.EXPECT().SetStatus(gomock.Any(), "task-3", domain.TaskStatusError, "tarefa desconhecida: migrate_pixels").Return(nil)

		runner.Handle(context.Background(), messageBody(t, domain.TaskMessage{
			Task:   "migrate_pixels",
			TaskID: "task-3",
		}))

		assert.Empty(t, updater.calls)
		assert.Empty(t, videoCreator.calls)
	})

	t.Run("mensagem ilegível é descartada sem tocar no registro", func(t *testing.T) {
		_, _, updater, _, runner := setup(t)

		runner.Handle(context.Background(), "{não é json")

		assert.Empty(t, updater.calls)
	})
}

package repository

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/storage/kvstore"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// TaskRepository mantém o acompanhamento das tarefas assíncronas
type TaskRepository interface {
	Get(ctx context.Context, taskID string) (*domain.AsyncResult, error)
	Create(ctx context.Context, result *domain.AsyncResult) error
	// SetStatus atualiza o status e a mensagem de resultado da tarefa
	SetStatus(ctx context.Context, taskID, status, message string) error
	// SetDone marca a tarefa como concluída e persiste o resultado
	// serializado, lido depois pelo polling
	SetDone(ctx context.Context, taskID string, result interface{}) error
}

type taskRepository struct {
	store kvstore.Store
}

func NewTaskRepository(store kvstore.Store) TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) Get(ctx context.Context, taskID string) (*domain.AsyncResult, error) {
	item, err := r.store.Get(ctx, pkAsyncResult, taskID)
	if err != nil || item == nil {
		return nil, err
	}

	var result domain.AsyncResult
	if err := decodeItem(item, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) Create(ctx context.Context, result *domain.AsyncResult) error {
	item, err := encodeItem(result)
	if err != nil {
		return err
	}

	return r.store.Create(ctx, pkAsyncResult, result.TaskID, item)
}

func (r *taskRepository) SetStatus(ctx context.Context, taskID, status, message string) error {
	fields := kvstore.Item{"status": status}
	if message != "" {
		fields["message"] = message
	}

	return r.store.Update(ctx, pkAsyncResult, taskID, fields)
}

func (r *taskRepository) SetDone(ctx context.Context, taskID string, result interface{}) error {
	fields := kvstore.Item{"status": domain.TaskStatusDone}
	if result != nil {
		fields["result"] = result
	}

	return r.store.Update(ctx, pkAsyncResult, taskID, fields)
}

// Package tasks enfileira e executa as tarefas assíncronas da API
package tasks

import (
	"context"

	"github.com/google/uuid"

	"github.com/vfg2006/ads-manager-api/infrastructure/queue/sqs"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// Enqueuer registra a tarefa e publica a mensagem para o executor
type Enqueuer struct {
	taskRepo  repository.TaskRepository
	publisher sqs.Publisher
}

// NewEnqueuer cria o enfileirador de tarefas
func NewEnqueuer(taskRepo repository.TaskRepository, publisher sqs.Publisher) *Enqueuer {
	return &Enqueuer{taskRepo: taskRepo, publisher: publisher}
}

// Enqueue cria o registro de acompanhamento com status queued, publica
// a mensagem na fila e devolve o id da tarefa
func (e *Enqueuer) Enqueue(ctx context.Context, task string, params map[string]interface{}) (string, error) {
	taskID := uuid.New().String()

	err := e.taskRepo.Create(ctx, &domain.AsyncResult{
		TaskID: taskID,
		Task:   task,
		Status: domain.TaskStatusQueued,
	})
	if err != nil {
		return "", apiErrors.Storage("falha ao registrar tarefa", err)
	}

	message := domain.TaskMessage{Task: task, TaskID: taskID, Params: params}
	if err := e.publisher.Publish(ctx, message); err != nil {
		return "", apiErrors.Internal("falha ao enfileirar tarefa", err)
	}

	return taskID, nil
}

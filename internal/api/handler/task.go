package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// GetTask devolve o andamento de uma tarefa assíncrona
func GetTask(taskRepo repository.TaskRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := identity(r); err != nil {
			respondError(w, r, err)
			return
		}

		result, err := taskRepo.Get(r.Context(), param(r, "taskID"))
		if err != nil {
			respondError(w, r, apiErrors.Storage("falha ao buscar tarefa", err))
			return
		}
		if result == nil {
			respondError(w, r, apiErrors.NotFound("tarefa não encontrada"))
			return
		}

		respondData(w, result)
	})
}

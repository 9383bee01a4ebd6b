package domain

// Status possíveis de uma tarefa assíncrona
const (
	TaskStatusQueued  = "queued"
	TaskStatusRunning = "running"
	TaskStatusDone    = "done"
	TaskStatusError   = "error"
)

// Nomes de tarefas conhecidos pelo executor
const (
	TaskUpdateCampaign = "update_campaign"
	TaskUploadVideoAd  = "upload_video_ad"
)

// AsyncResult é o registro de acompanhamento de uma tarefa assíncrona.
// O cliente consulta o status pelo task_id devolvido no enfileiramento.
type AsyncResult struct {
	TaskID  string      `json:"task_id" mapstructure:"task_id"`
	Task    string      `json:"task" mapstructure:"task"`
	Status  string      `json:"status" mapstructure:"status"`
	Message string      `json:"message,omitempty" mapstructure:"message"`
	Result  interface{} `json:"result,omitempty" mapstructure:"result"`
}

// TaskMessage é o corpo publicado na fila para o executor
type TaskMessage struct {
	Task   string                 `json:"task" mapstructure:"task"`
	TaskID string                 `json:"task_id" mapstructure:"task_id"`
	Params map[string]interface{} `json:"params" mapstructure:"params"`
}

// UpdateCampaignParams são os parâmetros da tarefa de atualização de campanha
type UpdateCampaignParams struct {
	UserID      string                 `json:"user_id" mapstructure:"user_id"`
	FBAccountID string                 `json:"fb_account_id" mapstructure:"fb_account_id"`
	CampaignID  string                 `json:"campaign_id" mapstructure:"campaign_id"`
	Fields      map[string]interface{} `json:"fields" mapstructure:"fields"`
}

// UploadVideoAdParams são os parâmetros da tarefa de subida de vídeo
type UploadVideoAdParams struct {
	UserID      string `json:"user_id" mapstructure:"user_id"`
	FBAccountID string `json:"fb_account_id" mapstructure:"fb_account_id"`
	CampaignID  string `json:"campaign_id" mapstructure:"campaign_id"`
	AdName      string `json:"ad_name" mapstructure:"ad_name"`
	FileKey     string `json:"file_key" mapstructure:"file_key"`
}

package metaclient

import (
	"net/url"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
)

// CreateVideo envia um vídeo para a conta a partir de uma URL pública
// e devolve o id do vídeo criado
func (c *MetaClient) CreateVideo(token, accountID, fileURL, name string) (string, error) {
	params := url.Values{}
	params.Set("file_url", fileURL)
	params.Set("name", name)

	var created struct {
		ID string `json:"id"`
	}
	if err := c.post(token, "/act_"+accountID+"/advideos", params, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

// GetVideoStatus lê o status de processamento de um vídeo
func (c *MetaClient) GetVideoStatus(token, videoID string) (string, error) {
	var video metadomain.Video
	if err := c.get(token, "/"+videoID, fieldsParam([]string{"status"}), &video); err != nil {
		return "", err
	}

	return video.Status.VideoStatus, nil
}

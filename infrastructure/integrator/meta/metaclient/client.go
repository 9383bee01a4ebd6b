package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metadomain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

// Client é o contrato da integração com a Graph API. Todas as chamadas
// recebem o token da conta, resolvido pelos usecases a partir do
// registro local da conta de anúncios.
type Client interface {
	GetCampaign(token, campaignID string, fields []string) (*metadomain.Campaign, error)
	UpdateCampaign(token, campaignID string, params map[string]interface{}) error
	// GetCampaignsBatch lê várias campanhas em lote, preservando a
	// correlação pelo Metadata de cada resultado
	GetCampaignsBatch(token string, campaignIDs []string, fields []string) ([]BatchResult, error)

	ListAdSets(token, campaignID string, fields []string) ([]metadomain.AdSet, error)
	// UpdateAdSetsBatch aplica as escritas em lote. Com raiseOnFailure,
	// a primeira falha individual é devolvida como erro depois que
	// todos os lotes foram submetidos.
	UpdateAdSetsBatch(token string, updates []AdSetUpdate, raiseOnFailure bool) ([]BatchResult, error)

	ListCampaignAds(token, campaignID string, fields []string, limit int) ([]metadomain.Ad, error)
	ListAccountAds(token, accountID string, fields []string, limit int) ([]metadomain.Ad, error)
	GetAd(token, adID string, fields []string) (*metadomain.Ad, error)
	UpdateAd(token, adID string, params map[string]interface{}) error
	DeleteAdsBatch(token string, adIDs []string) ([]BatchResult, error)
	GetCreativePreview(token, creativeID, format string) (string, error)
	CreateCreative(token, accountID string, params map[string]interface{}) (string, error)
	CreateAd(token, accountID string, params map[string]interface{}) (string, error)

	ListCustomConversions(token, accountID string, limit int) ([]metadomain.CustomConversion, error)
	GetCustomConversionRule(token, conversionID string) (string, error)

	ListPixels(token, accountID string) ([]metadomain.NamedObject, error)
	ListMobileApps(token, accountID string) ([]metadomain.NamedObject, error)
	ListCustomAudiences(token, accountID string, limit int) ([]metadomain.NamedObject, error)
	CreateLookalikeAudience(token, accountID string, params map[string]interface{}) (string, error)
	ListPages(token string) ([]metadomain.NamedObject, error)

	GetAccountCurrency(token, accountID string) (string, error)
	GetInsights(token, objectID string, params url.Values) ([]map[string]interface{}, error)

	CreateVideo(token, accountID, fileURL, name string) (string, error)
	GetVideoStatus(token, videoID string) (string, error)
}

// MetaClient implementa Client sobre HTTP
type MetaClient struct {
	baseURL    string
	version    string
	httpClient *http.Client
}

// New cria o cliente da Graph API
func New(cfg config.MetaConfig) *MetaClient {
	return &MetaClient{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		version:    cfg.APIVersion,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *MetaClient) endpoint(path string) string {
	return c.baseURL + "/" + c.version + path
}

func (c *MetaClient) get(token, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	resp, err := c.httpClient.Get(c.endpoint(path) + "?" + params.Encode())
	if err != nil {
		return errors.Wrap(err, "falha na chamada à graph api")
	}

	return c.readResponse(resp, out)
}

func (c *MetaClient) post(token, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	resp, err := c.httpClient.PostForm(c.endpoint(path), params)
	if err != nil {
		return errors.Wrap(err, "falha na chamada à graph api")
	}

	return c.readResponse(resp, out)
}

func (c *MetaClient) delete(token, path string) error {
	params := url.Values{}
	params.Set("access_token", token)

	req, err := http.NewRequest(http.MethodDelete, c.endpoint(path)+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "falha ao montar requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "falha na chamada à graph api")
	}

	return c.readResponse(resp, nil)
}

func (c *MetaClient) readResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "falha ao ler resposta da graph api")
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(body, out), "falha ao decodificar resposta da graph api")
}

func decodeError(statusCode int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return &metadomain.RequestError{
			StatusCode: statusCode,
			Detail:     metadomain.ErrorDetail{Message: string(body)},
		}
	}

	return &metadomain.RequestError{StatusCode: statusCode, Detail: errResp.Error}
}

// listResponse é o envelope paginado padrão da Graph API
type listResponse struct {
	Data   json.RawMessage `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// EncodeParams converte parâmetros de escrita para o formato de
// formulário da Graph API: valores compostos viram JSON
func EncodeParams(params map[string]interface{}) url.Values {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case string:
			values.Set(key, v)
		case nil:
			continue
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				continue
			}
			values.Set(key, string(encoded))
		}
	}
	return values
}

func fieldsParam(fields []string) url.Values {
	params := url.Values{}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	return params
}

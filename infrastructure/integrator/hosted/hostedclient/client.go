package hostedclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	hosteddomain "github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageSize = 1000

var (
	ErrTableNotAllowed = errors.New("tabela não permitida no backend hospedado")
	ErrNotConfigured   = errors.New("backend hospedado não configurado")
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks
type Client interface {
	FetchRows(ctx context.Context, table string, filters url.Values) ([]jsoniter.RawMessage, error)
}

type HostedClient struct {
	httpClient *http.Client
	config     config.HostedBackend
}

func NewClient(cfg config.HostedBackend) Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HostedClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// FetchRows lê todas as linhas de uma tabela da lista permitida, paginando por offset
func (c *HostedClient) FetchRows(ctx context.Context, table string, filters url.Values) ([]jsoniter.RawMessage, error) {
	if _, ok := hosteddomain.AllowedTables[table]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}

	if c.config.URL == "" || c.config.APIKey == "" {
		return nil, ErrNotConfigured
	}

	rows := make([]jsoniter.RawMessage, 0)
	for offset := 0; ; offset += pageSize {
		page, err := c.fetchPage(ctx, table, filters, offset)
		if err != nil {
			return nil, err
		}

		rows = append(rows, page...)
		if len(page) < pageSize {
			break
		}
	}

	return rows, nil
}

func (c *HostedClient) fetchPage(ctx context.Context, table string, filters url.Values, offset int) ([]jsoniter.RawMessage, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/rest/v1", table)

	query := url.Values{}
	for key, values := range filters {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("select", "*")
	query.Set("limit", strconv.Itoa(pageSize))
	query.Set("offset", strconv.Itoa(offset))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("apikey", c.config.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição à tabela %s falhou com status: %s", table, resp.Status)
	}

	var page []jsoniter.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return page, nil
}

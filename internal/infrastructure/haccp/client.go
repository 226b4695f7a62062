// Package haccp searches the HACCP certification image registry by product report number.
package haccp

import (
	"context"
	"net/url"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const certImgListPath = "/getCertImgListServiceV3"

var envelope = registry.Envelope{ItemsPath: "$.body.items"}

// Client handles communication with the HACCP certification registry
type Client struct {
	api        *registry.Client
	serviceKey string
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a HACCP registry client
func NewClient(serviceKey, baseURL string, api *registry.Client) *Client {
	return &Client{
		api:        api,
		serviceKey: serviceKey,
		baseURL:    baseURL,
		logger:     log.With().Str("source", "haccp").Logger(),
	}
}

// Name identifies this source
func (c *Client) Name() domain.SourceName {
	return domain.SourceCertRegistry
}

// Search looks the key up as a product report number (prdlstReportNo)
func (c *Client) Search(ctx context.Context, key string) domain.SourceResult {
	c.logger.Info().Str("report_no", key).Msg("searching with product report number")

	params := url.Values{}
	params.Set("serviceKey", unescapeKey(c.serviceKey))
	params.Set("prdlstReportNo", key)
	params.Set("returnType", "json")
	params.Set("numOfRows", "100")
	params.Set("pageNo", "1")

	body, err := c.api.Get(ctx, c.baseURL+certImgListPath, params)
	if err != nil {
		c.logger.Error().Err(err).Msg("request failed")
		return registry.ResultFromError(err)
	}

	item, err := registry.FirstItem(body, envelope)
	if err != nil {
		c.logger.Info().Err(err).Msg("no product")
		return registry.ResultFromError(err)
	}

	record := MapToProductRecord(item)
	c.logger.Info().Str("product", record.ProductName).Msg("found product")
	return domain.Found(record)
}

// unescapeKey decodes a percent-encoded service key so it is not encoded twice.
// data.go.kr hands out keys in encoded form.
func unescapeKey(key string) string {
	decoded, err := url.PathUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}

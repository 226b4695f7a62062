// Package foodqr searches the Food QR e-label registry.
package foodqr

import (
	"context"
	"errors"
	"net/url"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const productInfoPath = "/qr1007/F007"

var envelope = registry.Envelope{ItemsPath: "$.response.body.items", ObjectNeedsItem: true}

// attempt is one way of passing the search key to the registry
type attempt struct {
	method string
	param  string
}

// attempts are tried in order; the first hit wins
var attempts = []attempt{
	{method: domain.SearchMethodReportNumber, param: "imrptNo"},
	{method: domain.SearchMethodBarcode, param: "brcdNo"},
}

// Client handles communication with the Food QR registry
type Client struct {
	api       *registry.Client
	accessKey string
	baseURL   string
	logger    zerolog.Logger
}

// NewClient creates a Food QR registry client
func NewClient(accessKey, baseURL string, api *registry.Client) *Client {
	return &Client{
		api:       api,
		accessKey: accessKey,
		baseURL:   baseURL,
		logger:    log.With().Str("source", "foodqr").Logger(),
	}
}

// Name identifies this source
func (c *Client) Name() domain.SourceName {
	return domain.SourceQRLabel
}

// Search tries the key as a report number, then as a barcode.
// A timeout on either attempt ends the search.
func (c *Client) Search(ctx context.Context, key string) domain.SourceResult {
	var lastErr error

	for _, a := range attempts {
		record, err := c.searchBy(ctx, a, key)
		switch {
		case err == nil:
			c.logger.Info().Str("method", a.method).Str("product", record.ProductName).Msg("found product")
			return domain.Found(record)
		case registry.IsTimeout(err):
			c.logger.Error().Err(err).Str("method", a.method).Msg("request timed out")
			return domain.TimedOut(err)
		case errors.Is(err, domain.ErrNoItems):
			c.logger.Info().Str("method", a.method).Msg("no items found")
		default:
			c.logger.Error().Err(err).Str("method", a.method).Msg("request failed")
			lastErr = err
		}
	}

	c.logger.Info().Msg("all search methods failed")
	if lastErr != nil {
		return domain.Failed(lastErr)
	}
	return domain.NotFound()
}

func (c *Client) searchBy(ctx context.Context, a attempt, key string) (*domain.ProductRecord, error) {
	c.logger.Info().Str("method", a.method).Str("key", key).Msg("searching")

	params := url.Values{}
	params.Set("accessKey", c.accessKey)
	params.Set("numOfRows", "10")
	params.Set("pageNo", "1")
	params.Set("_type", "json")
	params.Set(a.param, key)

	body, err := c.api.Get(ctx, c.baseURL+productInfoPath, params)
	if err != nil {
		return nil, err
	}

	item, err := registry.FirstItem(body, envelope)
	if err != nil {
		return nil, err
	}

	record := MapToProductRecord(item, a.method)
	c.logger.Debug().Str("raw_materials", preview(record.RawMaterials)).Msg("extracted raw materials")
	return record, nil
}

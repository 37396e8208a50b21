// Package geocode resolves coordinates to country names over HTTP, with an
// optional redis-backed cache in front of the remote service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// Client reverse-geocodes coordinates against a nominatim-compatible
// endpoint with a bounded timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// reverseReply is the subset of the nominatim reverse response we read.
type reverseReply struct {
	Address struct {
		Country string `json:"country"`
	} `json:"address"`
	Error string `json:"error"`
}

// NewClient builds a geocoding client from configuration.
func NewClient(cfg config.GeocoderConfig, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// CountryAt resolves lat/lon to a country name.  The context bounds the
// request in addition to the client's own timeout.
func (c *Client) CountryAt(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))
	q.Set("format", "jsonv2")
	q.Set("zoom", "3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeGeocodeFailed, "building reverse geocode request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", apperrors.Wrap(err, apperrors.ErrCodeGeocodeTimeout, "reverse geocode timed out")
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeGeocodeFailed, "reverse geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Newf(apperrors.ErrCodeGeocodeBadReply,
			"reverse geocoder answered %d", resp.StatusCode)
	}

	var reply reverseReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeGeocodeBadReply, "decoding reverse geocode reply")
	}
	if reply.Error != "" || reply.Address.Country == "" {
		return "", apperrors.Newf(apperrors.ErrCodeGeocodeBadReply,
			"no country for %.4f,%.4f", lat, lon)
	}

	c.logger.Debug("reverse geocode resolved",
		logging.Float64("lat", lat), logging.Float64("lon", lon),
		logging.String("country", reply.Address.Country),
		logging.Duration("elapsed", time.Since(start)))

	return reply.Address.Country, nil
}

//Personal.AI order the ending

// Package petfinder is a client for the Petfinder v1 JSON API.
package petfinder

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"petfinder-bot/internal/common/errors"
	httpclient "petfinder-bot/internal/common/http"
	"petfinder-bot/internal/models"
)

const (
	DefaultBaseURL = "http://api.petfinder.com"
	statusOK       = "100"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	config *Config
	http   *httpclient.Client
}

func NewClient(config *Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: config,
		http:   httpclient.NewClient(config.Timeout),
	}
}

// NewClientWithHTTP uses a caller supplied transport client.
func NewClientWithHTTP(config *Config, hc *httpclient.Client) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{config: config, http: hc}
}

// FindRandomPet calls pet.getRandom with the criteria as filters. Every
// failure is an EXTERNAL_LOOKUP_FAILED or EXTERNAL_LOOKUP_TIMEOUT error.
func (c *Client) FindRandomPet(ctx context.Context, criteria models.SearchCriteria) (*models.PetRecord, error) {
	var env envelope
	err := c.http.GetJSON(ctx, c.endpoint("pet.getRandom"), c.query(criteria), &env)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.NewExternalLookupTimeoutError(err)
		}
		return nil, errors.NewExternalLookupFailedError(fmt.Errorf("pet.getRandom: %w", err))
	}

	status := env.Petfinder.Header.Status
	if status.Code.Value != statusOK {
		return nil, errors.NewExternalLookupFailedError(
			fmt.Errorf("pet.getRandom: status %s: %s", status.Code.Value, status.Message.Value))
	}
	if env.Petfinder.Pet == nil {
		return nil, errors.NewExternalLookupFailedError(stderrors.New("pet.getRandom: response has no pet"))
	}

	return toRecord(env.Petfinder.Pet), nil
}

func (c *Client) endpoint(method string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + method
}

func (c *Client) query(criteria models.SearchCriteria) url.Values {
	q := url.Values{}
	q.Set("key", c.config.APIKey)
	if criteria.Location != "" {
		q.Set("location", criteria.Location)
	}
	if criteria.Animal != "" {
		q.Set("animal", criteria.Animal)
	}
	if criteria.Size != "" {
		q.Set("size", criteria.Size)
	}
	if criteria.Sex != "" {
		q.Set("sex", criteria.Sex)
	}
	q.Set("output", "full")
	q.Set("format", "json")
	return q
}

func toRecord(p *pet) *models.PetRecord {
	photos := make([]string, 0, len(p.Media.Photos.Photo))
	for _, ph := range p.Media.Photos.Photo {
		photos = append(photos, ph.URL)
	}
	return &models.PetRecord{
		ID:          p.ID.Value,
		Name:        p.Name.Value,
		Sex:         p.Sex.Value,
		Age:         p.Age.Value,
		Description: p.Description.Value,
		Photos:      photos,
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

// Package googlebooks searches the Google Books volumes API.
package googlebooks

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/book-review/books/config"
	"github.com/Astemirdum/book-review/books/internal/errs"
	"github.com/Astemirdum/book-review/books/internal/model"
	"github.com/Astemirdum/book-review/pkg/circuit_breaker"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	startIndex = 0
	maxResults = 10
)

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title      string   `json:"title"`
			Authors    []string `json:"authors"`
			ImageLinks *struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

type Client struct {
	log    *zap.Logger
	client *resty.Client
	apiKey string
	cb     circuit_breaker.CircuitBreaker
}

func New(cfg config.GoogleBooks, log *zap.Logger) *Client {
	return &Client{
		log: log.Named("googlebooks"),
		client: resty.New().
			SetBaseURL(cfg.URL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
		apiKey: cfg.APIKey,
		cb:     circuit_breaker.New(20, 10*time.Second, 0.5, 2),
	}
}

func (c *Client) Search(ctx context.Context, title string) ([]model.SearchResult, error) {
	var vr volumesResponse
	err := c.cb.Call(func() error {
		req := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":          title,
				"startIndex": strconv.Itoa(startIndex),
				"maxResults": strconv.Itoa(maxResults),
			}).
			SetResult(&vr)
		if c.apiKey != "" {
			req.SetQueryParam("key", c.apiKey)
		}
		resp, err := req.Get("/volumes")
		if err != nil {
			return err
		}
		if resp.StatusCode() != http.StatusOK {
			return errors.Errorf("unexpected status %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		c.log.Error("volumes search", zap.String("title", title), zap.Error(err))
		return nil, errors.Wrap(errs.ErrUpstream, err.Error())
	}

	return toSearchResults(vr), nil
}

func toSearchResults(vr volumesResponse) []model.SearchResult {
	results := make([]model.SearchResult, 0, len(vr.Items))
	for _, item := range vr.Items {
		info := item.VolumeInfo
		authors := info.Authors
		// missing and empty author lists both get the placeholder
		if len(authors) == 0 {
			authors = []string{model.UnknownAuthor}
		}
		var thumbnail *string
		if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
			thumb := info.ImageLinks.Thumbnail
			thumbnail = &thumb
		}
		results = append(results, model.SearchResult{
			Title:     info.Title,
			Authors:   authors,
			Thumbnail: thumbnail,
		})
	}
	return results
}

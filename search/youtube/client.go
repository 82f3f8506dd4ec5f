package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"creator-compass/internal/models"
	"creator-compass/search"
	"creator-compass/shared/config"
)

// Client wraps the YouTube Data API v3 as a search.Provider.
type Client struct {
	service *yt.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, search.ErrMissingAPIKey
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// Search returns the video IDs matching a query, most relevant first.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]string, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, asProviderError(err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// Videos hydrates IDs into full records in a single batched call. The
// response preserves the order of the requested IDs.
func (c *Client) Videos(ctx context.Context, ids []string) ([]*models.VideoRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, asProviderError(err)
	}

	records := make([]*models.VideoRecord, 0, len(response.Items))
	for _, item := range response.Items {
		records = append(records, recordFromItem(item))
	}
	return records, nil
}

func recordFromItem(item *yt.Video) *models.VideoRecord {
	rec := &models.VideoRecord{ID: item.Id}

	if item.Snippet != nil {
		rec.Title = item.Snippet.Title
		rec.ChannelTitle = item.Snippet.ChannelTitle
		rec.Description = item.Snippet.Description
		rec.Tags = item.Snippet.Tags

		if thumbs := item.Snippet.Thumbnails; thumbs != nil {
			if thumbs.High != nil {
				rec.Thumbnail = thumbs.High.Url
			} else if thumbs.Default != nil {
				rec.Thumbnail = thumbs.Default.Url
			}
			rec.HDThumbnail = thumbs.Maxres != nil || thumbs.High != nil
		}
	}

	if item.ContentDetails != nil {
		rec.Duration = item.ContentDetails.Duration
	}

	if item.Statistics != nil {
		rec.ViewCount = int64(item.Statistics.ViewCount)
		rec.LikeCount = int64(item.Statistics.LikeCount)
		rec.CommentCount = int64(item.Statistics.CommentCount)
	}

	return rec
}

func asProviderError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		message := gerr.Message
		if message == "" {
			message = gerr.Error()
		}
		return &search.ProviderError{Message: message}
	}
	return &search.ProviderError{Message: err.Error()}
}

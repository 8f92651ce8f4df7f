// Package importer pulls short-form content from RSS/Atom feeds into the
// editorial pool as unpublished draft items, de-duplicated by source GUID.
package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/pucklab/puckdesk/pkg/domain"
)

//go:generate moq -out mocks/item_creator.go -pkg mocks -skip-ensure -fmt goimports . ItemCreator

// ItemCreator stores imported draft items
type ItemCreator interface {
	CreateContentItem(ctx context.Context, item *domain.ContentItem) error
	ContentItemExists(ctx context.Context, sourceGUID string) (bool, error)
}

// Importer fetches feeds and converts entries to draft content items
type Importer struct {
	client    *http.Client
	sanitizer *bluemonday.Policy
	creator   ItemCreator
	userAgent string
}

// New creates a feed importer
func New(creator ItemCreator, timeout time.Duration, userAgent string) *Importer {
	return &Importer{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sanitizer: bluemonday.StrictPolicy(),
		creator:   creator,
		userAgent: userAgent,
	}
}

// ImportFeed fetches a feed and stores its entries as unpublished content
// items of the given type and theme. Returns the number of new items;
// entries already imported (by source GUID) are skipped.
func (imp *Importer) ImportFeed(ctx context.Context, url string, contentType domain.ContentType, theme string) (int, error) {
	if !contentType.Valid() {
		return 0, fmt.Errorf("unknown content type %q", contentType)
	}

	body, err := imp.fetch(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return 0, fmt.Errorf("parse feed: %w", err)
	}

	newCount := 0
	for _, entry := range feed.Items {
		guid := entry.GUID
		if guid == "" {
			guid = entry.Link
		}
		if guid == "" {
			guid = fmt.Sprintf("%s-%s", feed.Title, entry.Title)
		}

		exists, err := imp.creator.ContentItemExists(ctx, guid)
		if err != nil {
			lgr.Printf("[ERROR] failed to check item existence: %v", err)
			continue
		}
		if exists {
			continue
		}

		item := &domain.ContentItem{
			Type:        contentType,
			Text:        imp.entryText(entry),
			Theme:       theme,
			Attribution: feed.Title,
			SourceGUID:  guid,
			Status:      domain.StatusUnpublished,
		}
		if item.Text == "" {
			continue
		}

		if err := imp.creator.CreateContentItem(ctx, item); err != nil {
			lgr.Printf("[ERROR] failed to create imported item: %v", err)
			continue
		}
		newCount++
	}

	if newCount > 0 {
		lgr.Printf("[INFO] imported %d new items from feed: %s", newCount, feed.Title)
	}
	return newCount, nil
}

// entryText flattens a feed entry to short-form plain text: title plus the
// sanitized description, no markup
func (imp *Importer) entryText(entry *gofeed.Item) string {
	title := strings.TrimSpace(imp.sanitizer.Sanitize(entry.Title))
	desc := strings.TrimSpace(imp.sanitizer.Sanitize(entry.Description))

	switch {
	case title == "":
		return desc
	case desc == "":
		return title
	default:
		return title + ": " + desc
	}
}

// fetch retrieves feed content over HTTP
func (imp *Importer) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if imp.userAgent != "" {
		req.Header.Set("User-Agent", imp.userAgent)
	}

	resp, err := imp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

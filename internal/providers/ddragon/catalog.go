package ddragon

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/adapter"
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/logger"
)

// Item is the metadata for one item in the current catalog version
type Item struct {
	ID            int
	Name          string
	Description   string
	TotalGold     int
	ImageFilename string
	Tags          []string
	// Into lists the ids this item builds into; empty means final tier
	Into []int
}

// HasTag reports whether the item carries the given catalog tag
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog is the read-only item-metadata lookup, loaded once per process
// lifetime from the versioned Data Dragon CDN
//
//go:generate mockgen -source=catalog.go -destination=../../mocks/ddragon_catalog.go -package=mocks -mock_names=Catalog=MockCatalog
type Catalog interface {
	// Item returns the metadata for an item id, or nil if unknown
	Item(id int) *Item

	// Version returns the catalog version the items were loaded from
	Version() string
}

// itemJSON mirrors the Data Dragon item.json entry shape. Ids in "into"
// arrive as strings.
type itemJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Into        []string `json:"into"`
	Gold        struct {
		Total int `json:"total"`
	} `json:"gold"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
}

// itemFileJSON mirrors the top level of item.json
type itemFileJSON struct {
	Data map[string]itemJSON `json:"data"`
}

// catalog is the concrete in-memory Catalog
type catalog struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string

	mu      sync.RWMutex
	items   map[int]*Item
	version string
}

// NewCatalog creates an empty catalog; Load must be called before lookups
// return anything
func NewCatalog(httpClient adapter.HTTPClient, json adapter.JSON, cfg config.DataDragonConfig) *catalog {
	return &catalog{
		httpClient: httpClient,
		json:       json,
		baseURL:    cfg.BaseURL,
		items:      make(map[int]*Item),
	}
}

// Load resolves the latest catalog version and fetches its item file,
// retrying transient failures with exponential backoff so a flaky CDN at
// process start does not take the service down
func (c *catalog) Load(ctx context.Context) error {
	operation := func() error {
		version, err := c.fetchLatestVersion(ctx)
		if err != nil {
			return err
		}

		items, err := c.fetchItems(ctx, version)
		if err != nil {
			return err
		}

		c.mu.Lock()
		c.items = items
		c.version = version
		c.mu.Unlock()

		logger.InfoCtx(ctx, "Data Dragon item catalog loaded",
			zap.String("version", version),
			zap.Int("items", len(items)),
		)
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to load item catalog: %w", err)
	}
	return nil
}

// Item returns the metadata for an item id, or nil if unknown
func (c *catalog) Item(id int) *Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[id]
}

// Version returns the loaded catalog version
func (c *catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// fetchLatestVersion fetches versions.json and returns the newest entry
func (c *catalog) fetchLatestVersion(ctx context.Context) (string, error) {
	reqURL := fmt.Sprintf("%s/api/versions.json", c.baseURL)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var versions []string
	if err := c.json.Unmarshal(body, &versions); err != nil {
		return "", fmt.Errorf("failed to decode versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no versions returned")
	}
	return versions[0], nil
}

// fetchItems fetches and parses item.json for a catalog version
func (c *catalog) fetchItems(ctx context.Context, version string) (map[int]*Item, error) {
	reqURL := fmt.Sprintf("%s/cdn/%s/data/en_US/item.json", c.baseURL, version)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var file itemFileJSON
	if err := c.json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("failed to decode item file: %w", err)
	}

	items := make(map[int]*Item, len(file.Data))
	for key, raw := range file.Data {
		id, err := strconv.Atoi(key)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping item with non-numeric id", zap.String("id", key))
			continue
		}

		into := make([]int, 0, len(raw.Into))
		for _, child := range raw.Into {
			childID, err := strconv.Atoi(child)
			if err != nil {
				continue
			}
			into = append(into, childID)
		}

		items[id] = &Item{
			ID:            id,
			Name:          raw.Name,
			Description:   raw.Description,
			TotalGold:     raw.Gold.Total,
			ImageFilename: raw.Image.Full,
			Tags:          raw.Tags,
			Into:          into,
		}
	}
	return items, nil
}

// get performs one GET and fails on any non-OK status
func (c *catalog) get(ctx context.Context, reqURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL)
	}
	return resp.Body, nil
}

package recommend

import (
	"context"
	"strings"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/providers/ddragon"
	"github.com/ukpabik/mid-diff/internal/store"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

const (
	tagBoots      = "Boots"
	tagConsumable = "Consumable"
	tagTrinket    = "Trinket"
	tagJungle     = "Jungle"
)

// RecommendedItem is one slot of a recommended build
type RecommendedItem struct {
	ItemID        int     `json:"item_id"`
	Name          string  `json:"name"`
	ImageFilename string  `json:"image_filename,omitempty"`
	WinRate       float64 `json:"win_rate"`
	SampleSize    int64   `json:"sample_size"`
}

// BuildRecommendation is the ordered build for a champion, at most seven
// items. Items is empty when the aggregate table has no usable rows for the
// champion.
type BuildRecommendation struct {
	Champion       string            `json:"champion"`
	CatalogVersion string            `json:"catalog_version"`
	Items          []RecommendedItem `json:"items"`
}

//go:generate mockgen -source=recommender.go -destination=../mocks/recommender.go -package=mocks -mock_names=Recommender=MockRecommender

// Recommender assembles item builds from the aggregated win rate table and
// the item catalog
type Recommender interface {
	// OptimalBuild returns the highest win rate build for a champion. The
	// champion match is case-insensitive. Missing data is not an error.
	OptimalBuild(ctx context.Context, champion string) (*BuildRecommendation, error)
}

// candidate is one aggregate row joined to its catalog metadata
type candidate struct {
	row  schema.ChampionItemWinrate
	item *ddragon.Item
}

type recommender struct {
	store   store.Store
	catalog ddragon.Catalog
}

// NewRecommender creates a new build recommender
func NewRecommender(st store.Store, catalog ddragon.Catalog) Recommender {
	return &recommender{
		store:   st,
		catalog: catalog,
	}
}

// OptimalBuild walks the champion's aggregate rows in win rate order,
// filters out items that never belong in a finished build, and splices the
// best boots into the second slot. Rows arrive from the store already
// ordered by win rate descending with item id ascending as the tiebreak,
// so every selection step below is a stable scan.
func (r *recommender) OptimalBuild(ctx context.Context, champion string) (*BuildRecommendation, error) {
	rows, err := r.store.WinratesByChampion(ctx, champion)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		item := r.catalog.Item(row.ItemID)
		if item == nil {
			continue
		}
		candidates = append(candidates, candidate{row: row, item: item})
	}

	bestBoot := bestBoot(candidates)
	eligible := eligibleSet(candidates, bestBoot)

	return &BuildRecommendation{
		Champion:       champion,
		CatalogVersion: r.catalog.Version(),
		Items:          assemble(eligible, bestBoot),
	}, nil
}

// bestBoot returns the highest win rate boots-tagged candidate, or nil
func bestBoot(candidates []candidate) *candidate {
	for i := range candidates {
		if candidates[i].item.HasTag(tagBoots) {
			return &candidates[i]
		}
	}
	return nil
}

// eligibleSet keeps the candidates that can appear in a finished build:
// no consumables or trinkets, no starter items, jungle items always, and
// otherwise only items with no further upgrade path. The best boots are
// always kept regardless of tier.
func eligibleSet(candidates []candidate, bestBoot *candidate) []candidate {
	eligible := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.item.HasTag(tagBoots) {
			// only the best boots make the cut, and they always do
			if bestBoot != nil && c.row.ItemID == bestBoot.row.ItemID {
				eligible = append(eligible, c)
			}
			continue
		}
		if c.item.HasTag(tagConsumable) || c.item.HasTag(tagTrinket) {
			continue
		}
		if strings.HasPrefix(c.item.Name, "Doran") {
			continue
		}
		if c.item.HasTag(tagJungle) || len(c.item.Into) == 0 {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// assemble builds the final ordered list: eligible items in win rate order
// with the best boots inserted as the second slot, capped at the build
// size. Sparse data yields a short list, never fabricated entries.
func assemble(eligible []candidate, bestBoot *candidate) []RecommendedItem {
	items := make([]RecommendedItem, 0, domain.ItemSlots)
	bootPlaced := false

	for _, c := range eligible {
		if len(items) >= domain.ItemSlots {
			break
		}
		if bestBoot != nil && c.row.ItemID == bestBoot.row.ItemID {
			continue
		}
		items = append(items, recommended(c))
		if !bootPlaced && bestBoot != nil && len(items) == 1 {
			items = append(items, recommended(*bestBoot))
			bootPlaced = true
		}
	}

	if bestBoot != nil && !bootPlaced && len(items) < domain.ItemSlots {
		items = append(items, recommended(*bestBoot))
	}
	return items
}

// recommended maps one candidate into a build slot
func recommended(c candidate) RecommendedItem {
	return RecommendedItem{
		ItemID:        c.row.ItemID,
		Name:          c.item.Name,
		ImageFilename: c.item.ImageFilename,
		WinRate:       c.row.WinRate,
		SampleSize:    c.row.SampleSize,
	}
}

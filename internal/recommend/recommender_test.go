package recommend_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/mocks"
	"github.com/ukpabik/mid-diff/internal/providers/ddragon"
	"github.com/ukpabik/mid-diff/internal/recommend"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

func newTestRecommender(t *testing.T) (recommend.Recommender, *mocks.MockStore, *mocks.MockCatalog) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().Version().Return("15.17.1").AnyTimes()

	return recommend.NewRecommender(st, catalog), st, catalog
}

func legendary(id int, name string) *ddragon.Item {
	return &ddragon.Item{ID: id, Name: name, Tags: []string{"Damage"}, ImageFilename: fmt.Sprintf("%d.png", id)}
}

func row(champion string, itemID int, winRate float64, samples int64) schema.ChampionItemWinrate {
	return schema.ChampionItemWinrate{
		ChampionName: champion,
		ItemID:       itemID,
		WinRate:      winRate,
		SampleSize:   samples,
	}
}

func itemIDs(build *recommend.BuildRecommendation) []int {
	ids := make([]int, 0, len(build.Items))
	for _, item := range build.Items {
		ids = append(ids, item.ItemID)
	}
	return ids
}

func TestOptimalBuild(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	// Rows arrive ordered by win rate descending, as the store delivers them.
	rows := []schema.ChampionItemWinrate{
		row("Ahri", 6655, 0.62, 40), // Luden's
		row("Ahri", 2003, 0.61, 35), // potion, filtered out
		row("Ahri", 3020, 0.60, 30), // boots, spliced into the second slot
		row("Ahri", 3089, 0.58, 28),
		row("Ahri", 3135, 0.55, 25),
		row("Ahri", 1026, 0.54, 22), // component, filtered out
		row("Ahri", 4645, 0.53, 20),
		row("Ahri", 3157, 0.52, 18),
		row("Ahri", 3116, 0.51, 15),
		row("Ahri", 3165, 0.50, 12), // seventh legendary, does not fit
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Ahri").Return(rows, nil)

	catalog.EXPECT().Item(6655).Return(legendary(6655, "Luden's Companion"))
	catalog.EXPECT().Item(2003).Return(&ddragon.Item{ID: 2003, Name: "Health Potion", Tags: []string{"Consumable"}})
	catalog.EXPECT().Item(3020).Return(&ddragon.Item{ID: 3020, Name: "Sorcerer's Shoes", Tags: []string{"Boots"}})
	catalog.EXPECT().Item(3089).Return(legendary(3089, "Rabadon's Deathcap"))
	catalog.EXPECT().Item(3135).Return(legendary(3135, "Void Staff"))
	catalog.EXPECT().Item(1026).Return(&ddragon.Item{ID: 1026, Name: "Blasting Wand", Tags: []string{"Damage"}, Into: []int{3089}})
	catalog.EXPECT().Item(4645).Return(legendary(4645, "Shadowflame"))
	catalog.EXPECT().Item(3157).Return(legendary(3157, "Zhonya's Hourglass"))
	catalog.EXPECT().Item(3116).Return(legendary(3116, "Rylai's Crystal Scepter"))
	catalog.EXPECT().Item(3165).Return(legendary(3165, "Morellonomicon"))

	build, err := rec.OptimalBuild(context.Background(), "Ahri")
	require.NoError(t, err)

	assert.Equal(t, "Ahri", build.Champion)
	assert.Equal(t, "15.17.1", build.CatalogVersion)
	require.Len(t, build.Items, domain.ItemSlots)
	assert.Equal(t, []int{6655, 3020, 3089, 3135, 4645, 3157, 3116}, itemIDs(build))

	assert.Equal(t, "Sorcerer's Shoes", build.Items[1].Name)
	assert.Equal(t, 0.60, build.Items[1].WinRate)
	assert.Equal(t, int64(40), build.Items[0].SampleSize)
}

func TestOptimalBuild_SkipsUnknownItems(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Zed", 9999, 0.70, 50), // not in the catalog
		row("Zed", 6693, 0.60, 30),
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Zed").Return(rows, nil)
	catalog.EXPECT().Item(9999).Return(nil)
	catalog.EXPECT().Item(6693).Return(legendary(6693, "Prowler's Claw"))

	build, err := rec.OptimalBuild(context.Background(), "Zed")
	require.NoError(t, err)
	assert.Equal(t, []int{6693}, itemIDs(build))
}

func TestOptimalBuild_BestBootWinsByWinRate(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Garen", 6631, 0.60, 30),
		row("Garen", 3047, 0.55, 25), // first boots in win rate order
		row("Garen", 3006, 0.50, 20), // lower win rate boots, dropped
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Garen").Return(rows, nil)
	catalog.EXPECT().Item(6631).Return(legendary(6631, "Stridebreaker"))
	catalog.EXPECT().Item(3047).Return(&ddragon.Item{ID: 3047, Name: "Plated Steelcaps", Tags: []string{"Boots"}})
	catalog.EXPECT().Item(3006).Return(&ddragon.Item{ID: 3006, Name: "Berserker's Greaves", Tags: []string{"Boots"}})

	build, err := rec.OptimalBuild(context.Background(), "Garen")
	require.NoError(t, err)
	assert.Equal(t, []int{6631, 3047}, itemIDs(build))
}

func TestOptimalBuild_JungleItemsAlwaysEligible(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Vi", 6693, 0.60, 30),
		row("Vi", 1103, 0.55, 25), // jungle item that still upgrades
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Vi").Return(rows, nil)
	catalog.EXPECT().Item(6693).Return(legendary(6693, "Prowler's Claw"))
	catalog.EXPECT().Item(1103).Return(&ddragon.Item{ID: 1103, Name: "Scorchclaw Pup", Tags: []string{"Jungle"}, Into: []int{6698}})

	build, err := rec.OptimalBuild(context.Background(), "Vi")
	require.NoError(t, err)
	assert.Equal(t, []int{6693, 1103}, itemIDs(build))
}

func TestOptimalBuild_FiltersStarterItems(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Annie", 1056, 0.66, 45), // Doran's Ring
		row("Annie", 6655, 0.60, 30),
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Annie").Return(rows, nil)
	catalog.EXPECT().Item(1056).Return(&ddragon.Item{ID: 1056, Name: "Doran's Ring", Tags: []string{"Damage"}})
	catalog.EXPECT().Item(6655).Return(legendary(6655, "Luden's Companion"))

	build, err := rec.OptimalBuild(context.Background(), "Annie")
	require.NoError(t, err)
	assert.Equal(t, []int{6655}, itemIDs(build))
}

func TestOptimalBuild_SparseDataStaysShort(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Bard", 3190, 0.58, 20),
		row("Bard", 3222, 0.54, 15),
		row("Bard", 3065, 0.51, 10),
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Bard").Return(rows, nil)
	catalog.EXPECT().Item(3190).Return(legendary(3190, "Locket of the Iron Solari"))
	catalog.EXPECT().Item(3222).Return(legendary(3222, "Mikael's Blessing"))
	catalog.EXPECT().Item(3065).Return(legendary(3065, "Spirit Visage"))

	build, err := rec.OptimalBuild(context.Background(), "Bard")
	require.NoError(t, err)
	assert.Equal(t, []int{3190, 3222, 3065}, itemIDs(build))
}

func TestOptimalBuild_OnlyBoots(t *testing.T) {
	rec, st, catalog := newTestRecommender(t)

	rows := []schema.ChampionItemWinrate{
		row("Singed", 3020, 0.57, 12),
	}
	st.EXPECT().WinratesByChampion(gomock.Any(), "Singed").Return(rows, nil)
	catalog.EXPECT().Item(3020).Return(&ddragon.Item{ID: 3020, Name: "Sorcerer's Shoes", Tags: []string{"Boots"}})

	build, err := rec.OptimalBuild(context.Background(), "Singed")
	require.NoError(t, err)
	assert.Equal(t, []int{3020}, itemIDs(build))
}

func TestOptimalBuild_NoData(t *testing.T) {
	rec, st, _ := newTestRecommender(t)

	st.EXPECT().WinratesByChampion(gomock.Any(), "Bard").Return([]schema.ChampionItemWinrate{}, nil)

	build, err := rec.OptimalBuild(context.Background(), "Bard")
	require.NoError(t, err)
	assert.Empty(t, build.Items)
}

func TestOptimalBuild_StoreError(t *testing.T) {
	rec, st, _ := newTestRecommender(t)

	st.EXPECT().WinratesByChampion(gomock.Any(), "Ahri").Return(nil, assert.AnError)

	_, err := rec.OptimalBuild(context.Background(), "Ahri")
	assert.ErrorIs(t, err, assert.AnError)
}

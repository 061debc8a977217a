package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Behamot007/herocalc/internal/config"
)

func testConfigs() (*config.MonstersConfig, *config.HeroesConfig, *config.QuestsConfig) {
	mc := &config.MonstersConfig{Monsters: []config.MonsterDef{
		{Name: "a1", Element: "air", HP: 10, Damage: 5, Cost: 30},
		{Name: "w1", Element: "water", HP: 12, Damage: 4, Cost: 30},
		{Name: "e1", Element: "earth", HP: 14, Damage: 3, Cost: 30},
		{Name: "f1", Element: "fire", HP: 8, Damage: 6, Cost: 30},
		{Name: "a2", Element: "air", HP: 16, Damage: 8, Cost: 120},
	}}
	hc := &config.HeroesConfig{Heroes: []config.HeroDef{
		{BaseName: "ladyoftwilight", Rarity: "common", Element: "air", HP: 12, Damage: 4},
		{BaseName: "tiny", Rarity: "legendary", Element: "earth", HP: 40, Damage: 15},
		{BaseName: "nebra", Rarity: "legendary", Element: "fire", HP: 28, Damage: 22},
	}}
	qc := &config.QuestsConfig{Quests: []config.QuestDef{
		{Number: 1, Lineup: []string{"a1"}},
		{Number: 3, Lineup: []string{"f1", "a1", "w1"}},
	}}
	return mc, hc, qc
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(testConfigs())
	require.NoError(t, err)
	return cat
}

func TestNewCatalogValidation(t *testing.T) {
	t.Run("valid configs build", func(t *testing.T) {
		cat := testCatalog(t)
		assert.Len(t, cat.BaseMonsters(), 5)
		assert.Len(t, cat.BaseHeroes(), 3)
	})

	t.Run("duplicate monster name", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		mc.Monsters = append(mc.Monsters, config.MonsterDef{Name: "a1"})
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "duplicate name")
	})

	t.Run("duplicate hero base name", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		hc.Heroes = append(hc.Heroes, config.HeroDef{BaseName: "tiny", Rarity: "rare"})
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "duplicate base name")
	})

	t.Run("unknown hero rarity", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		hc.Heroes[0].Rarity = "mythic"
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("hero with non-hero rarity", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		hc.Heroes[0].Rarity = "none"
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "does not mark a hero")
	})

	t.Run("quest referencing unknown monster", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		qc.Quests = append(qc.Quests, config.QuestDef{Number: 9, Lineup: []string{"zz"}})
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "unknown monster")
	})

	t.Run("oversized quest lineup", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		qc.Quests = append(qc.Quests, config.QuestDef{
			Number: 9,
			Lineup: []string{"a1", "a1", "a1", "a1", "a1", "a1", "a1"},
		})
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "exceeds army size")
	})

	t.Run("quest numbers start at 1", func(t *testing.T) {
		mc, hc, qc := testConfigs()
		qc.Quests = append(qc.Quests, config.QuestDef{Number: 0, Lineup: []string{"a1"}})
		_, err := NewCatalog(mc, hc, qc)
		assert.ErrorContains(t, err, "start at 1")
	})
}

func TestCatalogLookups(t *testing.T) {
	cat := testCatalog(t)

	t.Run("every base monster resolves to itself", func(t *testing.T) {
		for _, m := range cat.BaseMonsters() {
			ref, err := cat.MonsterByName(m.Name)
			require.NoError(t, err)
			assert.Equal(t, m, cat.Monster(ref))
		}
	})

	t.Run("unknown name is NotFound", func(t *testing.T) {
		_, err := cat.MonsterByName("a9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("hero names are not monster names", func(t *testing.T) {
		_, err := cat.MonsterByName("tiny")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("quest lineup range check", func(t *testing.T) {
		lineup, err := cat.QuestLineup(3)
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "a1", "w1"}, lineup)

		_, err = cat.QuestLineup(2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAddLeveledHero(t *testing.T) {
	cat := testCatalog(t)
	tiny := cat.BaseHeroes()[1]

	t.Run("derives a leveled copy", func(t *testing.T) {
		ref, err := cat.AddLeveledHero(tiny, 3)
		require.NoError(t, err)
		hero := cat.Monster(ref)
		assert.Equal(t, "tiny", hero.BaseName)
		assert.Equal(t, "tiny:3", hero.Name)
		assert.Equal(t, 3, hero.Level)
		assert.Equal(t, tiny.HP*3, hero.HP)
		assert.True(t, hero.IsHero())
	})

	t.Run("memoized per name and level", func(t *testing.T) {
		a, err := cat.AddLeveledHero(tiny, 7)
		require.NoError(t, err)
		b, err := cat.AddLeveledHero(tiny, 7)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		c, err := cat.AddLeveledHero(tiny, 8)
		require.NoError(t, err)
		assert.NotEqual(t, a, c)
	})

	t.Run("level below 1 is rejected", func(t *testing.T) {
		_, err := cat.AddLeveledHero(tiny, 0)
		assert.ErrorIs(t, err, ErrMalformedGrammar)
	})

	t.Run("template stays untouched", func(t *testing.T) {
		_, err := cat.AddLeveledHero(tiny, 50)
		require.NoError(t, err)
		assert.Equal(t, 0, cat.BaseHeroes()[1].Level)
		assert.Equal(t, "tiny", cat.BaseHeroes()[1].Name)
	})
}

func TestArmyBounds(t *testing.T) {
	var a Army
	assert.True(t, a.IsEmpty())
	for i := 0; i < ArmyMaxSize; i++ {
		require.NoError(t, a.Add(MonsterRef(i)))
	}
	assert.Equal(t, ArmyMaxSize, a.MonsterAmount)
	assert.ErrorIs(t, a.Add(0), ErrMalformedGrammar)
}

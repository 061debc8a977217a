package combat

import (
	"fmt"
	"strconv"

	"github.com/Behamot007/herocalc/internal/config"
)

type leveledKey struct {
	baseName string
	level    int
}

// Catalog is the reference data every parser and encoder works against:
// the ordered base monster list, the ordered hero templates, the quest
// lineup table and the runtime monster table that armies index into.
//
// The base data is immutable after construction. AddLeveledHero grows the
// runtime table; the catalog is single-session, single-goroutine state.
type Catalog struct {
	base      []Monster
	baseIndex map[string]int
	heroes    []Monster
	heroIndex map[string]int
	quests    map[int][]string

	reference []Monster
	byName    map[string]MonsterRef
	leveled   map[leveledKey]MonsterRef
}

// NewCatalog builds the catalog from loaded config and validates it:
// duplicate names, unknown rarities, oversized or dangling quest lineups
// are construction errors, not parse-time surprises.
func NewCatalog(mc *config.MonstersConfig, hc *config.HeroesConfig, qc *config.QuestsConfig) (*Catalog, error) {
	c := &Catalog{
		baseIndex: make(map[string]int, len(mc.Monsters)),
		heroIndex: make(map[string]int, len(hc.Heroes)),
		quests:    make(map[int][]string, len(qc.Quests)),
		byName:    make(map[string]MonsterRef, len(mc.Monsters)),
		leveled:   make(map[leveledKey]MonsterRef),
	}

	for i, def := range mc.Monsters {
		if def.Name == "" {
			return nil, fmt.Errorf("monster %d: empty name", i)
		}
		if _, dup := c.baseIndex[def.Name]; dup {
			return nil, fmt.Errorf("monster %q: duplicate name", def.Name)
		}
		m := Monster{
			BaseName: def.Name,
			Name:     def.Name,
			Rarity:   NoHero,
			Element:  def.Element,
			HP:       def.HP,
			Damage:   def.Damage,
			Cost:     def.Cost,
		}
		c.baseIndex[def.Name] = i
		c.base = append(c.base, m)
		c.byName[def.Name] = MonsterRef(len(c.reference))
		c.reference = append(c.reference, m)
	}

	for i, def := range hc.Heroes {
		if def.BaseName == "" {
			return nil, fmt.Errorf("hero %d: empty base name", i)
		}
		if _, dup := c.heroIndex[def.BaseName]; dup {
			return nil, fmt.Errorf("hero %q: duplicate base name", def.BaseName)
		}
		rarity, err := ParseRarity(def.Rarity)
		if err != nil {
			return nil, fmt.Errorf("hero %q: %w", def.BaseName, err)
		}
		if rarity == NoHero {
			return nil, fmt.Errorf("hero %q: rarity %q does not mark a hero", def.BaseName, def.Rarity)
		}
		c.heroIndex[def.BaseName] = i
		c.heroes = append(c.heroes, Monster{
			BaseName: def.BaseName,
			Name:     def.BaseName,
			Rarity:   rarity,
			Element:  def.Element,
			HP:       def.HP,
			Damage:   def.Damage,
		})
	}

	for _, q := range qc.Quests {
		if q.Number < 1 {
			return nil, fmt.Errorf("quest %d: numbers start at 1", q.Number)
		}
		if _, dup := c.quests[q.Number]; dup {
			return nil, fmt.Errorf("quest %d: duplicate number", q.Number)
		}
		if len(q.Lineup) > ArmyMaxSize {
			return nil, fmt.Errorf("quest %d: lineup of %d exceeds army size %d", q.Number, len(q.Lineup), ArmyMaxSize)
		}
		for _, name := range q.Lineup {
			if _, ok := c.baseIndex[name]; !ok {
				return nil, fmt.Errorf("quest %d: unknown monster %q", q.Number, name)
			}
		}
		c.quests[q.Number] = q.Lineup
	}

	return c, nil
}

// Monster resolves a handle back to its monster value.
func (c *Catalog) Monster(ref MonsterRef) Monster {
	return c.reference[ref]
}

// MonsterByName looks up an ordinary monster by its exact catalog name.
func (c *Catalog) MonsterByName(name string) (MonsterRef, error) {
	ref, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("monster %q: %w", name, ErrNotFound)
	}
	return ref, nil
}

// BaseHeroes returns the hero templates in catalog (replay index) order.
func (c *Catalog) BaseHeroes() []Monster {
	return c.heroes
}

// HeroIndex returns a hero's position in the base hero list.
func (c *Catalog) HeroIndex(baseName string) (int, bool) {
	i, ok := c.heroIndex[baseName]
	return i, ok
}

// BaseMonsterIndex returns an ordinary monster's position in the base list.
func (c *Catalog) BaseMonsterIndex(name string) (int, bool) {
	i, ok := c.baseIndex[name]
	return i, ok
}

// BaseMonsters returns the ordinary monsters in catalog order.
func (c *Catalog) BaseMonsters() []Monster {
	return c.base
}

// QuestLineup returns the fixed lineup for a quest number.
func (c *Catalog) QuestLineup(number int) ([]string, error) {
	lineup, ok := c.quests[number]
	if !ok {
		return nil, fmt.Errorf("quest %d: %w", number, ErrNotFound)
	}
	return lineup, nil
}

// AddLeveledHero registers (or reuses) the monster representing base at the
// given level and returns its handle. Entries are memoized per
// (baseName, level) so repeated input yields stable handles.
func (c *Catalog) AddLeveledHero(base Monster, level int) (MonsterRef, error) {
	if level < 1 {
		return 0, fmt.Errorf("hero %q level %d: %w", base.BaseName, level, ErrMalformedGrammar)
	}
	key := leveledKey{baseName: base.BaseName, level: level}
	if ref, ok := c.leveled[key]; ok {
		return ref, nil
	}
	hero := base
	hero.Name = base.BaseName + HeroLevelSeparator + strconv.Itoa(level)
	hero.Level = level
	hero.HP = base.HP * level
	hero.Damage = base.Damage * level
	ref := MonsterRef(len(c.reference))
	c.reference = append(c.reference, hero)
	c.leveled[key] = ref
	return ref, nil
}

// ArmyNames resolves an army to its monster names in battle order.
func (c *Catalog) ArmyNames(a Army) []string {
	names := make([]string, 0, a.MonsterAmount)
	for i := 0; i < a.MonsterAmount; i++ {
		names = append(names, c.Monster(a.Monsters[i]).Name)
	}
	return names
}

// Package combat defines the domain model of the calculator: monsters,
// armies, solve instances, the reference catalog and the replay encoding
// consumed by the game client.
package combat

import (
	"fmt"
	"time"
)

const (
	// ArmyMaxSize is the maximum number of combatants per side.
	ArmyMaxSize = 6
	// TournamentLines is the number of army lines in a tournament replay.
	TournamentLines = 3
)

// Rarity classifies a monster. NoHero marks ordinary monsters; anything
// else is a hero template.
type Rarity int

const (
	NoHero Rarity = iota
	Common
	Rare
	Legendary
)

var rarityNames = map[Rarity]string{
	NoHero:    "none",
	Common:    "common",
	Rare:      "rare",
	Legendary: "legendary",
}

func (r Rarity) String() string {
	if s, ok := rarityNames[r]; ok {
		return s
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// ParseRarity maps a catalog rarity literal to its Rarity value.
func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if name == s {
			return r, nil
		}
	}
	return NoHero, fmt.Errorf("rarity %q: %w", s, ErrNotFound)
}

// Monster is one catalog entry, either a base monster or a hero. Values are
// immutable once built; a leveled hero is a derived copy with Level set.
type Monster struct {
	BaseName string
	Name     string
	Rarity   Rarity
	Level    int
	Element  string
	HP       int
	Damage   int
	Cost     int64
}

// IsHero reports whether the monster is a hero template or a leveled hero.
func (m Monster) IsHero() bool {
	return m.Rarity != NoHero
}

// MonsterRef is a stable handle into the catalog's runtime monster table.
type MonsterRef int16

// Army is one side's combat lineup. Order is battle order and is preserved
// through parsing and replay encoding.
type Army struct {
	Monsters      [ArmyMaxSize]MonsterRef
	MonsterAmount int
}

// Add appends a monster to the army, keeping input order.
func (a *Army) Add(ref MonsterRef) error {
	if a.MonsterAmount >= ArmyMaxSize {
		return fmt.Errorf("army full (%d monsters): %w", ArmyMaxSize, ErrMalformedGrammar)
	}
	a.Monsters[a.MonsterAmount] = ref
	a.MonsterAmount++
	return nil
}

func (a Army) IsEmpty() bool {
	return a.MonsterAmount == 0
}

// Instance is one posed problem: a target army to defeat under a combatant
// cap. The solver fills BestSolution, CalculationTime and
// TotalFightsSimulated.
type Instance struct {
	Target        Army
	MaxCombatants int
	TargetSize    int

	BestSolution         Army
	CalculationTime      time.Duration
	TotalFightsSimulated int64
}

package combat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Behamot007/herocalc/internal/util"
)

// Grammar constants for lineup strings. HeroLevelSeparator splits a hero
// token into name and level ("nebra:32"); ElementSeparator delimits the
// monsters of one free-form lineup; quest lineups are written
// "quest<n>-<stage>" with a single stage digit.
const (
	HeroLevelSeparator   = ":"
	ElementSeparator     = ","
	QuestPrefix          = "quest"
	QuestNumberSeparator = "-"
)

// ParseHeroString splits a hero token into its template and level. The name
// must exactly match a hero base name; templates are scanned in catalog
// order and the first match wins (construction guarantees uniqueness).
func ParseHeroString(cat *Catalog, heroString string) (Monster, int, error) {
	name, levelPart, found := strings.Cut(heroString, HeroLevelSeparator)
	if !found {
		return Monster{}, 0, fmt.Errorf("hero %q: missing level separator: %w", heroString, ErrMalformedGrammar)
	}
	level, err := strconv.Atoi(levelPart)
	if err != nil {
		return Monster{}, 0, fmt.Errorf("hero %q level %q: %w", name, levelPart, ErrMalformedInteger)
	}
	for _, hero := range cat.BaseHeroes() {
		if hero.BaseName == name {
			return hero, level, nil
		}
	}
	return Monster{}, 0, fmt.Errorf("hero %q: %w", name, ErrNotFound)
}

// MakeArmyFromStrings parses one token per monster into an army, in token
// order. Hero tokens (containing the level separator) register a leveled
// hero; everything else is an exact monster name lookup. Any failing token
// aborts the whole army.
func MakeArmyFromStrings(cat *Catalog, tokens []string) (Army, error) {
	var army Army
	for _, token := range tokens {
		var ref MonsterRef
		if strings.Contains(token, HeroLevelSeparator) {
			hero, level, err := ParseHeroString(cat, token)
			if err != nil {
				return Army{}, err
			}
			ref, err = cat.AddLeveledHero(hero, level)
			if err != nil {
				return Army{}, err
			}
		} else {
			var err error
			ref, err = cat.MonsterByName(token)
			if err != nil {
				return Army{}, err
			}
		}
		if err := army.Add(ref); err != nil {
			return Army{}, err
		}
	}
	return army, nil
}

// MakeInstanceFromString converts one lineup string into an instance.
//
// Two grammars: "quest<n>-<k>" builds the target from quest n's fixed
// lineup and restricts the available slots to ArmyMaxSize-(k-1); anything
// else is a comma-separated monster list with unrestricted slots. Parsing
// is all-or-nothing.
func MakeInstanceFromString(cat *Catalog, instanceString string) (*Instance, error) {
	var target Army
	maxCombatants := ArmyMaxSize

	if strings.HasPrefix(instanceString, QuestPrefix) {
		dash := strings.Index(instanceString, QuestNumberSeparator)
		if dash < 0 || dash+1 >= len(instanceString) {
			return nil, fmt.Errorf("quest lineup %q: %w", instanceString, ErrMalformedGrammar)
		}
		number, err := strconv.Atoi(instanceString[len(QuestPrefix):dash])
		if err != nil {
			return nil, fmt.Errorf("quest lineup %q: %w", instanceString, ErrMalformedInteger)
		}
		// The stage is the single digit right after the dash, as ingame.
		stage, err := strconv.Atoi(instanceString[dash+1 : dash+2])
		if err != nil {
			return nil, fmt.Errorf("quest lineup %q stage: %w", instanceString, ErrMalformedInteger)
		}
		lineup, err := cat.QuestLineup(number)
		if err != nil {
			return nil, err
		}
		target, err = MakeArmyFromStrings(cat, lineup)
		if err != nil {
			return nil, err
		}
		maxCombatants = ArmyMaxSize - (stage - 1)
	} else {
		var err error
		target, err = MakeArmyFromStrings(cat, util.Split(instanceString, ElementSeparator))
		if err != nil {
			return nil, err
		}
	}

	return &Instance{
		Target:        target,
		MaxCombatants: maxCombatants,
		TargetSize:    target.MonsterAmount,
	}, nil
}

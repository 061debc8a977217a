package combat

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ReplayEmptySpot fills unused setup slots in the game client's replay
// format.
const ReplayEmptySpot = -1

// replayPayload is the game client's battle setup object. Field order is
// part of the wire format; the client rejects payloads with reordered keys.
type replayPayload struct {
	Winner string `json:"winner"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	Date   int64  `json:"date"`
	Title  string `json:"title"`
	Setup  []int  `json:"setup"`
	Shero  []int  `json:"shero"`
	Player []int  `json:"player"`
	Phero  []int  `json:"phero"`
}

// MakeBattleReplay encodes the battle between friendly and hostile into the
// Base64 replay string the ingame tournament page accepts. It never
// mutates its inputs.
func MakeBattleReplay(cat *Catalog, friendly, hostile Army) (string, error) {
	setup, err := replaySetup(cat, friendly)
	if err != nil {
		return "", err
	}
	player, err := replaySetup(cat, hostile)
	if err != nil {
		return "", err
	}
	payload := replayPayload{
		Winner: "Unknown",
		Left:   "Solution",
		Right:  "Instance",
		Date:   time.Now().Unix(),
		Title:  "Proposed Solution",
		Setup:  setup,
		Shero:  replayHeroes(cat, friendly),
		Player: player,
		Phero:  replayHeroes(cat, hostile),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// replaySetup projects an army onto the flat slot array the client expects:
// TournamentLines blocks of ArmyMaxSize slots, each block filled in reverse
// army order and padded with ReplayEmptySpot.
func replaySetup(cat *Catalog, army Army) ([]int, error) {
	setup := make([]int, ArmyMaxSize*TournamentLines)
	for i := range setup {
		if i%ArmyMaxSize < army.MonsterAmount {
			monster := cat.Monster(army.Monsters[army.MonsterAmount-i%ArmyMaxSize-1])
			number, err := replayMonsterNumber(cat, monster)
			if err != nil {
				return nil, err
			}
			setup[i] = number
		} else {
			setup[i] = ReplayEmptySpot
		}
	}
	return setup, nil
}

// replayMonsterNumber maps a monster to its ingame index: the base list
// position for ordinary monsters, -(heroIndex+2) for heroes. The offset is
// dictated by the game client. Every army monster came out of the catalog,
// so a miss here is an internal consistency error, not bad user input.
func replayMonsterNumber(cat *Catalog, monster Monster) (int, error) {
	if monster.IsHero() {
		i, ok := cat.HeroIndex(monster.BaseName)
		if !ok {
			return 0, fmt.Errorf("replay: hero %q missing from base hero list", monster.BaseName)
		}
		return -i - 2, nil
	}
	i, ok := cat.BaseMonsterIndex(monster.Name)
	if !ok {
		return 0, fmt.Errorf("replay: monster %q missing from base list", monster.Name)
	}
	return i, nil
}

// replayHeroes lists, per base hero in catalog order, the level of that
// hero's first occurrence in the army, or 0 when absent.
func replayHeroes(cat *Catalog, army Army) []int {
	levels := make([]int, len(cat.BaseHeroes()))
	for i, hero := range cat.BaseHeroes() {
		for j := 0; j < army.MonsterAmount; j++ {
			monster := cat.Monster(army.Monsters[j])
			if monster.IsHero() && monster.BaseName == hero.BaseName {
				levels[i] = monster.Level
				break
			}
		}
	}
	return levels
}

type instanceJSON struct {
	Target   []string `json:"target"`
	Solution []string `json:"solution"`
	Time     float64  `json:"time"`
	Fights   int64    `json:"fights"`
	Replay   string   `json:"replay"`
}

// JSON serializes the solved instance, including its replay string.
func (inst *Instance) JSON(cat *Catalog) ([]byte, error) {
	replay, err := MakeBattleReplay(cat, inst.BestSolution, inst.Target)
	if err != nil {
		return nil, err
	}
	return json.Marshal(instanceJSON{
		Target:   cat.ArmyNames(inst.Target),
		Solution: cat.ArmyNames(inst.BestSolution),
		Time:     inst.CalculationTime.Seconds(),
		Fights:   inst.TotalFightsSimulated,
		Replay:   replay,
	})
}

// Report renders the solved instance for the terminal, replay included when
// a solution exists.
func (inst *Instance) Report(cat *Catalog) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "\nSolution for %s:\n", strings.Join(cat.ArmyNames(inst.Target), " "))
	if !inst.BestSolution.IsEmpty() {
		fmt.Fprintf(&b, "  %s\n", strings.Join(cat.ArmyNames(inst.BestSolution), " "))
	} else {
		fmt.Fprintf(&b, "\nCould not find a solution that beats this lineup.\n")
	}
	fmt.Fprintf(&b, "  %d Fights simulated.\n", inst.TotalFightsSimulated)
	fmt.Fprintf(&b, "  Total Calculation Time: %s\n\n", inst.CalculationTime)
	if !inst.BestSolution.IsEmpty() {
		replay, err := MakeBattleReplay(cat, inst.BestSolution, inst.Target)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Battle Replay (Use on Ingame Tournament Page):\n%s\n\n", replay)
	}
	return b.String(), nil
}

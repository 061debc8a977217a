package combat

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeReplay(t *testing.T, replay string) (raw string, payload map[string]any) {
	t.Helper()
	decoded, err := base64.StdEncoding.DecodeString(replay)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(decoded, &payload))
	return string(decoded), payload
}

func intArray(t *testing.T, payload map[string]any, key string) []int {
	t.Helper()
	rawList, ok := payload[key].([]any)
	require.True(t, ok, "field %q", key)
	out := make([]int, len(rawList))
	for i, v := range rawList {
		out[i] = int(v.(float64))
	}
	return out
}

func TestMakeBattleReplay(t *testing.T) {
	cat := testCatalog(t)

	// Battle order a2 then nebra:30; base indices: a2=4, nebra is hero 2.
	friendly, err := MakeArmyFromStrings(cat, []string{"a2", "nebra:30"})
	require.NoError(t, err)
	hostile, err := MakeArmyFromStrings(cat, []string{"f1", "a1", "w1"})
	require.NoError(t, err)

	replay, err := MakeBattleReplay(cat, friendly, hostile)
	require.NoError(t, err)
	raw, payload := decodeReplay(t, replay)

	t.Run("field order matches the game client", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(raw, `{"winner":"Unknown","left":"Solution","right":"Instance","date":`), "got %s", raw)
		order := []string{`"winner"`, `"left"`, `"right"`, `"date"`, `"title"`, `"setup"`, `"shero"`, `"player"`, `"phero"`}
		last := -1
		for _, key := range order {
			idx := strings.Index(raw, key)
			require.GreaterOrEqual(t, idx, 0, "missing %s", key)
			assert.Greater(t, idx, last, "%s out of order", key)
			last = idx
		}
	})

	t.Run("literal fields", func(t *testing.T) {
		assert.Equal(t, "Unknown", payload["winner"])
		assert.Equal(t, "Solution", payload["left"])
		assert.Equal(t, "Instance", payload["right"])
		assert.Equal(t, "Proposed Solution", payload["title"])
		date := int64(payload["date"].(float64))
		assert.InDelta(t, time.Now().Unix(), date, 5)
	})

	t.Run("setup is reversed per line and padded", func(t *testing.T) {
		setup := intArray(t, payload, "setup")
		require.Len(t, setup, ArmyMaxSize*TournamentLines)
		for line := 0; line < TournamentLines; line++ {
			base := line * ArmyMaxSize
			// Last-added monster first: nebra (hero 2 -> -4), then a2 (index 4).
			assert.Equal(t, -4, setup[base])
			assert.Equal(t, 4, setup[base+1])
			for i := 2; i < ArmyMaxSize; i++ {
				assert.Equal(t, ReplayEmptySpot, setup[base+i])
			}
		}
	})

	t.Run("player side uses base monster indices", func(t *testing.T) {
		player := intArray(t, payload, "player")
		require.Len(t, player, ArmyMaxSize*TournamentLines)
		// Reversed: w1(1), a1(0), f1(3).
		assert.Equal(t, []int{1, 0, 3}, player[:3])
		assert.Equal(t, ReplayEmptySpot, player[3])
	})

	t.Run("hero level arrays follow catalog order", func(t *testing.T) {
		shero := intArray(t, payload, "shero")
		assert.Equal(t, []int{0, 0, 30}, shero)
		phero := intArray(t, payload, "phero")
		assert.Equal(t, []int{0, 0, 0}, phero)
	})
}

func TestReplayRoundTripIndices(t *testing.T) {
	cat := testCatalog(t)

	for _, names := range [][]string{
		{"a1"},
		{"a1", "w1", "e1", "f1", "a2"},
		{"tiny:9", "f1", "ladyoftwilight:2"},
	} {
		army, err := MakeArmyFromStrings(cat, names)
		require.NoError(t, err)
		replay, err := MakeBattleReplay(cat, army, Army{})
		require.NoError(t, err)
		_, payload := decodeReplay(t, replay)
		setup := intArray(t, payload, "setup")

		for pos := 0; pos < army.MonsterAmount; pos++ {
			monster := cat.Monster(army.Monsters[pos])
			var want int
			if monster.IsHero() {
				i, ok := cat.HeroIndex(monster.BaseName)
				require.True(t, ok)
				want = -i - 2
			} else {
				i, ok := cat.BaseMonsterIndex(monster.Name)
				require.True(t, ok)
				want = i
			}
			// Army position pos lands at reversed slot amount-pos-1.
			assert.Equal(t, want, setup[army.MonsterAmount-pos-1], "army %v pos %d", names, pos)
		}
	}
}

func TestFirstHeroOccurrenceWins(t *testing.T) {
	cat := testCatalog(t)
	tiny := cat.BaseHeroes()[1]

	var army Army
	ref5, err := cat.AddLeveledHero(tiny, 5)
	require.NoError(t, err)
	ref9, err := cat.AddLeveledHero(tiny, 9)
	require.NoError(t, err)
	require.NoError(t, army.Add(ref5))
	require.NoError(t, army.Add(ref9))

	replay, err := MakeBattleReplay(cat, army, Army{})
	require.NoError(t, err)
	_, payload := decodeReplay(t, replay)
	assert.Equal(t, []int{0, 5, 0}, intArray(t, payload, "shero"))
}

func TestInstanceSerialization(t *testing.T) {
	cat := testCatalog(t)

	inst, err := MakeInstanceFromString(cat, "quest1-1")
	require.NoError(t, err)
	solution, err := MakeArmyFromStrings(cat, []string{"a2"})
	require.NoError(t, err)
	inst.BestSolution = solution
	inst.CalculationTime = 1500 * time.Millisecond
	inst.TotalFightsSimulated = 42

	t.Run("JSON carries the replay", func(t *testing.T) {
		raw, err := inst.JSON(cat)
		require.NoError(t, err)
		var decoded struct {
			Target   []string `json:"target"`
			Solution []string `json:"solution"`
			Time     float64  `json:"time"`
			Fights   int64    `json:"fights"`
			Replay   string   `json:"replay"`
		}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, []string{"a1"}, decoded.Target)
		assert.Equal(t, []string{"a2"}, decoded.Solution)
		assert.Equal(t, 1.5, decoded.Time)
		assert.Equal(t, int64(42), decoded.Fights)
		_, payload := decodeReplay(t, decoded.Replay)
		assert.Equal(t, "Unknown", payload["winner"])
	})

	t.Run("report mentions solution and replay", func(t *testing.T) {
		report, err := inst.Report(cat)
		require.NoError(t, err)
		assert.Contains(t, report, "Solution for a1:")
		assert.Contains(t, report, "a2")
		assert.Contains(t, report, "42 Fights simulated.")
		assert.Contains(t, report, "Battle Replay")
	})

	t.Run("unsolved report has no replay", func(t *testing.T) {
		unsolved, err := MakeInstanceFromString(cat, "quest1-1")
		require.NoError(t, err)
		report, err := unsolved.Report(cat)
		require.NoError(t, err)
		assert.Contains(t, report, "Could not find a solution")
		assert.NotContains(t, report, "Battle Replay")
	})
}

package combat

import (
	"time"

	"go.uber.org/zap"
)

// Solver fills Instance.BestSolution, CalculationTime and
// TotalFightsSimulated for a parsed instance. availableHeroes are the
// leveled heroes the user owns; each may appear at most once in a
// solution.
type Solver interface {
	Solve(inst *Instance, availableHeroes []MonsterRef) error
}

// Fight resolves one battle deterministically: the front monsters of both
// armies trade damage simultaneously and fallen monsters expose the next
// slot. The left army wins only if it still has monsters standing when the
// right army is gone.
func Fight(cat *Catalog, left, right Army) bool {
	var leftHP, rightHP [ArmyMaxSize]int
	for i := 0; i < left.MonsterAmount; i++ {
		leftHP[i] = cat.Monster(left.Monsters[i]).HP
	}
	for i := 0; i < right.MonsterAmount; i++ {
		rightHP[i] = cat.Monster(right.Monsters[i]).HP
	}

	li, ri := 0, 0
	for li < left.MonsterAmount && ri < right.MonsterAmount {
		leftDamage := cat.Monster(left.Monsters[li]).Damage
		rightDamage := cat.Monster(right.Monsters[ri]).Damage
		if leftDamage == 0 && rightDamage == 0 {
			return false // stalemate counts as a loss for the attacker
		}
		leftHP[li] -= rightDamage
		rightHP[ri] -= leftDamage
		if leftHP[li] <= 0 {
			li++
		}
		if rightHP[ri] <= 0 {
			ri++
		}
	}
	return ri >= right.MonsterAmount && li < left.MonsterAmount
}

type poolEntry struct {
	ref      MonsterRef
	reusable bool
}

// BruteForceSolver searches battle orderings of the roster (owned heroes
// plus every base monster) for the smallest army that beats the target.
// Order matters in battle, so the search is over permutations; FightCap
// bounds the work instead of pruning cleverly.
type BruteForceSolver struct {
	cat *Catalog
	log *zap.Logger

	// FightCap stops the search after this many simulated fights.
	FightCap int64
}

const defaultFightCap = 2_000_000

func NewBruteForceSolver(cat *Catalog, log *zap.Logger) *BruteForceSolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &BruteForceSolver{cat: cat, log: log, FightCap: defaultFightCap}
}

func (s *BruteForceSolver) Solve(inst *Instance, availableHeroes []MonsterRef) error {
	start := time.Now()

	pool := make([]poolEntry, 0, len(availableHeroes)+len(s.cat.BaseMonsters()))
	for _, ref := range availableHeroes {
		pool = append(pool, poolEntry{ref: ref})
	}
	for _, m := range s.cat.BaseMonsters() {
		ref, err := s.cat.MonsterByName(m.Name)
		if err != nil {
			return err
		}
		pool = append(pool, poolEntry{ref: ref, reusable: true})
	}

	var fights int64
	var best Army
	found := false
	used := make([]bool, len(pool))

	// Smallest armies first, so the first win is also the smallest one.
	for size := 1; size <= inst.MaxCombatants && !found && fights < s.FightCap; size++ {
		found = s.search(inst, pool, used, Army{}, size, &fights, &best)
	}

	inst.BestSolution = best
	inst.CalculationTime = time.Since(start)
	inst.TotalFightsSimulated = fights
	s.log.Debug("solve finished",
		zap.Bool("found", found),
		zap.Int64("fights", fights),
		zap.Duration("took", inst.CalculationTime))
	return nil
}

func (s *BruteForceSolver) search(inst *Instance, pool []poolEntry, used []bool, army Army, size int, fights *int64, best *Army) bool {
	if army.MonsterAmount == size {
		*fights++
		if Fight(s.cat, army, inst.Target) {
			*best = army
			return true
		}
		return false
	}
	for i, entry := range pool {
		if *fights >= s.FightCap {
			return false
		}
		if !entry.reusable && used[i] {
			continue
		}
		next := army
		if err := next.Add(entry.ref); err != nil {
			return false
		}
		if !entry.reusable {
			used[i] = true
		}
		won := s.search(inst, pool, used, next, size, fights, best)
		if !entry.reusable {
			used[i] = false
		}
		if won {
			return true
		}
	}
	return false
}

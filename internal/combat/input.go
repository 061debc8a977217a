package combat

import (
	"fmt"

	"github.com/Behamot007/herocalc/internal/console"
	"github.com/Behamot007/herocalc/internal/util"
)

// doneToken ends the hero-level input loop early.
const doneToken = "done"

const heroInputHelp = "" +
	"Enter one hero per line as name" + HeroLevelSeparator + "level, for example nebra" + HeroLevelSeparator + "32.\n" +
	"Unknown names and malformed levels are skipped.\n" +
	"Type done or press enter twice to proceed.\n"

const lineupInputHelp = "" +
	"Enter one or more lineups separated by spaces.\n" +
	"A lineup is either " + QuestPrefix + "<number>" + QuestNumberSeparator + "<stage> (for example " + QuestPrefix + "12" + QuestNumberSeparator + "3)\n" +
	"or monsters separated by \"" + ElementSeparator + "\", heroes as name" + HeroLevelSeparator + "level, for example f8" + ElementSeparator + "a8" + ElementSeparator + "nebra" + HeroLevelSeparator + "32.\n"

// TakeHeroLevelInput prompts for the user's heroes, one per line, and
// returns the handles of those successfully added, in input order.
// Malformed hero lines are skipped silently; the loop ends on the done
// token or two consecutive empty lines.
func TakeHeroLevelInput(c *console.Console, cat *Catalog) []MonsterRef {
	if c.ShowsPrompts() {
		c.OutputMessage("\nEnter your Heroes with levels. Press enter after every Hero.", console.LevelVital, 0, true)
		c.OutputMessage("Press enter twice or type done to proceed without inputting additional Heroes.", console.LevelVital, 0, true)
	}
	var heroes []MonsterRef
	cancelCounter := 0
	for {
		input := c.GetResistantInput(fmt.Sprintf("Enter Hero %d: ", len(heroes)+1), heroInputHelp, console.RawFirst)
		if input == "" {
			cancelCounter++
		} else {
			cancelCounter = 0
			if hero, level, err := ParseHeroString(cat, input); err == nil {
				if ref, err := cat.AddLeveledHero(hero, level); err == nil {
					heroes = append(heroes, ref)
				}
			}
		}
		if input == doneToken || cancelCounter >= 2 {
			return heroes
		}
	}
}

// TakeInstanceInput prompts for a full line of lineup strings and parses
// every one of them. A single bad lineup discards the whole line and
// re-prompts; the returned batch is always completely parsed.
func TakeInstanceInput(c *console.Console, cat *Catalog, prompt string) []*Instance {
	for {
		input := c.GetResistantInput(prompt, lineupInputHelp, console.Raw)
		instanceStrings := util.Split(input, util.TokenSeparator)
		instances := make([]*Instance, 0, len(instanceStrings))
		complete := true
		for _, s := range instanceStrings {
			instance, err := MakeInstanceFromString(cat, s)
			if err != nil {
				complete = false
				break
			}
			instances = append(instances, instance)
		}
		if complete {
			return instances
		}
	}
}

package config

type QuestsConfig struct {
	Quests []QuestDef `yaml:"quests"`
}

// QuestDef is a fixed quest lineup, addressed by its ingame quest number.
type QuestDef struct {
	Number int      `yaml:"number"`
	Lineup []string `yaml:"lineup"`
}

package config

type MonstersConfig struct {
	Monsters []MonsterDef `yaml:"monsters"`
}

// MonsterDef describes one base monster. The position in the monsters list
// is the index the game client uses in replay setup arrays.
type MonsterDef struct {
	Name    string `yaml:"name"`
	Element string `yaml:"element"`
	HP      int    `yaml:"hp"`
	Damage  int    `yaml:"damage"`
	Cost    int64  `yaml:"cost"`
	Note    string `yaml:"note"`
}

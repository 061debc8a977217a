package config

type HeroesConfig struct {
	Heroes []HeroDef `yaml:"heroes"`
}

// HeroDef describes one hero template. The position in the heroes list is
// the hero's replay index (encoded negatively by the replay format). HP and
// Damage are per-level base values.
type HeroDef struct {
	BaseName string `yaml:"base_name"`
	Rarity   string `yaml:"rarity"`
	Element  string `yaml:"element"`
	HP       int    `yaml:"hp"`
	Damage   int    `yaml:"damage"`
	Note     string `yaml:"note"`
}

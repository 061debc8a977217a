package config

import (
	"embed"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed assets/*.yaml
var defaultAssets embed.FS

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func loadEmbedded(name string, out any) error {
	b, err := defaultAssets.ReadFile("assets/" + name)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadAll reads the catalog data from a config directory.
func LoadAll(dir string) (*MonstersConfig, *HeroesConfig, *QuestsConfig, error) {
	var mc MonstersConfig
	var hc HeroesConfig
	var qc QuestsConfig
	if err := loadYAML(filepath.Join(dir, "monsters.yaml"), &mc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "heroes.yaml"), &hc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "quests.yaml"), &qc); err != nil {
		return nil, nil, nil, err
	}
	return &mc, &hc, &qc, nil
}

// LoadDefault reads the catalog data compiled into the binary.
func LoadDefault() (*MonstersConfig, *HeroesConfig, *QuestsConfig, error) {
	var mc MonstersConfig
	var hc HeroesConfig
	var qc QuestsConfig
	if err := loadEmbedded("monsters.yaml", &mc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadEmbedded("heroes.yaml", &hc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadEmbedded("quests.yaml", &qc); err != nil {
		return nil, nil, nil, err
	}
	return &mc, &hc, &qc, nil
}

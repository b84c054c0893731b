package prefabs

import (
	"errors"
	"fmt"
)

const defaultLang = "en"

// MessagesSpec is the text catalogue for one language.
type MessagesSpec struct {
	Title       string `yaml:"title"`
	Instruction string `yaml:"instruction"`
	Score       string `yaml:"score"`
	Health      string `yaml:"health"`
	GameWon     string `yaml:"game_won"`
	GameOver    string `yaml:"game_over"`
	Paused      string `yaml:"paused"`
	Resume      string `yaml:"resume"`
	QuitToTitle string `yaml:"quit_to_title"`
}

// MessagesFile returns the catalogue file name for lang.
func MessagesFile(lang string) string {
	if lang == "" {
		lang = defaultLang
	}
	return fmt.Sprintf("messages_%s.yaml", lang)
}

func LoadMessages(lang string) (MessagesSpec, error) {
	return LoadSpec[MessagesSpec](MessagesFile(lang))
}

func (m MessagesSpec) Validate() error {
	var errs []error
	for _, f := range []struct {
		name, value string
	}{
		{"title", m.Title},
		{"instruction", m.Instruction},
		{"score", m.Score},
		{"health", m.Health},
		{"game_won", m.GameWon},
		{"game_over", m.GameOver},
		{"paused", m.Paused},
		{"resume", m.Resume},
		{"quit_to_title", m.QuitToTitle},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("prefabs: message %s is required", f.name))
		}
	}
	return errors.Join(errs...)
}

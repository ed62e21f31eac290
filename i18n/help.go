package i18n

import (
	"ZenTime/stopwatch"
	"fmt"

	"gopkg.in/yaml.v3"
)

// HelpPath is the location of the help text inside the assets FS.
const HelpPath = "assets/help.yaml"

// Help returns the help text for the current language, falling back to
// english when the language has no entry.
func Help(reader stopwatch.AppContentReader) (string, error) {
	data, err := reader.ReadFile(HelpPath)
	if err != nil {
		return "", fmt.Errorf("read help: %w", err)
	}

	var texts map[string]string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return "", fmt.Errorf("unmarshal help: %w", err)
	}

	if text, ok := texts[lang]; ok {
		return text, nil
	}
	if text, ok := texts["en"]; ok {
		return text, nil
	}
	return "", fmt.Errorf("help has no entry for %q or en", lang)
}

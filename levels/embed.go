package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed *.csv
var LevelsFS embed.FS

// Load reads and parses a level, preferring ./levels/<name> on disk over the embedded copy.
func Load(name string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = LevelsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	records, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return records, nil
}

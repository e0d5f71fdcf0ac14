package driver

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// validateOutput decodes the formatted document with an independent TOML
// implementation; a failure means the formatter produced broken output.
func validateOutput(formatted string) error {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(formatted), &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("formatted output is not valid TOML at %d:%d: %w", row, col, err)
		}
		return fmt.Errorf("formatted output is not valid TOML: %w", err)
	}
	return nil
}

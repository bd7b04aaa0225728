package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fuzzyface/pkg/errors"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// LoadStyle reads the style store at path. A missing file yields the
// default style. Values are routed through [style.Apply], so an
// out-of-range hand length is clamped rather than rejected. Unknown keys
// are ignored.
func LoadStyle(path string) (style.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return style.Default(), nil
	}
	if err != nil {
		return style.Default(), errors.Wrap(errors.ErrCodeConfig, err, "read style store")
	}

	stored := style.Default()
	if err := toml.Unmarshal(data, &stored); err != nil {
		return style.Default(), errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse %s", filepath.Base(path))
	}
	cfg, _ := style.Apply(style.Default(), stored.Event())
	return cfg, nil
}

// SaveStyle writes cfg to the style store at path, creating its directory.
func SaveStyle(path string, cfg style.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfig, err, "create style store dir")
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# fuzzyface style settings")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode style")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfig, err, "write style store")
	}
	return nil
}

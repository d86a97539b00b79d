package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ukaji3/tablechart-go/pkg/tablechart"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads a YAML option file over the default option bag.
// Keys absent from the file keep their defaults.
func LoadOptions(path string) (tablechart.Options, error) {
	opts := tablechart.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("options file: %w", err)
	}
	for i, c := range opts.Colors {
		if _, err := colorful.Hex(c); err != nil {
			return opts, fmt.Errorf("options file: colors[%d] %q is not a #rrggbb color", i, c)
		}
	}
	if opts.Width != nil && *opts.Width <= 0 {
		return opts, fmt.Errorf("options file: width must be positive, got %d", *opts.Width)
	}
	if opts.Height != nil && *opts.Height <= 0 {
		return opts, fmt.Errorf("options file: height must be positive, got %d", *opts.Height)
	}
	return opts, nil
}

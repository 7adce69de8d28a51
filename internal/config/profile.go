package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shaharia-lab/salon-notify/internal/notification"
)

// LoadProfile reads the business profile from a YAML file. An empty path or
// a missing file yields the built-in profile; fields absent from the file
// keep their built-in values.
func LoadProfile(path string) (notification.BusinessProfile, error) {
	if path == "" {
		return notification.DefaultProfile(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return notification.DefaultProfile(), nil
		}
		return notification.BusinessProfile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p notification.BusinessProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return notification.BusinessProfile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p.WithDefaults(), nil
}

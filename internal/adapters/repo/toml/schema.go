package toml

import "fmt"

const currentSchemaVersion = 1

type legendFileSchema struct {
	Version    int                 `toml:"version"`
	Categories []legendEntrySchema `toml:"categories"`
}

func (s *legendFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s legendFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported category legend schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type legendEntrySchema struct {
	Category  int    `toml:"category"`
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	CreatedAt string `toml:"created_at"`
}

package config

const (
	// ToolName is the reserved record name of the shared tool config.
	ToolName = "steamer"
	// ToolOwner is the owner written into the tool config record.
	ToolOwner = "steamerjs"
)

// Keys of the built-in tool defaults.
const (
	KeyNPM          = "NPM"
	KeyPluginPrefix = "PLUGIN_PREFIX"
	KeyKitPrefix    = "KIT_PREFIX"
	KeyTeamPrefix   = "TEAM_PREFIX"
)

// DefaultConfig returns the built-in tool settings. Each call returns a new
// map, so callers may modify the result freely.
func DefaultConfig() map[string]any {
	return map[string]any{
		KeyNPM:          "npm",
		KeyPluginPrefix: "steamer-plugin-",
		KeyKitPrefix:    "steamer-",
		KeyTeamPrefix:   "steamer-team-",
	}
}

// ReadToolConfig reads the shared tool config for a scope, merging global
// under local unless scope is Global.
func (s *Store) ReadToolConfig(scope Scope) map[string]any {
	return s.ReadConfig(ReadOptions{Name: ToolName, Scope: scope})
}

// ReadToolDefaultConfig layers the tool config over DefaultConfig.
func (s *Store) ReadToolDefaultConfig() map[string]any {
	return Merge(DefaultConfig(), s.ReadToolConfig(Local))
}

// CreateToolConfig writes the shared tool config. It fails with ErrExists
// when the record is present and overwrite is false.
func (s *Store) CreateToolConfig(payload map[string]any, scope Scope, overwrite bool) error {
	return s.create(ToolOwner, payload, CreateOptions{
		Name:      ToolName,
		Scope:     scope,
		Overwrite: overwrite,
	})
}

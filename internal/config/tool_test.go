package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := map[string]any{
		"NPM":           "npm",
		"PLUGIN_PREFIX": "steamer-plugin-",
		"KIT_PREFIX":    "steamer-",
		"TEAM_PREFIX":   "steamer-team-",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("DefaultConfig() = %v, want %v", cfg, want)
	}

	cfg[KeyNPM] = "yarn"
	if DefaultConfig()[KeyNPM] != "npm" {
		t.Error("DefaultConfig() must return a fresh map on every call")
	}
}

func TestReadToolDefaultConfig_NoToolConfig(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	got := env.store.ReadToolDefaultConfig()
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("ReadToolDefaultConfig() = %v, want %v", got, DefaultConfig())
	}
}

func TestReadToolDefaultConfig_Override(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	err := env.store.CreateToolConfig(map[string]any{"NPM": "tnpm", "REGISTRY": "mirror"}, Local, false)
	if err != nil {
		t.Fatalf("CreateToolConfig error: %v", err)
	}

	got := env.store.ReadToolDefaultConfig()
	want := DefaultConfig()
	want["NPM"] = "tnpm"
	want["REGISTRY"] = "mirror"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadToolDefaultConfig() = %v, want %v", got, want)
	}
}

func TestReadToolConfig_GlobalAndLocal(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.CreateToolConfig(map[string]any{"NPM": "cnpm", "A": "g"}, Global, false); err != nil {
		t.Fatalf("create global: %v", err)
	}
	if err := env.store.CreateToolConfig(map[string]any{"A": "l"}, Local, false); err != nil {
		t.Fatalf("create local: %v", err)
	}

	got := env.store.ReadToolConfig(Local)
	want := map[string]any{"NPM": "cnpm", "A": "l"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadToolConfig(Local) = %v, want %v", got, want)
	}

	global := env.store.ReadToolConfig(Global)
	if global["A"] != "g" {
		t.Errorf("ReadToolConfig(Global)[A] = %v, want g", global["A"])
	}
}

func TestCreateToolConfig_File(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.CreateToolConfig(map[string]any{"NPM": "npm"}, Global, false); err != nil {
		t.Fatalf("CreateToolConfig error: %v", err)
	}

	path := filepath.Join(env.home, ".steamer", "steamer.js")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading tool config: %v", err)
	}
	if !strings.HasPrefix(string(data), "module.exports = ") {
		t.Errorf("tool config should be a module file, got %q", data)
	}
	if !strings.Contains(string(data), `"plugin": "steamerjs"`) {
		t.Errorf("tool config owner should be steamerjs, got %q", data)
	}
}

func TestCreateToolConfig_Exists(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.CreateToolConfig(map[string]any{"NPM": "npm"}, Local, false); err != nil {
		t.Fatalf("CreateToolConfig error: %v", err)
	}

	err := env.store.CreateToolConfig(map[string]any{"NPM": "yarn"}, Local, false)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("error = %v, want ErrExists", err)
	}
	if !strings.Contains(env.out.String(), "exists") {
		t.Errorf("error should be reported to console, got %q", env.out.String())
	}
	if got := env.store.ReadToolConfig(Local)["NPM"]; got != "npm" {
		t.Errorf("NPM = %v, want npm", got)
	}

	if err := env.store.CreateToolConfig(map[string]any{"NPM": "yarn"}, Local, true); err != nil {
		t.Fatalf("CreateToolConfig overwrite error: %v", err)
	}
	if got := env.store.ReadToolConfig(Local)["NPM"]; got != "yarn" {
		t.Errorf("NPM = %v, want yarn", got)
	}
}

func TestSetValue(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.SetValue("server.port", 8080, CreateOptions{}); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}
	if err := env.store.SetValue("name", "demo", CreateOptions{}); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}

	got := env.store.ReadConfig(ReadOptions{})
	want := map[string]any{
		"server": map[string]any{"port": 8080},
		"name":   "demo",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadConfig() = %v, want %v", got, want)
	}

	v, ok := env.store.GetValue("server.port", ReadOptions{})
	if !ok || v != 8080 {
		t.Errorf("GetValue(server.port) = %v, %v; want 8080, true", v, ok)
	}
	if _, ok := env.store.GetValue("server.missing", ReadOptions{}); ok {
		t.Error("GetValue(server.missing) should report missing")
	}
}

func TestSetValue_ToolConfigKeepsOwner(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.SetValue("NPM", "yarn", CreateOptions{Name: ToolName, Scope: Global}); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}

	data, err := os.ReadFile(env.store.Path(Global, ToolName, ""))
	if err != nil {
		t.Fatalf("reading tool config: %v", err)
	}
	if !strings.Contains(string(data), `"plugin": "steamerjs"`) {
		t.Errorf("tool config owner should be steamerjs, got %q", data)
	}
	if got := env.store.ReadToolDefaultConfig()[KeyNPM]; got != "yarn" {
		t.Errorf("NPM = %v, want yarn", got)
	}
}

func TestSetValue_OnlyTouchesSelectedScope(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	if err := env.store.CreateConfig(map[string]any{"g": "global"}, CreateOptions{Scope: Global}); err != nil {
		t.Fatal(err)
	}
	if err := env.store.SetValue("l", "local", CreateOptions{}); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}

	local := env.store.ReadRecord(env.store.Path(Local, "", ""))
	if !reflect.DeepEqual(local, map[string]any{"l": "local"}) {
		t.Errorf("local record = %v, want only l", local)
	}
}

func TestDeleteValue(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")

	payload := map[string]any{
		"keep":   true,
		"server": map[string]any{"port": 1},
	}
	if err := env.store.CreateConfig(payload, CreateOptions{}); err != nil {
		t.Fatal(err)
	}

	if err := env.store.DeleteValue("server.port", CreateOptions{}); err != nil {
		t.Fatalf("DeleteValue error: %v", err)
	}
	if err := env.store.DeleteValue("missing", CreateOptions{}); err != nil {
		t.Fatalf("DeleteValue(missing) error: %v", err)
	}

	got := env.store.ReadConfig(ReadOptions{})
	if !reflect.DeepEqual(got, map[string]any{"keep": true}) {
		t.Errorf("ReadConfig() = %v, want only keep", got)
	}
}

func TestSetValue_EmptyKey(t *testing.T) {
	env := newTestEnv(t, "steamer-plugin")
	if err := env.store.SetValue("", 1, CreateOptions{}); err == nil {
		t.Error("expected error for empty key")
	}
	if err := env.store.DeleteValue("", CreateOptions{}); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"8080", 8080},
		{"0.5", 0.5},
		{"true", true},
		{"null", nil},
		{`"quoted"`, "quoted"},
		{"plain", "plain"},
		{"[1,2]", []any{1, 2}},
		{"1 2", "1 2"},
		{`{"a":"b"}`, map[string]any{"a": "b"}},
		{"", ""},
	}

	for _, tt := range tests {
		got := ParseValue(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestGlobalModules_NodePath(t *testing.T) {
	t.Setenv(EnvNodePath, "/Users/steamer/")

	got, ok := GlobalModules()
	if !ok || got != "/Users/steamer/" {
		t.Errorf("GlobalModules() = %q, %v; want /Users/steamer/, true", got, ok)
	}
}

func TestGlobalModules_Prefix(t *testing.T) {
	prefix := t.TempDir()
	modules := filepath.Join(prefix, "lib", "node_modules")
	if runtime.GOOS == "windows" {
		modules = filepath.Join(prefix, "node_modules")
	}
	if err := os.MkdirAll(modules, 0o755); err != nil {
		t.Fatal(err)
	}

	for _, unset := range []string{"", "   ", "undefined", "null"} {
		t.Setenv(EnvNodePath, unset)
		t.Setenv("npm_config_prefix", prefix)

		got, ok := GlobalModules()
		if !ok || got != modules {
			t.Errorf("NODE_PATH=%q: GlobalModules() = %q, %v; want %q, true", unset, got, ok, modules)
		}
	}
}

func TestGlobalModules_Missing(t *testing.T) {
	t.Setenv(EnvNodePath, "")
	t.Setenv("npm_config_prefix", filepath.Join(t.TempDir(), "nowhere"))

	got, ok := GlobalModules()
	if ok || got != "" {
		t.Errorf("GlobalModules() = %q, %v; want empty, false", got, ok)
	}
}

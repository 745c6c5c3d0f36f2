package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvNodePath overrides the global modules directory.
const EnvNodePath = "NODE_PATH"

// GlobalModules returns the directory global plugins are installed in.
// NODE_PATH wins when it holds a meaningful value; otherwise the npm global
// modules directory is returned if it exists. A miss reports false.
func GlobalModules() (string, bool) {
	if v := meaningfulEnv(EnvNodePath); v != "" {
		return v, true
	}
	dir := npmGlobalModules()
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true
	}
	return "", false
}

// meaningfulEnv ignores blank values and the "undefined"/"null" strings left
// behind when a JavaScript host assigns those to the environment.
func meaningfulEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	switch v {
	case "", "undefined", "null":
		return ""
	}
	return v
}

func npmGlobalModules() string {
	prefix := npmPrefix()
	if runtime.GOOS == "windows" {
		return filepath.Join(prefix, "node_modules")
	}
	return filepath.Join(prefix, "lib", "node_modules")
}

// npmPrefix mirrors npm's own prefix discovery, minus reading npmrc files.
func npmPrefix() string {
	if v := meaningfulEnv("npm_config_prefix"); v != "" {
		return v
	}
	if v := meaningfulEnv("PREFIX"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "npm")
		}
	}
	if node, err := exec.LookPath("node"); err == nil {
		if resolved, err := filepath.EvalSymlinks(node); err == nil {
			node = resolved
		}
		if runtime.GOOS == "windows" {
			return filepath.Dir(node)
		}
		return filepath.Dir(filepath.Dir(node))
	}
	return "/usr/local"
}

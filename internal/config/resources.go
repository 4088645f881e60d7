package config

import (
	"os"
	"path/filepath"
)

// FindResourceDir looks for a directory called name in the working directory
// and then next to the executable.
func FindResourceDir(name string) (string, bool) {
	var roots []string
	if wd, err := os.Getwd(); err == nil {
		roots = append(roots, wd)
	}
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(exe))
	}
	return findResourceDir(name, roots...)
}

func findResourceDir(name string, roots ...string) (string, bool) {
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		return name, isDir(name)
	}
	for _, root := range roots {
		candidate := filepath.Join(root, name)
		if isDir(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// ResolveAsset returns path unchanged when it is absolute or exists relative
// to the working directory; otherwise it is joined onto resourceDir.
func ResolveAsset(path, resourceDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if resourceDir == "" {
		return path
	}
	return filepath.Join(resourceDir, path)
}

// ResolveAssets rewrites the model and texture paths through the resource
// directory. It reports the directory used, if any.
func (c *Config) ResolveAssets() string {
	dir, ok := FindResourceDir(c.Assets.ResourceDir)
	if !ok {
		dir = ""
	}
	c.Assets.Model = ResolveAsset(c.Assets.Model, dir)
	c.Assets.Texture = ResolveAsset(c.Assets.Texture, dir)
	return dir
}

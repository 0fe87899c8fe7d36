package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ToolSearchDirs returns where bundled tools are looked up before PATH:
// bin/ next to the executable, ../bin for development, and ./bin.
func ToolSearchDirs() []string {
	dirs := make([]string, 0, 3)
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		dirs = append(dirs, filepath.Join(exeDir, "bin"), filepath.Join(exeDir, "..", "bin"))
	}
	return append(dirs, "bin")
}

// ResolveTool returns the path to run for a tool name. Names containing a
// path separator are returned unchanged. Unresolvable names are also returned
// unchanged so that spawning reports the failure.
func ResolveTool(name string) string {
	return resolveTool(name, ToolSearchDirs())
}

func resolveTool(name string, dirs []string) string {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return name
	}

	fileName := name
	if runtime.GOOS == OSWindows && filepath.Ext(fileName) == "" {
		fileName += ".exe"
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, fileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			if abs, err := filepath.Abs(candidate); err == nil {
				return abs
			}
			return candidate
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return name
}

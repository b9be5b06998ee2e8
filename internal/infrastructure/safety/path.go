package safety

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SafeMinDepth is the minimum number of path segments a deletion
// target must have after symlink resolution. Anything shallower sits
// too close to the filesystem root to be an acceptable target.
const SafeMinDepth = 3

var (
	ErrNotDirectory  = errors.New("path does not exist or is not a directory")
	ErrRootPath      = errors.New("path is a filesystem root")
	ErrTooShallow    = errors.New("path is too close to the filesystem root")
	ErrForbiddenPath = errors.New("path is a protected system or user directory")
)

// PathValidator decides whether a folder is an acceptable deletion
// target. It is a pure predicate over the filesystem and a static
// forbidden list; any failure to resolve or inspect the path counts
// as rejection.
type PathValidator struct {
	minDepth  int
	forbidden []string
}

// NewPathValidator builds a validator with the per-platform default
// forbidden list plus any extra protected paths.
func NewPathValidator(extra ...string) *PathValidator {
	return &PathValidator{
		minDepth:  SafeMinDepth,
		forbidden: append(DefaultForbiddenPaths(), extra...),
	}
}

// DefaultForbiddenPaths returns the known-critical directories that
// must never be accepted as a deletion target on the current platform.
// The list is a heuristic safety net, not a sandbox.
func DefaultForbiddenPaths() []string {
	var paths []string
	if runtime.GOOS == "windows" {
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		paths = []string{
			`C:\`,
			systemRoot,
			filepath.Join(systemRoot, "System32"),
			`C:\Program Files`,
			`C:\Program Files (x86)`,
		}
	} else {
		paths = []string{
			"/",
			"/bin", "/boot", "/dev", "/etc", "/home", "/lib",
			"/opt", "/proc", "/root", "/sbin", "/srv", "/sys",
			"/usr", "/usr/bin", "/usr/local", "/var",
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, home)
	}
	return paths
}

// ValidateFolder returns nil only if path exists, is a directory, is
// not a filesystem root, has at least SafeMinDepth segments after
// symlink resolution, and does not match the forbidden list
// (case-insensitively).
func (v *PathValidator) ValidateFolder(path string) error {
	if path == "" {
		return ErrNotDirectory
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Broken symlinks, permission failures and missing paths all
		// land here. Resolution failure means rejection.
		return fmt.Errorf("resolving %q: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("inspecting %q: %w", resolved, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", resolved, ErrNotDirectory)
	}

	if isFilesystemRoot(resolved) {
		return fmt.Errorf("%q: %w", resolved, ErrRootPath)
	}

	if pathDepth(resolved) < v.minDepth {
		return fmt.Errorf("%q: %w", resolved, ErrTooShallow)
	}

	for _, bad := range v.forbidden {
		candidate := bad
		if r, err := filepath.EvalSymlinks(bad); err == nil {
			candidate = r
		}
		if strings.EqualFold(filepath.Clean(candidate), resolved) {
			return fmt.Errorf("%q: %w", resolved, ErrForbiddenPath)
		}
	}

	return nil
}

// isFilesystemRoot reports whether p is its own anchor, e.g. "/" or
// `C:\`.
func isFilesystemRoot(p string) bool {
	clean := filepath.Clean(p)
	return clean == string(filepath.Separator) ||
		clean == filepath.VolumeName(clean)+string(filepath.Separator)
}

// pathDepth counts the segments of an absolute path. A drive letter
// counts as a segment, so `C:\Users\alice` and `/home/user/docs` are
// both depth 3.
func pathDepth(p string) int {
	vol := filepath.VolumeName(p)
	rest := strings.Trim(filepath.ToSlash(p[len(vol):]), "/")

	depth := 0
	if vol != "" {
		depth++
	}
	if rest == "" {
		return depth
	}
	return depth + len(strings.Split(rest, "/"))
}

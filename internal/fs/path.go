package fs

import "strings"

const (
	Separator = "/"
	Root      = "/"
)

// Canonicalize turns a user supplied name into an absolute path relative to cwd. Names starting
// with a separator are already absolute. Dot segments and repeated separators are kept as-is.
func Canonicalize(name, cwd string) string {
	if strings.HasPrefix(name, Separator) {
		return name
	}

	return Join(cwd, name)
}

// Join appends name to dir with exactly one separator between them.
func Join(dir, name string) string {
	if dir == Root {
		return Root + name
	}

	return dir + Separator + name
}

// ParentOf strips the final segment of path. Paths without a separator past the first byte
// belong to the root.
func ParentOf(path string) string {
	i := strings.LastIndex(path, Separator)
	if i <= 0 {
		return Root
	}

	return path[:i]
}

// IsDirectChildOf reports whether candidate sits exactly one segment below dir.
func IsDirectChildOf(candidate, dir string) bool {
	rest, ok := below(candidate, dir)
	return ok && !strings.Contains(rest, Separator)
}

// IsDescendantOf reports whether candidate sits anywhere below dir.
func IsDescendantOf(candidate, dir string) bool {
	_, ok := below(candidate, dir)
	return ok
}

// IsRootLevel reports whether path is listed at the root: either a literal name without any
// separator or a single segment behind the leading one.
func IsRootLevel(path string) bool {
	if path == Root || path == "" {
		return false
	}

	return !strings.Contains(path[1:], Separator)
}

// LastSegment returns the display name of path.
func LastSegment(path string) string {
	i := strings.LastIndex(path, Separator)
	if i < 0 {
		return path
	}

	return path[i+1:]
}

func below(candidate, dir string) (string, bool) {
	prefix := dir + Separator
	if dir == Root {
		prefix = Root
	}

	if candidate == dir || !strings.HasPrefix(candidate, prefix) {
		return "", false
	}

	return candidate[len(prefix):], true
}

package domain

import "strings"

const pathSeparator = "/"

// Path is a key into the mock tree: the names from a top-level entry down
// to the node, e.g. "system/logs" -> ["system", "logs"].
type Path []string

func NewPath(key string) Path {
	key = strings.Trim(key, pathSeparator)
	if key == "" {
		return Path{}
	}
	return Path(strings.Split(key, pathSeparator))
}

func (p Path) String() string {
	return strings.Join(p, pathSeparator)
}

// Join returns a new path with name appended. It never aliases p.
func (p Path) Join(name string) Path {
	joined := make(Path, len(p), len(p)+1)
	copy(joined, p)
	return append(joined, name)
}

// Depth is the number of ancestors above the node.
func (p Path) Depth() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// WorkingDir is the textual location shown in the prompt. It is purely
// cosmetic and never checked against the mock tree.
type WorkingDir struct {
	home string
	path string
}

func NewWorkingDir(home string) WorkingDir {
	if home == "" {
		home = DefaultHomeToken
	}
	return WorkingDir{home: home, path: home}
}

func (w WorkingDir) String() string {
	return w.path
}

func (w WorkingDir) AtHome() bool {
	return w.path == w.home
}

// Enter descends into dir. From home the path is replaced by dir.
func (w WorkingDir) Enter(dir string) WorkingDir {
	if w.AtHome() {
		w.path = dir
		return w
	}
	w.path = w.path + pathSeparator + dir
	return w
}

// Up drops the last segment, clamping at home.
func (w WorkingDir) Up() WorkingDir {
	if w.AtHome() {
		return w
	}
	i := strings.LastIndex(w.path, pathSeparator)
	if i <= 0 {
		w.path = w.home
		return w
	}
	w.path = w.path[:i]
	return w
}

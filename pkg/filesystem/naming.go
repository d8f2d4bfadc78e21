package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NextAvailableName returns a filename in dir that does not collide with an
// existing entry. If name itself is free it is returned unchanged; otherwise
// a numeric suffix is inserted before the extension ("readme.txt" becomes
// "readme 2.txt"), trying the lowest integer from 2 upward.
func NextAvailableName(fs FS, dir, name string) string {
	if !exists(fs, filepath.Join(dir, name)) {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s %d%s", base, n, ext)
		if !exists(fs, filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func exists(fs FS, path string) bool {
	_, err := fs.Lstat(path)
	return err == nil
}

package fs

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htminl"
)

// IsHTML reports whether path has an .html or .htm extension, ignoring case.
func IsHTML(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".html") || strings.EqualFold(ext, ".htm")
}

// Discover expands paths, plus any listed one per line in the file at list
// (if non-empty), into the set of HTML files they name. Directories are
// searched recursively. Paths that do not exist are skipped. Each file is
// returned once, as an absolute path, in the order first found.
func Discover(paths []string, list string) ([]string, error) {
	if list != "" {
		listed, err := ReadList(list)
		if err != nil {
			return nil, err
		}
		paths = append(append([]string(nil), paths...), listed...)
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if info.Mode().IsRegular() && IsHTML(abs) {
				add(abs)
			}
			continue
		}
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are skipped, not fatal.
				if d != nil && d.IsDir() && path != abs {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && IsHTML(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadList reads paths from a text file, one per line. Blank lines are
// ignored.
func ReadList(list string) ([]string, error) {
	f, err := os.Open(list)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, htminl.Errorf(htminl.ENOTFOUND, "list file %s not found", list)
		}
		return nil, htminl.Errorf(htminl.EINVALID, "unable to read list file %s", list)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, htminl.Errorf(htminl.EINVALID, "unable to read list file %s", list)
	}
	return out, nil
}

package logview

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// RotatedFiles returns the rotated generations of the given active log
// file (<base>_<N><ext> siblings), ordered by rotation index. Names
// whose middle segment is not a positive integer are not rotation files
// and are ignored.
func RotatedFiles(path string) ([]string, error) {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	type rotated struct {
		path  string
		index int
	}
	var files []rotated

	prefix := base + "_"
	for _, e := range dirEntries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		mid := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)
		n, err := strconv.Atoi(mid)
		if err != nil || n < 1 {
			continue
		}
		files = append(files, rotated{path: filepath.Join(dir, name), index: n})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].index < files[j].index
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

package processor

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// discover walks the root recursively and returns every file whose name
// ends with the discovery match suffix, in walk order.
func (p *implProcessor) discover() ([]string, error) {
	var files []string

	err := filepath.WalkDir(p.cfg.Paths.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.HasSuffix(d.Name(), p.cfg.Discovery.Match) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

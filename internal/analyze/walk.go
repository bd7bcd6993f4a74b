package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// textExtensions are the file types a tree scan reads. Anything else is
// assumed binary and skipped.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".bp":  true,
	".log": true,
}

// File reads one file and analyzes every exchange string found in it.
func File(path string) ([]Report, Summary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	reports, summary := Text(string(content))
	for i := range reports {
		reports[i].Source = path
	}
	return reports, summary, nil
}

// Tree walks a directory and analyzes every text file in it. Each report
// carries the file it came from.
func Tree(root string) ([]Report, Summary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, Summary{}, err
	}
	if !info.IsDir() {
		return File(root)
	}

	// fastwalk runs the callback concurrently, so the shared slice needs
	// a lock.
	var (
		mu  sync.Mutex
		all []Report
	)
	conf := fastwalk.Config{Follow: false}

	err = fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !textExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		reports, _, err := File(path)
		if err != nil {
			return nil
		}
		mu.Lock()
		all = append(all, reports...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, Summary{}, fmt.Errorf("walk %s: %w", root, err)
	}

	for i := range all {
		all[i].Index = i + 1
	}
	return all, Summarize(all), nil
}

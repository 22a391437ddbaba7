package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DumpHTML saves a page source snapshot for troubleshooting when extraction
// comes up empty. Returns the path of the written file.
func DumpHTML(dir, name, html string) (string, error) {
	if dir == "" {
		dir = filepath.Join("logs", "pages")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.html", name, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", err
	}

	return path, nil
}

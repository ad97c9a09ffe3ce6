package agentform

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// AcceptedExtensions are the reference-data formats the form takes.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".csv", ".xlsx", ".xls"}

func Accepted(name string) bool {
	return slices.Contains(AcceptedExtensions, strings.ToLower(filepath.Ext(name)))
}

// FormatFileSize renders bytes as shown in the file list, e.g. "1.5 KB".
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

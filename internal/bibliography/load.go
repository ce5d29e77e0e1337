package bibliography

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LoadLibrary reads a bibliography file, choosing the parser by extension.
func LoadLibrary(path string, logger *slog.Logger) (*Library, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".bib", ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path) // #nosec G304 -- bibliography path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBibliographyRead, err)
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	if ext == ".bib" {
		entries, err = ParseBibTeX(f)
	} else {
		var data []byte
		data, err = readLimited(f, MaxLibrarySize)
		if err == nil {
			entries, err = ParseCSL(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lib := NewLibrary(entries, logger)
	if logger != nil {
		logger.Debug("bibliography loaded", "path", path, "entries", lib.Len(), "skipped", len(entries)-lib.Len())
	}
	return lib, nil
}

// readLimited reads r, failing when it holds more than limit bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBibliographyRead, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrBibliographyRead, limit)
	}
	return data, nil
}

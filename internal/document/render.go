package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"psiquitools/internal/config"
	"psiquitools/internal/logging"

	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned for export paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Renderer draws a document to a writer.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}

// PageDimensions returns the width and height in millimetres of a named page size.
func PageDimensions(size string) (float64, float64) {
	switch strings.ToLower(size) {
	case "letter":
		return 215.9, 279.4
	default:
		return 210, 297
	}
}

// GeometryFromConfig builds the millimetre page geometry from config.
func GeometryFromConfig(c config.DocumentConfig) Geometry {
	w, h := PageDimensions(c.PageSize)
	return Geometry{
		PageWidth:    w,
		PageHeight:   h,
		MarginTop:    c.MarginTop,
		MarginLeft:   c.MarginLeft,
		MarginBottom: c.MarginBottom,
		LineHeight:   c.LineHeight,
	}
}

// ForPath picks a renderer from the file extension of path.
func ForPath(path string, c config.DocumentConfig) (Renderer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewPDF(c), nil
	case ".txt":
		return NewText(DefaultTextGeometry), nil
	case ".md":
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use .pdf, .txt or .md)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WriteFile renders doc into path, creating parent directories as needed.
func WriteFile(path string, c config.DocumentConfig, doc *Document) error {
	r, err := ForPath(path, c)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := r.Render(bw, doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logging.Get(logging.CategoryDocument).Info("document exported",
		zap.String("path", path),
		zap.String("title", doc.Title))
	return nil
}

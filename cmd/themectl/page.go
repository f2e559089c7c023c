package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/themectl/internal/document"
	"github.com/jmylchreest/themectl/internal/theme"
)

// loadPage parses the page at path. An empty path yields a detached document.
func loadPage(path string) (*document.Document, error) {
	if path == "" {
		return document.NewDetached(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return document.Parse(f)
}

// openPage runs the page load lifecycle: the default is ensured as soon as
// the page is loaded and the stored preference is applied once it is ready.
func openPage(st theme.Store, path string) (*document.Document, *theme.Manager, error) {
	doc, err := loadPage(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load page: %w", err)
	}

	m := theme.NewManager(st, doc.Root())
	if err := m.EnsureDefault(); err != nil {
		return nil, nil, err
	}
	m.BindReady(doc)
	doc.Ready()

	return doc, m, nil
}

// writePage renders doc to path atomically via a temp file.
func writePage(doc *document.Document, path string) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// outputPath returns where a page read from in should be written.
func outputPath(in, out string) string {
	if out != "" {
		return out
	}
	return in
}

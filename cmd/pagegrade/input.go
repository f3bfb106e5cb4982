package main

import (
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
)

const (
	// stdinPath is the input path that reads standard input.
	stdinPath = "-"

	// stdinURL is the page URL of standard input.
	stdinURL = "file:///stdin.html"
)

// pageRenderer renders a Markdown document as a complete HTML page.
type pageRenderer interface {
	Page(markdown string) (string, error)
}

// readInput loads one input as HTML. Markdown files are rendered to a full
// HTML page first. The page URL is the file's file:// URL.
func readInput(path string, stdin io.Reader, markdown pageRenderer) (analyze.Input, error) {
	if path == stdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return analyze.Input{}, pagegrade.Errorf(pagegrade.EINTERNAL, "read stdin: %v", err)
		}
		return analyze.Input{Name: "stdin", URL: stdinURL, HTML: string(b)}, nil
	}

	b, err := readFile(path)
	if err != nil {
		return analyze.Input{}, err
	}

	in := analyze.Input{Name: path, URL: fileURL(path), HTML: string(b)}
	if isMarkdown(path) {
		html, err := markdown.Page(string(b))
		if err != nil {
			return analyze.Input{}, err
		}
		in.HTML = html
	}
	return in, nil
}

// readText loads a plain text input.
func readText(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", pagegrade.Errorf(pagegrade.EINTERNAL, "read stdin: %v", err)
		}
		return string(b), nil
	}
	b, err := readFile(path)
	return string(b), err
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pagegrade.Errorf(pagegrade.ENOTFOUND, "input %q not found", path)
	} else if err != nil {
		return nil, pagegrade.Errorf(pagegrade.EINTERNAL, "read %q: %v", path, err)
	}
	return b, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// fileURL returns the file:// URL of path.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

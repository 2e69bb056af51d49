// Package fs stores converted pages as Markdown files.
package fs

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemd"
	yamlv3 "gopkg.in/yaml.v3"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "invalid page URL: %v", err)
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// frontmatter is the YAML header of a written page.
type frontmatter struct {
	Source    string `yaml:"source,omitempty"`
	Title     string `yaml:"title"`
	Converted string `yaml:"converted"`
}

const frontmatterDelim = "---\n"

// FormatPage formats a page with YAML frontmatter recording its source,
// title and conversion date.
func FormatPage(page *pagemd.Page, converted time.Time) string {
	header, err := yamlv3.Marshal(frontmatter{
		Source:    page.URL,
		Title:     page.Title,
		Converted: converted.Format("2006-01-02"),
	})
	if err != nil {
		// A struct of strings always marshals.
		panic(err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelim)
	b.Write(header)
	b.WriteString(frontmatterDelim)
	b.WriteString("\n")
	b.WriteString(page.Content)
	return b.String()
}

// parsePage splits a written page into its frontmatter and body. ok is false
// when the data has no frontmatter.
func parsePage(data []byte) (fm frontmatter, body []byte, ok bool) {
	rest, found := bytes.CutPrefix(data, []byte(frontmatterDelim))
	if !found {
		return fm, nil, false
	}
	header, body, found := bytes.Cut(rest, []byte("\n"+frontmatterDelim))
	if !found {
		return fm, nil, false
	}
	if err := yamlv3.Unmarshal(header, &fm); err != nil {
		return fm, nil, false
	}
	return fm, bytes.TrimPrefix(body, []byte("\n")), true
}

// Ensure Writer implements pagemd.PageWriter at compile time.
var _ pagemd.PageWriter = (*Writer)(nil)

// Writer writes pages as Markdown files to a directory. Files are named
// after the page title, or after the URL path when the page has no title.
// Pages whose names collide get numeric suffixes (name_2.md, name_3.md).
// A Writer is safe for concurrent use.
type Writer struct {
	baseDir string

	// Now returns the conversion date written to frontmatter.
	Now func() time.Time

	mu sync.Mutex
	// claimed maps paths written by this Writer to the digest of the page
	// written there.
	claimed map[string]uint64
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now, claimed: make(map[string]uint64)}
}

// WritePage writes page to disk and returns its path. A file that already
// holds the same source, title and content is left untouched, so repeated
// runs keep the original conversion date. A file from an earlier run with the
// same source and title is replaced. Any other file at the target path, or a
// different page written earlier by this Writer, makes the page move to the
// next free suffixed name. Files are replaced atomically.
func (w *Writer) WritePage(ctx context.Context, page *pagemd.Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := w.relPath(page)
	if err != nil {
		return "", err
	}
	digest := pageDigest(page)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.claimed == nil {
		w.claimed = make(map[string]uint64)
	}

	for n := 1; ; n++ {
		fullPath := filepath.Join(w.baseDir, withSuffix(relPath, n))

		if owner, ok := w.claimed[fullPath]; ok {
			if owner == digest {
				return fullPath, nil
			}
			continue
		}

		existing, err := os.ReadFile(fullPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return "", err
		case !samePage(existing, page):
			continue
		case unchanged(existing, page):
			w.claimed[fullPath] = digest
			return fullPath, nil
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return "", err
		}
		content := FormatPage(page, w.Now())
		if err := writeFileAtomic(fullPath, []byte(content)); err != nil {
			return "", err
		}
		w.claimed[fullPath] = digest
		return fullPath, nil
	}
}

// withSuffix returns relPath for n == 1 and inserts _n before the .md
// extension otherwise.
func withSuffix(relPath string, n int) string {
	if n == 1 {
		return relPath
	}
	return strings.TrimSuffix(relPath, ".md") + "_" + strconv.Itoa(n) + ".md"
}

func pageDigest(page *pagemd.Page) uint64 {
	d := xxhash.New()
	d.WriteString(page.URL)
	d.WriteString("\x00")
	d.WriteString(page.Title)
	d.WriteString("\x00")
	d.WriteString(page.Content)
	return d.Sum64()
}

// relPath picks the file name for page and rejects paths escaping the base
// directory.
func (w *Writer) relPath(page *pagemd.Page) (string, error) {
	if page.Title != "" || page.URL == "" {
		return pagemd.Filename(page.Title), nil
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return "", err
	}
	relPath = filepath.Clean(filepath.FromSlash(relPath))
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) || filepath.IsAbs(relPath) {
		return "", pagemd.Errorf(pagemd.EINVALID, "path traversal in page URL %q", page.URL)
	}
	return relPath, nil
}

// samePage reports whether existing was written for the same source and
// title as page.
func samePage(existing []byte, page *pagemd.Page) bool {
	fm, _, ok := parsePage(existing)
	return ok && fm.Source == page.URL && fm.Title == page.Title
}

func unchanged(existing []byte, page *pagemd.Page) bool {
	fm, body, ok := parsePage(existing)
	if !ok {
		return false
	}
	return fm.Source == page.URL &&
		fm.Title == page.Title &&
		xxhash.Sum64(body) == xxhash.Sum64String(page.Content)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".pagemd-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package main_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/pagemd"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(conv pagemd.Converter) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdin:     strings.NewReader("<p>stdin</p>"),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Converter: conv,
	}, &stdout, &stderr
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes url and options to converter", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		var gotOpts pagemd.Options
		conv := &mock.Converter{
			ConvertFn: func(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
				gotURL, gotOpts = pageURL, opts
				return "# T", nil
			},
		}
		deps, stdout, _ := newDeps(conv)
		cmd := &main.ConvertCmd{
			Files:   []string{"-"},
			URL:     "https://example.com/a",
			Options: pagemd.Options{IncludeImages: true},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", gotURL)
		assert.Equal(t, pagemd.Options{IncludeImages: true}, gotOpts)
		assert.Equal(t, "# T\n", stdout.String())
	})

	t.Run("writes pages titled by first heading", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
				return "# Title\n\n## Sub", nil
			},
		}
		var written *pagemd.Page
		deps, stdout, _ := newDeps(conv)
		deps.Writer = &mock.PageWriter{
			WritePageFn: func(_ context.Context, page *pagemd.Page) (string, error) {
				written = page
				return "out/title.md", nil
			},
		}
		cmd := &main.ConvertCmd{Files: []string{"-"}, URL: "https://example.com/a"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, "Title", written.Title)
		assert.Equal(t, "https://example.com/a", written.URL)
		assert.Equal(t, "# Title\n\n## Sub", written.Content)
		assert.Equal(t, "out/title.md\n", stdout.String())
	})

	t.Run("rejects reading stdin twice", func(t *testing.T) {
		t.Parallel()

		called := false
		conv := &mock.Converter{
			ConvertFn: func(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
				called = true
				return "", nil
			},
		}
		deps, _, stderr := newDeps(conv)
		cmd := &main.ConvertCmd{Files: []string{"-", "-"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
		assert.False(t, called)
		assert.Contains(t, stderr.String(), "stdin (-) can be read only once")
	})

	t.Run("converts concurrently and prints in input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []string
		for _, name := range []string{"a", "b", "c", "d"} {
			files = append(files, writeFileIn(t, dir, name+".html", name))
		}

		var mu sync.Mutex
		seen := map[string]bool{}
		conv := &mock.Converter{
			ConvertFn: func(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
				mu.Lock()
				seen[rawHTML] = true
				mu.Unlock()
				return strings.ToUpper(rawHTML), nil
			},
		}
		deps, stdout, _ := newDeps(conv)
		cmd := &main.ConvertCmd{Files: files, Concurrency: 3}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "A\nB\nC\nD\n", stdout.String())
		assert.Len(t, seen, 4)
	})

	t.Run("continues past failures and returns the first", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		files := []string{
			writeFileIn(t, dir, "a.html", "ok"),
			writeFileIn(t, dir, "b.html", "bad"),
			writeFileIn(t, dir, "c.html", "ok"),
		}
		conv := &mock.Converter{
			ConvertFn: func(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
				if rawHTML == "bad" {
					return "", pagemd.Errorf(pagemd.ENOTFOUND, "content not found")
				}
				return "done", nil
			},
		}
		deps, stdout, stderr := newDeps(conv)
		cmd := &main.ConvertCmd{Files: files, Concurrency: 2}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagemd.ENOTFOUND, pagemd.ErrorCode(err))
		assert.Equal(t, "done\ndone\n", stdout.String())
		assert.Equal(t, "error: "+files[1]+": content not found\n", stderr.String())
	})
}

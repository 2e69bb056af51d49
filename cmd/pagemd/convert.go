package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/pagemd"
	"golang.org/x/sync/errgroup"
)

// stdinFile names standard input in the file list.
const stdinFile = "-"

// Run converts every file and prints the results in input order. A failing
// file does not stop the others; the first failure is returned after all
// files are processed.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if err := c.validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	results := make([]string, len(c.Files))
	errs := make([]error, len(c.Files))

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, file := range c.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = c.convertFile(gctx, deps, file)
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for i, file := range c.Files {
		if errs[i] != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", file, errorText(errs[i]))
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		fmt.Fprintln(deps.Stdout, results[i])
	}
	return firstErr
}

func (c *ConvertCmd) validate() error {
	stdin := 0
	for _, f := range c.Files {
		if f == stdinFile {
			stdin++
		}
	}
	if stdin > 1 {
		return pagemd.Errorf(pagemd.EINVALID, "stdin (-) can be read only once")
	}
	return nil
}

// convertFile converts one file. It returns the Markdown, the outline, or
// the path written to, depending on the command mode.
func (c *ConvertCmd) convertFile(ctx context.Context, deps *Dependencies, file string) (string, error) {
	rawHTML, err := readInput(deps.Stdin, file)
	if err != nil {
		return "", err
	}

	markdown, err := deps.Converter.Convert(rawHTML, c.URL, c.Options)
	if err != nil {
		return "", err
	}

	if c.Outline {
		return strings.TrimSuffix(pagemd.Outline(pagemd.ExtractSections(markdown)), "\n"), nil
	}
	if deps.Writer == nil {
		return markdown, nil
	}
	return deps.Writer.WritePage(ctx, &pagemd.Page{
		URL:     c.URL,
		Title:   pagemd.Title(markdown),
		Content: markdown,
	})
}

func readInput(stdin io.Reader, file string) (string, error) {
	if file == stdinFile {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}

// errorText returns the message of application errors and the full text of
// any other error, such as a missing file.
func errorText(err error) string {
	var e *pagemd.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

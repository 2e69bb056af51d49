package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagemd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Converter pagemd.Converter

	// Writer stores converted pages. When nil, Markdown goes to Stdout.
	Writer pagemd.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files       []string `arg:"" name:"file" help:"Saved HTML files to convert (- reads stdin)"`
	URL         string   `short:"u" help:"Page URL, used to resolve links and pick a site profile"`
	NoImages    bool     `help:"Omit images"`
	NoLinks     bool     `help:"Render links as plain text"`
	NoTables    bool     `help:"Omit tables"`
	Engine      string   `short:"e" default:"native" enum:"native,commonmark" help:"Markdown engine (native, commonmark)"`
	Extractor   string   `short:"x" default:"profile" enum:"profile,trafilatura,readability" help:"Article extractor (profile, trafilatura, readability)"`
	Profiles    string   `short:"p" type:"path" help:"YAML file with extra site profiles"`
	InlineMax   int      `default:"100" help:"Single-line code shorter than this renders inline"`
	Out         string   `short:"o" type:"path" xor:"output" help:"Write Markdown files to this directory instead of stdout"`
	Outline     bool     `xor:"output" help:"Print the heading outline instead of the article"`
	Concurrency int      `short:"c" default:"4" help:"Files converted in parallel"`
	Verbose     bool     `short:"v" help:"Log every conversion to stderr"`
}

// ConvertCmd converts a set of files.
type ConvertCmd struct {
	Files       []string
	URL         string
	Options     pagemd.Options
	Outline     bool
	Concurrency int
}

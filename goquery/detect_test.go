package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/fwojciec/pagemd/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "docusaurus skip link",
			html: `<html data-theme="light"><body><a id="__docusaurus_skipToContent_fallback" href="#x">Skip</a></body></html>`,
			want: "docusaurus",
		},
		{
			name: "mkdocs color scheme",
			html: `<html><body data-md-color-scheme="default"><div class="md-content">x</div></body></html>`,
			want: "mkdocs",
		},
		{
			name: "sphinx read the docs sidebar",
			html: `<html><body><nav class="wy-nav-side"></nav><div class="rst-content"></div></body></html>`,
			want: "sphinx",
		},
		{
			name: "vitepress before vuepress",
			html: `<html><body><div id="VPContent"><div class="VPDoc"><div class="vp-doc">x</div></div></div></body></html>`,
			want: "vitepress",
		},
		{
			name: "vuepress default theme",
			html: `<html><body><div class="theme-default-content">x</div></body></html>`,
			want: "vuepress",
		},
		{
			name: "gitbook html classes",
			html: `<html class="circular-corners theme-clean"><body><main>x</main></body></html>`,
			want: "gitbook",
		},
		{
			name: "nextra navbar",
			html: `<html><body><div class="nextra-navbar"></div><main>x</main></body></html>`,
			want: "nextra",
		},
		{
			name: "meta generator wins over markers",
			html: `<html><head><meta name="generator" content="Sphinx 7.2.6"></head><body><div class="theme-default-content">x</div></body></html>`,
			want: "sphinx",
		},
	}

	profiles := yaml.DefaultProfiles()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := goquery.Detect(parse(t, tt.html), profiles)

			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Label())
		})
	}

	t.Run("returns nil for plain pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="Hugo 0.120"></head><body><article>x</article></body></html>`

		assert.Nil(t, goquery.Detect(parse(t, html), profiles))
	})

	t.Run("ignores host-only profiles", func(t *testing.T) {
		t.Parallel()

		hostOnly := &pagemd.Profiles{Platforms: []pagemd.Profile{{Host: "example.com"}}}

		assert.Nil(t, goquery.Detect(parse(t, `<html><body>x</body></html>`), hostOnly))
	})
}

func TestConverter_Convert_DetectedFramework(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Intro | Docs</title></head><body>
<nav class="navbar">Docs Blog</nav>
<div class="theme-doc-sidebar-container"><a href="/docs/a">A</a></div>
<main><article><div class="theme-doc-markdown markdown">
<h1>Introduction<a class="hash-link" href="#introduction"></a></h1>
<p>Welcome.</p>
</div><div class="theme-doc-footer">Edit this page</div></article></main>
</body></html>`

	md := convert(t, html, "https://docs.example.dev/intro", pagemd.DefaultOptions())

	assert.Equal(t, "# Introduction\n\n# Introduction\n\nWelcome.", md)
}

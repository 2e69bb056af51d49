package pagemd_test

import (
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "lowercases ascii", title: "Hello World", want: "hello_world.md"},
		{name: "keeps digits", title: "Go 1.25 Release", want: "go_1_25_release.md"},
		{name: "replaces non-ascii runes", title: "Go语言", want: "go__.md"},
		{name: "empty title", title: "", want: "article.md"},
		{name: "whitespace title", title: "   ", want: "article.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagemd.Filename(tt.title))
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns first level-1 heading", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Main", pagemd.Title("## Intro\n\n# Main\n\n# Other"))
	})

	t.Run("returns empty string without level-1 heading", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagemd.Title("## Intro\n\ntext"))
	})
}

func TestValidatePageURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts http pages", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, pagemd.ValidatePageURL("https://zhuanlan.zhihu.com/p/123"))
	})

	t.Run("accepts empty url", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, pagemd.ValidatePageURL(""))
	})

	t.Run("rejects browser-internal pages", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{"chrome://settings", "about:blank", "edge://flags", "moz-extension://abc/popup.html"} {
			err := pagemd.ValidatePageURL(u)
			require.Error(t, err, u)
			assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
		}
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		t.Parallel()

		err := pagemd.ValidatePageURL("http://[::1")

		require.Error(t, err)
		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
	})
}

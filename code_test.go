package pagemd_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		htmlFlavored bool
		want         string
	}{
		{
			name:  "expands tabs and keeps indentation",
			input: "func f() {\n\treturn\n}",
			want:  "func f() {\n    return\n}",
		},
		{
			name:  "unifies line endings",
			input: "a\r\nb\rc",
			want:  "a\nb\nc",
		},
		{
			name:  "strips line numbers",
			input: "1. x := 1\n2: y := 2\n  3. z := 3",
			want:  "x := 1\ny := 2\nz := 3",
		},
		{
			name:  "collapses blank runs",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "trims line ends and blank edges",
			input: "\n\n   \n  a := 1   \n\n",
			want:  "  a := 1",
		},
		{
			name:  "replaces invisible spaces",
			input: "a\u00a0=\u200b1",
			want:  "a =1",
		},
		{
			name:         "decodes entities and line breaks",
			input:        "if a &lt; b {<br>  run(&quot;x&quot;, &#39;y&#39;) &amp;&amp; ok<br/>}",
			htmlFlavored: true,
			want:         "if a < b {\n  run(\"x\", 'y') && ok\n}",
		},
		{
			name:         "strips inline tags",
			input:        `<span class="kw">const</span> x = <span>1</span>;<BR />x++`,
			htmlFlavored: true,
			want:         "const x = 1;\nx++",
		},
		{
			name:  "plain text keeps entities",
			input: "a &lt; b",
			want:  "a &lt; b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagemd.NormalizeCode(tt.input, tt.htmlFlavored))
		})
	}
}

func TestNormalizeCode_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\t1. package main\r\n\r\n\r\n\r\n2. func main() {}\t \n",
		"  10: x\n11: 12: y\n1.5 z",
		"&amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt;<br>next &nbsp; line",
		"<div><span>a</span>\n\n\n\n<br><br><br>b</div>",
		"\u200b\u00a0\n\n   \n",
		"x <y",
		"&amp;amp;amp;amp;amp;amp;amp;amp;amp;lt;b&gt;",
		strings.Repeat("&amp;", 40) + "lt;br&gt;x",
	}

	for _, flavored := range []bool{false, true} {
		for _, in := range inputs {
			once := pagemd.NormalizeCode(in, flavored)
			assert.Equal(t, once, pagemd.NormalizeCode(once, flavored), "input %q flavored=%v", in, flavored)
		}
	}
}

func TestNormalizeCode_DeeplyEscapedMarkup(t *testing.T) {
	t.Parallel()

	got := pagemd.NormalizeCode("&amp;amp;amp;amp;amp;amp;amp;amp;amp;lt;b&gt;bold", true)

	assert.Equal(t, "bold", got)
}

func TestFormatCode(t *testing.T) {
	t.Parallel()

	t.Run("blank code renders nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagemd.FormatCode(pagemd.CodeBlock{Text: "  \n "}, pagemd.DefaultInlineCodeMax))
	})

	t.Run("short single line renders inline", func(t *testing.T) {
		t.Parallel()

		got := pagemd.FormatCode(pagemd.CodeBlock{Text: "x=1", Language: "go"}, pagemd.DefaultInlineCodeMax)

		assert.Equal(t, " `x=1` ", got)
	})

	t.Run("long single line renders fenced", func(t *testing.T) {
		t.Parallel()

		long := "fmt.Println(\"" + strings.Repeat("a", 100) + "\")"

		got := pagemd.FormatCode(pagemd.CodeBlock{Text: long}, pagemd.DefaultInlineCodeMax)

		assert.Equal(t, "\n\n```\n"+long+"\n```\n\n", got)
	})

	t.Run("multi-line renders fenced with lowercased language", func(t *testing.T) {
		t.Parallel()

		got := pagemd.FormatCode(pagemd.CodeBlock{Text: "a\nb", Language: "Python"}, pagemd.DefaultInlineCodeMax)

		assert.Equal(t, "\n\n```python\na\nb\n```\n\n", got)
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		t.Parallel()

		got := pagemd.FormatCode(pagemd.CodeBlock{Text: "go test ./..."}, 5)

		assert.Equal(t, "\n\n```\ngo test ./...\n```\n\n", got)
	})
}

package pagemd

// Options controls which optional constructs appear in the Markdown output.
// The zero value drops images, links and tables; use DefaultOptions for the
// usual behavior.
type Options struct {
	IncludeImages bool
	IncludeLinks  bool
	IncludeTables bool
}

// DefaultOptions returns Options with every construct enabled.
func DefaultOptions() Options {
	return Options{
		IncludeImages: true,
		IncludeLinks:  true,
		IncludeTables: true,
	}
}

// Converter converts a rendered HTML page to Markdown.
type Converter interface {
	// Convert transforms a full HTML document into a Markdown article.
	// The pageURL is used to pick a site profile and to resolve relative
	// links and images. Returns ENOTFOUND if no article content can be
	// located and EINVALID for empty input.
	Convert(rawHTML string, pageURL string, opts Options) (string, error)
}

package pagemd

import "strings"

// CodeStrategy selects how code blocks are extracted on a site.
type CodeStrategy string

// Supported code extraction strategies.
const (
	// CodeStrategyStandard reads code from the text of the DOM tree.
	CodeStrategyStandard CodeStrategy = ""

	// CodeStrategyRichText reads code from the inner markup of the block,
	// turning line breaks into newlines first. Used by rich-text editors
	// that lay out code with <br> and inline spans.
	CodeStrategyRichText CodeStrategy = "richtext"
)

// Profile is a named set of CSS selectors scoping content, removal and
// title rules to one site. Selector order is significance order: the first
// match wins.
type Profile struct {
	// Name identifies the profile in logs. Defaults to Host.
	Name string `yaml:"name,omitempty"`

	// Host is matched as a substring of the page host.
	Host     string       `yaml:"host,omitempty"`
	Strategy CodeStrategy `yaml:"strategy,omitempty"`

	// Generator and Detect fingerprint pages whose host matches no profile,
	// such as documentation sites served from their own domain. Generator is
	// matched as a substring of the meta generator tag; Detect lists
	// selectors of framework-specific markers.
	Generator string   `yaml:"generator,omitempty"`
	Detect    []string `yaml:"detect,omitempty"`

	Remove     []string `yaml:"remove,omitempty"`
	Content    []string `yaml:"content,omitempty"`
	Title      []string `yaml:"title,omitempty"`
	CoverImage []string `yaml:"cover_image,omitempty"`
}

// Profiles holds the site registry and the universal fallback profile.
// It is built once at startup and never mutated afterwards.
type Profiles struct {
	Generic   Profile   `yaml:"generic"`
	Platforms []Profile `yaml:"platforms"`
}

// Resolve returns the first registered platform profile whose host key is a
// substring of host, or nil if none match.
func (p *Profiles) Resolve(host string) *Profile {
	host = strings.ToLower(host)
	if host == "" {
		return nil
	}
	for i := range p.Platforms {
		key := strings.ToLower(p.Platforms[i].Host)
		if key != "" && strings.Contains(host, key) {
			return &p.Platforms[i]
		}
	}
	return nil
}

// Merge returns a new registry with the platforms of other consulted before
// those of p. The generic profile of p is kept unless other defines one.
func (p *Profiles) Merge(other *Profiles) *Profiles {
	merged := &Profiles{Generic: p.Generic}
	if other == nil {
		merged.Platforms = append(merged.Platforms, p.Platforms...)
		return merged
	}
	if !other.Generic.isEmpty() {
		merged.Generic = other.Generic
	}
	merged.Platforms = make([]Profile, 0, len(other.Platforms)+len(p.Platforms))
	merged.Platforms = append(merged.Platforms, other.Platforms...)
	merged.Platforms = append(merged.Platforms, p.Platforms...)
	return merged
}

// Label returns Name, falling back to Host.
func (p *Profile) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Host
}

// Fingerprinted reports whether the profile can match page content.
func (p *Profile) Fingerprinted() bool {
	return p.Generator != "" || len(p.Detect) > 0
}

func (p Profile) isEmpty() bool {
	return len(p.Remove) == 0 && len(p.Content) == 0 && len(p.Title) == 0 && len(p.CoverImage) == 0
}

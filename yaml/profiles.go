// Package yaml loads selector profiles from YAML documents.
package yaml

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sync"

	"github.com/fwojciec/pagemd"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtin []byte

var (
	defaultOnce     sync.Once
	defaultProfiles *pagemd.Profiles
)

// DefaultProfiles returns the built-in profile registry. It is decoded once;
// callers must treat the result as read-only.
func DefaultProfiles() *pagemd.Profiles {
	defaultOnce.Do(func() {
		p, err := LoadProfiles(bytes.NewReader(builtin))
		if err != nil {
			panic("yaml: invalid built-in profiles: " + err.Error())
		}
		defaultProfiles = p
	})
	return defaultProfiles
}

// LoadProfiles decodes a profile registry. Unknown fields are rejected so
// that typos in selector keys surface early. Platforms with neither a host
// nor a fingerprint are invalid since they could never match.
func LoadProfiles(r io.Reader) (*pagemd.Profiles, error) {
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)

	var p pagemd.Profiles
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return &p, nil
		}
		return nil, pagemd.Errorf(pagemd.EINVALID, "invalid profiles: %v", err)
	}

	for i, platform := range p.Platforms {
		if platform.Host == "" && !platform.Fingerprinted() {
			return nil, pagemd.Errorf(pagemd.EINVALID, "profile %d: host, generator or detect required", i)
		}
		switch platform.Strategy {
		case pagemd.CodeStrategyStandard, pagemd.CodeStrategyRichText:
		default:
			return nil, pagemd.Errorf(pagemd.EINVALID, "profile %q: unknown strategy %q", platform.Label(), platform.Strategy)
		}
	}
	return &p, nil
}

// LoadProfilesFile reads a profile registry from path.
func LoadProfilesFile(path string) (*pagemd.Profiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadProfiles(f)
}

package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *gq.Document {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

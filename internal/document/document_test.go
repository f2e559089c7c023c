package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="en"><head><title>Flow</title></head>
<body><button onclick="toggleTheme()">Theme</button></body></html>`

func TestParse_RootIsHTMLElement(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	root := doc.Root()
	assert.Equal(t, "html", root.Tag())

	lang, ok := root.Attribute("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
}

func TestParse_FragmentStillHasRoot(t *testing.T) {
	doc, err := Parse(strings.NewReader("<p>hello</p>"))
	require.NoError(t, err)
	assert.Equal(t, "html", doc.Root().Tag())
}

func TestElement_SetAttribute(t *testing.T) {
	doc := NewDetached()
	root := doc.Root()

	_, ok := root.Attribute("data-theme")
	assert.False(t, ok)

	root.SetAttribute("data-theme", "dark")
	v, ok := root.Attribute("DATA-THEME")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	root.SetAttribute("data-theme", "light")
	v, _ = root.Attribute("data-theme")
	assert.Equal(t, "light", v)
	assert.Len(t, root.node.Attr, 1, "attribute should be replaced, not duplicated")
}

func TestRender_PreservesMarkup(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	doc.Root().SetAttribute("data-theme", "dark")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `<html lang="en" data-theme="dark">`)
	assert.Contains(t, out, `<title>Flow</title>`)
	assert.Contains(t, out, `onclick="toggleTheme()"`)
}

func TestReady_RunsCallbacksOnceInOrder(t *testing.T) {
	doc := NewDetached()

	var calls []string
	doc.OnReady(func() { calls = append(calls, "first") })
	doc.OnReady(func() { calls = append(calls, "second") })
	assert.Empty(t, calls)
	assert.False(t, doc.IsReady())

	doc.Ready()
	doc.Ready()

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.True(t, doc.IsReady())
}

func TestOnReady_AfterReadyRunsImmediately(t *testing.T) {
	doc := NewDetached()
	doc.Ready()

	ran := 0
	doc.OnReady(func() { ran++ })
	assert.Equal(t, 1, ran)

	doc.Ready()
	assert.Equal(t, 1, ran)
}

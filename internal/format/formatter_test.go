package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a &amp;&amp; b", EscapeHTML("a && b"))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", EscapeHTML("<b>bold</b>"))
	assert.Equal(t, "&quot;quoted&quot; and &#39;single&#39;", EscapeHTML(`"quoted" and 'single'`))
	assert.Equal(t, "plain", EscapeHTML("plain"))
}

func TestConvertLaTeX(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\[E = mc^2\]`, ConvertLaTeX("$$E = mc^2$$"))
	assert.Equal(t, `inline \(x + y\) math`, ConvertLaTeX("inline $x + y$ math"))
	assert.Equal(t, `\[a\] and \(b\)`, ConvertLaTeX("$$a$$ and $b$"))
	assert.Equal(t, "no math", ConvertLaTeX("no math"))
}

func TestNewlinesToBreaks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "one<br>two<br>three", NewlinesToBreaks("one\ntwo\nthree"))
}

func TestProcess(t *testing.T) {
	t.Parallel()

	got := Process("<i>x</i>\n$y$", DefaultOptions())
	assert.Equal(t, `&lt;i&gt;x&lt;/i&gt;<br>\(y\)`, got)

	// Disabled transformations leave the text alone.
	assert.Equal(t, "<i>x</i>\n$y$", Process("<i>x</i>\n$y$", Options{}))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "a long s...", Truncate("a long string here", 11))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/htminl"
	"github.com/fwojciec/htminl/goquery"
	"github.com/fwojciec/htminl/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	t.Run("accepts minified output", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"<!DOCTYPE html>\n<html>\n<head>\n  <title> Home </title>\n</head>\n<body>\n  <!-- nav -->\n  <ul>\n    <li>One</li>\n    <li>Two</li>\n  </ul>\n</body>\n</html>\n",
			"<p>caf&eacute;   &amp;   bar</p>",
			`<input type="checkbox" checked="checked"><script type="text/javascript"> go() </script>`,
		}
		v := goquery.NewVerifier()

		for _, in := range inputs {
			out, err := htminl.MinifyDocument([]byte(in), html.NewParser())
			require.NoError(t, err)

			assert.NoError(t, v.Verify([]byte(in), out), in)
		}
	})

	t.Run("rejects a renamed element", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewVerifier().Verify([]byte("<p>a</p>"), []byte("<div>a</div>"))

		require.Error(t, err)
		assert.Equal(t, htminl.ESAVE, htminl.ErrorCode(err))
		assert.Contains(t, htminl.ErrorMessage(err), "<p> to <div>")
	})

	t.Run("rejects a missing element", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewVerifier().Verify([]byte("<p>a<br>b</p>"), []byte("<p>ab</p>"))

		require.Error(t, err)
		assert.Equal(t, htminl.ESAVE, htminl.ErrorCode(err))
		assert.Contains(t, htminl.ErrorMessage(err), "element count")
	})

	t.Run("rejects changed text", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewVerifier().Verify([]byte("<p>hello</p>"), []byte("<p>help</p>"))

		require.Error(t, err)
		assert.Equal(t, htminl.ESAVE, htminl.ErrorCode(err))
		assert.Equal(t, "text content changed", htminl.ErrorMessage(err))
	})

	t.Run("ignores whitespace differences", func(t *testing.T) {
		t.Parallel()

		err := goquery.NewVerifier().Verify([]byte("<p>\n  a   b\n</p>"), []byte("<p>a b</p>"))

		assert.NoError(t, err)
	})
}

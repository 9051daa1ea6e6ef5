package htminl_test

import (
	"testing"

	"github.com/fwojciec/htminl"
	"github.com/stretchr/testify/assert"
)

func TestTraitsOf_WhitespacePolicy(t *testing.T) {
	t.Parallel()

	svg := func(local string) htminl.QualName {
		return htminl.QualName{Space: htminl.NamespaceSVG, Local: local}
	}

	tests := []struct {
		name string
		tag  htminl.QualName
		want htminl.Trait
	}{
		{name: "html drops all text", tag: htminl.HTMLName("html"), want: htminl.TraitCollapse | htminl.TraitDropAny | htminl.TraitTrim},
		{name: "table drops all text", tag: htminl.HTMLName("table"), want: htminl.TraitCollapse | htminl.TraitDropAny | htminl.TraitTrim},
		{name: "body drops blank text", tag: htminl.HTMLName("body"), want: htminl.TraitCollapse | htminl.TraitDropBlank | htminl.TraitTrim},
		{name: "template drops blank text", tag: htminl.HTMLName("template"), want: htminl.TraitDropBlank | htminl.TraitTrim},
		{name: "paragraph collapses", tag: htminl.HTMLName("p"), want: htminl.TraitCollapse},
		{name: "title collapses and trims", tag: htminl.HTMLName("title"), want: htminl.TraitCollapse | htminl.TraitTrim},
		{name: "script trims", tag: htminl.HTMLName("script"), want: htminl.TraitTrim},
		{name: "pre is left alone", tag: htminl.HTMLName("pre"), want: 0},
		{name: "textarea is left alone", tag: htminl.HTMLName("textarea"), want: 0},
		{name: "unknown element is left alone", tag: htminl.HTMLName("my-widget"), want: 0},
		{name: "svg group drops blank text", tag: svg("g"), want: htminl.TraitDropBlank},
		{name: "svg title trims", tag: svg("title"), want: htminl.TraitTrim},
		{name: "svg text is left alone", tag: svg("text"), want: 0},
		{name: "mathml is left alone", tag: htminl.QualName{Space: htminl.NamespaceMathML, Local: "mi"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, htminl.TraitsOf(tt.tag).Policy())
		})
	}
}

func TestIsVoid(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"br", "img", "input", "meta", "link", "wbr", "source", "track"} {
		assert.True(t, htminl.IsVoid(htminl.HTMLName(tag)), tag)
	}
	for _, tag := range []string{"p", "iframe", "template", "script"} {
		assert.False(t, htminl.IsVoid(htminl.HTMLName(tag)), tag)
	}
	assert.False(t, htminl.IsVoid(htminl.QualName{Space: htminl.NamespaceSVG, Local: "br"}))
}

func TestTraitsOf_Flags(t *testing.T) {
	t.Parallel()

	assert.True(t, htminl.TraitsOf(htminl.HTMLName("style")).Has(htminl.TraitRawText|htminl.TraitNonceable))
	assert.True(t, htminl.TraitsOf(htminl.HTMLName("body")).Has(htminl.TraitNewlines))
	assert.True(t, htminl.TraitsOf(htminl.HTMLName("template")).Has(htminl.TraitTemplate))
	assert.True(t, htminl.TraitsOf(htminl.HTMLName("pre")).Has(htminl.TraitLeadingNewline))
	assert.True(t, htminl.TraitsOf(htminl.QualName{Space: htminl.NamespaceSVG, Local: "script"}).Has(htminl.TraitNonceable))
	assert.False(t, htminl.TraitsOf(htminl.QualName{Space: htminl.NamespaceSVG, Local: "script"}).Has(htminl.TraitRawText))
	assert.False(t, htminl.TraitsOf(htminl.HTMLName("textarea")).Has(htminl.TraitRawText))
}

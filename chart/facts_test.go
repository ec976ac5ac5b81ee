package chart

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestProductDetailsMaterial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	d := ProductDetails("Material: 100% cotton")
	assert.Equal(t, []Detail{{Label: "Material:", Content: "100% Cotton"}}, d)
}

func TestProductDetailsOrderAndHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	desc := "<p>Color: navy&nbsp;blue</p><p><b>Fabric:</b> polyester &amp; spandex</p>" +
		"<ul><li>Sleeve Length: long sleeve</li><li>Length: regular</li></ul>"
	d := ProductDetails(desc)
	assert.Equal(t, []Detail{
		{Label: "Material:", Content: "Polyester & spandex"},
		{Label: "Length:", Content: "Regular"},
		{Label: "Sleeve Length:", Content: "Long sleeve"},
		{Label: "Color:", Content: "Navy blue"},
	}, d)
}

func TestProductDetailsLengthNotAfterTopOrSleeve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	assert.Empty(t, ProductDetails("Top Length: 20 in"))
	d := ProductDetails("Sleeve Length: short\n")
	assert.Equal(t, []Detail{{Label: "Sleeve Length:", Content: "Short"}}, d)
}

func TestProductDetailsSkipsEmptyContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	assert.Empty(t, ProductDetails("Stretch:   "))
	assert.Empty(t, ProductDetails(""))
	assert.Empty(t, ProductDetails("a plain description without labels"))
}

func TestCapitalizeAndTruncate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	assert.Equal(t, "100% Cotton", capitalize("100% cotton"))
	assert.Equal(t, "Élégant", capitalize("élégant"))
	assert.Equal(t, "42", capitalize("42"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, strings.Repeat("ü", 35)+"...", truncate(strings.Repeat("ü", 40), 35))
}

func TestParseHTMLTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	rows := ParseHTMLTable("<tr><th>Size</th><th>Bust</th></tr><tr><td>S</td><td>34in</td></tr>")
	assert.Equal(t, [][]string{{"Size", "Bust"}, {"S", "34in"}}, rows)
	rows = ParseHTMLTable(`<table>
  <TR class="head">
    <TH>Size</TH><TH>Waist <small>(cm)</small></TH>
  </TR>
  <TR><TD> M </TD><TD>72</TD></TR>
</table>`)
	assert.Equal(t, [][]string{{"Size", "Waist (cm)"}, {"M", "72"}}, rows)
}

func TestParseHTMLTableWithoutRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sizechart.chart")
	defer teardown()
	//
	assert.Nil(t, ParseHTMLTable("no table here"))
	assert.Nil(t, ParseHTMLTable("<table><tr></tr></table>"))
	assert.Nil(t, ParseHTMLTable(""))
}

package page

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rateboard/internal/rates"
)

const boardHTML = `<!DOCTYPE html>
<html><body>
<header>
  <button class="menu-toggle" aria-expanded="false">Menu</button>
  <nav id="navMenu" class="nav"><a href="#rates">Rates</a></nav>
</header>
<section id="rates">
  <p id="rateDate">Rate board date: --</p>
  <table>
    <tr><td id="rate-giridih-chota">110</td><td id="rate-giridih-mota">100</td><td id="rate-giridih-chicks">30</td></tr>
    <tr><td id="rate-deoghar-chota">112</td><td id="rate-deoghar-mota">102</td><td id="rate-deoghar-chicks">31</td></tr>
    <tr><td id="rate-barhi-chota">114</td><td id="rate-barhi-mota">104</td><td id="rate-barhi-chicks">32</td></tr>
    <tr><td id="rate-chatra-chota">116</td><td id="rate-chatra-mota">106</td></tr>
    <tr><td id="rate-jamua-chota">118</td><td id="rate-jamua-mota">108</td><td id="rate-jamua-chicks">34</td></tr>
  </table>
</section>
<section>
  <div id="productsCards" class="cards"></div>
  <button id="productsToggle" aria-expanded="false">View More</button>
</section>
</body></html>`

func mustParse(t *testing.T) *HTMLDocument {
	t.Helper()
	doc, err := ParseHTMLString(boardHTML)
	require.NoError(t, err)
	return doc
}

func textOf(t *testing.T, doc Document, id string) string {
	t.Helper()
	el, ok := doc.ElementByID(id)
	require.True(t, ok, "element %s not found", id)
	return el.Text()
}

func allOffices(r rates.OfficeRates) map[rates.Office]rates.OfficeRates {
	m := make(map[rates.Office]rates.OfficeRates)
	for _, o := range rates.Offices {
		m[o] = rates.OfficeRates{}
	}
	m[rates.Giridih] = r
	return m
}

var ist = time.FixedZone("IST", 5*3600+1800)

func TestHTMLDocument(t *testing.T) {
	doc := mustParse(t)

	_, ok := doc.ElementByID("missing")
	assert.False(t, ok)
	_, ok = doc.ElementByID("")
	assert.False(t, ok)

	el, ok := doc.ElementByID("rate-giridih-chota")
	require.True(t, ok)
	el.SetText("<b>125</b>")

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;b&gt;125&lt;/b&gt;")
	assert.True(t, strings.HasPrefix(string(out), "<!DOCTYPE html>"))
}

func TestPresenter_ApplyFallbackDate(t *testing.T) {
	doc := mustParse(t)
	NewPresenter(doc, ist).ApplyFallbackDate(time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, "Rate board date: 05-03-2024", textOf(t, doc, "rateDate"))
}

func TestPresenter_ApplyRates(t *testing.T) {
	t.Run("writes date and prices verbatim", func(t *testing.T) {
		doc := mustParse(t)
		p := &rates.Payload{
			RateBoardDate: "2024-03-05",
			Offices: allOffices(rates.OfficeRates{
				ChotaPerKg:     float64(120),
				MotaPerKg:      "₹ 105",
				ChicksPerPiece: 35.5,
			}),
		}

		n := NewPresenter(doc, ist).ApplyRates(p)

		assert.Equal(t, 3, n)
		assert.Equal(t, "Rate board date: 05-03-2024", textOf(t, doc, "rateDate"))
		assert.Equal(t, "120", textOf(t, doc, "rate-giridih-chota"))
		assert.Equal(t, "₹ 105", textOf(t, doc, "rate-giridih-mota"))
		assert.Equal(t, "35.5", textOf(t, doc, "rate-giridih-chicks"))
		assert.Equal(t, "112", textOf(t, doc, "rate-deoghar-chota"))
	})

	t.Run("absent and falsy fields keep prior text", func(t *testing.T) {
		doc := mustParse(t)
		p := &rates.Payload{
			Offices: allOffices(rates.OfficeRates{ChotaPerKg: "", MotaPerKg: float64(0)}),
		}

		n := NewPresenter(doc, ist).ApplyRates(p)

		assert.Zero(t, n)
		assert.Equal(t, "110", textOf(t, doc, "rate-giridih-chota"))
		assert.Equal(t, "100", textOf(t, doc, "rate-giridih-mota"))
		assert.Equal(t, "30", textOf(t, doc, "rate-giridih-chicks"))
		assert.Equal(t, "Rate board date: --", textOf(t, doc, "rateDate"))
	})

	t.Run("unparseable date keeps fallback", func(t *testing.T) {
		doc := mustParse(t)
		pr := NewPresenter(doc, ist)
		pr.ApplyFallbackDate(time.Date(2024, 1, 2, 12, 0, 0, 0, ist))
		pr.ApplyRates(&rates.Payload{RateBoardDate: "someday", Offices: allOffices(rates.OfficeRates{})})
		assert.Equal(t, "Rate board date: 02-01-2024", textOf(t, doc, "rateDate"))
	})

	t.Run("missing element and missing office are skipped", func(t *testing.T) {
		doc := mustParse(t)
		offices := map[rates.Office]rates.OfficeRates{
			rates.Chatra: {ChotaPerKg: "140", ChicksPerPiece: "40"},
		}

		n := NewPresenter(doc, ist).ApplyRates(&rates.Payload{Offices: offices})

		assert.Equal(t, 1, n)
		assert.Equal(t, "140", textOf(t, doc, "rate-chatra-chota"))
		_, ok := doc.ElementByID("rate-chatra-chicks")
		assert.False(t, ok)
		assert.Equal(t, "118", textOf(t, doc, "rate-jamua-chota"))
	})

	t.Run("nil payload is a no-op", func(t *testing.T) {
		doc := newMemoryDocument()
		doc.add("rateDate", "unchanged")
		assert.Zero(t, NewPresenter(doc, nil).ApplyRates(nil))
		assert.Equal(t, "unchanged", doc.els["rateDate"].text)
	})

	t.Run("works against any Document", func(t *testing.T) {
		doc := newMemoryDocument()
		doc.add("rateDate", "")
		doc.add("rate-barhi-mota", "99")

		offices := allOffices(rates.OfficeRates{})
		offices[rates.Barhi] = rates.OfficeRates{MotaPerKg: float64(101)}
		NewPresenter(doc, ist).ApplyRates(&rates.Payload{RateBoardDate: "2024-03-05T10:00:00+05:30", Offices: offices})

		assert.Equal(t, "101", doc.els["rate-barhi-mota"].text)
		assert.Equal(t, "Rate board date: 05-03-2024", doc.els["rateDate"].text)
	})
}

func TestToggleMenu(t *testing.T) {
	doc := mustParse(t)

	ToggleMenu(doc)
	btn, _ := doc.Query(".menu-toggle")
	nav, _ := doc.ElementByID("navMenu")
	v, _ := btn.Attr("aria-expanded")
	assert.Equal(t, "true", v)
	assert.True(t, nav.HasClass("open"))

	ToggleMenu(doc)
	v, _ = btn.Attr("aria-expanded")
	assert.Equal(t, "false", v)
	assert.False(t, nav.HasClass("open"))

	ToggleMenu(doc)
	CloseMenu(doc)
	v, _ = btn.Attr("aria-expanded")
	assert.Equal(t, "false", v)
	assert.False(t, nav.HasClass("open"))
	assert.True(t, nav.HasClass("nav"))
}

func TestToggleProducts(t *testing.T) {
	doc := mustParse(t)

	ToggleProducts(doc)
	cards, _ := doc.ElementByID("productsCards")
	btn, _ := doc.ElementByID("productsToggle")
	v, _ := btn.Attr("aria-expanded")
	assert.True(t, cards.HasClass("expanded"))
	assert.Equal(t, "true", v)
	assert.Equal(t, "View Less", btn.Text())

	ToggleProducts(doc)
	v, _ = btn.Attr("aria-expanded")
	assert.False(t, cards.HasClass("expanded"))
	assert.Equal(t, "false", v)
	assert.Equal(t, "View More", btn.Text())

	t.Run("needs both elements", func(t *testing.T) {
		mem := newMemoryDocument()
		mem.add("productsToggle", "View More")
		ToggleProducts(mem)
		assert.Equal(t, "View More", mem.els["productsToggle"].text)
	})
}

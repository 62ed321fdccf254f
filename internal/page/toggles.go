package page

import "strconv"

const (
	menuButtonSelector = ".menu-toggle"
	navMenuID          = "navMenu"
	navOpenClass       = "open"

	productsToggleID  = "productsToggle"
	productsCardsID   = "productsCards"
	productsOpenClass = "expanded"
	productsMoreLabel = "View More"
	productsLessLabel = "View Less"
	ariaExpandedAttr  = "aria-expanded"
)

// ToggleMenu flips the navigation menu between open and closed.
func ToggleMenu(doc Document) {
	btn, hasBtn := doc.Query(menuButtonSelector)
	if hasBtn {
		expanded, _ := btn.Attr(ariaExpandedAttr)
		btn.SetAttr(ariaExpandedAttr, strconv.FormatBool(expanded != "true"))
	}
	if nav, ok := doc.ElementByID(navMenuID); ok {
		nav.ToggleClass(navOpenClass)
	}
}

// CloseMenu collapses the navigation menu, as following a nav link does.
func CloseMenu(doc Document) {
	if btn, ok := doc.Query(menuButtonSelector); ok {
		btn.SetAttr(ariaExpandedAttr, "false")
	}
	if nav, ok := doc.ElementByID(navMenuID); ok {
		nav.RemoveClass(navOpenClass)
	}
}

// ToggleProducts expands or collapses the product list. Both the button and
// the card container must be present.
func ToggleProducts(doc Document) {
	btn, ok := doc.ElementByID(productsToggleID)
	if !ok {
		return
	}
	cards, ok := doc.ElementByID(productsCardsID)
	if !ok {
		return
	}

	expanded := cards.ToggleClass(productsOpenClass)
	btn.SetAttr(ariaExpandedAttr, strconv.FormatBool(expanded))
	if expanded {
		btn.SetText(productsLessLabel)
	} else {
		btn.SetText(productsMoreLabel)
	}
}

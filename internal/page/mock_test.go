package page

// memoryDocument is a Document backed by a map of elements keyed by id.
type memoryDocument struct {
	els map[string]*memoryElement
}

func newMemoryDocument() *memoryDocument {
	return &memoryDocument{els: make(map[string]*memoryElement)}
}

func (d *memoryDocument) add(id, text string) *memoryElement {
	el := &memoryElement{text: text, attrs: map[string]string{}, classes: map[string]bool{}}
	d.els[id] = el
	return el
}

func (d *memoryDocument) ElementByID(id string) (Element, bool) {
	el, ok := d.els[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *memoryDocument) Query(string) (Element, bool) { return nil, false }

type memoryElement struct {
	text    string
	attrs   map[string]string
	classes map[string]bool
}

func (e *memoryElement) Text() string                    { return e.text }
func (e *memoryElement) SetText(text string)             { e.text = text }
func (e *memoryElement) Attr(name string) (string, bool) { v, ok := e.attrs[name]; return v, ok }
func (e *memoryElement) SetAttr(name, value string)      { e.attrs[name] = value }
func (e *memoryElement) HasClass(name string) bool       { return e.classes[name] }
func (e *memoryElement) RemoveClass(name string)         { delete(e.classes, name) }

func (e *memoryElement) ToggleClass(name string) bool {
	e.classes[name] = !e.classes[name]
	return e.classes[name]
}

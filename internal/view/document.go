package view

import (
	"sort"
	"sync"
)

// Element state of one element of a Document.
type Element struct {
	ID      string   `json:"id"`
	Text    string   `json:"text,omitempty"`
	Color   Color    `json:"color,omitempty"`
	Value   string   `json:"value,omitempty"`
	Checked bool     `json:"checked,omitempty"`
	Src     string   `json:"src,omitempty"`
	Rows    [][]Cell `json:"rows,omitempty"`
}

// Document in-memory element tree of one rendered page. Safe for
// concurrent use: the config and history renders of a page load write to
// it from separate goroutines.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
	errors   []string
	alerts   []string
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Snapshot JSON-friendly copy of a Document
type Snapshot struct {
	Elements []Element `json:"elements"`
	Errors   []string  `json:"errors"`
	Alerts   []string  `json:"alerts"`
}

func (d *Document) update(id string, fn func(e *Element)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.elements[id]
	if !ok {
		e = &Element{ID: id}
		d.elements[id] = e
	}
	fn(e)
}

// Element returns a copy of the element state; unknown ids yield a zero element.
func (d *Document) Element(id string) Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.elements[id]
	if !ok {
		return Element{ID: id}
	}
	return copyElement(e)
}

// Has reports whether anything was rendered into id.
func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

func (d *Document) Errors() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.errors...)
}

func (d *Document) Alerts() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.alerts...)
}

// ShowError implements ErrorDisplay.
func (d *Document) ShowError(err error) {
	if err == nil {
		return
	}
	d.mu.Lock()
	d.errors = append(d.errors, err.Error())
	d.mu.Unlock()
}

// ShowMessage adds an already formatted error line (flash messages carried over a redirect).
func (d *Document) ShowMessage(msg string) {
	d.mu.Lock()
	d.errors = append(d.errors, msg)
	d.mu.Unlock()
}

// Alert implements Alerter.
func (d *Document) Alert(message string) {
	d.mu.Lock()
	d.alerts = append(d.alerts, message)
	d.mu.Unlock()
}

func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := Snapshot{
		Elements: make([]Element, 0, len(d.elements)),
		Errors:   append([]string{}, d.errors...),
		Alerts:   append([]string{}, d.alerts...),
	}
	for _, e := range d.elements {
		s.Elements = append(s.Elements, copyElement(e))
	}
	sort.Slice(s.Elements, func(i, j int) bool { return s.Elements[i].ID < s.Elements[j].ID })
	return s
}

func copyElement(e *Element) Element {
	c := *e
	if e.Rows != nil {
		c.Rows = make([][]Cell, len(e.Rows))
		for i, row := range e.Rows {
			c.Rows[i] = append([]Cell(nil), row...)
		}
	}
	return c
}

// Text handle for a text element
func (d *Document) Text(id string) TextElement { return elementRef{d: d, id: id} }

// Input handle for an input element
func (d *Document) Input(id string) InputElement { return elementRef{d: d, id: id} }

// Checkbox handle for a checkbox element
func (d *Document) Checkbox(id string) CheckboxElement { return elementRef{d: d, id: id} }

// Image handle for an image element
func (d *Document) Image(id string) ImageElement { return elementRef{d: d, id: id} }

// Table handle for a table body
func (d *Document) Table(id string) TableElement { return elementRef{d: d, id: id} }

type elementRef struct {
	d  *Document
	id string
}

func (r elementRef) SetText(text string) { r.d.update(r.id, func(e *Element) { e.Text = text }) }
func (r elementRef) SetColor(c Color)    { r.d.update(r.id, func(e *Element) { e.Color = c }) }
func (r elementRef) SetValue(v string)   { r.d.update(r.id, func(e *Element) { e.Value = v }) }
func (r elementRef) SetChecked(v bool)   { r.d.update(r.id, func(e *Element) { e.Checked = v }) }
func (r elementRef) SetSrc(src string)   { r.d.update(r.id, func(e *Element) { e.Src = src }) }
func (r elementRef) Clear()              { r.d.update(r.id, func(e *Element) { e.Rows = [][]Cell{} }) }

func (r elementRef) AppendRow(cells ...Cell) {
	row := append([]Cell(nil), cells...)
	r.d.update(r.id, func(e *Element) { e.Rows = append(e.Rows, row) })
}

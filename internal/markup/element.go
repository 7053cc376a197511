// Package markup holds the element tree produced by the GML transform and
// serializes it to XML text.
package markup

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a named node holding either text or child elements, never both.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// New returns a detached element.
func New(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Add appends a new child named name and returns it.
func (e *Element) Add(name string) *Element {
	child := &Element{Name: name}
	e.Children = append(e.Children, child)
	return child
}

// AddText appends a child element whose content is text.
func (e *Element) AddText(name, text string) *Element {
	child := e.Add(name)
	child.Text = text
	return child
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the direct children named name, in order.
func (e *Element) Find(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

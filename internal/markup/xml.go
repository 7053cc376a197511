package markup

import (
	"bytes"
	"encoding/xml"

	"github.com/cockroachdb/errors"
)

const (
	indent      = "  "
	declaration = `<?xml version="1.0" encoding="UTF-8"?>`
)

// Format controls how a tree is written out.
type Format struct {
	// Pretty puts every element on its own indented line.
	Pretty bool
	// Declaration emits an <?xml?> prolog before the root.
	Declaration bool
}

// Marshal serializes root into an XML document or fragment.
func Marshal(root *Element, f Format) (string, error) {
	if root == nil {
		return "", errors.New("markup: nil root element")
	}

	var buf bytes.Buffer
	if f.Declaration {
		buf.WriteString(declaration)
		if f.Pretty {
			buf.WriteByte('\n')
		}
	}

	enc := xml.NewEncoder(&buf)
	if f.Pretty {
		enc.Indent("", indent)
	}

	if err := encode(enc, root); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", errors.Wrap(err, "markup: flush")
	}
	return buf.String(), nil
}

// encode writes e and its subtree. Names are written verbatim, prefix included.
func encode(enc *xml.Encoder, e *Element) error {
	if e.Name == "" {
		return errors.New("markup: element without a name")
	}

	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "markup: open %s", e.Name)
	}

	if len(e.Children) > 0 {
		for _, c := range e.Children {
			if err := encode(enc, c); err != nil {
				return err
			}
		}
	} else if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return errors.Wrapf(err, "markup: text of %s", e.Name)
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return errors.Wrapf(err, "markup: close %s", e.Name)
	}
	return nil
}

package resx

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Header is one resheader key/value pair.
type Header struct {
	Name  string
	Value string
}

// Record is one named resource value.
type Record struct {
	Name    string
	Value   string
	Comment string
}

// StandardHeaders is the header block written into fresh override documents.
var StandardHeaders = []Header{
	{Name: "resmimetype", Value: "text/microsoft-resx"},
	{Name: "version", Value: "2.0"},
	{Name: "reader", Value: "System.Resources.ResXResourceReader, System.Windows.Forms, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"},
	{Name: "writer", Value: "System.Resources.ResXResourceWriter, System.Windows.Forms, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"},
}

type nodeKind int

const (
	kindOther nodeKind = iota
	kindHeader
	kindRecord
)

type node struct {
	kind   nodeKind
	lead   []byte // bytes between the previous sibling and this element
	body   []byte // verbatim element bytes; nil once the record was modified
	header Header
	record Record
}

// Document is an in-memory .resx document. It is not safe for concurrent mutation.
type Document struct {
	head  []byte
	nodes []*node
	tail  []byte
	dirty bool
}

// NewDocument returns a document holding only StandardHeaders.
func NewDocument() *Document {
	doc := &Document{
		head: []byte(xml.Header + "<root>"),
		tail: []byte("\n</root>\n"),
	}
	for _, h := range StandardHeaders {
		doc.nodes = append(doc.nodes, &node{
			kind:   kindHeader,
			lead:   []byte("\n  "),
			body:   renderHeader(h),
			header: h,
		})
	}
	return doc
}

// Headers returns the resheader pairs in document order.
func (d *Document) Headers() []Header {
	var headers []Header
	for _, n := range d.nodes {
		if n.kind == kindHeader {
			headers = append(headers, n.header)
		}
	}
	return headers
}

// Records returns every data record in document order, duplicates included.
func (d *Document) Records() []Record {
	var records []Record
	for _, n := range d.nodes {
		if n.kind == kindRecord {
			records = append(records, n.record)
		}
	}
	return records
}

// Len returns the number of data records.
func (d *Document) Len() int {
	count := 0
	for _, n := range d.nodes {
		if n.kind == kindRecord {
			count++
		}
	}
	return count
}

// Lookup returns the first record with the given name.
func (d *Document) Lookup(name string) (Record, bool) {
	if n := d.find(name); n != nil {
		return n.record, true
	}
	return Record{}, false
}

// Table maps record names to values. The first occurrence of a name wins.
func (d *Document) Table() map[string]string {
	table := make(map[string]string)
	for _, n := range d.nodes {
		if n.kind != kindRecord {
			continue
		}
		if _, exists := table[n.record.Name]; !exists {
			table[n.record.Name] = n.record.Value
		}
	}
	return table
}

// Set updates the value of the first record named name, or appends a new record.
func (d *Document) Set(name, value string) error {
	if name == "" {
		return ErrEmptyName
	}

	if n := d.find(name); n != nil {
		if n.record.Value == value && n.body != nil {
			return nil
		}
		n.record.Value = value
		n.body = nil
		d.dirty = true
		return nil
	}

	d.nodes = append(d.nodes, &node{
		kind:   kindRecord,
		lead:   []byte("\n  "),
		record: Record{Name: name, Value: value},
	})
	d.dirty = true
	return nil
}

// Changed reports whether Set modified the document since it was created or parsed.
func (d *Document) Changed() bool { return d.dirty }

// Marshal renders the document. Untouched elements are emitted verbatim.
func (d *Document) Marshal() []byte {
	var buf bytes.Buffer
	buf.Write(d.head)
	for _, n := range d.nodes {
		buf.Write(n.lead)
		if n.body != nil {
			buf.Write(n.body)
			continue
		}
		buf.Write(renderRecord(n.record))
	}
	buf.Write(d.tail)
	return buf.Bytes()
}

func (d *Document) find(name string) *node {
	for _, n := range d.nodes {
		if n.kind == kindRecord && n.record.Name == name {
			return n
		}
	}
	return nil
}

func renderHeader(h Header) []byte {
	var b strings.Builder
	b.WriteString(`<resheader name="`)
	writeEscaped(&b, h.Name)
	b.WriteString(`">` + "\n    <value>")
	writeEscaped(&b, h.Value)
	b.WriteString("</value>\n  </resheader>")
	return []byte(b.String())
}

func renderRecord(r Record) []byte {
	var b strings.Builder
	b.WriteString(`<data name="`)
	writeEscaped(&b, r.Name)
	b.WriteString(`" xml:space="preserve">` + "\n    <value>")
	writeEscaped(&b, r.Value)
	b.WriteString("</value>")
	if r.Comment != "" {
		b.WriteString("\n    <comment>")
		writeEscaped(&b, r.Comment)
		b.WriteString("</comment>")
	}
	b.WriteString("\n  </data>")
	return []byte(b.String())
}

func writeEscaped(b *strings.Builder, s string) {
	// strings.Builder writes never fail
	_ = xml.EscapeText(b, []byte(s))
}

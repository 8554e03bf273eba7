package jupdate

import (
	"log/slog"

	"github.com/go-json-experiment/json/jsontext"
)

// Update builds an update document from a chain of operator calls:
//
//	u := jupdate.NewUpdate()
//	u.Field("visits").Inc(jupdate.Int32(1)).
//		Field("seen").SetDateNow().
//		Array("tags").PushAll(tags).Slice(10)
//
// The update owns its document. Field and Array return cursors that write into
// it; every cursor call returns a fresh cursor so chains can continue. An
// Update and its cursors must not be used from more than one goroutine.
type Update struct {
	doc               *Object
	logger            *slog.Logger
	structuredMarkers bool
}

// Option configures an Update.
type Option func(*Update)

// WithLogger logs a debug record every time building the update discards a
// value, which happens when an operator group or an array slot holding a bare
// value is replaced by an object.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Update) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithStructuredTypeMarkers makes SetDateNow and SetTimestampNow write
// {"$type": "date"} and {"$type": "timestamp"} objects instead of the default
// DateTypeMarker and TimestampTypeMarker strings.
func WithStructuredTypeMarkers() Option {
	return func(u *Update) { u.structuredMarkers = true }
}

// NewUpdate returns an empty update.
func NewUpdate(opts ...Option) *Update {
	u := &Update{
		doc:    NewObject(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Field returns a cursor for scalar operators on name.
func (u *Update) Field(name string) UpdateField {
	return UpdateField{u: u, field: name}
}

// Array returns a cursor for array operators on name.
func (u *Update) Array(name string) UpdateArray {
	return UpdateArray{u: u, field: name}
}

// FieldPath is Field(Path(parts...)).
func (u *Update) FieldPath(parts ...string) UpdateField {
	return u.Field(Path(parts...))
}

// ArrayPath is Array(Path(parts...)).
func (u *Update) ArrayPath(parts ...string) UpdateArray {
	return u.Array(Path(parts...))
}

// Isolate sets "$isolated": 1 at the root of the document.
func (u *Update) Isolate() *Update {
	u.doc.Set(OpIsolated, Int32(1))
	return u
}

// Unisolate removes the "$isolated" key.
func (u *Update) Unisolate() *Update {
	u.doc.Delete(OpIsolated)
	return u
}

// Isolated reports whether "$isolated" is set.
func (u *Update) Isolated() bool {
	return u.doc.Has(OpIsolated)
}

// Document returns the document built so far. It is not copied; changes made
// to it are seen by the update.
func (u *Update) Document() *Object {
	return u.doc
}

// D returns the export form of the document.
func (u *Update) D() D {
	return u.doc.D()
}

// Empty reports whether no operator has been recorded.
func (u *Update) Empty() bool {
	return u.doc.Len() == 0
}

// MarshalJSONTo writes the document as JSON, keys in ascending order.
func (u *Update) MarshalJSONTo(enc *jsontext.Encoder) error {
	return encodeValue(enc, u.doc)
}

// MarshalYAML renders the document as a YAML mapping, keys in ascending order.
func (u *Update) MarshalYAML() (any, error) {
	return yamlNode(u.doc), nil
}

// String returns the document as compact JSON.
func (u *Update) String() string {
	return u.doc.String()
}

func (u *Update) group(op string) *Object {
	return u.doc.upsert(op, u.evicted)
}

func (u *Update) deep(op, field string) *Object {
	return u.doc.deepUpsert(op, field, u.evicted)
}

func (u *Update) each(op, field string) *Object {
	return u.doc.eachSlot(op, field, u.evicted)
}

func (u *Update) evicted(key string, old Value) {
	u.logger.Debug("update discarded value", "key", key, "kind", old.Kind().String())
}

func (u *Update) typeMarker(name, literal string) Value {
	if !u.structuredMarkers {
		return String(literal)
	}
	o := NewObject()
	o.Set(typeKey, String(name))
	return o
}

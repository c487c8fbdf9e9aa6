package docstore

// Document is a single stored record: the id it is keyed under and its raw
// field/value data. Data is schema-free on purpose; collections have
// accumulated more than one historical shape and the store does not arbitrate
// between them.
type Document struct {
	ID   string
	Data map[string]any
}

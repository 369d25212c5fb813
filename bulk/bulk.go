// Package bulk encodes batches of document operations into the
// newline-delimited body of a _bulk request and decodes the per-item
// response.
package bulk

import (
	osdsl "github.com/ca-srg/osdsl"
	"github.com/ca-srg/osdsl/script"
)

// Metadata addresses the document an operation applies to.
type Metadata struct {
	Index string `json:"_index,omitempty"`
	ID    string `json:"_id,omitempty"`
}

// UpdateDocument is the body of an update operation: a partial document, a
// script, or both a script and an upsert document.
type UpdateDocument struct {
	Doc         any            `json:"doc,omitempty"`
	DocAsUpsert *bool          `json:"doc_as_upsert,omitempty"`
	Script      *script.Script `json:"script,omitempty"`
	Upsert      any            `json:"upsert,omitempty"`
}

// Operation is one entry of a bulk batch. The action names the operation
// kind; doc is the payload line that follows the action line, nil for
// delete.
type Operation struct {
	action string
	meta   Metadata
	doc    any
}

// Action returns the operation's wire action: index, create, update, or
// delete.
func (o Operation) Action() string { return o.action }

// Meta returns the operation's document address.
func (o Operation) Meta() Metadata { return o.meta }

// HasDocument reports whether the operation emits a payload line.
func (o Operation) HasDocument() bool { return o.doc != nil }

// IndexOp builds an index operation (create or replace). id may be empty to
// let the server assign one.
func IndexOp(index, id string, doc any) Operation {
	return Operation{action: "index", meta: Metadata{Index: index, ID: id}, doc: doc}
}

// CreateOp builds a create operation, which fails if the document exists.
func CreateOp(index, id string, doc any) Operation {
	return Operation{action: "create", meta: Metadata{Index: index, ID: id}, doc: doc}
}

// UpdateOp builds an update operation for an existing document.
func UpdateOp(index, id string, doc UpdateDocument) Operation {
	return Operation{action: "update", meta: Metadata{Index: index, ID: id}, doc: doc}
}

// DeleteOp builds a delete operation. Delete emits no payload line.
func DeleteOp(index, id string) Operation {
	return Operation{action: "delete", meta: Metadata{Index: index, ID: id}}
}

func (o Operation) validate() error {
	switch o.action {
	case "":
		return osdsl.NewMissingFieldError("bulk.Operation", "action")
	case "index", "create":
		// A missing document line would desync the action/document framing
		// for the rest of the batch.
		if o.doc == nil {
			return osdsl.NewMissingFieldError("bulk.Operation", "document")
		}
	case "update", "delete":
		if o.meta.ID == "" {
			return osdsl.NewMissingFieldError("bulk.Operation", "_id")
		}
	}
	return nil
}

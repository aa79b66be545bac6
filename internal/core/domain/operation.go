package domain

import (
	"fmt"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
)

// OpKind tags the variant of an Operation.
type OpKind string

const (
	OpInsert       OpKind = "insert"
	OpUpdate       OpKind = "update"
	OpDelete       OpKind = "delete"
	OpReplaceField OpKind = "replaceField"
)

// Operation is one mutation command against the Document. Every entity-scoped
// admin action is expressed as one of these four variants so the sync
// protocol can be implemented once instead of per entity type.
type Operation struct {
	Kind       OpKind
	Collection Collection // insert/update/delete
	Field      Field      // replaceField
	ID         string     // update/delete
	Entity     Entity     // insert/update
	Value      any        // replaceField
}

// Insert creates an insert operation appending e to collection c.
func Insert(c Collection, e Entity) Operation {
	return Operation{Kind: OpInsert, Collection: c, Entity: e}
}

// Update creates an update operation replacing the entity id in c with e.
func Update(c Collection, id string, e Entity) Operation {
	return Operation{Kind: OpUpdate, Collection: c, ID: id, Entity: e}
}

// Delete creates a delete operation removing entity id from c.
func Delete(c Collection, id string) Operation {
	return Operation{Kind: OpDelete, Collection: c, ID: id}
}

// ReplaceField creates a bulk replace of one top-level Document field.
func ReplaceField(f Field, value any) Operation {
	return Operation{Kind: OpReplaceField, Field: f, Value: value}
}

// Apply mutates the Document according to op. This is the pure local-apply
// step of the mutation protocol: no I/O, no side effects beyond d itself.
func (d *Document) Apply(op Operation) error {
	switch op.Kind {
	case OpInsert:
		return d.Insert(op.Collection, op.Entity)
	case OpUpdate:
		return d.Update(op.Collection, op.ID, op.Entity)
	case OpDelete:
		return d.Delete(op.Collection, op.ID)
	case OpReplaceField:
		return d.ReplaceField(op.Field, op.Value)
	default:
		return fmt.Errorf("%w: unknown operation kind %q", apperrors.ErrValidation, op.Kind)
	}
}

// String renders the operation for logs.
func (op Operation) String() string {
	switch op.Kind {
	case OpReplaceField:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Field)
	case OpInsert:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Collection)
	default:
		return fmt.Sprintf("%s(%s/%s)", op.Kind, op.Collection, op.ID)
	}
}

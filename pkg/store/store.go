// Package store persists named graph documents.
//
// The store is the server-side counterpart to graph files on disk: the
// HTTP API saves uploaded graphs here and renders them by name. Two
// backends are provided:
//   - [MongoStore]: production persistence (the Graph type carries bson
//     tags for exactly this)
//   - [MemoryStore]: in-process storage for development and tests
//
// Documents are addressed by a uuid assigned on first save; names are
// unique per store and validated with errors.ValidateGraphName.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/dotgen/pkg/graph"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")

// Document is a stored graph with its bookkeeping metadata.
type Document struct {
	ID        string       `bson:"_id" json:"id"`
	Name      string       `bson:"name" json:"name"`
	Graph     *graph.Graph `bson:"graph" json:"graph"`
	Hash      string       `bson:"hash" json:"hash"` // content hash of the serialized graph
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

// Store is the persistence interface for graph documents.
type Store interface {
	// Put inserts or updates a document. A document without an ID gets
	// one assigned; CreatedAt/UpdatedAt are maintained by the store.
	Put(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Document, error)

	// GetByName retrieves a document by its unique name.
	GetByName(ctx context.Context, name string) (*Document, error)

	// List returns all documents ordered by name.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document by ID. Deleting a missing document
	// returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

package store

import "github.com/brokerdesk/carrier-sales-api/models"

// RecordStore persists named collections of JSON records. The engines depend
// only on this interface so they can be tested against an in-memory store.
//
// Load on a missing collection returns an empty slice, not an error; a
// corrupt collection is likewise downgraded to empty so a damaged file never
// takes the API down. Save replaces the collection wholesale (truncate and
// rewrite), so implementations must serialize concurrent read-modify-write
// cycles themselves.
type RecordStore interface {
	Load(name string) ([]models.Record, error)
	Save(name string, records []models.Record) error

	// Append atomically loads the collection, adds one record and saves it
	// back. Writers must use this instead of a bare Load+Save pair so the
	// read-modify-write cannot interleave with another writer.
	Append(name string, record models.Record) error
}

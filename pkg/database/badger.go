package database

import (
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"
)

// NewBadgerDB opens (creating if necessary) the BadgerDB holding the durable
// local document replica.
func NewBadgerDB(dataDir string) (*badger.DB, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	opts := badger.DefaultOptions(dataDir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %s: %w", dataDir, err)
	}

	log.Println("Successfully opened BadgerDB document store.")
	return db, nil
}

// CloseBadgerDB closes the BadgerDB handle.
func CloseBadgerDB(db *badger.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("Error closing BadgerDB: %v\n", err)
		return
	}
	log.Println("BadgerDB document store closed.")
}

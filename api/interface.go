// Package api define types and interfaces common to tree
// implementations in this repository.
package api

import "iter"

// NodeCallb callback from Traverse API. Return false to stop the walk.
type NodeCallb[T any] func(value T) bool

// Index interface for managing a sorted collection of values.
type Index[T any] interface {
	IndexMeta
	IndexReader[T]
	IndexWriter[T]
}

// IndexMeta interface for housekeeping methods.
type IndexMeta interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Stats return a set of index statistics.
	Stats() map[string]interface{}

	// Fullstats return an involved set of index statistics, calling this
	// function may lead to a full tree walk.
	Fullstats() map[string]interface{}

	// Log current statistics, if humanize is true log some or all of the
	// stats in human readable format.
	Log(humanize bool)

	// Validate check whether index is in sane state, panic otherwise.
	Validate()
}

// IndexReader interface for read methods.
type IndexReader[T any] interface {
	// Has return true if an entry equal to value is indexed.
	Has(value T) bool

	// Min return the smallest value in the index.
	Min() (value T, ok bool)

	// Max return the largest value in the index.
	Max() (value T, ok bool)

	// Traverse entries in sort order, until callb returns false.
	Traverse(callb NodeCallb[T])

	// Values return all entries in sort order.
	Values() []T

	// All return a lazy sequence of entries in sort order.
	All() iter.Seq[T]

	// Render entries in sort order as human readable text.
	Render() string
}

// IndexWriter interface for write methods.
type IndexWriter[T any] interface {
	// Insert value into the index. Duplicates are retained.
	Insert(value T)
}

// Package bst implement an unbalanced binary search tree.
//
//   - Index values of any type with a total order, natural ordering
//     for builtin ordered types or a caller supplied comparator.
//   - Duplicate values are retained and lean left, so equal values
//     are visited latest insert first.
//   - No rebalancing and no deletion, height of the tree is bounded
//     only by the number of entries.
//   - Insert and traversal walk the tree iteratively, sorted input
//     cannot exhaust the stack.
//   - Reads and writes are serialized by a single lock per tree.
package bst

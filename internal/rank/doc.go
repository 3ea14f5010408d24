// Package rank orders games by their prize differential.
//
// The primary ordering sorts descending by differential, keeping input
// order for ties. A second, independent ordering ("most top prizes
// remaining") covers games whose top prize is worth at least $5,000 and
// sorts by the top tier's remaining count; it is computed from scratch,
// not sliced out of the primary order.
package rank

// Package familytree implements an in-memory family tree of uniquely named members.
//
// A tree is a rooted, unordered, multi-child structure of [Node] values. Each node owns its children and keeps a non-owning reference back to its parent. Member names are assumed to be unique across the whole tree; this is never enforced, and lookups return the first match in breadth-first order.
//
// Traversals are linear breadth-first scans, intended for families of a few dozen members. [Node] is not safe for concurrent use; [Family] wraps a root node with a read/write lock and a lookup cache for callers that share a tree between goroutines.
package familytree

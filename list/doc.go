// Package list implements an allocator-aware doubly-linked list.
//
// # Structure
//
// Nodes form a ring anchored by a sentinel node that carries no payload:
//
//	sentinel <-> n1 <-> n2 <-> ... <-> nk <-> sentinel
//
// An empty list is a sentinel whose next and prev point to itself. The ring
// removes every head/tail special case from insertion and splicing.
//
// # Transfer
//
// Every structural algorithm is built on one primitive,
// transfer(position, first, last), which unlinks [first,last) from whatever
// ring holds it and relinks it before position. It rewrites three link pairs,
// never copies or allocates, and cannot fail. Splice, Merge and Sort move
// nodes only through it, so they are O(1) per node moved and leave every
// node accounted for at every step.
//
// # Allocation
//
// Nodes are carved from an allocator rebound from the element allocator
// (alloc.Rebind). Elements are constructed and destroyed through the element
// allocator's hooks. Moving nodes between lists (Splice, Merge) requires equal
// allocators; anything else is a contract violation.
//
// # Failure Recovery
//
// Comparators passed to MergeChecked and SortChecked may fail. A failed merge
// keeps the nodes it already moved and leaves both sizes exact. A failed sort
// splices its carry and all 64 bucket chains back onto the list before
// returning, so no node is lost. Panicking comparators get the same treatment
// before the panic continues.
//
// # Iterators
//
// Iterators name a node. They survive insertion and the erasure of other
// nodes, and they follow their node: after Splice, Merge or Swap an iterator
// belongs to the list that now holds the node, and handing it to the old list
// is a contract violation. Ownership is tracked with a forwardable home per
// list, so a whole-list Splice stays O(1).
//
// A List must not be copied after first use; use Clone.
package list

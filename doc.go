// Package syncds provides lock based containers that can be shared by any
// number of producer and consumer goroutines.
//
// A Container holds its elements in an order fixed at construction: FIFO
// (see NewQueue) or LIFO (see NewStack). Every operation linearises through a
// single mutex per instance. Elements can be retrieved three ways:
//
//   - TryPop reports absence as a value and never blocks.
//   - Pop and PopHandle report absence as ErrEmptyContainer and never block.
//   - WaitAndPop and WaitAndPopHandle suspend until an element arrives. They
//     cannot fail and cannot be interrupted; consumers are usually stopped by
//     pushing an agreed sentinel value. WaitAndPopContext is the cancellable
//     variant.
//
// Extraction always copies the element before removing it. When a copy
// function is configured with WithCopy and it panics, the element stays in
// the container and can be retrieved again once the caller recovers.
//
// Empty and Len are snapshots; another goroutine may change the container
// before the caller acts on the result.
package syncds

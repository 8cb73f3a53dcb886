// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanfill

import (
	"fmt"
	"unsafe"
)

// Handle identifies a record held by a [Pool].
type Handle int32

// NoHandle is the Handle value which refers to no record.
const NoHandle Handle = -1

// slot is one record of a pool chunk. While a slot is free, nextFree links
// it into the pool's free chain and val holds no meaningful data.
type slot[T any] struct {
	val      T
	nextFree Handle
	live     bool
}

// Pool is a fixed-record-size allocator. Records are carved out of chunks
// which are never moved or freed before Teardown, so pointers returned by
// Get stay valid until the record is released. Released records go onto a
// free chain and are handed out again before any fresh chunk space is used.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	// Grow, if set, is consulted before a new chunk of the given number of
	// records is allocated. Returning false makes the allocation fail with
	// ErrAllocation.
	Grow func(records int) bool

	// ChunkRecords overrides the number of records per chunk.
	// Zero selects a size based on the record size.
	ChunkRecords int

	chunks    [][]slot[T]
	perChunk  int
	remaining int // unused records at the end of the newest chunk
	freeHead  Handle
	live      int
}

// NewPool returns an empty pool. No memory is allocated until the first
// call to Alloc.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{freeHead: NoHandle}
}

// chunkSize returns the number of records per chunk. Small records get
// large chunks.
func (p *Pool[T]) chunkSize() int {
	if p.ChunkRecords > 0 {
		return p.ChunkRecords
	}
	var zero slot[T]
	size := unsafe.Sizeof(zero)
	switch {
	case size < 32:
		return 2000
	case size < 128:
		return 800
	default:
		return 100
	}
}

// Alloc returns a zeroed record. If the pool needs a new chunk and the Grow
// hook refuses it, Alloc returns NoHandle and an error wrapping
// ErrAllocation.
func (p *Pool[T]) Alloc() (Handle, error) {
	if p.freeHead != NoHandle {
		h := p.freeHead
		s := p.slot(h)
		p.freeHead = s.nextFree
		*s = slot[T]{live: true}
		p.live++
		return h, nil
	}

	if p.remaining == 0 {
		if p.perChunk == 0 {
			p.perChunk = p.chunkSize()
		}
		n := p.perChunk
		if p.Grow != nil && !p.Grow(n) {
			return NoHandle, fmt.Errorf("pool chunk of %d records: %w", n, ErrAllocation)
		}
		p.chunks = append(p.chunks, make([]slot[T], n))
		p.remaining = n
	}

	// hand out records from the end of the newest chunk
	p.remaining--
	h := Handle((len(p.chunks)-1)*p.perChunk + p.remaining)
	p.slot(h).live = true
	p.live++
	return h, nil
}

// Get returns a pointer to the record h. The pointer is valid until h is
// released.
func (p *Pool[T]) Get(h Handle) *T {
	return &p.slot(h).val
}

// Release returns the record h to the pool. Releasing a record twice is a
// programming error and panics.
func (p *Pool[T]) Release(h Handle) {
	s := p.slot(h)
	if !s.live {
		panic(fmt.Sprintf("scanfill: record %d released twice", h))
	}
	s.live = false
	s.nextFree = p.freeHead
	p.freeHead = h
	p.live--
}

// Teardown drops all chunks. Handles obtained before the call must not be
// used afterwards.
func (p *Pool[T]) Teardown() {
	p.chunks = nil
	p.perChunk = 0
	p.remaining = 0
	p.freeHead = NoHandle
	p.live = 0
}

// Chunks returns the number of chunks currently owned by the pool.
func (p *Pool[T]) Chunks() int {
	return len(p.chunks)
}

// Live returns the number of records which have been allocated and not yet
// released.
func (p *Pool[T]) Live() int {
	return p.live
}

func (p *Pool[T]) slot(h Handle) *slot[T] {
	i := int(h)
	return &p.chunks[i/p.perChunk][i%p.perChunk]
}

package vector

import (
	"fmt"

	"github.com/joshuapare/collections/alloc"
	"github.com/joshuapare/collections/cursor"
	"github.com/joshuapare/collections/internal/buf"
	"github.com/joshuapare/collections/internal/contract"
)

// checkLen validates a total length against the allocation ceiling.
func (v *Vector[T]) checkLen(n int) error {
	if n < 0 {
		return fmt.Errorf("vector: %w: negative length %d", alloc.ErrLength, n)
	}
	if ceiling := alloc.Ceiling(v.a); n > ceiling {
		return fmt.Errorf("vector: %w: length %d exceeds %d", alloc.ErrLength, n, ceiling)
	}
	return nil
}

// recommend returns the capacity to grow to so that needed elements fit:
// max(2*Cap, needed), capped at the ceiling.
func (v *Vector[T]) recommend(needed int) (int, error) {
	if err := v.checkLen(needed); err != nil {
		return 0, err
	}
	ceiling := alloc.Ceiling(v.a)
	doubled, ok := buf.MulOverflowSafe(v.Cap(), 2)
	if !ok || doubled > ceiling {
		return ceiling, nil
	}
	return max(doubled, needed), nil
}

// build allocates capacity slots and constructs [0,n) from val. If a
// construct hook panics, the slots built so far are destroyed and the block
// is returned before the panic continues.
func (v *Vector[T]) build(n, capacity int, val func(i int) T) (alloc.Block[T], error) {
	blk, err := v.a.Allocate(capacity)
	if err != nil {
		return alloc.Block[T]{}, fmt.Errorf("vector: %w", err)
	}
	built := 0
	defer func() {
		if built == n {
			return
		}
		for i := range built {
			v.a.Destroy(blk.At(i))
		}
		v.a.Deallocate(blk, capacity)
	}()
	for ; built < n; built++ {
		v.a.Construct(blk.At(built), val(built))
	}
	return blk, nil
}

// replace destroys and releases the current storage and installs blk
// holding n constructed elements.
func (v *Vector[T]) replace(blk alloc.Block[T], n int) {
	v.destroyRange(0, v.last)
	v.a.Deallocate(v.blk, v.blk.Cap())
	v.blk, v.last = blk, n
}

func (v *Vector[T]) destroyRange(i, j int) {
	for ; i < j; i++ {
		v.a.Destroy(v.blk.At(i))
	}
}

// realloc moves the elements into a fresh block of capacity slots.
func (v *Vector[T]) realloc(capacity int) error {
	blk, err := v.build(v.last, capacity, func(i int) T { return *v.blk.At(i) })
	if err != nil {
		return err
	}
	v.replace(blk, v.last)
	return nil
}

// insert opens count slots at pos and constructs val(0..count-1) into them.
// When the storage is full a new block is built completely before the old
// one is released, so an allocation failure changes nothing.
func (v *Vector[T]) insert(pos, count int, val func(i int) T) error {
	if count < 0 {
		return fmt.Errorf("vector: %w: negative count %d", alloc.ErrLength, count)
	}
	if count == 0 {
		return nil
	}
	needed, ok := buf.AddOverflowSafe(v.last, count)
	if !ok {
		return fmt.Errorf("vector: %w: %d + %d overflows", alloc.ErrLength, v.last, count)
	}

	if needed <= v.Cap() {
		mem := v.blk.Span(0, needed)
		copy(mem[pos+count:], mem[pos:v.last])
		for i := range count {
			v.a.Construct(&mem[pos+i], val(i))
		}
		v.last = needed
		return nil
	}

	capacity, err := v.recommend(needed)
	if err != nil {
		return err
	}
	blk, err := v.build(needed, capacity, func(i int) T {
		switch {
		case i < pos:
			return *v.blk.At(i)
		case i < pos+count:
			return val(i - pos)
		default:
			return *v.blk.At(i - count)
		}
	})
	if err != nil {
		return err
	}
	v.replace(blk, needed)
	return nil
}

// eraseRange destroys [first,last) and closes the gap.
func (v *Vector[T]) eraseRange(first, last int) {
	n := last - first
	if n == 0 {
		return
	}
	v.destroyRange(first, last)
	mem := v.blk.Span(0, v.last)
	copy(mem[first:], mem[last:])
	clear(mem[v.last-n:])
	v.last -= n
}

// index resolves a cursor to a position in [0,Len].
func (v *Vector[T]) index(c cursor.Const[T], op string) int {
	contract.Require(c.Compatible(v.CBegin()), op, "cursor belongs to a different sequence")
	contract.Requiref(c.Pos() <= v.last, op, "stale cursor at %d, length %d", c.Pos(), v.last)
	return c.Pos()
}

// PushBack appends x, growing the storage if needed.
func (v *Vector[T]) PushBack(x T) error {
	v.lazyInit()
	return v.insert(v.last, 1, func(int) T { return x })
}

// EmplaceBack appends x and returns a pointer to the stored element. The
// pointer is invalidated by the next reallocation.
func (v *Vector[T]) EmplaceBack(x T) (*T, error) {
	if err := v.PushBack(x); err != nil {
		return nil, err
	}
	return v.blk.At(v.last - 1), nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	contract.Require(v.last > 0, "vector.PopBack", "empty vector")
	v.lazyInit()
	v.eraseRange(v.last-1, v.last)
}

// Insert inserts copies of vals before pos and returns a cursor to the first
// inserted element (pos if vals is empty). vals must not alias the vector's
// own storage. Either every value is inserted or none is.
func (v *Vector[T]) Insert(pos cursor.Cursor[T], vals ...T) (cursor.Cursor[T], error) {
	v.lazyInit()
	i := v.index(pos.AsConst(), "vector.Insert")
	if err := v.insert(i, len(vals), func(k int) T { return vals[k] }); err != nil {
		return pos, err
	}
	return cursor.New[T](v, i), nil
}

// InsertN inserts n copies of x before pos and returns a cursor to the first
// inserted element (pos if n == 0).
func (v *Vector[T]) InsertN(pos cursor.Cursor[T], n int, x T) (cursor.Cursor[T], error) {
	v.lazyInit()
	i := v.index(pos.AsConst(), "vector.InsertN")
	if err := v.insert(i, n, func(int) T { return x }); err != nil {
		return pos, err
	}
	return cursor.New[T](v, i), nil
}

// Erase removes the element at pos and returns a cursor to the element that
// followed it.
func (v *Vector[T]) Erase(pos cursor.Cursor[T]) cursor.Cursor[T] {
	i := v.index(pos.AsConst(), "vector.Erase")
	contract.Require(i < v.last, "vector.Erase", "erasing the end position")
	v.eraseRange(i, i+1)
	return cursor.New[T](v, i)
}

// EraseRange removes [first,last) and returns a cursor to the element that
// followed the range.
func (v *Vector[T]) EraseRange(first, last cursor.Cursor[T]) cursor.Cursor[T] {
	i := v.index(first.AsConst(), "vector.EraseRange")
	j := v.index(last.AsConst(), "vector.EraseRange")
	contract.Requiref(i <= j, "vector.EraseRange", "inverted range [%d,%d)", i, j)
	v.eraseRange(i, j)
	return cursor.New[T](v, i)
}

// Clear destroys every element. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.lazyInit()
	v.destroyRange(0, v.last)
	v.last = 0
}

// Reserve ensures the capacity is at least n. It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	v.lazyInit()
	if n <= v.Cap() {
		return nil
	}
	if err := v.checkLen(n); err != nil {
		return err
	}
	return v.realloc(n)
}

// ShrinkToFit reduces the capacity to the length.
func (v *Vector[T]) ShrinkToFit() error {
	v.lazyInit()
	switch {
	case v.Cap() == v.last:
		return nil
	case v.last == 0:
		v.a.Deallocate(v.blk, v.blk.Cap())
		v.blk = alloc.Block[T]{}
		return nil
	}
	return v.realloc(v.last)
}

// Resize grows the vector with zero values or truncates it to n elements.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith grows the vector with copies of x or truncates it to n elements.
func (v *Vector[T]) ResizeWith(n int, x T) error {
	v.lazyInit()
	contract.Requiref(n >= 0, "vector.Resize", "negative size %d", n)
	if n <= v.last {
		v.eraseRange(n, v.last)
		return nil
	}
	return v.insert(v.last, n-v.last, func(int) T { return x })
}

// Assign replaces the contents with n copies of x. When n exceeds the
// capacity the new contents are built in fresh storage first.
func (v *Vector[T]) Assign(n int, x T) error {
	return v.assign(n, func(int) T { return x })
}

// AssignSlice replaces the contents with copies of vals.
func (v *Vector[T]) AssignSlice(vals []T) error {
	return v.assign(len(vals), func(i int) T { return vals[i] })
}

func (v *Vector[T]) assign(n int, val func(i int) T) error {
	v.lazyInit()
	if err := v.checkLen(n); err != nil {
		return err
	}
	if n > v.Cap() {
		blk, err := v.build(n, n, val)
		if err != nil {
			return err
		}
		v.replace(blk, n)
		return nil
	}

	kept := min(n, v.last)
	for i := range kept {
		*v.blk.At(i) = val(i)
	}
	if n < v.last {
		v.eraseRange(n, v.last)
		return nil
	}
	for i := v.last; i < n; i++ {
		v.a.Construct(v.blk.At(i), val(i))
		v.last = i + 1
	}
	return nil
}

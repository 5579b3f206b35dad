package bigarr

import "errors"

// Close releases every chunk of the array exactly once and closes the
// allocator. Release errors do not stop the teardown, they are joined and
// returned. The array is unusable afterwards.
func (a *Array) Close() error {
	if a.closed {
		return ErrClosed
	}
	a.closed = true

	var errs []error

	a.free(a.root, Depth, &errs)
	if err := a.alloc.Release(a.root); err != nil {
		errs = append(errs, err)
	}
	a.root = nil
	a.chunks = nil

	if err := a.alloc.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// free releases all the chunks below c, which sits depth levels above the values.
// The leaf children of a depth-2 chunk are released without looking into them:
// their slots are values, not handles.
//
// invariants:
//   - depth >= 2
//   - c != nil
func (a *Array) free(c *Chunk, depth int, errs *[]error) {
	if depth < 2 || c == nil {
		panic("bigarr: free called on a leaf chunk")
	}

	for _, h := range c {
		if h == 0 {
			continue
		}
		child := a.chunks[h]
		if depth > 2 {
			a.free(child, depth-1, errs)
		}
		if err := a.alloc.Release(child); err != nil {
			*errs = append(*errs, err)
		}
		a.chunks[h] = nil
	}
}

package bplustree

// RangeQuery returns, in ascending key order, the values for every key
// k satisfying lo <= k <= hi. The tree is descended once to find the
// first leaf that could contain lo, then the leaf chain is walked
// until a key exceeds hi.
func (t *Tree[K, V]) RangeQuery(lo, hi K) []V {
	if lo > hi {
		return nil
	}

	n := t.root
	for !n.isLeaf {
		i, found := lowerBound(n.keys, lo)
		if found {
			n = n.children[i+1]
		} else {
			n = n.children[i]
		}
	}

	var out []V
	for n != nil {
		for i, k := range n.keys {
			if k > hi {
				return out
			}
			if k >= lo {
				out = append(out, n.values[i])
			}
		}
		n = n.next
	}
	return out
}

// Keys returns every key currently stored, in ascending order. It is a
// thin convenience wrapper over the same leaf-chain walk RangeQuery
// performs; the tree exposes no public cursor type beyond this and
// RangeQuery.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.length)
	for n := t.firstLeaf; n != nil; n = n.next {
		keys = append(keys, n.keys...)
	}
	return keys
}

// Values returns every value currently stored, in ascending key order.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.length)
	for n := t.firstLeaf; n != nil; n = n.next {
		values = append(values, n.values...)
	}
	return values
}

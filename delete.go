package bplustree

import "bplustree/common"

// Delete removes key if present. It is idempotent: deleting an absent
// key is not an error.
func (t *Tree[K, V]) Delete(key K) {
	if t.deleteRec(t.root, key) {
		t.length--
	}
}

// deleteRec removes key from the subtree rooted at n, returning
// whether it was found and removed. Underflow repair of a child is
// performed here, by the parent, immediately after the recursive call
// returns — this is what makes the cascade up the ancestor chain work
// without fix-up ever recursing itself.
func (t *Tree[K, V]) deleteRec(n *node[K, V], key K) bool {
	if n.isLeaf {
		idx, found := lowerBound(n.keys, key)
		if !found {
			return false
		}
		removeAt(&n.keys, idx)
		removeAt(&n.values, idx)
		return true
	}

	idx, found := lowerBound(n.keys, key)

	if found {
		// key matches a separator; the actual record lives in the
		// right subtree of that separator.
		childPos := idx + 1
		child := n.children[childPos]
		if !t.deleteRec(child, key) {
			return false
		}

		if child.isLeaf && len(child.keys) == 0 && childPos+1 < len(n.children) {
			// Deletion emptied this leaf. Splice its right sibling
			// into its slot rather than running ordinary fix-up,
			// which would be ambiguous over a leaf with no keys.
			right := n.children[childPos+1]
			// children[idx] is child's immediate predecessor in the
			// leaf chain (same parent, same depth): repoint it past
			// the now-discarded child directly at right.
			n.children[idx].next = right
			n.keys[idx] = right.minKey()
			removeAt(&n.keys, childPos)
			n.children[childPos] = right
			removeAt(&n.children, childPos+1)
			t.leafCount--
			return true
		}

		// child may be a leaf that became empty with no right sibling
		// to splice in; min_key() is undefined on it, and it is about
		// to be fixed up anyway, so only refresh the separator when
		// it is still safe to read.
		if len(child.keys) > 0 {
			n.keys[idx] = child.minKey()
		}
		if len(child.keys) < t.minKeys {
			t.fixup(n, childPos)
		}
		return true
	}

	childPos := idx
	child := n.children[childPos]
	if !t.deleteRec(child, key) {
		return false
	}
	if len(child.keys) < t.minKeys {
		t.fixup(n, childPos)
	}
	return true
}

// fixup repairs the underflowing child at parent.children[childPos],
// choosing the first applicable action in order: borrow left, borrow
// right, merge left, merge right. Borrow is always preferred over
// merge, and the left sibling is always preferred over the right when
// both could serve.
func (t *Tree[K, V]) fixup(parent *node[K, V], childPos int) {
	keyPos := childPos - 1
	if keyPos < 0 {
		keyPos = 0
	}

	var left, right *node[K, V]
	if childPos > 0 {
		left = parent.children[childPos-1]
	}
	if childPos+1 < len(parent.children) {
		right = parent.children[childPos+1]
	}

	switch {
	case left != nil && len(left.keys) > t.minKeys:
		t.borrowFromLeft(parent, parent.children[childPos], left, keyPos)
	case right != nil && len(right.keys) > t.minKeys:
		t.borrowFromRight(parent, parent.children[childPos], right, keyPos)
	case left != nil:
		t.mergeLeft(parent, parent.children[childPos], left, childPos, keyPos)
	case right != nil:
		t.mergeRight(parent, parent.children[childPos], right, childPos, keyPos)
	default:
		common.Assert(false, "fix-up invoked on a child with no siblings")
	}
}

func (t *Tree[K, V]) borrowFromLeft(parent, child, left *node[K, V], keyPos int) {
	if child.isLeaf {
		lastIdx := len(left.keys) - 1
		k := removeAt(&left.keys, lastIdx)
		v := removeAt(&left.values, lastIdx)
		insertAt(&child.keys, 0, k)
		insertAt(&child.values, 0, v)
		parent.keys[keyPos] = child.minKey()
		return
	}

	borrowedChild := removeAt(&left.children, len(left.children)-1)
	promoted := removeAt(&left.keys, len(left.keys)-1)

	insertAt(&child.keys, 0, parent.keys[keyPos])
	insertAt(&child.children, 0, borrowedChild)
	parent.keys[keyPos] = promoted
}

func (t *Tree[K, V]) borrowFromRight(parent, child, right *node[K, V], keyPos int) {
	if child.isLeaf {
		borrowedKey := removeAt(&right.keys, 0)
		borrowedVal := removeAt(&right.values, 0)
		child.keys = append(child.keys, borrowedKey)
		child.values = append(child.values, borrowedVal)

		if borrowedKey == parent.keys[keyPos] {
			parent.keys[keyPos] = right.keys[0]
		} else {
			parent.keys[keyPos+1] = right.keys[0]
		}
		return
	}

	borrowed := right.keys[0]
	switch {
	case len(parent.keys) == 1:
		child.keys = append(child.keys, parent.keys[keyPos])
		parent.keys[keyPos] = borrowed
	case borrowed > parent.keys[keyPos+1]:
		child.keys = append(child.keys, parent.keys[keyPos+1])
		parent.keys[keyPos+1] = borrowed
	case borrowed == parent.keys[keyPos+1]:
		common.Assert(false, "structural error: borrowed separator equals parent separator")
	default:
		child.keys = append(child.keys, parent.keys[keyPos])
		parent.keys[keyPos] = borrowed
	}

	child.children = append(child.children, right.children[0])
	removeAt(&right.keys, 0)
	removeAt(&right.children, 0)
}

func (t *Tree[K, V]) mergeLeft(parent, child, left *node[K, V], childPos, keyPos int) {
	if child.isLeaf {
		left.keys = append(left.keys, child.keys...)
		left.values = append(left.values, child.values...)
		left.next = child.next
		t.leafCount--
	} else {
		left.keys = append(left.keys, parent.keys[keyPos])
		left.keys = append(left.keys, child.keys...)
		left.children = append(left.children, child.children...)
	}

	removeAt(&parent.keys, keyPos)
	removeAt(&parent.children, childPos)

	if parent == t.root && len(parent.keys) == 0 {
		t.root = left
	}
}

func (t *Tree[K, V]) mergeRight(parent, child, right *node[K, V], childPos, keyPos int) {
	if child.isLeaf {
		child.keys = append(child.keys, right.keys...)
		child.values = append(child.values, right.values...)
		child.next = right.next
		t.leafCount--
	} else {
		child.keys = append(child.keys, parent.keys[keyPos])
		child.keys = append(child.keys, right.keys...)
		child.children = append(child.children, right.children...)
	}

	removeAt(&parent.keys, keyPos)
	removeAt(&parent.children, childPos+1)

	if parent == t.root && len(parent.keys) == 0 {
		t.root = child
	}
}

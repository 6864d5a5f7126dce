package bplustree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmptyTree(t *testing.T) {
	tr, err := New[int, string](4)
	assert.NoError(t, err)
	assert.True(t, tr.Validate())
}

func TestValidateCatchesOutOfOrderKeys(t *testing.T) {
	tr, err := New[int, string](4)
	assert.NoError(t, err)
	tr.root.keys = []int{5, 3}
	tr.root.values = []string{"a", "b"}
	assert.False(t, tr.Validate())
}

func TestValidateCatchesBadSeparatorBound(t *testing.T) {
	tr, err := New[int, string](3)
	assert.NoError(t, err)

	left := &node[int, string]{isLeaf: true, keys: []int{10, 25}, values: []string{"a", "b"}}
	right := &node[int, string]{isLeaf: true, keys: []int{30}, values: []string{"c"}}
	left.next = right
	// separator of 20 is violated: left's max key (25) is not < 20.
	root := &node[int, string]{keys: []int{20}, children: []*node[int, string]{left, right}}

	tr.root = root
	tr.firstLeaf = left
	tr.leafCount = 2
	tr.length = 3

	assert.False(t, tr.Validate())
}

func TestValidateCatchesUnevenLeafDepth(t *testing.T) {
	tr, err := New[int, string](3)
	assert.NoError(t, err)

	shallowLeaf := &node[int, string]{isLeaf: true, keys: []int{5}, values: []string{"a"}}
	deepLeafA := &node[int, string]{isLeaf: true, keys: []int{25}, values: []string{"b"}}
	deepLeafB := &node[int, string]{isLeaf: true, keys: []int{30}, values: []string{"c"}}
	shallowLeaf.next, deepLeafA.next = deepLeafA, deepLeafB
	// Separators, key counts and the leaf chain are all sound; only
	// the leaf depths differ (1 under the root's left, 2 under its right).
	deepInternal := &node[int, string]{keys: []int{30}, children: []*node[int, string]{deepLeafA, deepLeafB}}

	root := &node[int, string]{keys: []int{20}, children: []*node[int, string]{shallowLeaf, deepInternal}}
	tr.root = root
	tr.firstLeaf = shallowLeaf
	tr.leafCount = 3
	tr.length = 3

	assert.False(t, tr.Validate())
}

func TestValidateCatchesLeafCountMismatch(t *testing.T) {
	tr, err := New[int, string](4)
	assert.NoError(t, err)
	assert.NoError(t, tr.Insert(1, "a"))
	assert.NoError(t, tr.Insert(2, "b"))

	tr.leafCount = 99
	assert.False(t, tr.Validate())
}

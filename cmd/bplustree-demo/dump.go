package main

import (
	"fmt"

	"bplustree"
)

// dumpTree prints the tree's leaf-chain contents as key:value pairs,
// in the bracketed list style of the teacher repo's PrettyPrint. The
// core exposes no node-level walk, only the ordered Keys/Values chain
// dump, so that is what this diagnostic prints against.
func dumpTree(t *bplustree.Tree[int, string]) {
	keys := t.Keys()
	values := t.Values()

	fmt.Printf("LEAF CHAIN [%d keys]\n", len(keys))
	for i := range keys {
		fmt.Printf("  %d:%s\n", keys[i], values[i])
	}
}

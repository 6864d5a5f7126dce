// Command bplustree-demo drives a bplustree.Tree[int, string] from the
// command line: build it from flag-configured parameters, run a mixed
// insert/range/delete workload against it, and print a summary. It is
// an external collaborator of the core library, not part of it — the
// core takes no CLI, logging, or benchmarking dependency of its own.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"bplustree"
)

func main() {
	degree := flag.Int("degree", 4, "branching degree of the tree (must be >= 3)")
	count := flag.Int("count", 1000, "number of distinct keys to insert")
	seed := flag.Int64("seed", 1, "PRNG seed for key order and deletions")
	dump := flag.Bool("dump", false, "print the final tree's leaf-chain contents as key:value pairs")
	flag.Parse()

	tree, err := bplustree.New[int, string](*degree)
	if err != nil {
		log.Fatalf("construct tree: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	order := rng.Perm(*count)

	for _, k := range order {
		if err := tree.Insert(k, fmt.Sprintf("value-%d", k)); err != nil {
			log.Fatalf("insert %d: %v", k, err)
		}
	}
	log.Printf("inserted %d keys, tree now holds %d", *count, tree.Len())

	lo, hi := *count/4, *count/2
	log.Printf("range [%d,%d] contains %d values", lo, hi, len(tree.RangeQuery(lo, hi)))

	if !tree.Validate() {
		log.Fatal("tree failed validation after inserts")
	}

	deletionOrder := rng.Perm(*count)
	for _, k := range deletionOrder[:*count/2] {
		tree.Delete(k)
	}
	log.Printf("deleted %d keys, tree now holds %d", *count/2, tree.Len())

	if !tree.Validate() {
		log.Fatal("tree failed validation after deletes")
	}

	if *dump {
		dumpTree(tree)
	}
}

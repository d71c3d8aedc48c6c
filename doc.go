// Package bstviz is an in-memory binary search tree with a deterministic
// drawing layout, and a small terminal front-end to play with both.
//
// What is inside?
//
//	bst/              — the tree engine: copy-on-write insert/delete, search,
//	                    traversals, height, count, invariant validation
//	layout/           — coordinates for every node by recursive range halving
//	internal/session/ — text input → engine calls, status messages, snapshots,
//	                    logging and Prometheus metrics
//	internal/render/  — SVG and sideways-text drawings of a snapshot
//	cmd/bstviz/       — show, demo and repl commands
//
// Quick ASCII example:
//
//	        50
//	      /    \
//	    30      70
//	   /  \    /  \
//	  20  40  60  80
//
// is what bst.New(50, 30, 70, 20, 40, 60, 80) stores; its in-order walk is
// 20 30 40 50 60 70 80.
//
// No rebalancing is performed: the tree mirrors insertion order, and the
// layout mirrors the tree.
//
//	go install github.com/katalvlaran/bstviz/cmd/bstviz@latest
package bstviz

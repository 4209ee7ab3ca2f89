// Package ir implements the mutable instruction tree a decompiled method
// body is rewritten on: typed nodes with slot-described children, cached
// effect flags, cloning, canonical text rendering and invariant checking.
//
// The upstream bytecode reader produces well-formed trees rooted at blocks;
// block transforms then rewrite them in place through the generic
// Child/SetChild protocol. Ownership is strict: every node has at most one
// tree position, and a node extracted for relocation must not be referenced
// through its old position again.
package ir

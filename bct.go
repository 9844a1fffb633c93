/*
Package bct is a pure Go implementation of the Binary Convolution Theory (BCT)
invariant engine. It computes integer invariants of the pre-carry convolution of
binary digit sequences (the height H, the carry count C and the sequential and
parallel chain lengths L), together with the classical divisor-sum functions and
the BCT-perfectness predicate, and provides range-sweep verification of the
structural claims relating binary convolution to perfect numbers.
*/
package bct

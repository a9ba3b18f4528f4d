// Package calc implements the notebook expression language.
//
// A committed line is one of three statements, tried in this order:
//
//	f(x):= 2*x+3   definition of f over the free variable x
//	f(5)           call: evaluate f at a non-negative integer
//	f = 13         solve: find x with f(x) = 13 when f is linear
//
// Anything else is a syntax error. Definitions live in a Table for the
// lifetime of a Notebook; lookups return the first definition of a name.
package calc

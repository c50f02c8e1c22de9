// Package abacus implements the parser and interpreter for abacus machines.
//
// An abacus machine has an unbounded set of natural-number registers, all
// initially zero, and a program counter naming the label of the next
// instruction. There are two instructions:
//
//	label: inc REG NEXT
//	label: ifzdec TEST IFZERO DEC IFNONZERO
//
// inc increments REG and jumps to NEXT. ifzdec jumps to IFZERO when TEST is
// zero; otherwise it decrements DEC and jumps to IFNONZERO. The machine halts
// when the program counter names a label that is not in the program.
//
// Program text is parsed permissively: anything after '#' is a comment, and
// lines that are not instructions are skipped.
package abacus

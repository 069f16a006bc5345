// Package calcpro implements a sandboxed calculator for float64 expressions.
//
// The syntax is ordinary arithmetic: "2 + 3*4", "sqrt(16) + 2^3",
// "-2^2" (which is "-(2^2)"), and "2^3^2" (which is "2^(3^2)"). "//" is
// floor division, "%" is floored modulus, "**" is the same as "^", and a
// lone "x" between terms multiplies.
//
// Evaluation happens in three stages. Parse turns text into an Expr.
// Validate checks every name in the Expr against a Table, which is the only
// set of functions and constants an expression can reach. Eval validates and
// then reduces the expression to a number. No function in the Table is called
// until the whole expression has passed validation.
//
// The package has no knowledge of particular functions. Package stdlib
// provides the usual tables.
package calcpro

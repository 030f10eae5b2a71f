// Package ulox provides a tree-walking interpreter for ulox, a small
// Lox-like scripting language with numbers, strings, booleans and nil,
// lexically scoped variables, blocks, if/else and print.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := ulox.Run(`var x = 1; print x + 2;`, nil)
//
// Evaluating a single expression:
//
//	value, err := ulox.Evaluate(`2 ^ 3 ^ 2`, nil) // "64"
//
// # Compiled Programs
//
// For repeated execution of the same program:
//
//	prog, err := ulox.Compile(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, err := prog.Run(&ulox.Config{Output: os.Stdout})
//
// # Configuration
//
// The [Config] type allows customization of execution:
//   - Output and diagnostic writers
//   - A debug dump of the parsed statements
//   - Strict boolean conditions for if statements
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [LexErrors]: unexpected characters and unterminated strings
//   - [ParseError]: syntax errors in ulox source
//   - [RuntimeError]: type mismatches and undefined variables
//
// [ExitCode] maps an error to the conventional process exit code.
//
// # Thread Safety
//
// Compiled [Program] objects are safe for concurrent use.
// Each call to [Program.Run] creates an independent execution context.
// A [Session] is not.
package ulox

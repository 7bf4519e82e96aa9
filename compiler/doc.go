/*

Process of compilation

Expression Text ->
	scan ->
Token Sequence ->
	parse ->
Abstract Syntax Tree (ast) ->
	analyze ->
Validated Tree ->
	emit ->
WebAssembly Text (wat)

Each pass completes fully before the next begins. An error at any
stage aborts the attempt, there is no recovery and no partial output.

*/
package compiler

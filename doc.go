/*
Package possum is the front end of a small expression-oriented language.

It turns raw source text into a stream of typed tokens, and then into an abstract
syntax tree for expressions. Both stages recover from malformed input instead of
stopping at the first error, so a single pass reports every problem in the input.
Package structure is as follows:

■ lexer: Package lexer implements the tokenizer, based on a DFA generated by lexmachine.
Literal values are decoded eagerly.

■ ast: Package ast implements expression trees and a precedence-climbing parser
on top of a cursor over finalized tokens.

■ frontend: Package frontend bundles lexing and parsing for drivers, and serializes
results for hosts.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The possum Authors

*/
package possum

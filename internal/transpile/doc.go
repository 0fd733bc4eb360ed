// Package transpile turns a lugha token stream into target script text in a
// single left-to-right pass.
//
// Each top-level token starts one statement. The statement handler consumes
// the tokens it needs with one token of lookahead and returns one fragment;
// tokens that do not start a statement yield an empty fragment and a
// diagnostic. The pass never looks back and always advances, so it
// terminates on any finite token slice, with or without a trailing EOF.
//
// Names pass through an identifier table (Idents) that maps a source lexeme
// to its emitted spelling. The spelling comes from a Renamer: the identity by
// default, or LatinRenamer for ASCII-only output.
//
// Blocks opened by fun, while and if are tracked on a tagged stack so that
// end, else and end of input can verify nesting.
package transpile

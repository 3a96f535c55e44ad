// Package measure provides text measurement for Text content.
//
// A [Measurer] answers one question: given a string, a font and a bounding
// proposal, how much room does the text need? Either bound dimension may be
// [Unbounded]. Measurers never fail; an unusable font falls back to the
// default face so that the layout engine itself has no error path.
//
// # Implementations
//
//   - [Cell]: terminal cell metrics (one column per rune width, one row per line)
//   - [Face]: pixel metrics from a bitmap font face
//   - [Fixed] and [Func]: fixed or scripted answers for tests and fixtures
//   - [Cached]: LRU memoization around any other Measurer
//
// Text wider than the width bound is word-wrapped by the measurer. This is the
// measurer's own shaping and has nothing to do with how siblings are arranged.
package measure

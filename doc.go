// Package quotefix repairs a broken string literal in a single source file.
//
// The chat fallback message in src/App.tsx was written as a single-quoted
// literal with doubled backslashes before each apostrophe:
//
//	content: 'I\\'m sorry, I\\'m having trouble responding right now. ...'
//
// quotefix rewrites every occurrence into a double-quoted literal:
//
//	content: "I'm sorry, I'm having trouble responding right now. ..."
//
// Files without the broken literal are left untouched. Writes are atomic.
//
// Usage:
//
//	res, err := quotefix.Fix(ctx, "src/App.tsx",
//		quotefix.WithLogger(logger),
//	)
package quotefix

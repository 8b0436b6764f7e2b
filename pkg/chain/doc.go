// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result[T, E] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map/MapErr/Recover: compose result-returning or transforming functions
// - Tee/DoubleTee: trigger side effects without changing the result
// - Or/And: combine chains (first success / first error wins)
// - RepeatUntil/While: loop a step while the chain stays successful
// - Finally: reduce to a concrete value via handlers
//
// Tiny synchronous chaining like this improves readability in small services
// or tests without reaching for the full combinator set.
package chain

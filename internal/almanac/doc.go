// Package almanac solves the seed-location almanac puzzle.
//
// An almanac document starts with a seeds line and continues with an
// ordered chain of category-to-category mapping tables ("stages"). Each
// stage holds rules that translate a contiguous source interval by a
// constant offset. The solver propagates whole half-open ranges through
// every stage, splitting a range wherever it straddles a rule boundary,
// and reports the minimum value reachable after the final stage.
//
// Propagation cost scales with the number of range/rule intersections,
// not with the width of the seed ranges, so range mode handles seed
// pairs spanning billions of values without enumerating them.
package almanac

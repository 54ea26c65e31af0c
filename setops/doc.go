// Package setops composes two graphs into a new graph: Union collects
// every node and edge from both operands, Intersection keeps only what
// both share.
//
// What
//
//   - The result kind is resolved by core.MergeKinds: identical kinds keep
//     that kind, KindBase yields to the more specific operand, and
//     Directed combined with Undirected falls back to KindBase.
//   - Nodes and edges are deep value clones; the node back-reference is
//     cleared on clone and re-assigned when the clone is inserted into
//     the result graph.
//   - Union de-duplicates nodes and edges by id, first occurrence wins
//     (operand A before operand B), and drops any edge whose endpoints
//     did not both survive node collection.
//   - Intersection keeps the nodes whose ids appear in both operands
//     (cloned from A, in A's insertion order) and the edges whose ids
//     appear in both, restricted to the shared node set.
//   - On an undirected result, a second distinct-id edge over an already
//     connected pair is skipped silently, preserving the pair invariant.
//   - Result identity is synthesized: "{idA}_union_{idB}" with display
//     name "Union(nameOrIdA, nameOrIdB)", and analogously with
//     "_intersection_" / "Intersection(...)".
//
// Complexity: O((V+E)²) in the worst case, dominated by the id lookups
// on insertion-ordered sequences.
//
// Errors
//
//   - ErrNilGraph  if either operand is nil.
package setops

// Package grouptopo computes a grouped topological sort for build-system
// directory generators: given a set of targets, each with direct
// dependencies and an ideal directory path, it finds a small set of hoists
// — relocations of targets to an ancestor of their ideal directory — after
// which every directory's subdirectory ordering can be chosen to satisfy
// all dependency constraints.
//
// The package is organized as a pipeline of small collaborators:
//
//	target/     — TargetName/DirName identifier types
//	depgraph/   — the dependency graph and its cycle/toposort checks
//	dirtree/    — the rooted directory tree and its cross-structure invariant
//	sibling/    — per-directory sibling graph and SCC partitioning
//	subproblem/ — per-SCC induced subgraph and its simplification passes
//	constraint/ — the HoistsNeeded algebra and its flattened FastHN form
//	conflict/   — the pairwise directory-ordering cost analyser
//	chooser/    — the approximate minimum-cover hoist selector
//	permute/    — sibling-directory permutation enumeration
//	solver/     — the inner solver tying the above together per SCC
//	driver/     — the recursive descent and post-hoist verifier
//	hoistplan/  — the Hoist record and its executor
//	jsonio/     — JSON input parsing and output formatting
//
// Run ties these together into the full pipeline: parse, solve, execute,
// optionally verify, and serialize.
package grouptopo

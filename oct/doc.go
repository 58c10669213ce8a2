// Package oct is the octagon abstract domain: sets of program states
// over-approximated by conjunctions of constraints ±Xᵢ ±Xⱼ ≤ c.
//
// 🚀 How a value works
//
//	An Oct holds up to two half-matrices over its 2·dim literals: m,
//	the latest (possibly un-closed) constraint matrix, and closed, the
//	cached strong normal form. Operations that invalidate closure
//	(meet, guards, most assignments) clear the cache; predicates that
//	need precision re-close lazily through the manager. A value with
//	neither matrix is ⊥ — unsatisfiability is a regular lattice
//	element, not an error.
//
// ✨ The manager
//
//	A Manager carries the policy switches (auto-close threshold), the
//	per-operation result flags (Exact, Best, Conv) and the scratch
//	buffer reused by expression classification. One manager serves one
//	call at a time; independent goroutines need independent managers.
//
// Typical session:
//
//	man := oct.NewManager()
//	a := oct.Top(man, 3, 0)
//	a = oct.MeetLinconsArray(man, true, a, guards)
//	if oct.SatLincons(man, a, goal) { ... }
//
// Binary operations require operands of identical dimensions;
// mismatches are programmer errors and panic, while comparison
// predicates degrade to the safe answer false.
package oct

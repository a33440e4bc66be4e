// Package dualascent implements daR, the Lagrangian dual-ascent procedure
// that produces a valid lower bound and reduced costs for a rooted PCSTP
// instance (§4.3).
//
// Algorithm: maintain the set of "active" root-components — connected
// components (under zero-reduced-cost arcs) that contain at least one
// required node (a terminal or fixed-in node, other than the root) the
// root cannot yet reach. Repeatedly pick the smallest active component,
// saturate its cheapest entering arc, and fold the saturated amount into
// the lower bound. Stop when no active component remains.
//
// Determinism: components are processed smallest-first; ties are broken
// by the guiding solution's node membership when one is supplied, and
// otherwise by lowest node index. Given identical inputs and an identical
// guide, output is bit-identical (§4.3 "Determinism").
package dualascent

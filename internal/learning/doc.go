// Package learning turns the feedback log into aggregate analysis,
// adaptive confidence weights and profile update suggestions.
//
// Every operation here is a pure, synchronous computation over an
// already-loaded entry list; the package performs no I/O. Small logs are
// normal conditions, not errors: operations return ok=false (and the
// adaptive context carries an explicit insufficient-data status) until the
// log crosses the relevant minimum.
//
// Two different definitions of "high value" coexist by design. Content
// pattern analysis counts any useful rating; sender patterns and sender
// suggestions require an escalation or a useful rating on a high/urgent
// prediction. They are scoped to their components and must not be unified.
//
// The AdaptiveContext produced by ContextBuilder is the package's only
// outbound interface: an aggregated signal object for the external prompt
// builder, never raw feedback text.
package learning

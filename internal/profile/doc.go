// Package profile manages the user interest profile: the JSON document
// that describes what the user cares about, who they trust, and how
// digests and urgency notifications should behave.
//
// The file is the source of truth. Every mutation backs up the current
// file with a timestamp suffix before rewriting the whole document, so a
// bad write costs at most one change. Batch additions go through a
// similarity gate that holds back near-duplicates ("ML" next to
// "Machine Learning") for the user to resolve instead of adding them.
package profile

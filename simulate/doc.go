// Package simulate is a thin, non-core worked example wiring the rest of
// this module together: sample an error, compute its syndrome, decode it,
// and compare against the sampled truth.
//
// It exists only to document the intended data flow an external caller
// follows; batch dispatch, logging, and result reporting for a real
// simulation campaign are the caller's responsibility, so Trial runs
// exactly one shot and returns its outcome.
package simulate

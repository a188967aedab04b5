// Package artifacts tags detected spikes that are likely non-neural.
//
// Four fixed heuristic detectors each scan a polarity's spike train and return
// a boolean mask plus their numeric code: excessive local firing rate (1),
// absolute amplitude bound (2), simultaneous cross-channel activity (4), and
// duplicate detection of the same event (8). The pipeline runs them in that
// order and assigns each flagged spike the code of the detector that flagged
// it, then persists the per-spike codes back to the recording store.
package artifacts

// Command spikemask tags detected neural spikes as artifacts.
//
// It runs four fixed heuristic detectors over every recording file in a
// target and writes a per-spike artifact code back into the recording store:
//
//	spikemask mask /data/session01
//	spikemask mask --no-concurrent /data/session01/data_ch12.sdb
//	spikemask show /data/session01/data_ch12.sdb
package main

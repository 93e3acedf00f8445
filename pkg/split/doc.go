// Package split partitions a master template into overlapping curator
// assignments.
//
// Records are shuffled with a seeded generator, dealt into contiguous
// unique blocks (one per curator), and then each curator copies the tail of
// its predecessor's block on a cyclic ordering:
//
//	curator1: [ u1 ........ | c1 ]            + tail of curator3's block (c3)
//	curator2: [ u2 ...... | c2 ]              + c1
//	curator3: [ u3 ...... | c3 ]              + c2
//
// Every record lands in its owner's assignment and at most one neighbour's,
// so coverage is exact and each adjacent pair has a well-defined shared
// subset for agreement analysis. Boundary slice sizes are planned so that
// the share of each curator's records also held by a neighbour stays within
// one record of the requested overlap percentage.
package split

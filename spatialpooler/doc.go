// Package spatialpooler implements the HTM spatial pooling algorithm: it
// converts arbitrary binary input vectors into sparse distributed
// representations (SDRs) by maintaining a bipartite pool of proximal
// synapses per column and continuously adapting their permanences through
// duty-cycle homeostasis, boosting, and inhibition-radius adaptation.
//
// All state lives in a Connections value built by NewConnections and
// initialized by Init. Compute is the single entry point thereafter; it is
// not safe to call concurrently on the same Connections.
package spatialpooler

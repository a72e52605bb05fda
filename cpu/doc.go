// Package cpu implements the architectural register state of an 8086.
//
// The register file holds thirteen 16-bit registers (ax, cx, dx, bx, sp,
// bp, si, di, ip, es, cs, ss, ds) and the flags register. The byte
// registers al..bh are aliases of the low and high bytes of ax, cx, dx and
// bx, and are accessed through Set8 and Get8 only. Bit 15 of the flags
// register is hardwired to 1.
//
// Store is the seam used by execution engines. RegisterFile is the plain
// storage, Logged and Checkpoint wrap any Store to add tracing and
// snapshot/rollback.
//
// A Store has no locking. Each simulated machine owns its own Store.
package cpu

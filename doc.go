// Package repcode simulates quantum repetition error-correcting codes —
// from circuit construction to decoding and logical-error statistics.
//
// 🚀 What is repcode?
//
//	A small, deterministic toolkit that brings together:
//		• Code parameters: odd-distance repetition codes in the Z or X basis
//		• Circuit builder: encode → noise → syndrome extraction → measurement
//		• Decoders: majority vote (default) and syndrome-assisted correction
//		• Statistics: logical error rates and syndrome-pattern aggregation
//		• Sampler: a seedable Pauli-frame execution engine, swappable for
//		  any external sampling service
//
// ✨ Why choose repcode?
//
//   - Deterministic by construction – the same code yields the same circuit,
//     the same seed yields the same shots
//   - Explicit errors – sentinel errors and errors.Is everywhere, no panics
//     inside algorithms
//   - Pure Go – no cgo, no quantum SDK required
//   - Extensible – decoding strategies and samplers are plain interfaces
//
// Under the hood, everything is organized under flat subpackages:
//
//	code/    — Code value (distance, basis) and construction-time validation
//	circuit/ — Instruction, Circuit, and deterministic circuit builders
//	decode/  — Decoder strategies and per-shot decoding
//	stats/   — logical error rate + syndrome frequency statistics
//	sim/     — Sampler boundary, Pauli-frame reference sampler, experiment drivers
//	report/  — structured result sink (JSON + text summaries)
//	cmd/     — the repcode CLI (demo, sweep, compare)
//
// Quick ASCII example, the d=3 bit-flip code:
//
//	q0 ──●──●──────────X?───●────────────M
//	q1 ──X──┼──────────X?───┼──●──●──────M
//	q2 ─────X──────────X?───┼──┼──┼──●───M
//	a0 (q3) ──R─────────────X──X──M
//	a1 (q4) ──R────────────────────X──X──M
//
//	three data qubits entangled from q0, two ancillas reading adjacent
//	parities, ancilla measurements first, data measurements last.
//
// Dive into README-less package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/repcode
package repcode

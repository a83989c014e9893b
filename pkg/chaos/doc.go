// Package chaos provides probabilistic fault injection for mock dispatch.
//
// An Injector decorates a mock handler's dispatch path: before normal setup
// matching, it draws from a seeded pseudo-random source and, with the
// configured failure rate, injects an error from a configured pool and/or a
// fixed delay. The invocation is still recorded, so verification sees every
// attempted call.
//
// Identical seeds produce identical decision sequences, independent of
// platform, which keeps chaos-enabled tests reproducible.
package chaos

// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic sources and a fake instrument for
// tests across the module.
package audiotest

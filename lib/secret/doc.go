// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe buffer for sensitive data:
// staff passwords on their way to the identity provider and the bearer
// tokens that come back.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped. Because the memory lives
// outside the Go heap, the garbage collector cannot copy or relocate
// it, so secret material does not linger after release.
//
// [Prompt] reads a password from the terminal with echo disabled, and
// [ReadFromPath] reads one from a file or stdin, both straight into a
// protected buffer.
package secret

// Package pool provides fixed, growing, thread-local and thread-safe
// object pools over chunked non-moving storage, plus the handle types
// through which pooled values are accessed.
//
// All variants hand out stable *T pointers: storage grows by appending
// chunks, never by moving live slots. The fixed and growing pools are
// single-owner structures guarded against overlapping unsynchronized
// calls; ThreadSafePool serializes access internally and is the only
// variant safe to share across goroutines.
//
// License: Apache-2.0
package pool

// Package bitmap provides a pooled set of record positions backed by a
// 32-bit Roaring Bitmap.
//
// The store uses it to mark the positions a batch delete removes before
// compacting the record slice in a single pass.
package bitmap

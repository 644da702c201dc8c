// Package kernel holds the primitives every aggregate in the shop-floor
// domain builds on.
//
// UUID is the shared identifier value object; ConstructorGuard lets value
// objects detect that they were built as zero values instead of through
// their constructor. Both are immutable and safe for concurrent use.
package kernel

// Package lib provide useful functions and features that are not
// particularly tied up with any tree algorithm. They are meant to be
// small and self-contained.
package lib

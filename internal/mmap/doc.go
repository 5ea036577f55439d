// Package mmap maps blob files read-only into memory.
//
// On unix the file is mapped with mmap(2) via golang.org/x/sys/unix; other
// platforms read the file into the heap behind the same API.
//
// A Mapping must be closed; slices returned by Bytes are invalid afterwards.
package mmap

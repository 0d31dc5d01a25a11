// Package model defines the data structures shared by the rewriting engines.
package model

import "bytes"

// Path represents a file system path.
type Path string

// File is a target file held in memory for one run.
//
// Original is captured once when the file is read and is never mutated; it is
// what the committer compares against. Content is replaced by every engine
// pass.
type File struct {
	Path     Path
	Original []byte
	Content  []byte
}

// NewFile builds a File whose content starts out equal to its original text.
func NewFile(path Path, content []byte) File {
	original := make([]byte, len(content))
	copy(original, content)

	return File{
		Path:     path,
		Original: original,
		Content:  content,
	}
}

// Changed reports whether the content differs from the original byte for byte.
func (f File) Changed() bool {
	return !bytes.Equal(f.Original, f.Content)
}

// TargetSet names a group of path entries that one command operates on.
type TargetSet struct {
	Name     string
	Paths    []Path
	Suffixes []string
	Exclude  []string
}

// Selection is the resolved file list of one TargetSet.
type Selection struct {
	Name    string
	Files   []Path
	Missing []Path
}

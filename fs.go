package merkle

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// LeavesFromPaths resolves each path into leaf nodes. A file is read whole
// and hashed into a single leaf; a directory is recursed into with its
// entries visited in lexicographic path order, so the same directory
// contents always produce the same leaf order across runs and platforms.
//
// Any unreadable path aborts the traversal with a wrapped error; a file
// that cannot be fully read never contributes a leaf.
func LeavesFromPaths(hasher Hasher, paths []string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %q", path)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read directory %q", path)
			}
			children := make([]string, 0, len(entries))
			for _, entry := range entries {
				children = append(children, filepath.Join(path, entry.Name()))
			}
			sort.Strings(children)

			sub, err := LeavesFromPaths(hasher, children)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, sub...)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read file %q", path)
		}
		nodes = append(nodes, NewLeaf(hasher.Hash(content)))
	}
	return nodes, nil
}

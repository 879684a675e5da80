// Package fileutil provides the streaming directory walk used to discover bundle inputs.
//
// Walk traverses a root directory recursively and hands every file whose name ends
// with one of the configured suffixes to a callback, one entry at a time. Nothing is
// collected or sorted: entries arrive in the order filepath.WalkDir yields them, which
// keeps memory flat on large trees.
//
// # Matching
//
// Suffixes are compared with strings.HasSuffix on the base name, so matching is exact
// and case-sensitive: ".dart" matches "main.dart" but not "main.DART" or "main.dart.bak".
// An empty suffix list matches every file.
//
// # Error Tolerance
//
// Errors on individual paths (an unreadable subdirectory, a file removed mid-walk) are
// collected in WalkResult.Errors and the walk continues. A root that does not exist or
// is not a directory yields zero entries and sets WalkResult.RootMissing. The only
// error Walk returns is one produced by the callback itself (or a failure resolving
// ExcludePaths).
//
// # Usage
//
//	result, err := fileutil.Walk("lib", fileutil.WalkOptions{
//	    Suffixes:     []string{".dart"},
//	    ExcludePaths: []string{"lib/alle_dateien.dart"},
//	}, func(entry fileutil.Entry) error {
//	    fmt.Println(entry.Path)
//	    return nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.RootMissing {
//	    log.Printf("nothing to walk")
//	}
//
// # Links and Special Files
//
// Symbolic links to files are reported; links to directories are not followed,
// except when the root itself is a link. Sockets, devices and named pipes are
// never reported.
package fileutil

// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io/ioutil"
	"os"
	"testing"
)

// TempYamlFile writes `doc` to a fresh file in the systems tmp-folder
// and returns its path. Cleanup is the caller's job, see Remover.
func TempYamlFile(t *testing.T, doc string) string {
	fd, err := ioutil.TempFile("", "treelib_test")
	if err != nil {
		t.Fatalf("cannot create temp file: %v", err)
	}

	if _, err := fd.WriteString(doc); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}

	if err := fd.Close(); err != nil {
		t.Fatalf("cannot close temp file: %v", err)
	}

	return fd.Name()
}

// Remover removes all files in paths recursively and errors when it fails.
// It is no error if there's nothing to delete. It's useful in defer statements.
func Remover(t *testing.T, paths ...string) {
	for _, path := range paths {
		if err := os.RemoveAll(path); err != nil {
			t.Errorf("removing temp file failed: %v", err)
		}
	}
}

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"nscript.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file that is removed
// when the test finishes. It panics if the Store cannot be created.
func MustTempStore(c testutil.Cleanuper) *Store {
	dir, err := os.MkdirTemp("", "nscript-store-test")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("create temp store: %v", err))
	}
	c.Cleanup(func() {
		st.Close()
		os.RemoveAll(dir)
	})
	return st
}

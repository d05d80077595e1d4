package testutil

import (
	"os"

	"nscript.dev/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes.
//
// It panics if the directory cannot be created.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "nscript-test")
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir is like TempDir, but also changes into the temporary directory,
// restoring the original working directory after the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}

// Setenv sets the value of an environment variable for the duration of the
// test.
func Setenv(c Cleanuper, name, value string) string {
	old, existed := os.LookupEnv(name)
	must.OK(os.Setenv(name, value))
	if existed {
		c.Cleanup(func() { must.OK(os.Setenv(name, old)) })
	} else {
		c.Cleanup(func() { must.OK(os.Unsetenv(name)) })
	}
	return value
}

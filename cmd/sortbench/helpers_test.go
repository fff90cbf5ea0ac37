package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand runs the root command with args and returns everything
// written to stdout and stderr.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	defer resetFlags(root)

	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(nil)
			} else {
				f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// storeArgs points a command at a JSON report store inside dir.
func storeArgs(dir string) []string {
	return []string{"--store", "json", "--store-dsn", filepath.Join(dir, "reports.json")}
}

func cmdArgs(t *testing.T, base []string, extra ...[]string) []string {
	t.Helper()
	out := append([]string(nil), base...)
	for _, e := range extra {
		out = append(out, e...)
	}
	return out
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	cimg "github.com/go-imsto/imresize/image"
)

var cmdBackends = &Command{
	UsageLine: "backends",
	Short:     "list the backends and their filters",
	Long: `
backends prints every registered backend, the first filter is the default.
`,
}

func init() {
	cmdBackends.Run = runBackends
}

func runBackends(args []string) bool {
	return listBackends(os.Stdout)
}

func listBackends(w io.Writer) bool {
	for _, name := range cimg.Backends() {
		b, err := cimg.NewBackend(name, "", "", cimg.WriteOption{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		var fs []string
		for _, f := range b.Filters() {
			fs = append(fs, string(f))
		}
		fmt.Fprintf(w, "%-10s %s\n", name, strings.Join(fs, ", "))
	}
	return true
}

// Package samples holds example abacus programs.
package samples

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/ezrec/abacus/abacus"
)

//go:embed programs/*.ab
var programs embed.FS

// Extension of sample program files.
const Extension = ".ab"

// Names returns the sample program names, sorted.
func Names() (names []string) {
	entries, _ := fs.ReadDir(programs, "programs")
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	slices.Sort(names)
	return
}

// Source returns the text of a sample program.
func Source(name string) (text string, err error) {
	data, err := programs.ReadFile(path.Join("programs", name+Extension))
	if err != nil {
		return
	}

	text = string(data)
	return
}

// Program returns a sample program, parsed.
func Program(name string) (prog *abacus.Program, err error) {
	text, err := Source(name)
	if err != nil {
		return
	}

	prog = abacus.Parse(text)
	return
}

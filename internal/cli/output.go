package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/heneryville/graphql-schema-utils/internal/introspection"
	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// Schema output formats.
const (
	formatSDL           = "sdl"
	formatIntrospection = "introspection"
)

func validateSchemaFormat(format string) error {
	switch format {
	case formatSDL, formatIntrospection:
		return nil
	}
	return fmt.Errorf("invalid format %q: expected %s or %s", format, formatSDL, formatIntrospection)
}

func encodeSchema(s *schema.Schema, format string) ([]byte, error) {
	if format == formatIntrospection {
		data, err := introspection.Export(s)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return []byte(schema.Render(s)), nil
}

// writeSchema writes s to outFile, or to w when outFile is empty.
func writeSchema(w io.Writer, outFile string, s *schema.Schema, format string) error {
	data, err := encodeSchema(s, format)
	if err != nil {
		return err
	}
	if outFile == "" {
		_, err = w.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0o644)
}

// splitPaths lets one argument name several files, separated by commas.
func splitPaths(arg string) []string {
	var paths []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// isTerminal reports whether w is a terminal-backed file, in which case text
// output is styled.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

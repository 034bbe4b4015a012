// Package modulefile renders environment descriptors for shells and Environment Modules.
package modulefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Output formats understood by Renderer.
const (
	FormatSh   = "sh"
	FormatTcl  = "tcl"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatSh, FormatTcl, FormatJSON}
}

// Renderer implements ports.DescriptorRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes descriptor in format to w.
func (r *Renderer) Render(w io.Writer, format string, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) error {
	var err error
	switch format {
	case FormatSh:
		err = renderSh(w, record, descriptor)
	case FormatTcl:
		err = renderTcl(w, record, descriptor)
	case FormatJSON:
		err = renderJSON(w, record, descriptor)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "cannot render descriptor"), "format", format)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to render descriptor")
	}
	return nil
}

// renderSh emits one export per variable. Paths are joined in descriptor order
// and the previous value is appended only when it was set.
func renderSh(w io.Writer, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n", record.Name, record.Version)
	sep := string(os.PathListSeparator)
	for _, variable := range descriptor.Variables() {
		paths := descriptor.Paths(variable)
		quoted := make([]string, len(paths))
		for i, p := range paths {
			quoted[i] = shEscape(p)
		}
		fmt.Fprintf(&b, "export %s=\"%s${%s:+%s$%s}\"\n", variable, strings.Join(quoted, sep), variable, sep, variable)
	}

	if _, err := syntax.NewParser().Parse(strings.NewReader(b.String()), record.Name); err != nil {
		return zerr.Wrap(err, "generated script is not valid shell")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderTcl emits an Environment Modules modulefile. prepend-path puts each
// new value in front, so the entries of a variable are written last to first.
func renderTcl(w io.Writer, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) error {
	var b strings.Builder
	b.WriteString("#%Module1.0\n")
	fmt.Fprintf(&b, "##\n## %s %s\n##\n", record.Name, record.Version)
	fmt.Fprintf(&b, "module-whatis %s\n", tclQuote(record.Name+" "+record.Version))
	fmt.Fprintf(&b, "conflict %s\n", tclQuote(record.Name))

	if len(descriptor.Entries) > 0 {
		b.WriteString("\n")
	}
	for _, variable := range descriptor.Variables() {
		paths := descriptor.Paths(variable)
		for i := len(paths) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "prepend-path %s %s\n", variable, tclQuote(paths[i]))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonDescriptor struct {
	domain.InstallationRecord
	Prepend []domain.PathEntry `json:"prepend"`
}

func renderJSON(w io.Writer, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) error {
	out := jsonDescriptor{InstallationRecord: record, Prepend: descriptor.Entries}
	if out.Prepend == nil {
		out.Prepend = []domain.PathEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// shEscape escapes the characters that keep their meaning inside double quotes.
func shEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`").Replace(s)
}

// tclQuote returns s as a single Tcl word.
func tclQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"{}[]$\\;") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "[", `\[`, "]", `\]`).Replace(s) + `"`
}

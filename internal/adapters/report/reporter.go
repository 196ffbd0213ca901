// Package report renders reconciliation results for the terminal.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/ui/output"
	"go.trai.ch/pinsync/internal/ui/style"
)

const emptyCell = "-"

// Reporter implements ports.Reporter on a termenv output.
type Reporter struct {
	out  *output.Writer
	root string
}

// New creates a Reporter writing to w. Paths below root are shown relative to it.
func New(w io.Writer, root string) *Reporter {
	return &Reporter{out: output.New(w), root: root}
}

// NewWithProfile creates a Reporter with a fixed color profile.
func NewWithProfile(w io.Writer, root string, profile termenv.Profile) *Reporter {
	return &Reporter{out: output.NewWithProfile(w, profile), root: root}
}

// Mismatch prints one drifted hook.
func (r *Reporter) Mismatch(rec domain.MismatchRecord) {
	line := fmt.Sprintf("%s %s - locked: %s != pre-commit: %s",
		r.out.Paint(style.Cross, string(style.Red)), rec.Project, rec.Locked, rec.Declared)
	if rec.Patched {
		line += " " + r.out.Paint(style.Arrow+" patched", string(style.Green))
	}
	r.println(line)
}

// Summary prints the outcome of a run.
func (r *Reporter) Summary(result *domain.Result) {
	for _, project := range result.Unlocked {
		r.println(r.out.Paint(fmt.Sprintf("%s %s is not pinned in %s", style.Dot, project, r.rel(result.RequirementsFile)), string(style.Slate)))
	}
	for _, err := range result.Errors {
		r.println(r.out.Paint(style.Warning+" "+err.Error(), string(style.Yellow)))
	}

	if result.InSync() {
		r.println(fmt.Sprintf("%s pre-commit is in sync with pip-compile (%s checked)",
			r.out.Paint(style.Check, string(style.Green)), plural(result.Hooks, "hook")))
		return
	}

	line := fmt.Sprintf("%s %d of %s drifted from %s",
		r.out.Paint(style.Cross, string(style.Red)), len(result.Mismatches), plural(result.Hooks, "hook"), r.rel(result.RequirementsFile))
	if n := result.Patched(); n > 0 {
		line += fmt.Sprintf(", %d patched", n)
	}
	r.println(line)
}

// Mapping prints the registry mapping as an aligned table. The latest
// version column is shown only when at least one row carries one.
func (r *Reporter) Mapping(entries []domain.MappingEntry) {
	if len(entries) == 0 {
		r.println(r.out.Paint("mapping is empty", string(style.Slate)))
		return
	}

	withLatest := false
	repoWidth, projectWidth := len("REPOSITORY"), len("PROJECT")
	for _, e := range entries {
		repoWidth = max(repoWidth, len(e.Repo))
		projectWidth = max(projectWidth, len(cell(e.Project)))
		if e.Latest != "" {
			withLatest = true
		}
	}

	header := fmt.Sprintf("%-*s  %-*s", repoWidth, "REPOSITORY", projectWidth, "PROJECT")
	if withLatest {
		header += "  LATEST"
	}
	r.println(r.out.Paint(strings.TrimRight(header, " "), string(style.Iris)))

	for _, e := range entries {
		row := fmt.Sprintf("%-*s  %-*s", repoWidth, e.Repo, projectWidth, cell(e.Project))
		if withLatest {
			row += "  " + cell(e.Latest)
		}
		r.println(strings.TrimRight(row, " "))
	}
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

func (r *Reporter) rel(path string) string {
	if r.root == "" || path == "" {
		return path
	}
	if rel, err := filepath.Rel(r.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}

func cell(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

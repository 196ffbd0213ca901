// Package requirements follows pip requirements include chains and reads
// exact pins from the pip-compile output.
package requirements

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	Marker       string
	IncludeToken string
	MaxHops      int
}

// Resolver implements ports.ChainResolver.
type Resolver struct {
	finder *Finder
	logger ports.Logger
	opts   ResolverOptions
}

// NewResolver creates a Resolver that resolves include paths with finder.
func NewResolver(finder *Finder, logger ports.Logger, opts ResolverOptions) *Resolver {
	if opts.Marker == "" {
		opts.Marker = domain.PipCompileMarker
	}
	if opts.IncludeToken == "" {
		opts.IncludeToken = domain.IncludeToken
	}
	if opts.MaxHops < 1 {
		opts.MaxHops = domain.DefaultMaxChainHops
	}
	return &Resolver{finder: finder, logger: logger, opts: opts}
}

// Resolve walks the include chain from rootPath to the file carrying the
// pip-compile marker.
func (r *Resolver) Resolve(rootPath string) (string, error) {
	current := rootPath
	for hops := 0; ; hops++ {
		generated, includes, err := r.scan(current)
		if err != nil {
			return "", err
		}
		if generated {
			r.logger.Debug(fmt.Sprintf("found pip-compile output %s", current))
			return current, nil
		}

		if len(includes) == 0 {
			return "", zerr.With(zerr.Wrap(domain.ErrBrokenRequirementsChain, "no marker and no include"), "path", current)
		}
		if len(includes) > 1 {
			ambiguous := zerr.With(zerr.Wrap(domain.ErrAmbiguousRequirementsPath, "more than one include directive"), "path", current)
			return "", zerr.With(ambiguous, "includes", strings.Join(includes, ", "))
		}

		if hops >= r.opts.MaxHops {
			return "", zerr.With(zerr.Wrap(domain.ErrRequirementsChainTooDeep, current), "max_hops", r.opts.MaxHops)
		}

		next, err := r.follow(current, includes[0])
		if err != nil {
			return "", err
		}
		r.logger.Debug(fmt.Sprintf("%s includes %s", current, next))
		current = next
	}
}

func (r *Resolver) follow(from, fragment string) (string, error) {
	match, err := r.finder.Find(fragment)
	if err != nil {
		return "", errors.Join(domain.ErrRequirementsFileNotFound, zerr.With(err, "path", from))
	}

	switch match.Kind {
	case domain.MatchFound:
		return match.Path, nil
	case domain.MatchAmbiguous:
		ambiguous := zerr.With(zerr.Wrap(domain.ErrAmbiguousRequirementsPath, fragment), "path", from)
		return "", zerr.With(ambiguous, "candidates", strings.Join(match.Candidates, ", "))
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrRequirementsFileNotFound, fragment), "path", from)
	}
}

// scan reports whether path holds the marker and, if not, its include fragments.
func (r *Resolver) scan(path string) (bool, []string, error) {
	//nolint:gosec // Path is the configured root or a file found below the project root
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil, zerr.With(zerr.Wrap(domain.ErrRequirementsFileNotFound, "missing"), "path", path)
		}
		return false, nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(err, "path", path))
	}
	defer func() {
		_ = f.Close()
	}()

	var includes []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, r.opts.Marker) {
			return true, nil, nil
		}
		if fragment, ok := r.includeFragment(line); ok {
			includes = append(includes, fragment)
		}
	}
	if err := sc.Err(); err != nil {
		return false, nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(err, "path", path))
	}
	return false, includes, nil
}

// includeFragment parses "<token> <path>" with an optional trailing comment.
func (r *Resolver) includeFragment(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, r.opts.IncludeToken)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	if i := strings.Index(rest, " #"); i >= 0 {
		rest = rest[:i]
	}
	fragment := strings.TrimSpace(rest)
	return fragment, fragment != ""
}

// Package precommit reads and patches pre-commit hook configuration documents.
package precommit

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pinsync/internal/adapters/fsutil"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	reposKey = "repos"
	repoKey  = "repo"
	revKey   = "rev"

	defaultIndent = 2
	maxIndent     = 8
)

// Store implements ports.HookConfigStore on top of yaml.v3 nodes so that
// comments, key order and entry order survive a write.
type Store struct {
	fileName string
}

// NewStore creates a Store that looks for fileName in the project root.
func NewStore(fileName string) *Store {
	if fileName == "" {
		fileName = domain.HookConfigFileName
	}
	return &Store{fileName: fileName}
}

// Find returns the path of the hook configuration inside root.
func (s *Store) Find(root string) (string, error) {
	path := filepath.Join(root, s.fileName)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrHookConfigNotFound, s.fileName), "root", root)
		}
		return "", errors.Join(domain.ErrHookConfigReadFailed, zerr.With(err, "path", path))
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrHookConfigNotFound, s.fileName+" is a directory"), "root", root)
	}
	return path, nil
}

// ReadAll returns the pinned hook entries of the document in order.
// Local and meta pseudo-repositories and entries without a rev are skipped.
func (s *Store) ReadAll(path string) ([]domain.HookEntry, error) {
	doc, _, err := s.parse(path)
	if err != nil {
		return nil, err
	}

	repos, err := reposNode(doc, path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HookEntry, 0, len(repos.Content))
	for _, item := range repos.Content {
		repo, rev := entryFields(item)
		if repo == nil || rev == nil {
			continue
		}
		identity := domain.NormalizeRepo(repo.Value)
		if domain.IsReservedRepo(identity) {
			continue
		}
		entries = append(entries, domain.HookEntry{
			Repo: identity,
			Rev:  strings.TrimSpace(rev.Value),
		})
	}
	return entries, nil
}

// WriteVersion sets the rev of the first entry whose repository contains
// repoSubstring, compared case-insensitively. The document is left untouched
// when nothing matches.
func (s *Store) WriteVersion(path, repoSubstring, version string) error {
	doc, raw, err := s.parse(path)
	if err != nil {
		return err
	}

	repos, err := reposNode(doc, path)
	if err != nil {
		return err
	}

	needle := domain.NormalizeRepo(repoSubstring)
	if needle == "" {
		return zerr.With(zerr.Wrap(domain.ErrRepositoryNotFound, "empty repository"), "path", path)
	}

	var target *yaml.Node
	for _, item := range repos.Content {
		repo, rev := entryFields(item)
		if repo == nil || rev == nil {
			continue
		}
		identity := domain.NormalizeRepo(repo.Value)
		if domain.IsReservedRepo(identity) {
			continue
		}
		if strings.Contains(identity, needle) {
			target = rev
			break
		}
	}
	if target == nil {
		return zerr.With(zerr.Wrap(domain.ErrRepositoryNotFound, repoSubstring), "path", path)
	}

	target.Value = version
	// Force a string so that revs like "1.10" are not re-read as floats.
	target.Tag = "!!str"

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(detectIndent(raw))
	if err := enc.Encode(doc); err != nil {
		return errors.Join(domain.ErrHookConfigWriteFailed, zerr.With(err, "path", path))
	}
	if err := enc.Close(); err != nil {
		return errors.Join(domain.ErrHookConfigWriteFailed, zerr.With(err, "path", path))
	}

	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), fsutil.FileMode(path, domain.FilePerm)); err != nil {
		return errors.Join(domain.ErrHookConfigWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

func (s *Store) parse(path string) (*yaml.Node, []byte, error) {
	//nolint:gosec // Path is discovered under the project root
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Join(domain.ErrHookConfigReadFailed, zerr.With(err, "path", path))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, errors.Join(domain.ErrHookConfigParseFailed, zerr.With(err, "path", path))
	}
	return &doc, raw, nil
}

func reposNode(doc *yaml.Node, path string) (*yaml.Node, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.MappingNode {
		if repos := mappingValue(root, reposKey); repos != nil && repos.Kind == yaml.SequenceNode {
			return repos, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrHookConfigParseFailed, "missing top-level repos list"), "path", path)
}

// entryFields returns the repo and rev scalars of a repos item, or nil for
// whichever is missing.
func entryFields(item *yaml.Node) (repo, rev *yaml.Node) {
	if item.Kind != yaml.MappingNode {
		return nil, nil
	}
	repo = mappingValue(item, repoKey)
	rev = mappingValue(item, revKey)
	if repo != nil && repo.Kind != yaml.ScalarNode {
		repo = nil
	}
	if rev != nil && rev.Kind != yaml.ScalarNode {
		rev = nil
	}
	return repo, rev
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// detectIndent returns the indentation width of the first indented line.
func detectIndent(raw []byte) int {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if n := len(line) - len(trimmed); n > 0 {
			if n >= defaultIndent && n <= maxIndent {
				return n
			}
			return defaultIndent
		}
	}
	return defaultIndent
}

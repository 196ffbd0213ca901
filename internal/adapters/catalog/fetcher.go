// Package catalog discovers hook repositories from the pre-commit catalog and
// maps them to package registry projects.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/pinsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type catalogHook struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Options configures a Fetcher.
type Options struct {
	CatalogURL    string
	Languages     []string
	ManualMapping map[string]string
	// Concurrency bounds the registry lookups in flight. Values below one mean one.
	Concurrency int
}

// Fetcher implements ports.CatalogFetcher.
type Fetcher struct {
	httpClient *http.Client
	registry   ports.Registry
	logger     ports.Logger
	opts       Options
}

// NewFetcher creates a Fetcher resolving projects through registry.
func NewFetcher(client *http.Client, registry ports.Registry, logger ports.Logger, opts Options) *Fetcher {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	manual := make(map[string]string, len(opts.ManualMapping))
	for repo, project := range opts.ManualMapping {
		manual[domain.NormalizeRepo(repo)] = project
	}
	opts.ManualMapping = manual

	return &Fetcher{
		httpClient: client,
		registry:   registry,
		logger:     logger,
		opts:       opts,
	}
}

// FetchCatalog returns the repositories with at least one hook in languages,
// in the order the catalog lists them.
func (f *Fetcher) FetchCatalog(ctx context.Context, languages []string) ([]domain.CatalogRepo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.opts.CatalogURL, http.NoBody)
	if err != nil {
		return nil, errors.Join(domain.ErrRegistryUnavailable, zerr.With(err, "url", f.opts.CatalogURL))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrRegistryUnavailable, zerr.With(err, "url", f.opts.CatalogURL))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrRegistryUnavailable, "unexpected catalog status"), "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", f.opts.CatalogURL)
	}

	repos, err := decodeCatalog(json.NewDecoder(resp.Body), languages)
	if err != nil {
		return nil, errors.Join(domain.ErrRegistryResponseInvalid, zerr.With(err, "url", f.opts.CatalogURL))
	}
	f.logger.Debug(fmt.Sprintf("catalog lists %d matching repositories", len(repos)))
	return repos, nil
}

// decodeCatalog streams the top-level object so that repository order is kept.
func decodeCatalog(dec *json.Decoder, languages []string) ([]domain.CatalogRepo, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.New("catalog is not a JSON object")
	}

	var repos []domain.CatalogRepo
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		repo, ok := keyTok.(string)
		if !ok {
			return nil, zerr.New("catalog key is not a string")
		}

		var hooks []catalogHook
		if err := dec.Decode(&hooks); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid hook list"), "repo", repo)
		}
		for _, hook := range hooks {
			if slices.Contains(languages, hook.Language) {
				repos = append(repos, domain.CatalogRepo{Repo: repo, SampleHook: hookName(hook)})
				break
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return repos, nil
}

func hookName(h catalogHook) string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// ResolveProjectName maps repo to a registry project. Manual overrides win;
// otherwise the last path segment of repo is looked up on the registry.
func (f *Fetcher) ResolveProjectName(ctx context.Context, repo string) (string, bool, error) {
	identity := domain.NormalizeRepo(repo)
	if project, ok := f.opts.ManualMapping[identity]; ok {
		return project, project != "", nil
	}

	candidate := domain.CandidateProject(identity)
	if candidate == "" || candidate == "." || candidate == "/" {
		return "", false, nil
	}

	_, found, err := f.registry.LatestVersion(ctx, candidate)
	if err != nil {
		return "", false, err
	}
	if !found {
		f.logger.Debug(fmt.Sprintf("no registry project named %s for %s", candidate, identity))
		return "", false, nil
	}
	return candidate, true, nil
}

// resolve extends ResolveProjectName with the catalog's hook name: mirror
// repositories such as pre-commit/mirrors-mypy publish a hook named after
// the project they wrap.
func (f *Fetcher) resolve(ctx context.Context, repo domain.CatalogRepo) (string, bool, error) {
	project, ok, err := f.ResolveProjectName(ctx, repo.Repo)
	if err != nil || ok {
		return project, ok, err
	}

	identity := domain.NormalizeRepo(repo.Repo)
	if _, manual := f.opts.ManualMapping[identity]; manual {
		return "", false, nil
	}
	hook := hookProject(repo.SampleHook)
	if hook == "" || hook == domain.CandidateProject(identity) {
		return "", false, nil
	}

	_, found, err := f.registry.LatestVersion(ctx, hook)
	if err != nil {
		return "", false, err
	}
	if !found {
		f.logger.Debug(fmt.Sprintf("no registry project for %s", identity))
		return "", false, nil
	}
	return hook, true, nil
}

// hookProject returns the hook name as a registry project candidate, or ""
// when it cannot be one.
func hookProject(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.ContainsAny(name, " \t/") {
		return ""
	}
	return name
}

// BuildMapping fetches the catalog and resolves every repository. Every
// catalog repository gets a key; unresolved ones map to "".
func (f *Fetcher) BuildMapping(ctx context.Context) (domain.RegistryMapping, error) {
	repos, err := f.FetchCatalog(ctx, f.opts.Languages)
	if err != nil {
		return nil, err
	}

	projects := make([]string, len(repos))
	sem := semaphore.NewWeighted(int64(f.opts.Concurrency))
	g, gctx := errgroup.WithContext(ctx)

	for i, repo := range repos {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			project, ok, err := f.resolve(gctx, repo)
			if err != nil {
				return err
			}
			if ok {
				projects[i] = project
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mapping := make(domain.RegistryMapping, len(repos))
	for i, repo := range repos {
		mapping[domain.NormalizeRepo(repo.Repo)] = projects[i]
	}
	f.logger.Info(fmt.Sprintf("generated mapping for %d repositories (%d mapped)", len(mapping), mapping.Mapped()))
	return mapping, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/pinsync/internal/build"
	"go.trai.ch/pinsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	registryCacheSize = 4096
	notFoundMessage   = "Not Found"
)

type lookup struct {
	version string
	found   bool
}

type pypiResponse struct {
	Message string `json:"message"`
	Info    struct {
		Version string `json:"version"`
	} `json:"info"`
}

// PyPI implements ports.Registry against the PyPI JSON API. Answers are
// memoized for the lifetime of the value; failures are not.
type PyPI struct {
	baseURL    string
	httpClient *http.Client
	memo       *lru.Cache[string, lookup]
}

// NewPyPI creates a registry client for the JSON API rooted at baseURL.
func NewPyPI(baseURL string, client *http.Client) (*PyPI, error) {
	memo, err := lru.New[string, lookup](registryCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create registry cache")
	}
	return &PyPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		memo:       memo,
	}, nil
}

// LatestVersion returns the latest release of project.
func (p *PyPI) LatestVersion(ctx context.Context, project string) (string, bool, error) {
	if hit, ok := p.memo.Get(project); ok {
		return hit.version, hit.found, nil
	}

	res, err := p.query(ctx, project)
	if err != nil {
		return "", false, err
	}
	p.memo.Add(project, res)
	return res.version, res.found, nil
}

func (p *PyPI) query(ctx context.Context, project string) (lookup, error) {
	target := p.baseURL + "/" + url.PathEscape(project) + "/json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return lookup{}, errors.Join(domain.ErrRegistryUnavailable, zerr.With(err, "url", target))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return lookup{}, errors.Join(domain.ErrRegistryUnavailable, zerr.With(err, "url", target))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return lookup{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrRegistryUnavailable, "unexpected status"), "status_code", resp.StatusCode)
		return lookup{}, zerr.With(statusErr, "project", project)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return lookup{}, errors.Join(domain.ErrRegistryUnavailable, zerr.With(err, "url", target))
	}

	var decoded pypiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return lookup{}, errors.Join(domain.ErrRegistryResponseInvalid, zerr.With(err, "project", project))
	}
	if decoded.Message == notFoundMessage {
		return lookup{}, nil
	}
	if decoded.Info.Version == "" {
		return lookup{}, zerr.With(zerr.Wrap(domain.ErrRegistryResponseInvalid, "missing info.version"), "project", project)
	}
	return lookup{version: decoded.Info.Version, found: true}, nil
}

func userAgent() string {
	return "pinsync/" + build.Version
}

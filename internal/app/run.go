package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/render"
	"github.com/relforge/relforge/internal/state"
)

// Run resolves the requested releases and writes their descriptors. Each
// release gets a fresh build state; resolution is strictly sequential
// end-to-end within a release, and the first failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	drafts, err := a.selectReleases()
	if err != nil {
		return err
	}
	a.logger.Info("Resolving releases.", "count", len(drafts))

	var docs [][]byte
	for _, draft := range drafts {
		rel, err := a.resolver.Resolve(ctx, draft, state.New())
		if err != nil {
			return err
		}
		out, err := render.Render(rel)
		if err != nil {
			return err
		}
		docs = append(docs, out)
	}

	output := strings.Join(byteSlicesToStrings(docs), "---\n")
	if a.config.OutputPath != "" {
		if err := os.WriteFile(a.config.OutputPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("writing descriptor to %s: %w", a.config.OutputPath, err)
		}
		a.logger.Info("Descriptor written.", "path", a.config.OutputPath)
	} else {
		fmt.Fprint(a.outW, output)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// selectReleases picks the drafts matching the --release request, or all
// declared releases when no request was made. A request that matches no
// declaration is a release-identity failure, distinct from a missing
// dependency.
func (a *App) selectReleases() ([]*model.ReleaseDraft, error) {
	if a.config.Release == "" {
		if len(a.doc.Releases) == 0 {
			return nil, fmt.Errorf("no releases declared in %s", a.config.ConfigPath)
		}
		return a.doc.Releases, nil
	}

	name, version, pinned := strings.Cut(a.config.Release, ":")
	var drafts []*model.ReleaseDraft
	for _, draft := range a.doc.Releases {
		if draft.Name != name {
			continue
		}
		if pinned && draft.Version != version {
			continue
		}
		drafts = append(drafts, draft)
	}
	if len(drafts) == 0 {
		if !pinned {
			version = "any"
		}
		return nil, &model.ReleaseNotFoundError{Name: name, Version: version}
	}
	return drafts, nil
}

func byteSlicesToStrings(in [][]byte) []string {
	out := make([]string, len(in))
	for i, b := range in {
		out[i] = string(b)
	}
	return out
}

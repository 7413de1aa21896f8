package resolve

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
)

// hostVersion reports the running system's runtime version string. A
// variable so tests can pin it.
var hostVersion = runtime.Version

// Realize determines the runtime version tag to embed in the release.
//
// Host selection assigns the host's own runtime version, and only while
// the release's runtime field is still unset. None is taken as-is with
// no filesystem access. A directory selector scans for a bundled
// runtime; every failure mode of that scan collapses into a single
// RuntimeDirError rather than surfacing raw I/O errors.
func Realize(ctx context.Context, rel *model.ResolvedRelease, sel model.RuntimeSelector) (*model.ResolvedRelease, error) {
	logger := ctxlog.FromContext(ctx)

	switch sel.Kind {
	case model.RuntimeHost:
		if rel.RuntimeVersion == "" {
			rel.RuntimeVersion = hostVersion()
		}
		logger.Debug("Runtime realized from host.", "runtime", rel.RuntimeVersion)
	case model.RuntimeDir:
		version, err := scanRuntimeDir(sel.Dir)
		if err != nil {
			logger.Debug("Runtime directory scan failed.", "dir", sel.Dir, "error", err)
			return nil, &model.RuntimeDirError{Dir: sel.Dir}
		}
		rel.RuntimeVersion = version
		logger.Debug("Runtime realized from directory.", "dir", sel.Dir, "runtime", version)
	case model.RuntimeNone:
		logger.Debug("Release ships without a bundled runtime.")
	}
	return rel, nil
}

// scanRuntimeDir is the fallible region of directory realization: a
// single-level glob for erts-* entries directly under dir, taking the
// first match and extracting the version token after the dash.
func scanRuntimeDir(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "erts-*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no erts-* entry under %s", dir)
	}

	base := filepath.Base(matches[0])
	_, version, ok := strings.Cut(base, "-")
	if !ok || version == "" {
		return "", fmt.Errorf("malformed runtime entry name %s", base)
	}
	return version, nil
}

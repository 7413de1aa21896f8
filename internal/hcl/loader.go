package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/fsutil"
	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/schema"
)

// Loader is the HCL implementation of model.Loader.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under the given paths, parses them, and
// translates their release and app blocks into one model.Document.
// Declaration order across files follows the discovery order of the
// paths themselves.
func (l *Loader) Load(ctx context.Context, paths ...string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk declaration path", "path", path, "error", err)
			return nil, err
		}
		filePaths = append(filePaths, found...)
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl declaration files found", "paths", paths)
		return &model.Document{}, nil
	}
	logger.Debug("Found declaration files to load", "files", filePaths)

	parser := hclparse.NewParser()
	doc := &model.Document{}
	seenReleases := make(map[string]string)

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var file schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode declarations in %s: %w", filePath, diags)
		}

		for _, rel := range file.Releases {
			key := rel.Name + "-" + rel.Version
			if prev, dup := seenReleases[key]; dup {
				return nil, fmt.Errorf("release %s %s declared in both %s and %s", rel.Name, rel.Version, prev, filePath)
			}
			seenReleases[key] = filePath

			draft, err := l.translateRelease(rel)
			if err != nil {
				return nil, fmt.Errorf("release %s-%s in %s: %w", rel.Name, rel.Version, filePath, err)
			}
			doc.Releases = append(doc.Releases, draft)
		}

		for _, app := range file.Apps {
			doc.World = append(doc.World, l.translateApp(app))
		}

		logger.Debug("Loaded declarations from file", "file", filePath,
			"releases", len(file.Releases), "apps", len(file.Apps))
	}

	logger.Info("Declarations loaded.",
		"releases", len(doc.Releases), "world_entries", len(doc.World))
	return doc, nil
}

package cli

import (
	"fmt"

	"github.com/jamesWalker55/tag-repo/internal/repo"
	"github.com/jamesWalker55/tag-repo/internal/scan"
)

// openRepo opens the resolved repository and applies configured scan
// exclusions.
func openRepo() (*repo.Repo, error) {
	r, err := repo.Open(getRepoPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	if cfg != nil && (len(cfg.Scan.ExcludedNames) > 0 || len(cfg.Scan.ExcludedPaths) > 0) {
		r.SetScanOptions(scan.Options{
			ExcludedPaths: cfg.Scan.ExcludedPaths,
			ExcludedNames: cfg.Scan.ExcludedNames,
		})
	}
	return r, nil
}

// itemView is the JSON shape of a tracked item.
type itemView struct {
	ID   int64    `json:"id"`
	Path string   `json:"path"`
	Tags []string `json:"tags"`
	Type string   `json:"type"`
}

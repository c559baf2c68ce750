// Package sync imports decks from configured sources: local directories and
// git repositories holding CSV files.
package sync

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/learncards/internal/domain"
	"github.com/conorfennell/learncards/internal/gitsource"
	"github.com/conorfennell/learncards/internal/parser"
)

// DeckUpserter stores a named deck, reporting whether anything changed.
type DeckUpserter interface {
	UpsertDeck(ctx context.Context, name string, cards []domain.Flashcard) (int64, bool, error)
}

// Report summarizes a sync run.
type Report struct {
	Sources   int
	Files     int
	Changed   int
	Unchanged int
	Errors    []error
}

// Options tunes a sync run.
type Options struct {
	// ReposDir is where git sources are cloned.
	ReposDir string
	// GitProgress receives clone and pull output. Nil discards it.
	GitProgress io.Writer
}

// Run iterates over all sources and reconciles them. A failing source or file
// is recorded in the report and the run carries on.
func Run(ctx context.Context, decks DeckUpserter, sources []string, opts Options) Report {
	var report Report
	slog.Info("Starting sync process for all sources...", "sources", len(sources))

	if len(sources) == 0 {
		slog.Info("No sources configured. Add one with --sources <path/or/url.git>")
		return report
	}

	reposDir := opts.ReposDir
	if reposDir == "" {
		reposDir = "repos"
	}

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			report.Errors = append(report.Errors, err)
			break
		}
		report.Sources++
		slog.Info("Syncing source", "path", source)

		root := source
		if gitsource.IsGitURL(source) {
			localRepoPath, err := gitUrlToLocalPath(reposDir, source)
			if err != nil {
				slog.Error("Error determining local path for git repo", "url", source, "error", err)
				report.Errors = append(report.Errors, err)
				continue
			}
			if err := os.MkdirAll(filepath.Dir(localRepoPath), os.ModePerm); err != nil {
				slog.Error("Failed to create repos directory", "error", err)
				report.Errors = append(report.Errors, err)
				continue
			}
			if err := gitsource.Sync(ctx, source, localRepoPath, opts.GitProgress); err != nil {
				slog.Error("Error syncing git repo", "url", source, "error", err)
				report.Errors = append(report.Errors, err)
				continue
			}
			root = localRepoPath
		}

		reconcileLocalSource(ctx, decks, root, &report)
	}

	slog.Info("Sync process complete.",
		"sources", report.Sources,
		"files", report.Files,
		"changed", report.Changed,
		"unchanged", report.Unchanged,
		"errors", len(report.Errors),
	)
	return report
}

func reconcileLocalSource(ctx context.Context, decks DeckUpserter, root string, report *Report) {
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".csv") {
			return nil
		}

		report.Files++
		cards, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			report.Errors = append(report.Errors, fmt.Errorf("parsing %s: %w", path, parseErr))
			return nil
		}
		if len(cards) == 0 {
			slog.Warn("No valid cards in file, skipping", "path", path)
			report.Errors = append(report.Errors, fmt.Errorf("parsing %s: no valid cards", path))
			return nil
		}

		name := deckName(path)
		id, changed, upsertErr := decks.UpsertDeck(ctx, name, cards)
		if upsertErr != nil {
			report.Errors = append(report.Errors, fmt.Errorf("storing %s: %w", path, upsertErr))
			return nil
		}
		if changed {
			report.Changed++
			slog.Info("Deck synced", "id", id, "name", name, "cards", len(cards))
		} else {
			report.Unchanged++
		}
		return nil
	})

	if walkErr != nil {
		slog.Error("Error walking directory", "path", root, "error", walkErr)
		report.Errors = append(report.Errors, walkErr)
	}
}

func deckName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func gitUrlToLocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err != nil || (parsedURL.Scheme != "https" && parsedURL.Scheme != "http") {
		if strings.Contains(repoURL, "@") {
			parts := strings.Split(repoURL, ":")
			if len(parts) == 2 {
				hostAndUser := strings.Split(parts[0], "@")
				if len(hostAndUser) == 2 {
					host := hostAndUser[1]
					repoPath := strings.TrimSuffix(parts[1], ".git")
					return filepath.Join(baseDir, host, repoPath), nil
				}
			}
		}
		if strings.HasSuffix(repoURL, ".git") {
			return filepath.Join(baseDir, "local", strings.TrimSuffix(filepath.Base(repoURL), ".git")), nil
		}
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
	return filepath.Join(baseDir, parsedURL.Host, sanitizedPath), nil
}

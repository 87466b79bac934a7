// Package exporter builds collection.json from the Encora API and the Drive
// folders listed by rclone.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/curtaincall/internal/catalog"
	"github.com/faizmokh/curtaincall/internal/rclone"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// CollectionSource yields the catalogued recordings.
type CollectionSource interface {
	Collection(ctx context.Context) ([]catalog.Entry, error)
}

// FolderSource lists the Drive remote.
type FolderSource interface {
	List(ctx context.Context, remote string) ([]rclone.Item, error)
}

// Options tunes a single export run.
type Options struct {
	// SkipAPI reuses the entries already in collection.json instead of
	// fetching the collection again. Previously appended unmatched entries
	// are replaced by the fresh listing.
	SkipAPI bool
}

// Result summarises an export.
type Result struct {
	Fetched   int
	Linked    int
	Unmatched int
	Total     int
}

// Exporter coordinates one export.
type Exporter struct {
	store      *catalog.Store
	collection CollectionSource
	folders    FolderSource
	remote     string
	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// New creates an Exporter writing through store.
func New(store *catalog.Store, collection CollectionSource, folders FolderSource, remote string, onProgress func(ProgressEvent)) *Exporter {
	if onProgress == nil {
		onProgress = func(ProgressEvent) {}
	}
	return &Exporter{
		store:      store,
		collection: collection,
		folders:    folders,
		remote:     remote,
		onProgress: onProgress,
	}
}

// Run fetches both sources concurrently, merges them and replaces the catalog.
func (e *Exporter) Run(ctx context.Context, opts Options) (Result, error) {
	if e.store == nil || e.folders == nil {
		return Result{}, errors.New("exporter not fully initialized")
	}
	if !opts.SkipAPI && e.collection == nil {
		return Result{}, errors.New("exporter has no collection source")
	}

	var (
		entries []catalog.Entry
		items   []rclone.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if opts.SkipAPI {
			e.report(LevelInfo, fmt.Sprintf("Reading existing catalog %s", e.store.Path()))
			entries, err = e.store.Load(gctx)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			entries = matchedOnly(entries)
			return nil
		}
		e.report(LevelInfo, "Fetching Encora collection from API...")
		entries, err = e.collection.Collection(gctx)
		if err != nil {
			return fmt.Errorf("fetch collection: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		e.report(LevelInfo, fmt.Sprintf("Fetching GDrive folder list from remote: %s", e.remote))
		items, err = e.folders.List(gctx, e.remote)
		if err != nil {
			return fmt.Errorf("list folders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		e.report(LevelError, err.Error())
		return Result{}, err
	}

	result := Result{Fetched: len(entries)}
	e.report(LevelVerbose, fmt.Sprintf("Total items fetched from rclone: %d", len(items)))

	folders := rclone.Classify(items)
	e.report(LevelInfo, fmt.Sprintf("Matched %d GDrive links", len(folders.Links)))
	e.report(LevelInfo, fmt.Sprintf("Found %d {ne} folders", len(folders.Unmatched)))

	merged, linked := Merge(entries, folders)
	result.Linked = linked
	result.Unmatched = len(folders.Unmatched)
	result.Total = len(merged)
	e.report(LevelInfo, fmt.Sprintf("Injected share_link into %d recordings", linked))

	if err := e.store.Save(ctx, merged); err != nil {
		e.report(LevelError, err.Error())
		return Result{}, err
	}
	e.report(LevelSuccess, fmt.Sprintf("Final collection written with %d entries total", result.Total))

	return result, nil
}

// Merge injects share links into entries whose recording id has a tagged
// folder and appends the unmatched folders. It returns the merged catalog and
// the number of entries that received a link. The input slice is not modified.
func Merge(entries []catalog.Entry, folders rclone.Folders) ([]catalog.Entry, int) {
	merged := make([]catalog.Entry, 0, len(entries)+len(folders.Unmatched))
	linked := 0
	for _, entry := range entries {
		if link, ok := folders.Links[entry.ID()]; ok && entry.ID() != 0 {
			entry.ShareLink = link
			linked++
		}
		merged = append(merged, entry)
	}
	merged = append(merged, folders.Unmatched...)
	return merged, linked
}

func matchedOnly(entries []catalog.Entry) []catalog.Entry {
	kept := entries[:0:0]
	for _, entry := range entries {
		if entry.Matched() {
			kept = append(kept, entry)
		}
	}
	return kept
}

func (e *Exporter) report(level ProgressLevel, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onProgress(ProgressEvent{Message: message, Level: level})
}

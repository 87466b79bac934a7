// Package rclone lists a Google Drive remote through the rclone binary and
// classifies its folders by the catalog markers in their names.
package rclone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/faizmokh/curtaincall/internal/catalog"
)

// FolderURLPrefix is the Drive web URL for a folder id.
const FolderURLPrefix = "https://drive.google.com/drive/folders/"

var (
	matchedMarker   = regexp.MustCompile(`\{e-(\d+)\}`)
	unmatchedMarker = regexp.MustCompile(`\{ne\}`)
)

// Item is one object reported by `rclone lsjson`.
type Item struct {
	Path     string `json:"Path"`
	Name     string `json:"Name"`
	Size     int64  `json:"Size"`
	MimeType string `json:"MimeType"`
	ModTime  string `json:"ModTime"`
	IsDir    bool   `json:"IsDir"`
	ID       string `json:"ID"`
}

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Lister shells out to rclone.
type Lister struct {
	binary string
	config string
	run    Runner
}

// NewLister creates a lister using the rclone binary on PATH and configPath.
func NewLister(configPath string) *Lister {
	return &Lister{binary: "rclone", config: configPath, run: execRunner}
}

// WithRunner returns a copy of the lister that executes commands through run.
func (l *Lister) WithRunner(run Runner) *Lister {
	clone := *l
	clone.run = run
	return &clone
}

// Args returns the rclone arguments used to list remote.
func (l *Lister) Args(remote string) []string {
	args := []string{"lsjson"}
	if l.config != "" {
		args = append(args, "--config", l.config)
	}
	return append(args, "--recursive", remote+":")
}

// List recursively lists every object on remote.
func (l *Lister) List(ctx context.Context, remote string) ([]Item, error) {
	out, err := l.run(ctx, l.binary, l.Args(remote)...)
	if err != nil {
		return nil, fmt.Errorf("rclone lsjson %s: %w", remote, err)
	}
	return Decode(bytes.NewReader(out))
}

// Decode parses `rclone lsjson` output.
func Decode(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode rclone listing: %w", err)
	}
	return items, nil
}

// Folders is the result of classifying a listing.
type Folders struct {
	// Links maps a recording id to the share link of its `{e-<id>}` folder.
	Links map[int]string
	// Unmatched holds one catalog entry per `{ne}` folder, in listing order.
	Unmatched []catalog.Entry
}

// Classify picks out folders tagged `{e-<id>}` or `{ne}`. Files and
// untagged folders are ignored.
func Classify(items []Item) Folders {
	folders := Folders{Links: make(map[int]string)}
	for _, item := range items {
		if !item.IsDir {
			continue
		}
		link := FolderURL(item.ID)

		if m := matchedMarker.FindStringSubmatch(item.Name); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			folders.Links[id] = link
			continue
		}
		if unmatchedMarker.MatchString(item.Name) {
			folders.Unmatched = append(folders.Unmatched, catalog.Entry{
				ShareLink:    link,
				SourcePath:   item.Path,
				SourceFolder: item.Name,
			})
		}
	}
	return folders
}

// FolderURL returns the Drive link for a folder id.
func FolderURL(id string) string {
	return FolderURLPrefix + id
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

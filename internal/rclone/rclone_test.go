package rclone

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const listing = `[
{"Path":"Hadestown","Name":"Hadestown","Size":-1,"MimeType":"inode/directory","ModTime":"2024-01-01T00:00:00Z","IsDir":true,"ID":"dir-root"},
{"Path":"Hadestown/2019-04-17 {e-5}","Name":"2019-04-17 {e-5}","Size":-1,"MimeType":"inode/directory","ModTime":"2024-01-01T00:00:00Z","IsDir":true,"ID":"dir-5"},
{"Path":"Hadestown/2019-04-17 {e-5}/act1.mp4","Name":"act1.mp4","Size":1024,"MimeType":"video/mp4","ModTime":"2024-01-01T00:00:00Z","IsDir":false,"ID":"file-1"},
{"Path":"Unsorted/Mystery {ne}","Name":"Mystery {ne}","Size":-1,"MimeType":"inode/directory","ModTime":"2024-01-01T00:00:00Z","IsDir":true,"ID":"dir-ne"},
{"Path":"Unsorted/notes {e-7}.txt","Name":"notes {e-7}.txt","Size":12,"MimeType":"text/plain","ModTime":"2024-01-01T00:00:00Z","IsDir":false,"ID":"file-2"}
]`

func TestClassify(t *testing.T) {
	items, err := Decode(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	folders := Classify(items)

	if len(folders.Links) != 1 {
		t.Fatalf("Links = %v, want only recording 5", folders.Links)
	}
	if got := folders.Links[5]; got != "https://drive.google.com/drive/folders/dir-5" {
		t.Fatalf("Links[5] = %q", got)
	}
	if len(folders.Unmatched) != 1 {
		t.Fatalf("Unmatched = %+v, want one folder", folders.Unmatched)
	}
	ne := folders.Unmatched[0]
	if ne.Matched() || ne.SourcePath != "Unsorted/Mystery {ne}" || ne.SourceFolder != "Mystery {ne}" ||
		ne.ShareLink != "https://drive.google.com/drive/folders/dir-ne" {
		t.Fatalf("unmatched entry = %+v", ne)
	}
}

func TestListRunsLsjson(t *testing.T) {
	var gotName string
	var gotArgs []string
	lister := NewLister("/data/rclone.conf").WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte(listing), nil
	})

	items, err := lister.List(context.Background(), "Musicals")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}
	if gotName != "rclone" {
		t.Fatalf("binary = %q, want rclone", gotName)
	}
	want := "lsjson --config /data/rclone.conf --recursive Musicals:"
	if strings.Join(gotArgs, " ") != want {
		t.Fatalf("args = %q, want %q", strings.Join(gotArgs, " "), want)
	}
}

func TestArgsWithoutConfig(t *testing.T) {
	got := strings.Join(NewLister("").Args("Drive"), " ")
	if got != "lsjson --recursive Drive:" {
		t.Fatalf("Args() = %q", got)
	}
}

func TestListWrapsRunnerErrors(t *testing.T) {
	boom := errors.New("exit status 1")
	lister := NewLister("").WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return nil, boom
	})

	_, err := lister.List(context.Background(), "Musicals")
	if !errors.Is(err, boom) {
		t.Fatalf("List() error = %v, want wrapped runner error", err)
	}
}

package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/vlctrack/vlctrack/filesystem"
)

func backends(t *testing.T) map[string]func() Store {
	return map[string]func() Store{
		BackendJSON: func() Store {
			return NewJSONStore("/data/history.json")
		},
		BackendSQLite: func() Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
			if err != nil {
				t.Fatal(err)
			}
			return s
		},
	}
}

// lockedFs refuses to open files for reading, like a file held by another program.
type lockedFs struct {
	afero.Fs
}

func (fs lockedFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func TestStore(t *testing.T) {
	for name, open := range backends(t) {
		Convey("Given an empty "+name+" store", t, func() {
			filesystem.SetMemMapFs()
			store := open()

			entries, err := store.Load()
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)

			Convey("When the same file is upserted under different markers", func() {
				So(store.Upsert("/m/[00-10] Foo.mp4", "0:10", false, 1000), ShouldBeNil)
				So(store.Upsert("/m/Bar.mp4", "5:00", false, 600), ShouldBeNil)
				So(store.Upsert("/m/[WATCHED] Foo.mp4", "16:40", true, 1000), ShouldBeNil)

				Convey("Then there is one entry per identity, overwritten in place", func() {
					entries, err := store.Load()
					So(err, ShouldBeNil)
					So(len(entries), ShouldEqual, 2)
					So(entries[0], ShouldResemble, Entry{
						File:      "/m/[WATCHED] Foo.mp4",
						Timestamp: "[WATCHED]",
						Watched:   true,
						Length:    1000,
					})
					So(entries[1].File, ShouldEqual, "/m/Bar.mp4")
				})
			})

			Convey("When deleting by exact path", func() {
				So(store.Upsert("/m/[00-10] Foo.mp4", "0:10", false, 0), ShouldBeNil)

				Convey("A path that differs only by marker is a no-op", func() {
					So(store.Delete("/m/Foo.mp4", false), ShouldBeNil)
					entries, _ := store.Load()
					So(len(entries), ShouldEqual, 1)
				})

				Convey("The exact path removes the entry", func() {
					So(store.Delete("/m/[00-10] Foo.mp4", false), ShouldBeNil)
					entries, _ := store.Load()
					So(entries, ShouldBeEmpty)
				})
			})

			Convey("When deleting with file removal", func() {
				fs := filesystem.API()
				So(fs.MkdirAll("/m", 0o755), ShouldBeNil)
				So(fs.WriteFile("/m/Baz.mp4", []byte("x"), 0o644), ShouldBeNil)
				So(store.Upsert("/m/Baz.mp4", "1:00", false, 0), ShouldBeNil)

				Convey("The media file is removed together with the entry", func() {
					So(store.Delete("/m/Baz.mp4", true), ShouldBeNil)
					exists, _ := fs.Exists("/m/Baz.mp4")
					So(exists, ShouldBeFalse)
					entries, _ := store.Load()
					So(entries, ShouldBeEmpty)
				})

				Convey("A file that cannot be removed leaves the history untouched", func() {
					filesystem.Use(afero.NewReadOnlyFs(fs.Fs))

					err := store.Delete("/m/Baz.mp4", true)
					So(errors.Is(err, ErrDeletionFailed), ShouldBeTrue)

					var deletion *DeletionError
					So(errors.As(err, &deletion), ShouldBeTrue)
					So(deletion.File, ShouldEqual, "/m/Baz.mp4")

					filesystem.Use(fs.Fs)
					entries, _ := store.Load()
					So(len(entries), ShouldEqual, 1)
				})
			})

			Convey("When clearing", func() {
				So(store.Upsert("/m/A.mp4", "0:01", false, 0), ShouldBeNil)
				So(store.Clear(), ShouldBeNil)
				entries, _ := store.Load()
				So(entries, ShouldBeEmpty)
			})

			Reset(func() {
				So(store.Close(), ShouldBeNil)
				filesystem.SetOsFs()
			})
		})
	}
}

func TestJSONStore(t *testing.T) {
	Convey("Given a JSON history file", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		store := NewJSONStore("/data/history.json")

		Convey("When the file is corrupt", func() {
			So(fs.MkdirAll("/data", 0o755), ShouldBeNil)
			So(fs.WriteFile(store.Path(), []byte("{not json"), 0o644), ShouldBeNil)

			entries, err := store.Load()

			Convey("Then it loads empty and is rewritten as an empty array", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
				data, _ := fs.ReadFile(store.Path())
				So(string(data), ShouldEqual, "[]")
			})
		})

		Convey("When an entry has no length field", func() {
			So(fs.MkdirAll("/data", 0o755), ShouldBeNil)
			So(fs.WriteFile(store.Path(), []byte(`[{"file": "/m/A.mp4", "timestamp": "0:10", "watched": false}]`), 0o644), ShouldBeNil)

			entries, err := store.Load()
			So(err, ShouldBeNil)
			So(entries[0].Length, ShouldEqual, 0)
		})

		Convey("When the file cannot be read", func() {
			So(store.Upsert("/m/A.mp4", "0:10", false, 60), ShouldBeNil)
			before, err := fs.ReadFile(store.Path())
			So(err, ShouldBeNil)

			filesystem.Use(lockedFs{Fs: fs.Fs})
			entries, err := store.Load()
			upsertErr := store.Upsert("/m/B.mp4", "0:20", false, 60)
			filesystem.Use(fs.Fs)

			Convey("Then the error is returned and the history is kept", func() {
				So(errors.Is(err, os.ErrPermission), ShouldBeTrue)
				So(entries, ShouldBeNil)
				So(errors.Is(upsertErr, os.ErrPermission), ShouldBeTrue)

				after, err := fs.ReadFile(store.Path())
				So(err, ShouldBeNil)
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("When the same path was recorded twice", func() {
			So(fs.MkdirAll("/data", 0o755), ShouldBeNil)
			So(fs.WriteFile(store.Path(), []byte(`[
				{"file": "/m/A.mp4", "timestamp": "0:10", "watched": false, "length": 60},
				{"file": "/m/B.mp4", "timestamp": "0:20", "watched": false, "length": 60},
				{"file": "/m/A.mp4", "timestamp": "0:30", "watched": false, "length": 60}
			]`), 0o644), ShouldBeNil)

			So(store.Delete("/m/A.mp4", false), ShouldBeNil)

			Convey("Then every copy is deleted", func() {
				entries, err := store.Load()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].File, ShouldEqual, "/m/B.mp4")
			})
		})

		Convey("When an entry is written", func() {
			So(store.Upsert("/m/A.mp4", "0:10", false, 0), ShouldBeNil)

			Convey("Then it is indented with four spaces", func() {
				data, _ := fs.ReadFile(store.Path())
				So(string(data), ShouldEqual, "[\n    {\n        \"file\": \"/m/A.mp4\",\n        \"timestamp\": \"0:10\",\n        \"watched\": false,\n        \"length\": 0\n    }\n]")
			})
		})

		Reset(filesystem.SetOsFs)
	})
}

func TestOpen(t *testing.T) {
	Convey("Open selects the backend by name", t, func() {
		store, err := Open(BackendJSON, "/data/h.json")
		So(err, ShouldBeNil)
		So(store, ShouldHaveSameTypeAs, &JSONStore{})

		_, err = Open("yaml", "")
		So(errors.Is(err, ErrUnknownBackend), ShouldBeTrue)
	})
}

func TestLevel(t *testing.T) {
	Convey("Entries are classified by progress", t, func() {
		So(Entry{Timestamp: "[WATCHED]", Watched: true}.Level(), ShouldEqual, Watched)
		So(Entry{Timestamp: "6:00", Length: 600}.Level(), ShouldEqual, OverHalf)
		So(Entry{Timestamp: "5:00", Length: 600}.Level(), ShouldEqual, UnderHalf)
		So(Entry{Timestamp: "50:00"}.Level(), ShouldEqual, UnderHalf)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given some entries", t, func() {
		entries := []Entry{
			{File: "/m/[WATCHED] Breaking Bad S01E01.mkv"},
			{File: "/m/The Office S02E03.mkv"},
			{File: "/m/Better Call Saul S01E01.mkv"},
		}

		Convey("An empty query returns everything", func() {
			So(Search(entries, ""), ShouldResemble, entries)
		})

		Convey("A query matches filenames case-insensitively", func() {
			found := Search(entries, "office")
			So(len(found), ShouldEqual, 1)
			So(found[0].File, ShouldEqual, "/m/The Office S02E03.mkv")
		})

		Convey("A query matching nothing returns nothing", func() {
			So(Search(entries, "zzz"), ShouldBeEmpty)
		})
	})
}

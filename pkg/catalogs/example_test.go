package catalogs_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/logging"
)

// Example demonstrates basic catalog creation and search
func Example() {
	catalog := catalogs.New("Library", "/media", catalogs.WithLogger(logging.NewNopLogger()))

	_, err := catalog.Add(catalogs.Entry{
		Path:      "a/1.epub",
		CoverPath: "unknown",
		Name:      "First Book",
		Author:    "J. Doe",
		Tags:      []string{"Fantasy", "Isekai"},
	})
	if err != nil {
		log.Fatal(err)
	}

	matches, err := catalog.Search(context.Background(), "fantasy isekai")
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range matches {
		fmt.Printf("%s scored %d\n", m.Entry.Name, m.Score)
	}
	// Output: First Book scored 2
}

// Example_encode demonstrates writing a catalog in the .appl format
func Example_encode() {
	catalog := catalogs.New("Library", "/media",
		catalogs.WithLogger(logging.NewNopLogger()),
		catalogs.WithAssociations(map[string]string{"epub": "ebook-viewer"}),
	)
	_, _ = catalog.Add(catalogs.Entry{
		Path:      "/books/dune.epub",
		CoverPath: "unknown",
		Name:      "Dune",
		Author:    "Frank Herbert",
		Series:    "Dune",
		Vol:       1,
		Language:  "English",
		AgeRating: "PG",
		Release:   1965,
		Tags:      []string{"Science Fiction"},
	})

	if err := catalog.Encode(os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// Library
	// /media
	//
	// {"epub":"ebook-viewer"}
	// 1
	//
	// ---
	//
	// /books/dune.epub
	// unknown
	// Dune
	// Frank Herbert
	// Dune, 1
	// English, PG
	// 1965
	// 0x0
	// Science Fiction
}

// Example_discover demonstrates cataloging new files under the root
func Example_discover() {
	fs := memfs.New()
	for _, f := range []string{"/show/01.mkv", "/show/02.mkv", "/movie.mkv"} {
		if err := util.WriteFile(fs, f, nil, 0o644); err != nil {
			log.Fatal(err)
		}
	}

	catalog := catalogs.New("Videos", "/videos",
		catalogs.WithFilesystem(fs),
		catalogs.WithLogger(logging.NewNopLogger()),
	)
	if _, err := catalog.DiscoverNew(context.Background()); err != nil {
		log.Fatal(err)
	}

	for _, e := range catalog.Entries() {
		fmt.Println(e.Path, e.Name, strings.Join(e.Tags, ","))
	}
	// Output:
	// /movie.mkv movie unknown
	// /show show unknown
}

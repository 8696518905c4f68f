// tags.go implements the "nametag tags" command for querying tags.
//
// Design: Two modes sharing one verb, matching how users think about the
// question. With paths: "what tags do these files carry" (aligned listing
// per file). Without: "what tags exist here" (union across the current
// directory, one per line, pipe-friendly).

package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/fileop"
	"github.com/internetimagery/nametag/internal/format"
	"github.com/internetimagery/nametag/internal/log"
	"github.com/internetimagery/nametag/internal/scan"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags [<path>...]",
		Short: "List tags on files",
		Long: `List the tags files carry. With no arguments, lists every tag in use
in the current directory.

  nametag tags report[draft].txt   # tags on one file
  nametag tags *.txt               # aligned listing per file
  nametag tags                     # union of tags in this directory
  nametag tags -r                  # including subdirectories`,
		RunE: runTags,
	}
}

func runTags(_ *cobra.Command, args []string) error {
	union := len(args) == 0
	if union {
		args = []string{"."}
	}

	files, err := scan.Expand(args, ScanOptions())
	if err != nil {
		return PrintJSONError(err)
	}

	var results []fileop.Result
	for _, f := range files {
		results = append(results, fileop.List(f))
	}

	log.Event("tag:tags", "list").Detail("count", len(results)).Write(nil)

	if JSON() {
		if union {
			return PrintJSON(tagUnion(results))
		}
		return PrintJSON(results)
	}

	if union {
		format.Tags(out, tagUnion(results))
		return nil
	}

	listings := make([]format.Listing, 0, len(results))
	for _, r := range results {
		listings = append(listings, format.Listing{Path: r.Path, Tags: r.Tags})
	}
	format.Listings(out, listings)
	return nil
}

// tagUnion collects the distinct tags across results, sorted ascending.
func tagUnion(results []fileop.Result) []string {
	var union []string
	for _, r := range results {
		for _, t := range r.Tags {
			if i, found := slices.BinarySearch(union, t); !found {
				union = slices.Insert(union, i, t)
			}
		}
	}
	return union
}

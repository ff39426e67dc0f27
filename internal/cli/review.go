package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/usecase"
)

// reviewCmd patches one row-review entry in a stored workspace. Flags left
// unset keep the stored value; clearing both the corrected flag and the note
// removes the entry entirely.
type reviewCmd struct {
	dbPath    string
	workspace string
	key       string
	corrected bool
	note      string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "annotate an unmatched transaction row" }
func (*reviewCmd) Usage() string {
	return `review -db <file> -key <review-key> [-corrected=<bool>] [-note <text>]:
  Merges a correction flag and/or note into the stored review entry for one
  unmatched row and prints the merged review map.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", "", "workspace database (required)")
	f.StringVar(&c.workspace, "workspace", "default", "workspace id inside the database")
	f.StringVar(&c.key, "key", "", "review key of the row (required)")
	f.BoolVar(&c.corrected, "corrected", false, "mark the row as corrected")
	f.StringVar(&c.note, "note", "", "free-text note for the row")
}

func (c *reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		fmt.Println("Error: -key is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	// Only flags the user actually passed become part of the patch.
	var patch domain.ReviewPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "corrected":
			v := c.corrected
			patch.Corrected = &v
		case "note":
			v := c.note
			patch.Note = &v
		}
	})

	repo, err := openStore(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer repo.Close()

	merged, err := usecase.NewWorkspaceUseCase(repo).ApplyReviewPatches(ctx, c.workspace,
		[]domain.KeyedReviewPatch{{Key: c.key, Patch: patch}})
	if err != nil {
		return fail(err)
	}
	return printJSON(merged)
}

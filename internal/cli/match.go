package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/usecase"
)

// matchCmd declares or removes a manual account correspondence. Manual
// matches override automatic scoring on the next compare run.
type matchCmd struct {
	dbPath    string
	workspace string
	smmmCode  string
	firmaCode string
	remove    bool
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "declare a manual account match" }
func (*matchCmd) Usage() string {
	return `match -db <file> -smmm <code> [-firma <code>] [-remove]:
  Declares that an SMMM account corresponds to a Firma account, or with
  -remove drops the declaration. Prints the stored manual-match map.
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", "", "workspace database (required)")
	f.StringVar(&c.workspace, "workspace", "default", "workspace id inside the database")
	f.StringVar(&c.smmmCode, "smmm", "", "SMMM account code (required)")
	f.StringVar(&c.firmaCode, "firma", "", "Firma account code")
	f.BoolVar(&c.remove, "remove", false, "remove the declaration for the SMMM code")
}

func (c *matchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.smmmCode == "" || (!c.remove && c.firmaCode == "") {
		fmt.Println("Error: -smmm is required, and -firma unless -remove is given.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	repo, err := openStore(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer repo.Close()

	uc := usecase.NewWorkspaceUseCase(repo)
	var matches map[string]string
	if c.remove {
		matches, err = uc.RemoveManualMatch(ctx, c.workspace, c.smmmCode)
	} else {
		matches, err = uc.SetManualMatch(ctx, c.workspace, c.smmmCode, c.firmaCode)
	}
	if err != nil {
		return fail(err)
	}
	return printJSON(matches)
}

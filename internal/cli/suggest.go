package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/usecase"
)

// suggestCmd ranks Firma candidates for one SMMM account out of the last
// snapshotted ledgers, feeding the manual-match decision.
type suggestCmd struct {
	dbPath    string
	workspace string
	code      string
	limit     int
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest Firma candidates for an SMMM account" }
func (*suggestCmd) Usage() string {
	return `suggest -db <file> -code <smmm-code> [-limit <n>]:
  Prints the best-scoring Firma accounts for one SMMM account from the
  workspace's stored ledger snapshots.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", "", "workspace database (required)")
	f.StringVar(&c.workspace, "workspace", "default", "workspace id inside the database")
	f.StringVar(&c.code, "code", "", "SMMM account code (required)")
	f.IntVar(&c.limit, "limit", 5, "maximum number of candidates")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Println("Error: -code is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	repo, err := openStore(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer repo.Close()

	state, err := repo.LoadState(ctx, c.workspace)
	if err != nil {
		return fail(err)
	}
	for _, acc := range state.SmmmData {
		if acc.Code == c.code {
			suggestions := usecase.NewComparisonUseCase().SuggestMatches(acc, state.FirmaData, c.limit)
			return printJSON(suggestions)
		}
	}
	return fail(fmt.Errorf("SMMM account %s not found in workspace %s; run compare with -db first", c.code, c.workspace))
}

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/gateway"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/usecase"
)

// compareCmd loads both ledgers, runs the comparison and prints the result
// list as JSON. With -db it also snapshots the parsed ledgers into the
// workspace so review and suggest can work against the same data later.
type compareCmd struct {
	smmmFile  string
	firmaFile string
	dbPath    string
	workspace string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "reconcile an SMMM ledger against a Firma ledger" }
func (*compareCmd) Usage() string {
	return `compare -smmm <file> -firma <file> [-db <file> -workspace <id>]:
  Reads both ledger exports (.xlsx, .xls or .csv), matches the accounts and
  prints the comparison report as JSON.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.smmmFile, "smmm", "", "path to the SMMM ledger export (required)")
	f.StringVar(&c.firmaFile, "firma", "", "path to the Firma ledger export (required)")
	f.StringVar(&c.dbPath, "db", "", "workspace database; when set, uses stored manual matches and snapshots the ledgers")
	f.StringVar(&c.workspace, "workspace", "default", "workspace id inside the database")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.smmmFile == "" || c.firmaFile == "" {
		fmt.Println("Error: -smmm and -firma are required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	reader := gateway.NewLedgerReader(gateway.DefaultColumnMap())
	smmmAccounts, err := reader.ReadAccounts(ctx, c.smmmFile)
	if err != nil {
		return fail(err)
	}
	firmaAccounts, err := reader.ReadAccounts(ctx, c.firmaFile)
	if err != nil {
		return fail(err)
	}

	manualMatches := map[string]string{}
	if c.dbPath != "" {
		repo, err := openStore(c.dbPath)
		if err != nil {
			return fail(err)
		}
		defer repo.Close()

		state, err := repo.LoadState(ctx, c.workspace)
		if err != nil {
			return fail(err)
		}
		manualMatches = state.ManualMatches
		state.SmmmData = smmmAccounts
		state.FirmaData = firmaAccounts
		if err := repo.SaveState(ctx, c.workspace, state); err != nil {
			return fail(err)
		}
	}

	results := usecase.NewComparisonUseCase().Run(smmmAccounts, firmaAccounts, manualMatches)
	return printJSON(results)
}

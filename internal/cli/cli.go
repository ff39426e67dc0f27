// Package cli implements the mutabakat subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/store"
)

// Commands lists every registered subcommand.
var Commands = []subcommands.Command{
	&compareCmd{},
	&reviewCmd{},
	&matchCmd{},
	&suggestCmd{},
}

func openStore(path string) (*store.SQLiteStateRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("-db is required")
	}
	return store.Open(path)
}

func printJSON(v any) subcommands.ExitStatus {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render output: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// Package cmd implements the CLI application to manage a fixed-income plan.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/quantrail/bondplan"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&profileCmd{}, "records")
	c.Register(&addAssetCmd{}, "records")
	c.Register(&listAssetsCmd{}, "records")
	c.Register(&deleteAssetCmd{}, "records")
	c.Register(&addEventCmd{}, "records")
	c.Register(&listEventsCmd{}, "records")
	c.Register(&deleteEventCmd{}, "records")

	c.Register(&recommendCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
	c.Register(&assistCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "bondplan.jsonl", "Path to the plan file holding profile, assets and events (JSONL format)")

// DecodeStoreFile loads the plan store from the app store file.
func DecodeStoreFile() (s *bondplan.Store, err error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, plan file does not exist, starting from an empty plan instead")
		return bondplan.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", *storeFile, err)
	}
	defer f.Close()

	s, err = bondplan.DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", *storeFile, err)
	}
	return s, nil
}

// EncodeStoreFile rewrites the whole plan file in canonical form.
func EncodeStoreFile(s *bondplan.Store) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return fmt.Errorf("could not write plan file %q: %w", *storeFile, err)
	}
	defer f.Close()
	return bondplan.EncodeStore(f, s)
}

// AppendRecord validates a single record and appends it to the app plan file.
func AppendRecord(kind bondplan.RecordType, rec any) subcommands.ExitStatus {
	if err := bondplan.ValidateRecord(rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	f, err := os.OpenFile(*storeFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plan file %q: %v\n", *storeFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := bondplan.EncodeRecord(f, kind, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to plan file %q: %v\n", *storeFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s record to %s\n", kind, *storeFile)
	return subcommands.ExitSuccess
}

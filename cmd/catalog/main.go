package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:  Create or update the database schema
// - seed:     Replace the product catalog with the seed document
// - validate: Check the seed document without writing anything

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	seedBucket := seedCmd.String("bucket", "", "Bucket URL holding the seed document (overrides catalog.bucketURL)")
	seedKey := seedCmd.String("key", "", "Object key of the seed document (overrides catalog.key)")

	validateBucket := validateCmd.String("bucket", "", "Bucket URL holding the seed document (overrides catalog.bucketURL)")
	validateKey := validateCmd.String("key", "", "Object key of the seed document (overrides catalog.key)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := catalogFlags{
		Migrate: migrateCmd,
		Seed: sourceFlags{
			cmd:    seedCmd,
			bucket: seedBucket,
			key:    seedKey,
		},
		Validate: sourceFlags{
			cmd:    validateCmd,
			bucket: validateBucket,
			key:    validateKey,
		},
	}

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:], &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type catalogFlags struct {
	Migrate  *flag.FlagSet
	Seed     sourceFlags
	Validate sourceFlags
}

type sourceFlags struct {
	cmd    *flag.FlagSet
	bucket *string
	key    *string
}

func runSubcommand(ctx context.Context, name string, args []string, flags *catalogFlags) error {
	switch name {
	case "migrate":
		if err := flags.Migrate.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse migrate flags")
		}

		return runMigrate(ctx)
	case "seed":
		if err := flags.Seed.cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse seed flags")
		}

		return runSeed(ctx, flags.Seed.overrides())
	case "validate":
		if err := flags.Validate.cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse validate flags")
		}

		return runValidate(ctx, flags.Validate.overrides())
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func (f sourceFlags) overrides() sourceOverrides {
	return sourceOverrides{bucketURL: *f.bucket, key: *f.key}
}

func printUsage() {
	fmt.Println("Usage: catalog <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Create or update the database schema")
	fmt.Println("  seed        Replace the product catalog with the seed document")
	fmt.Println("  validate    Check the seed document without writing anything")
	fmt.Println("")
	fmt.Println("Use 'catalog <command> -h' for more information about a command.")
}

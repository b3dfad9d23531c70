package main

import (
	"context"
	"flag"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceOverrides_Apply(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{BucketURL: "file:///srv/seed", Key: "products.json"}}

	sourceOverrides{}.apply(cfg)
	assert.Equal(t, "file:///srv/seed", cfg.Catalog.BucketURL)
	assert.Equal(t, "products.json", cfg.Catalog.Key)

	sourceOverrides{bucketURL: "mem://", key: "seed.json"}.apply(cfg)
	assert.Equal(t, "mem://", cfg.Catalog.BucketURL)
	assert.Equal(t, "seed.json", cfg.Catalog.Key)
}

func TestSourceFlags_Overrides(t *testing.T) {
	cmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	flags := sourceFlags{
		cmd:    cmd,
		bucket: cmd.String("bucket", "", ""),
		key:    cmd.String("key", "", ""),
	}

	require.NoError(t, cmd.Parse([]string{"-bucket", "gs://shop-seed"}))

	assert.Equal(t, sourceOverrides{bucketURL: "gs://shop-seed"}, flags.overrides())
}

func TestRunSubcommand_Unknown(t *testing.T) {
	err := runSubcommand(context.Background(), "drop", nil, &catalogFlags{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown subcommand "drop"`)
}

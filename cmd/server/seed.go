package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/database"
	"github.com/blues/adagency/internal/logger"
	"github.com/blues/adagency/internal/logic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load site content from a YAML file",
	Long: `Load services, portfolio, FAQ, settings, team, partners and testimonials.

Settings are upserted by key and services by slug. The other collections are
only written into empty tables, so re-running the seed never duplicates
records edited in the admin console.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "content.yaml", "content file")
}

func loadSeedContent(path string) (*logic.SeedContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var content logic.SeedContent
	if err := yaml.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &content, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	content, err := loadSeedContent(seedFile)
	if err != nil {
		return err
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		return err
	}

	feedCache, err := cache.New(cmd.Context(), cfg.Redis)
	if err != nil {
		return err
	}
	if c, ok := feedCache.(io.Closer); ok {
		defer c.Close()
	}

	result, err := logic.NewContentLogic(db, feedCache).Seed(cmd.Context(), content)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(result))
	for table := range result {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		logger.Info("Seeded %d rows into %s", result[table], table)
	}
	return nil
}

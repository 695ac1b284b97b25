package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mdgen/internal/assembler"
	"mdgen/internal/config"
	"mdgen/internal/report"
	"mdgen/internal/verify"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "mdgen",
		Short: "Synthetic markdown document generator for renderer performance testing",
	}
	cfgPath string

	outPath     string
	targetLines int
	seed        int64
	noReport    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the YAML config file (optional)")

	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path for the generated document")
	generateCmd.Flags().IntVarP(&targetLines, "lines", "n", 0, "Target minimum line count")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Random seed (0 seeds from the wall clock)")
	generateCmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing generation_report.json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
}

// loadConfig resolves the effective settings: config file and env
// first, then explicit flags on top.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Path = outPath
	}
	if cmd.Flags().Changed("lines") {
		cfg.Document.TargetLines = targetLines
	}
	if cmd.Flags().Changed("seed") {
		cfg.Document.Seed = seed
	}
	if noReport {
		cfg.Output.Report = false
	}
	return cfg
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic test document",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		rep := report.New("generate", cfg.Output.Path)

		fmt.Printf("🚀 Generating test document (target: %d lines)...\n", cfg.Document.TargetLines)
		stage := rep.BeginStage("assemble")
		asm := assembler.New(cfg.Document.Seed)
		doc := asm.Generate(cfg.Document.TargetLines)
		rep.EndStage(stage, "ok", map[string]float64{
			"sections_total": float64(doc.Sections),
			"body_lines":     float64(doc.BodyLineCount()),
		}, nil)

		stage = rep.BeginStage("write_output")
		stats, err := doc.WriteFile(cfg.Output.Path)
		if err != nil {
			rep.EndStage(stage, "error", nil, err)
			saveReport(rep, cfg)
			log.Fatalf("Failed to write document: %v", err)
		}
		rep.EndStage(stage, "ok", map[string]float64{
			"total_lines":   float64(stats.Lines),
			"bytes_written": float64(stats.Bytes),
		}, nil)
		saveReport(rep, cfg)

		fmt.Printf("✅ Generated document with %d lines\n", stats.Lines)
		fmt.Printf("📄 File size: %d bytes (%.2f MB)\n", stats.Bytes, stats.Megabytes())
	},
}

func saveReport(rep *report.GenerationReport, cfg *config.Config) {
	if !cfg.Output.Report {
		return
	}
	path := filepath.Join(filepath.Dir(cfg.Output.Path), "generation_report.json")
	if err := rep.Save(path); err != nil {
		fmt.Printf("⚠️  Failed to write generation report: %v\n", err)
	}
}

var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check a generated document for markdown well-formedness",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		path := cfg.Output.Path
		if len(args) > 0 {
			path = args[0]
		}

		res, err := verify.File(context.Background(), path)
		if err != nil {
			log.Fatalf("Verification failed: %v", err)
		}

		fmt.Printf("🔍 Checked %s\n", path)
		fmt.Printf("  -> %d headings, %d code blocks, %d tables\n", res.Headings, res.CodeBlocks, res.Tables)
		fmt.Printf("  -> %d blockquotes, %d task items, %d links, %d list items\n",
			res.Blockquotes, res.TaskItems, res.Links, res.ListItems)

		if !res.Ok() {
			for _, p := range res.Problems {
				fmt.Printf("❌ %s\n", p)
			}
			os.Exit(1)
		}
		fmt.Println("✅ Document is well-formed.")
	},
}

// Command seqtrie is a thin example driver over the tree packages: it
// reads lines from stdin, indexes them, and answers one query. It exists
// to exercise the library end to end and is not part of its tested core.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rgranger/seqtrie/pkg/charset"
	"github.com/rgranger/seqtrie/pkg/editdist"
	"github.com/rgranger/seqtrie/pkg/kernel"
	"github.com/rgranger/seqtrie/pkg/seqconfig"
	"github.com/rgranger/seqtrie/pkg/wordtree"
)

var (
	mode        string
	query       string
	maxDistance float64
	limit       int
	configPath  string
)

func main() {
	root := &cobra.Command{
		Use:   "seqtrie",
		Short: "Index lines from stdin and run one query against them",
		RunE:  run,
	}
	root.Flags().StringVar(&mode, "mode", "prefix", "prefix, approx, or kernel")
	root.Flags().StringVar(&query, "query", "", "the query to run (required)")
	root.Flags().Float64Var(&maxDistance, "max-distance", 2, "maximum edit distance for -mode approx")
	root.Flags().IntVar(&limit, "limit", 10, "maximum results for -mode prefix")
	root.Flags().StringVar(&configPath, "config", "", "path to a seqconfig TOML file (built-in defaults if omitted)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

type weightedLine struct {
	word   string
	weight float64
}

func (w weightedLine) Weight() float64 { return w.weight }

func readLines() ([]weightedLine, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []weightedLine
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		weight := 1.0
		word := fields[0]
		if len(fields) > 1 {
			if w, err := strconv.ParseFloat(fields[1], 64); err == nil {
				weight = w
			}
		}
		lines = append(lines, weightedLine{word: word, weight: weight})
	}
	return lines, scanner.Err()
}

func run(cmd *cobra.Command, args []string) error {
	if query == "" {
		return fmt.Errorf("seqtrie: --query is required")
	}

	cfg := seqconfig.DefaultConfig()
	if configPath != "" {
		loaded, err := seqconfig.InitConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	lines, err := readLines()
	if err != nil {
		return err
	}
	log.Infof("indexed %d lines", len(lines))

	switch mode {
	case "prefix":
		return runPrefix(lines)
	case "approx":
		return runApprox(lines, cfg)
	case "kernel":
		return runKernel(lines, cfg)
	default:
		return fmt.Errorf("seqtrie: unknown mode %q", mode)
	}
}

func runPrefix(lines []weightedLine) error {
	tree := wordtree.NewItemStoreTree[rune, float64]()
	for _, l := range lines {
		tree.AddWord([]rune(l.word), l.weight)
	}
	ranked := wordtree.TopKByWeight(tree, []rune(query), limit, func(w float64) float64 { return w })
	for _, r := range ranked {
		fmt.Printf("%s\t%.4g\n", string(r.Result.Word()), r.Weight)
	}
	return nil
}

func runApprox(lines []weightedLine, cfg *seqconfig.Config) error {
	tree := wordtree.NewItemStoreTree[rune, float64]()
	for _, l := range lines {
		tree.AddWord([]rune(l.word), l.weight)
	}
	if maxDistance == 0 {
		maxDistance = cfg.DefaultMaxDistance
	}
	results := tree.ApproximateSearch([]rune(query), maxDistance, editdist.Standard[rune, float64]())
	for _, r := range results {
		fmt.Printf("%s\t%.0f\n", string(r.Word()), r.EditDistance)
	}
	return nil
}

func runKernel(lines []weightedLine, cfg *seqconfig.Config) error {
	kt := kernel.New[rune, weightedLine](cfg.WeightFunction())
	for i, l := range lines {
		word := append([]rune(l.word), charset.SentinelFor(i))
		kt.AddWord(word, l)
	}
	score := kt.ComputeKernel([]rune(query))
	fmt.Printf("%.6g\n", score)
	return nil
}

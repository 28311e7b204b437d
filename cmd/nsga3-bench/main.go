// nsga3-bench runs NSGA-III on the standard multi-objective benchmark
// problems, either as a single run with plots or as the full DTLZ experiment
// grid with IGD statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/benchmarks"
	"github.com/mihai-snyk/nsga3/pkg/experiments"
	"github.com/mihai-snyk/nsga3/pkg/framework"
	"github.com/mihai-snyk/nsga3/pkg/metrics"
	"github.com/mihai-snyk/nsga3/pkg/util"
)

var rootCmd = &cobra.Command{
	Use:   "nsga3-bench",
	Short: "NSGA-III benchmark runner",
}

var runOpts struct {
	problem     string
	objectives  int
	divisions   int
	generations int
	population  int
	seed        uint64
	parallel    bool
	output      string
	plot        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run NSGA-III once on a single benchmark problem",
	RunE:  runSingle,
}

var experimentsOpts struct {
	configPath string
	runs       int
	output     string
	seed       uint64
	parallel   bool
	plots      bool
}

var experimentsCmd = &cobra.Command{
	Use:   "experiments",
	Short: "Run the DTLZ experiment grid and report IGD statistics",
	RunE:  runExperiments,
}

func init() {
	runCmd.Flags().StringVar(&runOpts.problem, "problem", "DTLZ2", "benchmark problem (ZDT1-3, DTLZ1-4)")
	runCmd.Flags().IntVar(&runOpts.objectives, "objectives", 3, "number of objectives (DTLZ problems only)")
	runCmd.Flags().IntVar(&runOpts.divisions, "divisions", 0, "reference point divisions per objective, 0 uses the standard setting")
	runCmd.Flags().IntVar(&runOpts.generations, "generations", 400, "number of generations")
	runCmd.Flags().IntVar(&runOpts.population, "population", 0, "population size, 0 derives it from the reference point count")
	runCmd.Flags().Uint64Var(&runOpts.seed, "seed", 0, "random seed, 0 uses the clock")
	runCmd.Flags().BoolVar(&runOpts.parallel, "parallel", false, "evaluate offspring in parallel")
	runCmd.Flags().StringVar(&runOpts.output, "output", "results", "output directory for plots")
	runCmd.Flags().BoolVar(&runOpts.plot, "plot", true, "render an HTML plot of the final front (2 and 3 objectives)")

	experimentsCmd.Flags().StringVar(&experimentsOpts.configPath, "config", "", "YAML experiment config, empty runs the full standard grid")
	experimentsCmd.Flags().IntVar(&experimentsOpts.runs, "runs", 0, "override the number of runs per cell")
	experimentsCmd.Flags().StringVar(&experimentsOpts.output, "output", "", "override the output directory")
	experimentsCmd.Flags().Uint64Var(&experimentsOpts.seed, "seed", 0, "override the base seed")
	experimentsCmd.Flags().BoolVar(&experimentsOpts.parallel, "parallel", false, "evaluate offspring in parallel")
	experimentsCmd.Flags().BoolVar(&experimentsOpts.plots, "plots", false, "render plots for the 3-objective cells")
}

// buildProblem constructs the named benchmark. The ZDT problems are fixed at
// two objectives and 30 variables; the DTLZ problems scale with the requested
// objective count, using numVars = M + k - 1 with k=5 for DTLZ1 and k=10 for
// the rest.
func buildProblem(name string, numObjectives int) (framework.Problem, error) {
	upper := strings.ToUpper(name)
	switch upper {
	case "ZDT1":
		return benchmarks.NewZDT1(30), nil
	case "ZDT2":
		return benchmarks.NewZDT2(30), nil
	case "ZDT3":
		return benchmarks.NewZDT3(30), nil
	}

	if numObjectives < 2 {
		return nil, fmt.Errorf("at least 2 objectives required, got %d", numObjectives)
	}
	switch upper {
	case "DTLZ1":
		return benchmarks.NewDTLZ1(numObjectives+4, numObjectives), nil
	case "DTLZ2":
		return benchmarks.NewDTLZ2(numObjectives+9, numObjectives), nil
	case "DTLZ3":
		return benchmarks.NewDTLZ3(numObjectives+9, numObjectives), nil
	case "DTLZ4":
		return benchmarks.NewDTLZ4(numObjectives+9, numObjectives), nil
	}
	return nil, fmt.Errorf("unknown problem %q", name)
}

func runSingle(cmd *cobra.Command, args []string) error {
	problem, err := buildProblem(runOpts.problem, runOpts.objectives)
	if err != nil {
		return err
	}
	numObjectives := len(problem.ObjectiveFuncs())

	var config algorithms.NSGA3Config
	if runOpts.divisions > 0 {
		config = algorithms.DefaultNSGA3Config(numObjectives, runOpts.divisions)
	} else {
		config = algorithms.NSGA3Config{
			CrossoverProbability: 1.0,
			ReferencePoints:      algorithms.StandardReferencePoints(numObjectives),
		}
	}
	config.PopulationSize = runOpts.population
	config.MaxGenerations = runOpts.generations
	config.ParallelExecution = runOpts.parallel
	config.Seed = runOpts.seed
	nsga3 := algorithms.NewNSGA3(config, problem)

	klog.InfoS("Starting run", "problem", problem.Name(), "objectives", numObjectives,
		"referencePoints", len(config.ReferencePoints), "population", nsga3.PopSize, "generations", runOpts.generations)

	finalPop, err := nsga3.Run()
	if err != nil {
		return err
	}

	front := algorithms.GetParetoFront(finalPop)
	igd := metrics.IGD(front, problem.TrueParetoFront(500), true)
	evaluations := int64(nsga3.PopSize) * int64(runOpts.generations+1)

	fmt.Printf("Problem:     %s (%d objectives)\n", problem.Name(), numObjectives)
	fmt.Printf("Front size:  %d of %d\n", len(front), nsga3.PopSize)
	fmt.Printf("Evaluations: %s\n", humanize.Comma(evaluations))
	fmt.Printf("IGD:         %.6e\n", igd)

	if runOpts.plot && numObjectives <= 3 {
		if err := os.MkdirAll(runOpts.output, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		plotPath := filepath.Join(runOpts.output, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithms.Name))
		if numObjectives == 2 {
			err = util.PlotResults(front, problem, algorithms.Name, plotPath)
		} else {
			err = util.PlotResults3D(front, problem, algorithms.Name, plotPath)
		}
		if err != nil {
			return fmt.Errorf("rendering plot: %w", err)
		}
		fmt.Printf("Plot:        %s\n", plotPath)
	}
	return nil
}

func runExperiments(cmd *cobra.Command, args []string) error {
	config := experiments.DefaultConfig()
	if experimentsOpts.configPath != "" {
		var err error
		config, err = experiments.LoadConfig(experimentsOpts.configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("runs") {
		config.Runs = experimentsOpts.runs
	}
	if cmd.Flags().Changed("output") {
		config.OutputDir = experimentsOpts.output
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = experimentsOpts.seed
	}
	if cmd.Flags().Changed("parallel") {
		config.Parallel = experimentsOpts.parallel
	}
	if cmd.Flags().Changed("plots") {
		config.Plots = experimentsOpts.plots
	}

	results, err := experiments.NewRunner(config).Run()
	if err != nil {
		return err
	}
	path, err := results.Save(config.OutputDir)
	if err != nil {
		return err
	}

	var evaluations int64
	for _, c := range results.Cells {
		evaluations += int64(c.PopulationSize) * int64(c.Generations+1) * int64(c.Runs)
	}

	fmt.Println(results.SummaryTable())
	fmt.Printf("Total: %s runs, %s objective evaluations\n",
		humanize.Comma(int64(len(results.Runs))), humanize.Comma(evaluations))
	fmt.Printf("Results saved to %s\n", path)
	return nil
}

// wordSepNormalizeFunc lets the underscore spellings of the klog flags be
// written with dashes as well.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)
	rootCmd.AddCommand(runCmd, experimentsCmd)

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

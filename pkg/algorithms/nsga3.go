package algorithms

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

const (
	Name = "NSGA-III"
)

// NSGA3Solution wraps a solution in the population with the derived state the
// selection pipeline needs. Value stores the point in objective space for the
// solution (this is what solutions are compared on). Rank is set by
// non-dominated sorting; RefPoint and RefDist are set by association and are
// only meaningful within the selection pass that computed them.
type NSGA3Solution struct {
	Solution framework.Solution
	Value    framework.ObjectiveSpacePoint

	Rank     int
	RefPoint int
	RefDist  float64
}

func NewNSGA3Solution(sol framework.Solution, val framework.ObjectiveSpacePoint) *NSGA3Solution {
	return &NSGA3Solution{
		Solution: sol,
		Value:    val,
	}
}

// NSGA3Config holds configuration parameters for NSGA-III
type NSGA3Config struct {
	// PopulationSize 0 picks the smallest multiple of 4 covering the
	// reference set.
	PopulationSize int
	MaxGenerations int
	// CrossoverProbability of 0 means no crossover; the usual setting for
	// continuous problems is 1.0.
	CrossoverProbability float64
	// MutationProbability 0 picks 1/numVariables.
	MutationProbability float64
	// ReferencePoints is the immutable reference set shared by every
	// generation. Build it with UniformReferencePoints or
	// TwoLayerReferencePoints.
	ReferencePoints   []ReferencePoint
	ParallelExecution bool // Enable parallel offspring evaluation
	// Seed 0 derives a seed from the clock.
	Seed uint64
	// KeepHistory records the objective values of the population after every
	// generation, for visualization.
	KeepHistory bool
}

// DefaultNSGA3Config returns the standard configuration for continuous
// benchmarks with the given objective count: a Das-Dennis reference set,
// population size derived from it, SBX always applied, mutation rate derived
// from the problem.
func DefaultNSGA3Config(numObjectives, divisions int) NSGA3Config {
	refPoints := UniformReferencePoints(numObjectives, divisions)
	return NSGA3Config{
		PopulationSize:       PopulationSizeFor(len(refPoints)),
		MaxGenerations:       400,
		CrossoverProbability: 1.0,
		ReferencePoints:      refPoints,
	}
}

// NSGA3 represents the NSGA-III algorithm configuration
type NSGA3 struct {
	PopSize           int
	NumGenerations    int
	Problem           framework.Problem
	CrossoverRate     float64
	MutationRate      float64
	RefPoints         []ReferencePoint
	ParallelExecution bool

	// History holds the objective values of the population after each
	// generation when enabled in the config.
	History [][]framework.ObjectiveSpacePoint

	keepHistory bool
	rng         *rand.Rand
}

// NewNSGA3 creates a new instance of NSGA-III with given parameters
func NewNSGA3(config NSGA3Config, problem framework.Problem) *NSGA3 {
	popSize := config.PopulationSize
	if popSize == 0 {
		popSize = PopulationSizeFor(len(config.ReferencePoints))
	}

	mutationRate := config.MutationProbability
	if mutationRate == 0 && len(problem.Bounds()) > 0 {
		mutationRate = 1.0 / float64(len(problem.Bounds()))
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &NSGA3{
		PopSize:           popSize,
		NumGenerations:    config.MaxGenerations,
		Problem:           problem,
		CrossoverRate:     config.CrossoverProbability,
		MutationRate:      mutationRate,
		RefPoints:         config.ReferencePoints,
		ParallelExecution: config.ParallelExecution,
		keepHistory:       config.KeepHistory,
		rng:               rand.New(rand.NewSource(seed)),
	}
}

// Name implements framework.Algorithm.
func (n *NSGA3) Name() string {
	return Name
}

// Evaluate evaluates the constraints and calculates objective values for an individual
func (n *NSGA3) Evaluate(individual framework.Solution) (framework.ObjectiveSpacePoint, error) {
	constraints := n.Problem.Constraints()

	// Check if all constraints are satisfied
	allSatisfied := true
	for _, c := range constraints {
		if !c(individual) {
			allSatisfied = false
			break
		}
	}

	objectives := n.Problem.ObjectiveFuncs()
	res := make(framework.ObjectiveSpacePoint, len(objectives))

	if !allSatisfied {
		// Use penalty approach: assign very bad fitness to invalid solutions
		// so the algorithm evolves away from them
		for i := range objectives {
			res[i] = math.Inf(1) // Worst possible value (we're minimizing)
		}
		return res, nil // Return without error so evolution continues
	}

	// Valid solution - evaluate normally
	for i, objFunc := range objectives {
		res[i] = objFunc(individual)
	}
	return res, nil
}

// Run executes the NSGA-III algorithm
func (n *NSGA3) Run() ([]*NSGA3Solution, error) {
	startTime := time.Now()

	if len(n.RefPoints) == 0 {
		return nil, fmt.Errorf("nsga3: no reference points configured")
	}

	initPop := n.Problem.Initialize(n.PopSize)
	if len(initPop) != n.PopSize {
		return nil, fmt.Errorf("nsga3: initialized %d solutions, want %d", len(initPop), n.PopSize)
	}

	log.Printf("NSGA-III: Starting evolution")
	log.Printf("  Population size: %d", n.PopSize)
	log.Printf("  Reference points: %d", len(n.RefPoints))
	log.Printf("  Generations: %d", n.NumGenerations)
	log.Printf("  Crossover rate: %.2f", n.CrossoverRate)
	log.Printf("  Mutation rate: %.4f", n.MutationRate)
	if n.ParallelExecution {
		log.Printf("  Execution mode: PARALLEL (%d workers)", runtime.NumCPU())
	} else {
		log.Printf("  Execution mode: SEQUENTIAL")
	}

	// Initial population evaluation
	population := make([]*NSGA3Solution, n.PopSize)
	n.forEach(n.PopSize, 1, func(i int) {
		val, _ := n.Evaluate(initPop[i]) // Errors handled via penalty
		population[i] = NewNSGA3Solution(initPop[i], val)
	})

	invalidCount := 0
	for _, sol := range population {
		if math.IsInf(sol.Value[0], 1) {
			invalidCount++
		}
	}
	if invalidCount > 0 {
		log.Printf("Initial population: %d constraint-violating solutions penalized", invalidCount)
	}

	for gen := 0; gen < n.NumGenerations; gen++ {
		if gen%10 == 0 || gen < 5 { // Log every 10 generations and first 5
			log.Printf("Generation %d/%d", gen+1, n.NumGenerations)
		}

		// NSGA-III applies variation to randomly paired parents; the
		// selection pressure all lives in environmental selection.
		pairing := n.rng.Perm(n.PopSize)

		offspring := make([]*NSGA3Solution, n.PopSize)
		n.forEach(n.PopSize, 2, func(i int) {
			n.generateOffspringPair(i, pairing, population, offspring)
		})

		// Combine populations and select the next generation
		combined := append(population, offspring...)

		survivors, err := EnvironmentalSelection(combined, n.RefPoints, n.PopSize, n.rng)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen+1, err)
		}
		population = survivors

		if n.keepHistory {
			snapshot := make([]framework.ObjectiveSpacePoint, len(population))
			for i, sol := range population {
				point := make(framework.ObjectiveSpacePoint, len(sol.Value))
				copy(point, sol.Value)
				snapshot[i] = point
			}
			n.History = append(n.History, snapshot)
		}
	}

	elapsedTime := time.Since(startTime)
	mode := "SEQUENTIAL"
	if n.ParallelExecution {
		mode = "PARALLEL"
	}
	log.Printf("NSGA-III %s execution completed in %v", mode, elapsedTime)
	if n.NumGenerations > 0 {
		log.Printf("  Time per generation: %v", elapsedTime/time.Duration(n.NumGenerations))
	}

	return population, nil
}

// forEach runs fn over indices 0, step, 2*step, ... below limit, either
// sequentially or on a worker pool depending on configuration. fn must not
// touch the algorithm's RNG; variation and evaluation only use goroutine-safe
// sources.
func (n *NSGA3) forEach(limit, step int, fn func(int)) {
	if !n.ParallelExecution {
		for i := 0; i < limit; i += step {
			fn(i)
		}
		return
	}

	numWorkers := runtime.NumCPU()
	workChan := make(chan int, limit/step+1)
	wg := &sync.WaitGroup{}

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workChan {
				fn(i)
			}
		}()
	}

	for i := 0; i < limit; i += step {
		workChan <- i
	}
	close(workChan)
	wg.Wait()
}

// generateOffspringPair generates a pair of offspring from the parents at
// positions i and i+1 of the pairing permutation
func (n *NSGA3) generateOffspringPair(i int, pairing []int, population, offspring []*NSGA3Solution) {
	parent1 := population[pairing[i]]
	parent2 := population[pairing[(i+1)%len(pairing)]]

	child1, child2 := parent1.Solution.Crossover(parent2.Solution, n.CrossoverRate)
	child1.Mutate(n.MutationRate)
	child2.Mutate(n.MutationRate)

	val1, _ := n.Evaluate(child1) // Errors handled via penalty
	offspring[i] = NewNSGA3Solution(child1, val1)

	if i+1 < len(offspring) {
		val2, _ := n.Evaluate(child2) // Errors handled via penalty
		offspring[i+1] = NewNSGA3Solution(child2, val2)
	}
}

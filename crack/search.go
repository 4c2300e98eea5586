package crack

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rotorworks/enigma/machine"
	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/reflector"
	"github.com/rotorworks/enigma/machine/rotor"
)

// MinViableLetters is the ciphertext length below which the scorer's
// discriminative power collapses.  Shorter inputs still produce a
// best-effort answer; this is an accuracy limitation, not an error.
const MinViableLetters = 200

// maxCoarseWorkers caps the coarse-stage worker count regardless of CPU
// count.
const maxCoarseWorkers = 8

// RotorSpec is one rotor available for selection during the search.
type RotorSpec struct {
	Name   string
	Wiring string
	Notch  string
}

// ReflectorSpec is one reflector choice to consider.
type ReflectorSpec struct {
	Name   string
	Wiring string
	Offset int
}

// Space declares the configuration space to search: the rotor pool and
// the reflector choices.  Rotor initial offsets are always enumerated in
// full; the plugboard is left to the refinement stage.
type Space struct {
	Rotors     []RotorSpec
	Reflectors []ReflectorSpec
}

// CatalogSpace builds a search space from the built-in wheel catalog.
func CatalogSpace(rotorNames, reflectorNames []string) (Space, error) {
	var space Space
	for _, name := range rotorNames {
		cr, ok := machine.Rotors[name]
		if !ok {
			return Space{}, fmt.Errorf("%w: unknown rotor %q", ErrInvalidSearchSpace, name)
		}
		space.Rotors = append(space.Rotors, RotorSpec{Name: name, Wiring: cr.Wiring, Notch: cr.Notch})
	}
	for _, name := range reflectorNames {
		wiring, ok := machine.Reflectors[name]
		if !ok {
			return Space{}, fmt.Errorf("%w: unknown reflector %q", ErrInvalidSearchSpace, name)
		}
		space.Reflectors = append(space.Reflectors, ReflectorSpec{Name: name, Wiring: wiring})
	}
	return space, nil
}

// Options tune the searcher.  The zero value gets sensible defaults.
type Options struct {
	// TopK is how many coarse candidates are retained for refinement.
	TopK int
	// Workers caps the coarse-stage parallelism.
	Workers int
	// MaxEvaluations bounds the total number of candidate evaluations
	// across both stages; 0 means unlimited.  Exhausting the budget is a
	// normal termination path, not an error.
	MaxEvaluations int64
	// MaxPairs bounds the plugboard size explored during refinement.
	MaxPairs int
	// Epsilon is the minimum improvement an accepted hill-climbing move
	// must bring.
	Epsilon float64

	// Annealing switches refinement from deterministic steepest-ascent
	// hill climbing to simulated annealing.  The default is off so runs
	// are reproducible.
	Annealing bool
	// Seed drives the annealing proposal and acceptance randomness.
	Seed int64
	// Temperature is the initial annealing temperature.
	Temperature float64
	// Cooling is the geometric cooling factor applied per move.
	Cooling float64
	// AnnealMoves is the number of annealing proposals per candidate.
	AnnealMoves int
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = 10
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > maxCoarseWorkers {
		o.Workers = maxCoarseWorkers
	}
	if o.MaxPairs <= 0 {
		o.MaxPairs = 10
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	if o.Temperature <= 0 {
		o.Temperature = 5
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		o.Cooling = 0.995
	}
	if o.AnnealMoves <= 0 {
		o.AnnealMoves = 4000
	}
	return o
}

// Result is the outcome of a crack run.
type Result struct {
	// Best is the highest-scoring configuration found.
	Best Candidate
	// Candidates are the refined candidates, best first.
	Candidates []Candidate
	// Evaluations counts candidate machines built and scored.
	Evaluations int64
}

// Searcher explores the configuration space for one declared Space.
// The scorer model is read-only and shared by all workers.
type Searcher struct {
	space  Space
	scorer Scorer
	opts   Options
	evals  int64
}

// NewSearcher validates the search space before any work is dispatched.
// An empty or unusable space fails with ErrInvalidSearchSpace.
func NewSearcher(space Space, scorer Scorer, opts Options) (*Searcher, error) {
	if len(space.Rotors) == 0 {
		return nil, fmt.Errorf("%w: no rotors in pool", ErrInvalidSearchSpace)
	}
	if len(space.Rotors) < rotor.BankSize {
		return nil, fmt.Errorf("%w: pool has %d rotors, need at least %d",
			ErrInvalidSearchSpace, len(space.Rotors), rotor.BankSize)
	}
	if len(space.Reflectors) == 0 {
		return nil, fmt.Errorf("%w: no reflectors to consider", ErrInvalidSearchSpace)
	}
	for _, rs := range space.Rotors {
		if _, err := machine.ParseWiring(rs.Wiring); err != nil {
			return nil, fmt.Errorf("%w: rotor %q: %v", ErrInvalidSearchSpace, rs.Name, err)
		}
		if _, err := machine.ParseSymbol(rs.Notch); err != nil {
			return nil, fmt.Errorf("%w: rotor %q notch: %v", ErrInvalidSearchSpace, rs.Name, err)
		}
	}
	for _, fs := range space.Reflectors {
		wiring, err := machine.ParseWiring(fs.Wiring)
		if err != nil {
			return nil, fmt.Errorf("%w: reflector %q: %v", ErrInvalidSearchSpace, fs.Name, err)
		}
		if _, err := reflector.New(wiring, fs.Offset); err != nil {
			return nil, fmt.Errorf("%w: reflector %q: %v", ErrInvalidSearchSpace, fs.Name, err)
		}
	}
	return &Searcher{space: space, scorer: scorer, opts: opts.withDefaults()}, nil
}

// Crack runs the coarse stage, refines the retained candidates, and
// returns the single best configuration found.  Budget expiry and
// context cancellation return the best-so-far, not an error.
func (s *Searcher) Crack(ctx context.Context, ciphertext string) (Result, error) {
	coarse, err := s.Coarse(ctx, ciphertext)
	if err != nil {
		return Result{}, err
	}
	refined, err := s.refineAll(ctx, ciphertext, coarse)
	if err != nil {
		return Result{}, err
	}
	best := refined[0]
	for _, c := range refined[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return Result{Best: best, Candidates: refined, Evaluations: atomic.LoadInt64(&s.evals)}, nil
}

// coarseJob is one unit of coarse work: a rotor order, a reflector, and
// a fixed left-rotor offset.  The worker scans the remaining 26x26
// middle/right offsets.
type coarseJob struct {
	left, middle, right int
	refl                int
	leftOffset          int
}

// Coarse exhaustively enumerates rotor order, reflector choice and the
// 26^3 initial offsets with an empty plugboard, and retains the top-K
// candidates by score.  Evaluations are independent; each builds its own
// machine, and workers meet only at the top-K collector.
func (s *Searcher) Coarse(ctx context.Context, ciphertext string) ([]Candidate, error) {
	collector := newTopK(s.opts.TopK)
	jobs := make(chan coarseJob)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		n := len(s.space.Rotors)
		for l := 0; l < n; l++ {
			for m := 0; m < n; m++ {
				for r := 0; r < n; r++ {
					if l == m || l == r || m == r {
						continue
					}
					for f := range s.space.Reflectors {
						for o := 0; o < alphabet.Size; o++ {
							select {
							case jobs <- coarseJob{left: l, middle: m, right: r, refl: f, leftOffset: o}:
							case <-gctx.Done():
								return nil
							}
						}
					}
				}
			}
		}
		return nil
	})

	for w := 0; w < s.opts.Workers; w++ {
		g.Go(func() error {
			for job := range jobs {
				if gctx.Err() != nil {
					continue
				}
				if err := s.scanJob(job, ciphertext, collector); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collector.Candidates(), nil
}

func (s *Searcher) scanJob(job coarseJob, ciphertext string, collector *topK) error {
	for mo := 0; mo < alphabet.Size; mo++ {
		for ro := 0; ro < alphabet.Size; ro++ {
			if !s.takeBudget() {
				return nil
			}
			cfg := s.buildConfig(job.left, job.middle, job.right, job.refl,
				[rotor.BankSize]int{job.leftOffset, mo, ro}, nil)
			score, err := s.evaluate(cfg, ciphertext)
			if err != nil {
				return err
			}
			collector.Offer(Candidate{Config: cfg, Score: score})
		}
	}
	return nil
}

// refineAll runs one independent local search per retained candidate,
// in parallel, and returns the refined candidates best first.
func (s *Searcher) refineAll(ctx context.Context, ciphertext string, coarse []Candidate) ([]Candidate, error) {
	if len(coarse) == 0 {
		return nil, fmt.Errorf("coarse stage evaluated no candidates before cancellation")
	}
	refined := make([]Candidate, len(coarse))
	g, gctx := errgroup.WithContext(ctx)
	for i := range coarse {
		i := i
		g.Go(func() error {
			c, err := s.Refine(gctx, ciphertext, coarse[i])
			if err != nil {
				return err
			}
			refined[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refined, nil
}

// Refine improves a candidate by local search over its plugboard.  The
// accepted-move sequence never decreases the best score.  With
// Options.Annealing unset this is deterministic steepest-ascent hill
// climbing; otherwise simulated annealing with the configured seed and
// cooling schedule.
func (s *Searcher) Refine(ctx context.Context, ciphertext string, cand Candidate) (Candidate, error) {
	pairs, err := machine.ParsePairs(cand.Config.Plugboard)
	if err != nil {
		return Candidate{}, err
	}
	if s.opts.Annealing {
		return s.anneal(ctx, ciphertext, cand, pairs)
	}
	return s.steepestAscent(ctx, ciphertext, cand, pairs)
}

func (s *Searcher) steepestAscent(ctx context.Context, ciphertext string, cand Candidate, pairs [][2]int) (Candidate, error) {
	current := cand.Score
	for {
		if ctx.Err() != nil {
			break
		}
		var bestPairs [][2]int
		bestScore := current
		improved := false
		exhausted := false
		for _, proposal := range s.proposals(pairs) {
			if ctx.Err() != nil || !s.takeBudget() {
				exhausted = true
				break
			}
			cfg := s.plugConfig(cand.Config, proposal)
			score, err := s.evaluate(cfg, ciphertext)
			if err != nil {
				return Candidate{}, err
			}
			if score > bestScore+s.opts.Epsilon {
				bestScore = score
				bestPairs = proposal
				improved = true
			}
		}
		if !improved {
			break
		}
		pairs = bestPairs
		current = bestScore
		if exhausted {
			break
		}
	}
	return Candidate{Config: s.plugConfig(cand.Config, pairs), Score: current}, nil
}

// proposals enumerates the single-move neighbourhood of a plugboard:
// add a pair of unplugged letters, remove a pair, or re-plug one end of
// an existing pair to a free letter.
func (s *Searcher) proposals(pairs [][2]int) [][][2]int {
	var used [alphabet.Size]bool
	for _, p := range pairs {
		used[p[0]] = true
		used[p[1]] = true
	}
	free := make([]int, 0, alphabet.Size)
	for i := 0; i < alphabet.Size; i++ {
		if !used[i] {
			free = append(free, i)
		}
	}

	var moves [][][2]int
	clone := func(drop int) [][2]int {
		out := make([][2]int, 0, len(pairs)+1)
		for k, p := range pairs {
			if k != drop {
				out = append(out, p)
			}
		}
		return out
	}

	if len(pairs) < s.opts.MaxPairs {
		for i := 0; i < len(free); i++ {
			for j := i + 1; j < len(free); j++ {
				moves = append(moves, append(clone(-1), [2]int{free[i], free[j]}))
			}
		}
	}
	for k, p := range pairs {
		moves = append(moves, clone(k))
		for _, c := range free {
			moves = append(moves, append(clone(k), [2]int{p[0], c}))
			moves = append(moves, append(clone(k), [2]int{p[1], c}))
		}
	}
	return moves
}

func (s *Searcher) anneal(ctx context.Context, ciphertext string, cand Candidate, pairs [][2]int) (Candidate, error) {
	rng := rand.New(rand.NewSource(s.opts.Seed))
	current := cand.Score
	best := Candidate{Config: s.plugConfig(cand.Config, pairs), Score: cand.Score}
	temp := s.opts.Temperature

	for move := 0; move < s.opts.AnnealMoves; move++ {
		if ctx.Err() != nil || !s.canSpend() {
			break
		}
		proposal, ok := s.randomMove(rng, pairs)
		if !ok {
			break
		}
		if !s.takeBudget() {
			break
		}
		cfg := s.plugConfig(cand.Config, proposal)
		score, err := s.evaluate(cfg, ciphertext)
		if err != nil {
			return Candidate{}, err
		}
		delta := score - current
		if delta > 0 || rng.Float64() < math.Exp(delta/temp) {
			pairs = proposal
			current = score
			if current > best.Score {
				best = Candidate{Config: cfg, Score: current}
			}
		}
		temp *= s.opts.Cooling
	}
	return best, nil
}

func (s *Searcher) randomMove(rng *rand.Rand, pairs [][2]int) ([][2]int, bool) {
	var used [alphabet.Size]bool
	for _, p := range pairs {
		used[p[0]] = true
		used[p[1]] = true
	}
	free := make([]int, 0, alphabet.Size)
	for i := 0; i < alphabet.Size; i++ {
		if !used[i] {
			free = append(free, i)
		}
	}

	canAdd := len(pairs) < s.opts.MaxPairs && len(free) >= 2
	canEdit := len(pairs) > 0

	clone := func(drop int) [][2]int {
		out := make([][2]int, 0, len(pairs)+1)
		for k, p := range pairs {
			if k != drop {
				out = append(out, p)
			}
		}
		return out
	}

	kind := rng.Intn(3)
	for tries := 0; tries < 3; tries++ {
		switch kind {
		case 0:
			if canAdd {
				i := rng.Intn(len(free))
				j := rng.Intn(len(free) - 1)
				if j >= i {
					j++
				}
				return append(clone(-1), [2]int{free[i], free[j]}), true
			}
		case 1:
			if canEdit {
				return clone(rng.Intn(len(pairs))), true
			}
		default:
			if canEdit && len(free) > 0 {
				k := rng.Intn(len(pairs))
				end := pairs[k][rng.Intn(2)]
				c := free[rng.Intn(len(free))]
				return append(clone(k), [2]int{end, c}), true
			}
		}
		kind = (kind + 1) % 3
	}
	return nil, false
}

// buildConfig assembles a machine configuration from pool indices,
// offsets and plugboard pairs.
func (s *Searcher) buildConfig(l, m, r, refl int, offsets [rotor.BankSize]int, plugs []string) machine.Config {
	rc := func(spec RotorSpec, offset int) machine.RotorConfig {
		return machine.RotorConfig{
			Wiring: spec.Wiring,
			Notch:  spec.Notch,
			Offset: string(alphabet.Lower(offset)),
		}
	}
	fs := s.space.Reflectors[refl]
	return machine.Config{
		Plugboard: plugs,
		Rotors: []machine.RotorConfig{
			rc(s.space.Rotors[l], offsets[rotor.Left]),
			rc(s.space.Rotors[m], offsets[rotor.Middle]),
			rc(s.space.Rotors[r], offsets[rotor.Right]),
		},
		Reflector: machine.ReflectorConfig{Wiring: fs.Wiring, Offset: fs.Offset},
	}
}

// plugConfig returns base with its plugboard replaced by pairs.
func (s *Searcher) plugConfig(base machine.Config, pairs [][2]int) machine.Config {
	plugs := make([]string, 0, len(pairs))
	for _, p := range pairs {
		plugs = append(plugs, string([]rune{alphabet.Lower(p[0]), alphabet.Lower(p[1])}))
	}
	cfg := base.Clone()
	cfg.Plugboard = plugs
	return cfg
}

// evaluate builds the candidate machine, decrypts the ciphertext and
// scores the result.  A poor score is a data point, never an error.
func (s *Searcher) evaluate(cfg machine.Config, ciphertext string) (float64, error) {
	m, err := machine.New(cfg)
	if err != nil {
		return 0, err
	}
	return s.scorer.Score(m.EncodeText(ciphertext)), nil
}

// takeBudget claims one evaluation from the budget.  It returns false
// once the budget is exhausted; in-flight work wraps up and no new work
// starts.
func (s *Searcher) takeBudget() bool {
	if s.opts.MaxEvaluations <= 0 {
		atomic.AddInt64(&s.evals, 1)
		return true
	}
	for {
		n := atomic.LoadInt64(&s.evals)
		if n >= s.opts.MaxEvaluations {
			return false
		}
		if atomic.CompareAndSwapInt64(&s.evals, n, n+1) {
			return true
		}
	}
}

// canSpend reports whether budget remains without claiming any.
func (s *Searcher) canSpend() bool {
	return s.opts.MaxEvaluations <= 0 || atomic.LoadInt64(&s.evals) < s.opts.MaxEvaluations
}

package tuner

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/abtest/internal/arena"
)

type Config struct {
	Iterations int
	Seed       uint32
	Evaluator  Evaluator
	// Store is optional; θ is saved after every iteration when set.
	Store *Store
	// Progress is called after every iteration when set.
	Progress func(Iteration)
}

type Iteration struct {
	K        int
	Ak, Ck   float64
	Summary  arena.Summary
	Estimate float64
	Theta    Vector[float32]
}

// Run performs SPSA over theta and returns the tuned vector.
// Any evaluation or storage error aborts the run.
func Run(
	ctx context.Context,
	config Config,
	theta Vector[float32],
) (Vector[float32], error) {
	if config.Iterations < 1 {
		return nil, fmt.Errorf("tuner: iterations must be positive, got %v", config.Iterations)
	}
	if len(theta) == 0 {
		return nil, fmt.Errorf("tuner: empty parameter vector")
	}

	var schedule = NewSchedule(config.Iterations)
	var rnd = NewXorShift32(config.Seed)
	theta = theta.Clone()

	log.Info().Int("iterations", config.Iterations).Int("parameters", len(theta)).
		Float64("A", schedule.A).Float64("a0", schedule.A0).Msg("tune-started")

	for k := 1; k <= config.Iterations; k++ {
		if err := ctx.Err(); err != nil {
			return theta, err
		}
		var ak, ck = schedule.Gains(k)
		var delta = rnd.Perturbation(len(theta))
		var ckDelta = delta.Scale(float32(ck))

		var plus, minus = Perturb(theta, delta, ck)
		var summary, err = config.Evaluator.Evaluate(ctx, plus, minus)
		if err != nil {
			return theta, fmt.Errorf("iteration %v: %w", k, err)
		}
		var estimate = Estimate(summary)

		theta = theta.Add(DivScalar(float32(estimate), ckDelta).Scale(float32(ak)))

		if config.Store != nil {
			if err := config.Store.Save(k, theta); err != nil {
				return theta, err
			}
		}

		log.Info().Int("iteration", k).Float64("ak", ak).Float64("ck", ck).
			Int("wins", summary.AWins).Int("losses", summary.BWins).Int("draws", summary.Draws).
			Float64("estimate", estimate).Msg("tune-iteration")

		if config.Progress != nil {
			config.Progress(Iteration{
				K:        k,
				Ak:       ak,
				Ck:       ck,
				Summary:  summary,
				Estimate: estimate,
				Theta:    theta.Clone(),
			})
		}
	}
	return theta, nil
}

// Perturb projects θ ± c_k·δ to integers. θ is rounded once and every
// coordinate moves by at least one in each direction, so θ⁺ and θ⁻ never coincide.
func Perturb(theta, delta Vector[float32], ck float64) (plus, minus Vector[int32]) {
	mustSameLen(len(theta), len(delta))
	var step = math.Round(ck)
	if step < 1 {
		step = 1
	}
	var base = Round(theta)
	var offset = Round(delta.Scale(float32(step)))
	return base.Add(offset), base.Sub(offset)
}

package tuner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChizhovVadim/abtest/internal/arena"
	"github.com/ChizhovVadim/abtest/internal/enginetest"
)

func TestMain(m *testing.M) {
	enginetest.Main()
	os.Exit(m.Run())
}

type evaluatorFunc func(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error)

func (f evaluatorFunc) Evaluate(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error) {
	return f(ctx, plus, minus)
}

func TestRunStepsTowardsWinner(t *testing.T) {
	const seed = 7
	var delta = NewXorShift32(seed).Perturbation(4)
	var evaluator = evaluatorFunc(func(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error) {
		for i := range plus {
			assert.Equal(t, -minus[i], plus[i])
			assert.Equal(t, delta[i], float32(plus[i]))
		}
		return arena.Summary{AWins: 2}, nil
	})

	var iterations []Iteration
	var theta, err = Run(context.Background(), Config{
		Iterations: 1,
		Seed:       seed,
		Evaluator:  evaluator,
		Progress:   func(it Iteration) { iterations = append(iterations, it) },
	}, Vector[float32]{0, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, iterations, 1)

	var it = iterations[0]
	assert.Equal(t, 1, it.K)
	assert.InDelta(t, 4, it.Estimate, 1e-9)
	for i := range theta {
		var want = it.Ak * it.Estimate / (it.Ck * float64(delta[i]))
		assert.InDelta(t, want, theta[i], 1e-4)
		assert.Equal(t, delta[i] > 0, theta[i] > 0)
	}
}

func TestRunPerturbsIntegerTheta(t *testing.T) {
	var calls = 0
	var evaluator = evaluatorFunc(func(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error) {
		calls++
		for i := range plus {
			assert.NotEqual(t, plus[i], minus[i], "iteration %v coordinate %v", calls, i)
		}
		return arena.Summary{AWins: 1, BWins: 1}, nil
	})
	var start = Vector[float32]{100, 250, -30}
	var theta, err = Run(context.Background(), Config{Iterations: 4, Seed: 9, Evaluator: evaluator}, start)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Equal(t, start, theta)
}

func TestPerturb(t *testing.T) {
	var theta = Vector[float32]{100, 250, -30}
	var delta = Vector[float32]{1, -1, 1}
	var schedule = NewSchedule(100)
	for k := 1; k <= 3; k++ {
		var _, ck = schedule.Gains(k)
		var plus, minus = Perturb(theta, delta, ck)
		assert.Equal(t, Vector[int32]{101, 249, -29}, plus, "k=%v", k)
		assert.Equal(t, Vector[int32]{99, 251, -31}, minus, "k=%v", k)
	}

	var plus, minus = Perturb(Vector[float32]{10.4}, Vector[float32]{-1}, 2.6)
	assert.Equal(t, Vector[int32]{7}, plus)
	assert.Equal(t, Vector[int32]{13}, minus)
}

func TestRunEvenMatchKeepsTheta(t *testing.T) {
	var evaluator = evaluatorFunc(func(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error) {
		return arena.Summary{AWins: 1, BWins: 1, Draws: 2}, nil
	})
	var start = Vector[float32]{10, 20}
	var theta, err = Run(context.Background(), Config{Iterations: 5, Seed: 1, Evaluator: evaluator}, start)
	require.NoError(t, err)
	assert.Equal(t, start, theta)
}

func TestRunFailureAborts(t *testing.T) {
	var errEngine = errors.New("engine failed")
	var calls = 0
	var evaluator = evaluatorFunc(func(ctx context.Context, plus, minus Vector[int32]) (arena.Summary, error) {
		calls++
		return arena.Summary{}, errEngine
	})
	var _, err = Run(context.Background(), Config{Iterations: 3, Evaluator: evaluator}, Vector[float32]{1})
	assert.ErrorIs(t, err, errEngine)
	assert.Equal(t, 1, calls)
}

func TestRunRejectsBadConfig(t *testing.T) {
	var _, err = Run(context.Background(), Config{Iterations: 0}, Vector[float32]{1})
	assert.Error(t, err)
	_, err = Run(context.Background(), Config{Iterations: 1}, nil)
	assert.Error(t, err)
}

func TestEstimate(t *testing.T) {
	assert.InDelta(t, 1.0, Estimate(arena.Summary{AWins: 3, BWins: 1, Draws: 0}), 1e-9)
	assert.InDelta(t, -0.5, Estimate(arena.Summary{AWins: 0, BWins: 1, Draws: 3}), 1e-9)
	assert.Equal(t, 0.0, Estimate(arena.Summary{}))
}

func TestStoreLock(t *testing.T) {
	var dir = t.TempDir()
	var store, err = OpenStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// A live process other than this one owns the lock.
	require.NoError(t, os.WriteFile(filepath.Join(dir, lockFile),
		[]byte(fmt.Sprintf("%d\n", os.Getppid())), 0644))
	_, err = OpenStore(dir)
	assert.ErrorIs(t, err, ErrStoreBusy)
}

func TestRunWithEngines(t *testing.T) {
	var openings = arena.DefaultOpenings[:2]
	var policy = arena.DefaultPolicy()
	policy.MaxPlies = 8
	var evaluator = &MatchEvaluator{
		Engine:      enginetest.Path(t, enginetest.First),
		Openings:    openings,
		TimeControl: arena.TimeControl{Base: 60000, Increment: 100},
		Jobs:        2,
		Rounds:      2,
		Policy:      policy,
	}

	var dir = filepath.Join(t.TempDir(), "out")
	var store, err = OpenStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var iterations []Iteration
	theta, err := Run(context.Background(), Config{
		Iterations: 1,
		Seed:       3,
		Evaluator:  evaluator,
		Store:      store,
		Progress:   func(it Iteration) { iterations = append(iterations, it) },
	}, Vector[float32]{100, 200, 300})
	require.NoError(t, err)
	require.Len(t, iterations, 1)
	assert.Equal(t, 2*(len(openings)*2), iterations[0].Summary.Games())

	snapshots, err := filepath.Glob(filepath.Join(dir, "theta-*.flt"))
	require.NoError(t, err)
	assert.Equal(t, []string{store.SnapshotPath(1)}, snapshots)

	saved, err := ReadVectorFile[float32](filepath.Join(dir, ThetaFloatFile))
	require.NoError(t, err)
	assert.Equal(t, theta, saved)

	rounded, err := ReadVectorFile[int32](filepath.Join(dir, ThetaIntFile))
	require.NoError(t, err)
	assert.Equal(t, Round(theta), rounded)
}

package experiments

import (
	"hearts/internal/randutil"
	"hearts/player"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	rng := randutil.New(1)

	p, err := NewPlayer(PlayerConfig{Name: "r", Type: TypeRandom}, rng)
	require.NoError(t, err)
	require.IsType(t, &player.Random{}, p)

	p, err = NewPlayer(PlayerConfig{Name: "m", Type: TypeMinCard}, rng)
	require.NoError(t, err)
	require.IsType(t, &player.MinCard{}, p)

	p, err = NewPlayer(PlayerConfig{Name: "s", Type: TypeSimple}, rng)
	require.NoError(t, err)
	require.IsType(t, &player.Simple{}, p)
	require.Equal(t, "s", p.Name())

	_, err = NewPlayer(PlayerConfig{Name: "x", Type: "minmax"}, rng)
	require.Error(t, err)
}

func TestCreateMCTS(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		mcts, err := createMCTS(PlayerConfig{Type: TypeMCTS})
		require.NoError(t, err)
		require.Equal(t, 1000, mcts.Iterations())
		require.Zero(t, mcts.Duration())
	})

	t.Run("configured values", func(t *testing.T) {
		mcts, err := createMCTS(PlayerConfig{Type: TypeMCTS, Iterations: 30, Exploration: 2, Duration: "1s"})
		require.NoError(t, err)
		require.Equal(t, 30, mcts.Iterations())
		require.Equal(t, 2.0, mcts.Exploration())
		require.Equal(t, "1s", mcts.Duration().String())
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := createMCTS(PlayerConfig{Type: TypeMCTS, Duration: "later"})
		require.Error(t, err)
	})
}

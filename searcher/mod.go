package searcher

import "math"

// Hyperparameters for MCTS

const DefaultIterations = 1000

const DefaultExploration = math.Sqrt2 // C in q/n + C*sqrt(ln(N)/n)

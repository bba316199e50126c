package dice

import "go.uber.org/zap"

// Roller pairs a Source with a logger. Every draw and roll is logged at
// debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller over src.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn lets a Roller stand in for its Source.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

// Draw returns a uniform value in [0, n) and logs it under purpose.
//
// Precondition: n > 0.
func (r *Roller) Draw(purpose string, n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("dice draw",
		zap.String("purpose", purpose),
		zap.Int("n", n),
		zap.Int("value", v),
	)
	return v
}

// RollExpr parses and rolls expr, logging the outcome.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	result, err := RollExpr(expr, r.src)
	if err != nil {
		return RollResult{}, err
	}
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result, nil
}

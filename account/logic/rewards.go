package logic

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// PointsPerUnit is the spend that earns one reward point.
const PointsPerUnit = 10

// PointsFor returns floor(finalTotal / 10), never negative.
func PointsFor(finalTotal float64) int {
	if finalTotal <= 0 {
		return 0
	}
	return int(math.Floor(finalTotal / PointsPerUnit))
}

// Accrual reports a reward computation.
type Accrual struct {
	Points   int
	Credited bool
	Balance  int
}

// AccrueRewards adds the points for finalTotal to the existing record. With
// no record the points are computed and dropped.
func (s *Store) AccrueRewards(ctx context.Context, finalTotal float64) (Accrual, error) {
	points := PointsFor(finalTotal)
	account, ok := s.GetAccount(ctx)
	if !ok {
		return Accrual{Points: points}, nil
	}

	account.Rewards += points
	if err := s.SaveAccount(ctx, *account); err != nil {
		return Accrual{Points: points, Balance: account.Rewards - points}, err
	}
	s.logger.Info("rewards accrued",
		zap.String("id", account.ID),
		zap.Int("points", points),
		zap.Int("balance", account.Rewards))
	return Accrual{Points: points, Credited: true, Balance: account.Rewards}, nil
}

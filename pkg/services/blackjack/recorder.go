package blackjack

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

import (
	"context"
	"errors"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// RoundRecorder is notified once per resolved round, after the wallet and
// bet have been settled
type RoundRecorder interface {
	RecordRound(ctx context.Context, result *entities.RoundResult) error
}

// RecorderFunc adapts a function to the RoundRecorder interface
type RecorderFunc func(ctx context.Context, result *entities.RoundResult) error

// RecordRound calls f
func (f RecorderFunc) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	return f(ctx, result)
}

// MultiRecorder passes every round to each of its recorders in order
type MultiRecorder []RoundRecorder

// RecordRound records to every recorder and joins their errors
func (m MultiRecorder) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.RecordRound(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nopRecorder struct{}

func (nopRecorder) RecordRound(context.Context, *entities.RoundResult) error { return nil }

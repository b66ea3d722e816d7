package game

import "errors"

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientGold    = errors.New("insufficient gold")
	ErrJobNotFound         = errors.New("job not found")
	ErrQuestNotFound       = errors.New("quest not found")
	ErrLevelCurveExhausted = errors.New("level curve exhausted")
	ErrUnknownActivity     = errors.New("unknown activity")
	ErrRewardOverflow      = errors.New("reward overflow")
)

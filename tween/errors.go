package tween

import "errors"

var (
	// ErrTypeMismatch indicates a value whose kind differs from the kind a plugin handles.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrInvalidTarget indicates a nil or non-pointer tween target.
	ErrInvalidTarget = errors.New("invalid tween target")

	// ErrNoPlugins indicates a tween declared without any property plugins.
	ErrNoPlugins = errors.New("tween has no plugins")

	// ErrInvalidDuration indicates a negative duration or delay.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidSpeed indicates a speed-based tween with a zero or negative speed.
	ErrInvalidSpeed = errors.New("invalid speed")

	// ErrUnknownEase indicates an ease name that is not registered.
	ErrUnknownEase = errors.New("unknown ease")
)

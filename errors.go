package interq

import "errors"

var (
	// Configuration errors.
	ErrNilFactory           = errors.New("interq: nil interactor factory")
	ErrInvalidWorkerBinding = errors.New("interq: worker binding does not implement queue.Worker")
	ErrUnknownInteractor    = errors.New("interq: unknown interactor")

	// Payload errors.
	ErrMissingIdentity = errors.New("interq: payload missing interactor identity")
)

package goShop

import "errors"

var (
	// ErrUnauthorized is an exported constant or variable used by the storefront client.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is an exported constant or variable used by the storefront client.
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound is an exported constant or variable used by the storefront client.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is an exported constant or variable used by the storefront client.
	ErrValidation = errors.New("validation failed")
	// ErrSessionCorrupt is an exported constant or variable used by the storefront client.
	ErrSessionCorrupt = errors.New("persisted session corrupt")
	// ErrClientNotReady is an exported constant or variable used by the storefront client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrAlreadyInitialized is an exported constant or variable used by the storefront client.
	ErrAlreadyInitialized = errors.New("session store already initialized")
)

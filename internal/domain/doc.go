// Package domain defines the key-pair model and the store and service
// contracts shared across bigcrypt. It holds plain types and interfaces only.
package domain

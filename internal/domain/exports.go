package domain

import (
	interfaces "bigcrypt/internal/domain/interfaces"
	types "bigcrypt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint = types.Fingerprint
	KeyPair     = types.KeyPair
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService = interfaces.KeyService
	KeyStore   = interfaces.KeyStore
)

package types

import "math/big"

// Authorization is an EIP-7702 authorization tuple carried on a set-code
// transaction. Each tuple authorizes Address's code to be installed, via a
// delegation designator, on the account recovered from (R, S, V).
type Authorization struct {
	ChainID *big.Int
	Address Address
	Nonce   uint64
	V       *big.Int
	R       *big.Int
	S       *big.Int
}

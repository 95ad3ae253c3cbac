package core

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/fornaxchain/fornax/core/state"
	"github.com/fornaxchain/fornax/core/types"
	"github.com/fornaxchain/fornax/crypto"
	"github.com/fornaxchain/fornax/rlp"
)

// EIP-7702: Set EOA Account Code
//
// A set-code transaction carries a list of authorization tuples. Each tuple,
// once validated, installs a 23-byte delegation designator in the signing
// account's code: 0xef0100 || address. Any EXTCODE* or CALL-family lookup
// against a delegated account is redirected to the designated address's
// code, one level deep, with no further indirection.

const (
	// delegationPrefixLen is the length of the 0xef0100 delegation marker.
	delegationPrefixLen = 3

	// delegationCodeLen is the total length of a delegation designator:
	// 3-byte marker + 20-byte address.
	delegationCodeLen = delegationPrefixLen + types.AddressLength

	// authMagic is the EIP-7702 authorization signing magic byte. The
	// signed digest is keccak256(0x05 || rlp([chain_id, address, nonce])).
	authMagic = 0x05
)

// delegationPrefix is the raw 0xef0100 marker bytes.
var delegationPrefix = []byte{0xef, 0x01, 0x00}

var (
	ErrAuthChainID    = errors.New("authorization chain ID mismatch")
	ErrAuthNonce      = errors.New("authorization nonce mismatch")
	ErrAuthSignature  = errors.New("authorization signature recovery failed")
	ErrAuthInvalidSig = errors.New("authorization signature values invalid")
)

// ProcessAuthorizations applies the authorization list of a set-code
// transaction. Per EIP-7702, an invalid authorization tuple is skipped
// rather than failing the whole transaction. The returned error is always
// nil.
func ProcessAuthorizations(statedb state.StateDB, authorizations []types.Authorization, chainID *big.Int) error {
	for i := range authorizations {
		_ = processOneAuthorization(statedb, &authorizations[i], chainID)
	}
	return nil
}

// processOneAuthorization validates and applies a single authorization tuple.
func processOneAuthorization(statedb state.StateDB, auth *types.Authorization, chainID *big.Int) error {
	// 1. Chain ID must be the wildcard (0) or match the active chain.
	if auth.ChainID != nil && auth.ChainID.Sign() != 0 {
		if chainID == nil || auth.ChainID.Cmp(chainID) != 0 {
			return ErrAuthChainID
		}
	}

	// 2. Signature values must be canonical (s in the lower half-order).
	v := byte(0)
	if auth.V != nil {
		if !auth.V.IsUint64() || auth.V.Uint64() > 1 {
			return ErrAuthInvalidSig
		}
		v = byte(auth.V.Uint64())
	}
	if !crypto.ValidateSignatureValues(v, auth.R, auth.S, true) {
		return ErrAuthInvalidSig
	}

	// 3. Recover the authorizing EOA from the signed digest.
	authHash := authorizationHash(auth)

	sig := make([]byte, 65)
	if auth.R != nil {
		rBytes := auth.R.Bytes()
		copy(sig[32-len(rBytes):32], rBytes)
	}
	if auth.S != nil {
		sBytes := auth.S.Bytes()
		copy(sig[64-len(sBytes):64], sBytes)
	}
	sig[64] = v

	pub, err := crypto.Ecrecover(authHash, sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthSignature, err)
	}
	signer := types.BytesToAddress(crypto.Keccak256(pub[1:])[12:])

	// 4. The authority's current nonce must match the tuple's nonce.
	current := statedb.GetNonce(signer)
	if auth.Nonce != current {
		return ErrAuthNonce
	}

	// 5. Install the delegation designator and bump the authority's nonce.
	statedb.SetCode(signer, makeDelegationCode(auth.Address))
	statedb.SetNonce(signer, current+1)

	return nil
}

// authorizationHash computes keccak256(0x05 || rlp([chain_id, address, nonce])).
func authorizationHash(auth *types.Authorization) []byte {
	chainID := auth.ChainID
	if chainID == nil {
		chainID = new(big.Int)
	}
	payload, err := rlp.EncodeToBytes([]interface{}{chainID, auth.Address[:], auth.Nonce})
	if err != nil {
		return nil
	}
	msg := make([]byte, 0, 1+len(payload))
	msg = append(msg, authMagic)
	msg = append(msg, payload...)
	return crypto.Keccak256(msg)
}

// makeDelegationCode builds the 23-byte delegation designator: 0xef0100 || addr.
func makeDelegationCode(addr types.Address) []byte {
	code := make([]byte, delegationCodeLen)
	copy(code, delegationPrefix)
	copy(code[delegationPrefixLen:], addr[:])
	return code
}

// IsDelegationDesignator reports whether code begins with the EIP-7702
// delegation marker 0xef0100.
func IsDelegationDesignator(code []byte) bool {
	if len(code) < delegationPrefixLen {
		return false
	}
	return bytes.HasPrefix(code, delegationPrefix)
}

// ResolveDelegation extracts the delegated-to address from a well-formed
// 23-byte delegation designator. ok is false for any code that is not
// exactly a delegation designator (including longer, delegation-prefixed
// code, which is not valid EIP-7702 output).
func ResolveDelegation(code []byte) (addr types.Address, ok bool) {
	if len(code) != delegationCodeLen || !IsDelegationDesignator(code) {
		return types.Address{}, false
	}
	copy(addr[:], code[delegationPrefixLen:])
	return addr, true
}

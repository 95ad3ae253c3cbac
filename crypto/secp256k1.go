package crypto

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/fornaxchain/fornax/core/types"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// GenerateKey generates a new secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return gethcrypto.GenerateKey()
}

// Sign calculates an ECDSA signature (65 bytes [R || S || V]) over a 32-byte
// digest using the real secp256k1 curve.
func Sign(digestHash []byte, prv *ecdsa.PrivateKey) ([]byte, error) {
	return gethcrypto.Sign(digestHash, prv)
}

// Ecrecover recovers the uncompressed public key (65 bytes, 0x04 prefix) that
// produced sig over hash.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	return gethcrypto.Ecrecover(hash, sig)
}

// SigToPub recovers the public key from hash and a 65-byte [R || S || V] signature.
func SigToPub(hash, sig []byte) (*ecdsa.PublicKey, error) {
	return gethcrypto.SigToPub(hash, sig)
}

// ValidateSignatureValues checks r, s, v for validity per Homestead rules.
// If homestead is true, s must be in the lower half of the curve order
// (EIP-2, replay-protection against signature malleability).
func ValidateSignatureValues(v byte, r, s *big.Int, homestead bool) bool {
	return gethcrypto.ValidateSignatureValues(v, r, s, homestead)
}

// PubkeyToAddress derives the Ethereum address from a public key:
// Keccak256(pubkey[1:])[12:].
func PubkeyToAddress(p ecdsa.PublicKey) types.Address {
	return types.Address(gethcrypto.PubkeyToAddress(p))
}

// FromECDSAPub marshals a public key to 65-byte uncompressed format.
func FromECDSAPub(pub *ecdsa.PublicKey) []byte {
	return gethcrypto.FromECDSAPub(pub)
}

// CompressPubkey compresses a 65-byte uncompressed public key to 33 bytes.
func CompressPubkey(pubkey *ecdsa.PublicKey) []byte {
	return gethcrypto.CompressPubkey(pubkey)
}

// DecompressPubkey decompresses a 33-byte compressed public key.
func DecompressPubkey(pubkey []byte) (*ecdsa.PublicKey, error) {
	return gethcrypto.DecompressPubkey(pubkey)
}

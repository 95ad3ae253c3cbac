package state

import (
	"math/big"

	"github.com/fornaxchain/fornax/core/types"
)

// StateDB is the interface the interpreter, precompiles, and system
// contracts use to read and mutate Ethereum world state. MemoryStateDB is
// the only implementation in this module; a disk-backed implementation
// living outside this module (trie-backed, persistent) satisfies the same
// interface.
type StateDB interface {
	CreateAccount(addr types.Address)
	SubBalance(addr types.Address, amount *big.Int)
	AddBalance(addr types.Address, amount *big.Int)
	GetBalance(addr types.Address) *big.Int
	GetNonce(addr types.Address) uint64
	SetNonce(addr types.Address, nonce uint64)
	GetCode(addr types.Address) []byte
	SetCode(addr types.Address, code []byte)
	GetCodeHash(addr types.Address) types.Hash
	GetCodeSize(addr types.Address) int

	SelfDestruct(addr types.Address)
	HasSelfDestructed(addr types.Address) bool
	CreatedInTx(addr types.Address) bool

	GetState(addr types.Address, key types.Hash) types.Hash
	SetState(addr types.Address, key types.Hash, value types.Hash)
	GetCommittedState(addr types.Address, key types.Hash) types.Hash

	Exist(addr types.Address) bool
	Empty(addr types.Address) bool

	Snapshot() int
	RevertToSnapshot(id int)

	AddLog(log *types.Log)
	GetLogs(txHash types.Hash) []*types.Log

	AddRefund(gas uint64)
	SubRefund(gas uint64)
	GetRefund() uint64

	AddAddressToAccessList(addr types.Address)
	AddSlotToAccessList(addr types.Address, slot types.Hash)
	AddressInAccessList(addr types.Address) bool
	SlotInAccessList(addr types.Address, slot types.Hash) (addressOk bool, slotOk bool)

	GetTransientState(addr types.Address, key types.Hash) types.Hash
	SetTransientState(addr types.Address, key types.Hash, value types.Hash)

	// Commit flushes the dirty set and returns a content hash of the
	// committed account set. It is not a Merkle-Patricia state root;
	// building that root from committed state is an out-of-scope
	// external consumer's responsibility.
	Commit() (types.Hash, error)
}

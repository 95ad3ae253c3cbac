package vm

import (
	"bytes"

	"github.com/fornaxchain/fornax/core/types"
)

// EIP-7702 delegation designator: an EOA that has authorized a set-code
// transaction carries exactly this 3-byte marker followed by a 20-byte
// target address as its code. Every code-observing opcode and the
// CALL-family code-loading path treat such an account as if it carried the
// code at the designated address, one level deep, with no further chase
// if the target is itself delegated.
const (
	delegationDesignatorPrefixLen = 3
	delegationDesignatorLen       = delegationDesignatorPrefixLen + types.AddressLength
)

var delegationDesignatorPrefix = []byte{0xef, 0x01, 0x00}

// isDelegationDesignator reports whether code is exactly a well-formed
// EIP-7702 delegation designator (3-byte marker + 20-byte address).
func isDelegationDesignator(code []byte) bool {
	return len(code) == delegationDesignatorLen && bytes.HasPrefix(code, delegationDesignatorPrefix)
}

// resolveDelegatedAddress extracts the delegation target from code, if any.
func resolveDelegatedAddress(code []byte) (types.Address, bool) {
	if !isDelegationDesignator(code) {
		return types.Address{}, false
	}
	var addr types.Address
	copy(addr[:], code[delegationDesignatorPrefixLen:])
	return addr, true
}

// resolveCode returns the executable/observable code for addr: its own
// code, unless that code is an EIP-7702 delegation designator, in which
// case the designated address's code is returned instead.
func resolveCode(statedb StateDB, addr types.Address) []byte {
	code := statedb.GetCode(addr)
	if target, ok := resolveDelegatedAddress(code); ok {
		return statedb.GetCode(target)
	}
	return code
}

// resolveCodeHash mirrors resolveCode for EXTCODEHASH: the hash of a
// delegated account is the hash of the code at its delegation target.
func resolveCodeHash(statedb StateDB, addr types.Address) types.Hash {
	code := statedb.GetCode(addr)
	if target, ok := resolveDelegatedAddress(code); ok {
		return statedb.GetCodeHash(target)
	}
	return statedb.GetCodeHash(addr)
}

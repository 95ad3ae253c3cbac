package vm

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/fornaxchain/fornax/core/types"
	"github.com/fornaxchain/fornax/crypto"
)

// executionFunc is the signature for opcode execution functions.
type executionFunc func(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error)

var u256_256 = uint256.NewInt(256)

// bigToUint256 converts a (non-negative, trusted) big.Int into a uint256.Int,
// truncating to the low 256 bits. A nil input converts to zero.
func bigToUint256(b *big.Int) *uint256.Int {
	z := new(uint256.Int)
	if b == nil {
		return z
	}
	z.SetBytes(b.Bytes())
	return z
}

// uint256ToHash converts a stack word into a types.Hash (big-endian, 32 bytes).
func uint256ToHash(v *uint256.Int) types.Hash {
	b := v.Bytes32()
	return types.Hash(b)
}

// uint256ToAddress converts a stack word into a types.Address (the low 20 bytes).
func uint256ToAddress(v *uint256.Int) types.Address {
	b := v.Bytes32()
	return types.BytesToAddress(b[12:])
}

func opAdd(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Add(x, y)
	return nil, nil
}

func opSub(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Sub(x, y)
	return nil, nil
}

func opMul(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mul(x, y)
	return nil, nil
}

func opDiv(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Div(x, y)
	return nil, nil
}

func opSdiv(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SDiv(x, y)
	return nil, nil
}

func opMod(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mod(x, y)
	return nil, nil
}

func opSmod(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SMod(x, y)
	return nil, nil
}

func opAddmod(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(x, y, z)
	}
	return nil, nil
}

func opMulmod(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	z.MulMod(x, y, z)
	return nil, nil
}

func opExp(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	base, exponent := stack.Pop(), stack.Peek()
	exponent.Exp(base, exponent)
	return nil, nil
}

func opSignExtend(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	back, num := stack.Pop(), stack.Peek()
	num.ExtendSign(num, back)
	return nil, nil
}

func opLt(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIsZero(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.And(x, y)
	return nil, nil
}

func opOr(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Or(x, y)
	return nil, nil
}

func opXor(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Xor(x, y)
	return nil, nil
}

func opNot(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	x.Not(x)
	return nil, nil
}

func opByte(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	th, val := stack.Pop(), stack.Peek()
	val.Byte(th)
	return nil, nil
}

func opSHL(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.Cmp(u256_256) >= 0 {
		value.Clear()
	} else {
		value.Lsh(value, uint(shift.Uint64()))
	}
	return nil, nil
}

func opSHR(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.Cmp(u256_256) >= 0 {
		value.Clear()
	} else {
		value.Rsh(value, uint(shift.Uint64()))
	}
	return nil, nil
}

func opSAR(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.Cmp(u256_256) >= 0 {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil, nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return nil, nil
}

func opCalldataLoad(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	offset := x.Uint64()
	data := make([]byte, 32)
	if offset < uint64(len(contract.Input)) {
		copy(data, contract.Input[offset:])
	}
	x.SetBytes(data)
	return nil, nil
}

func opCalldataSize(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(contract.Input))))
	return nil, nil
}

func opCalldataCopy(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	memOffset, dataOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	dOff := dataOffset.Uint64()
	data := make([]byte, l)
	if dOff < uint64(len(contract.Input)) {
		copy(data, contract.Input[dOff:])
	}
	memory.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opCodeSize(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(contract.Code))))
	return nil, nil
}

func opCodeCopy(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	memOffset, codeOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	cOff := codeOffset.Uint64()
	data := make([]byte, l)
	if cOff < uint64(len(contract.Code)) {
		copy(data, contract.Code[cOff:])
	}
	memory.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opAddress(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int).SetBytes(contract.Address[:]))
	return nil, nil
}

func opOrigin(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int).SetBytes(evm.TxContext.Origin[:]))
	return nil, nil
}

func opCaller(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int).SetBytes(contract.CallerAddress[:]))
	return nil, nil
}

func opCallValue(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(bigToUint256(contract.Value))
	return nil, nil
}

func opGasPrice(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(bigToUint256(evm.TxContext.GasPrice))
	return nil, nil
}

func opCoinbase(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int).SetBytes(evm.Context.Coinbase[:]))
	return nil, nil
}

func opTimestamp(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(evm.Context.Time))
	return nil, nil
}

func opNumber(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(bigToUint256(evm.Context.BlockNumber))
	return nil, nil
}

func opPrevRandao(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int).SetBytes(evm.Context.PrevRandao[:]))
	return nil, nil
}

func opGasLimit(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(evm.Context.GasLimit))
	return nil, nil
}

func opChainID(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(evm.chainID))
	return nil, nil
}

func opBaseFee(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(bigToUint256(evm.Context.BaseFee))
	return nil, nil
}

func opPop(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Pop()
	return nil, nil
}

func opMload(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset := stack.Peek()
	off := offset.Uint64()
	data := memory.Get(int64(off), 32)
	offset.SetBytes(data)
	return nil, nil
}

func opMstore(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	memory.Set32(offset.Uint64(), val)
	return nil, nil
}

func opMstore8(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	memory.Set(offset.Uint64(), 1, []byte{byte(val.Uint64())})
	return nil, nil
}

func opJump(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	pos := stack.Pop()
	if !contract.validJumpdest(pos) {
		return nil, ErrInvalidJump
	}
	*pc = pos.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	pos, cond := stack.Pop(), stack.Pop()
	if !cond.IsZero() {
		if !contract.validJumpdest(pos) {
			return nil, ErrInvalidJump
		}
		*pc = pos.Uint64()
	} else {
		*pc++
	}
	return nil, nil
}

func opJumpdest(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opPc(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(*pc))
	return nil, nil
}

func opMsize(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(memory.Len())))
	return nil, nil
}

func opGas(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(contract.Gas))
	return nil, nil
}

func opPush0(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(new(uint256.Int))
	return nil, nil
}

func opPush1(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	var b uint64
	if *pc+1 < uint64(len(contract.Code)) {
		b = uint64(contract.Code[*pc+1])
	}
	stack.Push(uint256.NewInt(b))
	*pc += 1
	return nil, nil
}

// makePush returns an executionFunc that pushes n bytes from code.
func makePush(size uint64) executionFunc {
	return func(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
		start := *pc + 1
		end := start + size
		codeLen := uint64(len(contract.Code))

		var data []byte
		if start >= codeLen {
			data = make([]byte, size)
		} else if end > codeLen {
			data = make([]byte, size)
			copy(data, contract.Code[start:codeLen])
		} else {
			data = contract.Code[start:end]
		}

		stack.Push(new(uint256.Int).SetBytes(data))
		*pc += size
		return nil, nil
	}
}

// makeDup returns an executionFunc that duplicates the nth stack item.
func makeDup(n int) executionFunc {
	return func(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
		stack.Dup(n)
		return nil, nil
	}
}

// makeSwap returns an executionFunc that swaps the top with the nth item.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
		stack.Swap(n)
		return nil, nil
	}
}

func opStop(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opReturn(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	ret := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))
	return ret, nil
}

func opRevert(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	ret := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))
	return ret, ErrExecutionReverted
}

func opInvalid(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	return nil, ErrInvalidOpCode
}

func opKeccak256(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Peek()
	data := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))
	hash := crypto.Keccak256(data)
	size.SetBytes(hash)
	return nil, nil
}

func opSload(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	loc := stack.Peek()
	if evm.StateDB != nil {
		key := uint256ToHash(loc)
		val := evm.StateDB.GetState(contract.Address, key)
		loc.SetBytes(val[:])
	} else {
		loc.Clear()
	}
	return nil, nil
}

func opSstore(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.readOnly {
		return nil, ErrWriteProtection
	}
	loc, val := stack.Pop(), stack.Pop()
	if evm.StateDB != nil {
		key := uint256ToHash(loc)
		value := uint256ToHash(val)
		evm.StateDB.SetState(contract.Address, key, value)
	}
	return nil, nil
}

func opReturndataSize(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(evm.returnData))))
	return nil, nil
}

func opReturndataCopy(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	memOffset, dataOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	dOff := dataOffset.Uint64()
	end := dOff + l

	// Check for uint64 overflow in dOff + l.
	if end < dOff {
		return nil, ErrReturnDataOutOfBounds
	}

	// Bounds check against return data.
	if end > uint64(len(evm.returnData)) {
		return nil, ErrReturnDataOutOfBounds
	}

	data := make([]byte, l)
	copy(data, evm.returnData[dOff:end])
	memory.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opSelfBalance(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.StateDB != nil {
		balance := evm.StateDB.GetBalance(contract.Address)
		stack.Push(bigToUint256(balance))
	} else {
		stack.Push(new(uint256.Int))
	}
	return nil, nil
}

func opBalance(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	if evm.StateDB != nil {
		addr := uint256ToAddress(slot)
		balance := evm.StateDB.GetBalance(addr)
		slot.Set(bigToUint256(balance))
	} else {
		slot.Clear()
	}
	return nil, nil
}

// makeLog returns an executionFunc for LOG0..LOG4.
func makeLog(n int) executionFunc {
	return func(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
		if evm.readOnly {
			return nil, ErrWriteProtection
		}
		offset, size := stack.Pop(), stack.Pop()
		topics := make([]types.Hash, n)
		for i := 0; i < n; i++ {
			topics[i] = uint256ToHash(stack.Pop())
		}
		data := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))
		if evm.StateDB != nil {
			evm.StateDB.AddLog(&types.Log{
				Address: contract.Address,
				Topics:  topics,
				Data:    data,
			})
		}
		return nil, nil
	}
}

// forwardCallGas deducts and returns the gas forwarded to a CALL-family
// child frame. Pre-EIP150 a contract could forward its entire remaining
// balance; EIP-150 caps the forwardable amount at 63/64 of what remains
// after this opcode's own surcharges have already been charged, so the
// caller always keeps enough gas to observe the result.
func forwardCallGas(evm *EVM, contract *Contract, requested uint64) uint64 {
	callGas := requested
	if evm.forkRules.IsEIP150 {
		callGas = CallGas(contract.Gas, requested)
	} else if callGas > contract.Gas {
		callGas = contract.Gas
	}
	contract.Gas -= callGas
	return callGas
}

// opCall implements the CALL opcode.
// Stack: gas, addr, value, argsOffset, argsLength, retOffset, retLength
// Pushes 1 on success, 0 on failure.
func opCall(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addr := uint256ToAddress(stack.Pop())
	value := stack.Pop()
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	// Get input data from memory
	args := memory.Get(int64(inOffset.Uint64()), int64(inSize.Uint64()))

	// Apply the EIP-150 63/64 rule: the caller retains 1/64 of its remaining
	// gas no matter how much is requested.
	callGas := forwardCallGas(evm, contract, gasVal.Uint64())

	// A non-zero value transfer carries a 2300-gas stipend on top of the
	// forwarded amount; it is never withheld and is not drawn from the
	// caller's own gas pool.
	transfersValue := value.Sign() != 0
	if transfersValue {
		callGas += CallStipend
	}

	ret, returnGas, err := evm.Call(contract.Address, addr, args, callGas, value.ToBig())

	// Return unused gas
	contract.Gas += returnGas

	// Store return data
	evm.returnData = ret

	// Copy return data to memory
	if retSize.Uint64() > 0 && len(ret) > 0 {
		retLen := retSize.Uint64()
		if uint64(len(ret)) < retLen {
			retLen = uint64(len(ret))
		}
		memory.Set(retOffset.Uint64(), retLen, ret[:retLen])
	}

	// Push success/failure
	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(uint256.NewInt(1))
	}

	return nil, nil
}

// opCallCode implements the CALLCODE opcode.
// Stack: gas, addr, value, argsOffset, argsLength, retOffset, retLength
func opCallCode(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addr := uint256ToAddress(stack.Pop())
	value := stack.Pop()
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	args := memory.Get(int64(inOffset.Uint64()), int64(inSize.Uint64()))

	callGas := forwardCallGas(evm, contract, gasVal.Uint64())
	transfersValue := value.Sign() != 0
	if transfersValue {
		callGas += CallStipend
	}

	ret, returnGas, err := evm.CallCode(contract.Address, addr, args, callGas, value.ToBig())

	contract.Gas += returnGas
	evm.returnData = ret

	if retSize.Uint64() > 0 && len(ret) > 0 {
		retLen := retSize.Uint64()
		if uint64(len(ret)) < retLen {
			retLen = uint64(len(ret))
		}
		memory.Set(retOffset.Uint64(), retLen, ret[:retLen])
	}

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(uint256.NewInt(1))
	}

	return nil, nil
}

// opDelegateCall implements the DELEGATECALL opcode.
// Stack: gas, addr, argsOffset, argsLength, retOffset, retLength (no value)
func opDelegateCall(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addr := uint256ToAddress(stack.Pop())
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	args := memory.Get(int64(inOffset.Uint64()), int64(inSize.Uint64()))

	callGas := forwardCallGas(evm, contract, gasVal.Uint64())

	ret, returnGas, err := evm.DelegateCall(contract.CallerAddress, addr, args, callGas)

	contract.Gas += returnGas
	evm.returnData = ret

	if retSize.Uint64() > 0 && len(ret) > 0 {
		retLen := retSize.Uint64()
		if uint64(len(ret)) < retLen {
			retLen = uint64(len(ret))
		}
		memory.Set(retOffset.Uint64(), retLen, ret[:retLen])
	}

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(uint256.NewInt(1))
	}

	return nil, nil
}

// opStaticCall implements the STATICCALL opcode.
// Stack: gas, addr, argsOffset, argsLength, retOffset, retLength (no value)
func opStaticCall(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addr := uint256ToAddress(stack.Pop())
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	args := memory.Get(int64(inOffset.Uint64()), int64(inSize.Uint64()))

	callGas := forwardCallGas(evm, contract, gasVal.Uint64())

	ret, returnGas, err := evm.StaticCall(contract.Address, addr, args, callGas)

	contract.Gas += returnGas
	evm.returnData = ret

	if retSize.Uint64() > 0 && len(ret) > 0 {
		retLen := retSize.Uint64()
		if uint64(len(ret)) < retLen {
			retLen = uint64(len(ret))
		}
		memory.Set(retOffset.Uint64(), retLen, ret[:retLen])
	}

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(uint256.NewInt(1))
	}

	return nil, nil
}

// opCreate implements the CREATE opcode.
// Stack: value, offset, length
// Pushes the new contract address on success, 0 on failure.
func opCreate(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.readOnly {
		return nil, ErrWriteProtection
	}

	value := stack.Pop()
	offset, size := stack.Pop(), stack.Pop()

	// Get init code from memory
	initCode := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))

	callGas := contract.Gas
	contract.Gas = 0

	ret, addr, returnGas, err := evm.Create(contract.Address, initCode, callGas, value.ToBig())

	contract.Gas += returnGas
	evm.returnData = ret

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(new(uint256.Int).SetBytes(addr[:]))
	}

	return nil, nil
}

// opCreate2 implements the CREATE2 opcode.
// Stack: value, offset, length, salt
func opCreate2(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.readOnly {
		return nil, ErrWriteProtection
	}

	value := stack.Pop()
	offset, size := stack.Pop(), stack.Pop()
	salt := stack.Pop()

	initCode := memory.Get(int64(offset.Uint64()), int64(size.Uint64()))

	callGas := contract.Gas
	contract.Gas = 0

	ret, addr, returnGas, err := evm.Create2(contract.Address, initCode, callGas, value.ToBig(), salt.ToBig())

	contract.Gas += returnGas
	evm.returnData = ret

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(new(uint256.Int).SetBytes(addr[:]))
	}

	return nil, nil
}

// opExtcodesize implements the EXTCODESIZE opcode.
func opExtcodesize(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	if evm.StateDB != nil {
		addr := uint256ToAddress(slot)
		code := resolveCode(evm.StateDB, addr)
		slot.SetUint64(uint64(len(code)))
	} else {
		slot.Clear()
	}
	return nil, nil
}

// opExtcodecopy implements the EXTCODECOPY opcode.
func opExtcodecopy(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	addrVal := stack.Pop()
	memOffset := stack.Pop()
	codeOffset := stack.Pop()
	length := stack.Pop()

	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}

	var code []byte
	if evm.StateDB != nil {
		addr := uint256ToAddress(addrVal)
		code = resolveCode(evm.StateDB, addr)
	}

	cOff := codeOffset.Uint64()
	data := make([]byte, l)
	if cOff < uint64(len(code)) {
		copy(data, code[cOff:])
	}
	memory.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

// opExtcodehash implements the EXTCODEHASH opcode.
func opExtcodehash(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	if evm.StateDB != nil {
		addr := uint256ToAddress(slot)
		if !evm.StateDB.Exist(addr) {
			slot.Clear()
		} else {
			hash := resolveCodeHash(evm.StateDB, addr)
			slot.SetBytes(hash[:])
		}
	} else {
		slot.Clear()
	}
	return nil, nil
}

// opTload implements the TLOAD opcode (EIP-1153).
// Pops a key from the stack, pushes the transient storage value for the
// current contract address at that key.
func opTload(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	loc := stack.Peek()
	if evm.StateDB != nil {
		key := uint256ToHash(loc)
		val := evm.StateDB.GetTransientState(contract.Address, key)
		loc.SetBytes(val[:])
	} else {
		loc.Clear()
	}
	return nil, nil
}

// opTstore implements the TSTORE opcode (EIP-1153).
// Pops a key and value from the stack, stores the value in transient storage
// for the current contract address at that key.
func opTstore(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.readOnly {
		return nil, ErrWriteProtection
	}
	loc, val := stack.Pop(), stack.Pop()
	if evm.StateDB != nil {
		key := uint256ToHash(loc)
		value := uint256ToHash(val)
		evm.StateDB.SetTransientState(contract.Address, key, value)
	}
	return nil, nil
}

// opMcopy implements the MCOPY opcode (EIP-5656).
// Pops dest, src, size from the stack and copies memory[src:src+size] to
// memory[dest:dest+size]. Handles overlapping regions correctly.
func opMcopy(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	dest, src, size := stack.Pop(), stack.Pop(), stack.Pop()
	l := size.Uint64()
	if l == 0 {
		return nil, nil
	}
	memory.Copy(dest.Uint64(), src.Uint64(), l)
	return nil, nil
}

// opBlobHash implements the BLOBHASH opcode (EIP-4844).
// Pops an index from the stack, pushes the versioned hash from
// evm.TxContext.BlobHashes at that index, or zero if out of range.
func opBlobHash(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	idx := stack.Peek()
	if idx.IsUint64() {
		i := idx.Uint64()
		if i < uint64(len(evm.TxContext.BlobHashes)) {
			hash := evm.TxContext.BlobHashes[i]
			idx.SetBytes(hash[:])
			return nil, nil
		}
	}
	idx.Clear()
	return nil, nil
}

// opBlobBaseFee implements the BLOBBASEFEE opcode (EIP-7516).
// Pushes the current block's blob base fee onto the stack.
func opBlobBaseFee(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	stack.Push(bigToUint256(evm.Context.BlobBaseFee))
	return nil, nil
}

// opBlockhash implements the BLOCKHASH opcode.
// Returns the hash of one of the 256 most recent complete blocks.
func opBlockhash(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	num := stack.Peek()
	num64 := num.Uint64()

	var upper uint64
	if evm.Context.BlockNumber != nil {
		upper = evm.Context.BlockNumber.Uint64()
	}
	var lower uint64
	if upper > 256 {
		lower = upper - 256
	}

	if num64 >= lower && num64 < upper && evm.Context.GetHash != nil {
		hash := evm.Context.GetHash(num64)
		num.SetBytes(hash[:])
	} else {
		num.Clear()
	}
	return nil, nil
}

// opSelfdestruct implements the SELFDESTRUCT opcode. It sends the contract's
// remaining balance to the beneficiary. Before Cancun the account is always
// scheduled for deletion. From Cancun on (EIP-6780) only an account that
// StateDB.CreatedInTx reports as created in the same transaction is deleted;
// any other account persists with its balance drained.
func opSelfdestruct(pc *uint64, evm *EVM, contract *Contract, memory *Memory, stack *Stack) ([]byte, error) {
	if evm.readOnly {
		return nil, ErrWriteProtection
	}

	beneficiary := uint256ToAddress(stack.Pop())

	if evm.StateDB != nil {
		balance := evm.StateDB.GetBalance(contract.Address)
		if balance.Sign() > 0 {
			evm.StateDB.AddBalance(beneficiary, balance)
			evm.StateDB.SubBalance(contract.Address, balance)
		}

		// Pre-London (EIP-3529): the first SELFDESTRUCT of a given account
		// in a transaction refunds 24000 gas. London withdraws the refund
		// entirely, so no accounting is needed past that fork.
		alreadyDestructed := evm.StateDB.HasSelfDestructed(contract.Address)

		// Pre-Cancun: SELFDESTRUCT always schedules the account for
		// deletion. EIP-6780 narrows this to accounts created earlier in
		// the same transaction; any other account just has its balance
		// drained and otherwise persists.
		if !evm.forkRules.IsCancun || evm.StateDB.CreatedInTx(contract.Address) {
			evm.StateDB.SelfDestruct(contract.Address)
			if !evm.forkRules.IsLondon && !alreadyDestructed {
				evm.StateDB.AddRefund(SelfdestructRefundGas)
			}
		}
	}

	return nil, nil
}

package core

import "math/big"

// ChainConfig holds the complete chain-level fork schedule. Pre-merge forks
// activate by block number; post-merge forks activate by timestamp, per the
// real Ethereum mainnet convention.
type ChainConfig struct {
	ChainID *big.Int

	HomesteadBlock      *big.Int
	EIP150Block         *big.Int
	EIP155Block         *big.Int
	EIP158Block         *big.Int
	ByzantiumBlock      *big.Int
	ConstantinopleBlock *big.Int
	PetersburgBlock     *big.Int
	IstanbulBlock       *big.Int
	MuirGlacierBlock    *big.Int
	BerlinBlock         *big.Int
	LondonBlock         *big.Int
	ArrowGlacierBlock   *big.Int
	GrayGlacierBlock    *big.Int

	TerminalTotalDifficulty *big.Int

	ShanghaiTime    *uint64
	CancunTime      *uint64
	PragueTime      *uint64
	AmsterdamTime   *uint64
	GlamsterdanTime *uint64
	HogotaTime      *uint64
	BPO1Time        *uint64
	BPO2Time        *uint64
}

func isBlockForked(forkBlock *big.Int, num *big.Int) bool {
	if forkBlock == nil {
		return false
	}
	return num != nil && forkBlock.Cmp(num) <= 0
}

func isTimestampForked(forkTime *uint64, blockTime uint64) bool {
	if forkTime == nil {
		return false
	}
	return *forkTime <= blockTime
}

func newUint64(v uint64) *uint64 { return &v }

// IsHomestead returns whether the given block is at or past Homestead.
func (c *ChainConfig) IsHomestead(num *big.Int) bool { return isBlockForked(c.HomesteadBlock, num) }

// IsEIP150 returns whether the given block is at or past the Tangerine Whistle (EIP-150) fork.
func (c *ChainConfig) IsEIP150(num *big.Int) bool { return isBlockForked(c.EIP150Block, num) }

// IsEIP155 returns whether the given block is at or past the Spurious Dragon EIP-155 fork.
func (c *ChainConfig) IsEIP155(num *big.Int) bool { return isBlockForked(c.EIP155Block, num) }

// IsEIP158 returns whether the given block is at or past the Spurious Dragon EIP-158 fork.
func (c *ChainConfig) IsEIP158(num *big.Int) bool { return isBlockForked(c.EIP158Block, num) }

// IsByzantium returns whether the given block is at or past Byzantium.
func (c *ChainConfig) IsByzantium(num *big.Int) bool { return isBlockForked(c.ByzantiumBlock, num) }

// IsConstantinople returns whether the given block is at or past Constantinople.
func (c *ChainConfig) IsConstantinople(num *big.Int) bool {
	return isBlockForked(c.ConstantinopleBlock, num)
}

// IsPetersburg returns whether the given block is at or past Petersburg.
func (c *ChainConfig) IsPetersburg(num *big.Int) bool { return isBlockForked(c.PetersburgBlock, num) }

// IsIstanbul returns whether the given block is at or past Istanbul.
func (c *ChainConfig) IsIstanbul(num *big.Int) bool { return isBlockForked(c.IstanbulBlock, num) }

// IsMuirGlacier returns whether the given block is at or past Muir Glacier.
func (c *ChainConfig) IsMuirGlacier(num *big.Int) bool {
	return isBlockForked(c.MuirGlacierBlock, num)
}

// IsBerlin returns whether the given block is at or past Berlin.
func (c *ChainConfig) IsBerlin(num *big.Int) bool { return isBlockForked(c.BerlinBlock, num) }

// IsLondon returns whether the given block is at or past London.
func (c *ChainConfig) IsLondon(num *big.Int) bool { return isBlockForked(c.LondonBlock, num) }

// IsArrowGlacier returns whether the given block is at or past Arrow Glacier.
func (c *ChainConfig) IsArrowGlacier(num *big.Int) bool {
	return isBlockForked(c.ArrowGlacierBlock, num)
}

// IsGrayGlacier returns whether the given block is at or past Gray Glacier.
func (c *ChainConfig) IsGrayGlacier(num *big.Int) bool {
	return isBlockForked(c.GrayGlacierBlock, num)
}

// IsMerge returns whether the chain has transitioned to proof-of-stake.
// A TerminalTotalDifficulty configures the chain as post-merge from genesis.
func (c *ChainConfig) IsMerge() bool { return c.TerminalTotalDifficulty != nil }

// IsShanghai returns whether the given block time is at or past the Shanghai fork.
func (c *ChainConfig) IsShanghai(time uint64) bool {
	return isTimestampForked(c.ShanghaiTime, time)
}

// IsCancun returns whether the given block time is at or past the Cancun fork.
func (c *ChainConfig) IsCancun(time uint64) bool {
	return isTimestampForked(c.CancunTime, time)
}

// IsPrague returns whether the given block time is at or past the Prague fork.
func (c *ChainConfig) IsPrague(time uint64) bool {
	return isTimestampForked(c.PragueTime, time)
}

// IsAmsterdam returns whether the given block time is at or past the Amsterdam fork.
func (c *ChainConfig) IsAmsterdam(time uint64) bool {
	return isTimestampForked(c.AmsterdamTime, time)
}

// IsGlamsterdan returns whether the given block time is at or past the Glamsterdan fork.
func (c *ChainConfig) IsGlamsterdan(time uint64) bool {
	return isTimestampForked(c.GlamsterdanTime, time)
}

// IsHogota returns whether the given block time is at or past the Hogota fork.
func (c *ChainConfig) IsHogota(time uint64) bool {
	return isTimestampForked(c.HogotaTime, time)
}

// IsBPO1 returns whether the given block time is at or past the first blob
// parameter only (BPO) upgrade.
func (c *ChainConfig) IsBPO1(time uint64) bool {
	return isTimestampForked(c.BPO1Time, time)
}

// IsBPO2 returns whether the given block time is at or past the second blob
// parameter only (BPO) upgrade.
func (c *ChainConfig) IsBPO2(time uint64) bool {
	return isTimestampForked(c.BPO2Time, time)
}

// Rules is a frozen snapshot of every fork/EIP activation flag for one
// specific (block number, isMerge, timestamp) point on the chain. Unlike
// ChainConfig, which describes the whole schedule, Rules describes a single
// instant and is what the execution engine should be parameterized with.
type Rules struct {
	ChainID *big.Int

	IsHomestead bool
	IsEIP150    bool
	IsEIP155    bool
	IsEIP158    bool

	IsByzantium      bool
	IsConstantinople bool
	IsPetersburg     bool
	IsIstanbul       bool
	IsMuirGlacier    bool

	IsBerlin   bool
	IsEIP2929  bool
	IsLondon   bool
	IsEIP1559  bool
	IsEIP3529  bool

	IsMerge bool

	IsShanghai bool
	IsCancun   bool
	IsEIP4844  bool
	IsPrague   bool
	IsEIP7702  bool

	IsAmsterdam   bool
	IsGlamsterdan bool
	IsHogota      bool
	IsEIP7999     bool

	IsBPO1 bool
	IsBPO2 bool
}

// Rules derives the full set of fork/EIP flags active at the given block
// number, merge status, and timestamp. It is a pure function of its inputs:
// identical inputs always yield an identical Rules value.
func (c *ChainConfig) Rules(num *big.Int, isMerge bool, time uint64) Rules {
	chainID := c.ChainID
	if chainID == nil {
		chainID = new(big.Int)
	}
	return Rules{
		ChainID: new(big.Int).Set(chainID),

		IsHomestead: c.IsHomestead(num),
		IsEIP150:    c.IsEIP150(num),
		IsEIP155:    c.IsEIP155(num),
		IsEIP158:    c.IsEIP158(num),

		IsByzantium:      c.IsByzantium(num),
		IsConstantinople: c.IsConstantinople(num),
		IsPetersburg:     c.IsPetersburg(num),
		IsIstanbul:       c.IsIstanbul(num),
		IsMuirGlacier:    c.IsMuirGlacier(num),

		IsBerlin:  c.IsBerlin(num),
		IsEIP2929: c.IsBerlin(num),
		IsLondon:  c.IsLondon(num),
		IsEIP1559: c.IsLondon(num),
		IsEIP3529: c.IsLondon(num),

		IsMerge: isMerge,

		IsShanghai: c.IsShanghai(time),
		IsCancun:   c.IsCancun(time),
		IsEIP4844:  c.IsCancun(time),
		IsPrague:   c.IsPrague(time),
		IsEIP7702:  c.IsPrague(time),

		IsAmsterdam:   c.IsAmsterdam(time),
		IsGlamsterdan: c.IsGlamsterdan(time),
		IsHogota:      c.IsHogota(time),
		IsEIP7999:     c.IsHogota(time),

		IsBPO1: c.IsBPO1(time),
		IsBPO2: c.IsBPO2(time),
	}
}

// MainnetTerminalTotalDifficulty is the total difficulty at which Ethereum
// mainnet transitioned to proof-of-stake.
var MainnetTerminalTotalDifficulty, _ = new(big.Int).SetString("58750000000000000000000", 10)

// MainnetConfig is the chain config for Ethereum mainnet.
var MainnetConfig = &ChainConfig{
	ChainID:                 big.NewInt(1),
	HomesteadBlock:          big.NewInt(1_150_000),
	EIP150Block:             big.NewInt(2_463_000),
	EIP155Block:             big.NewInt(2_675_000),
	EIP158Block:             big.NewInt(2_675_000),
	ByzantiumBlock:          big.NewInt(4_370_000),
	ConstantinopleBlock:     big.NewInt(7_280_000),
	PetersburgBlock:         big.NewInt(7_280_000),
	IstanbulBlock:           big.NewInt(9_069_000),
	MuirGlacierBlock:        big.NewInt(9_200_000),
	BerlinBlock:             big.NewInt(12_244_000),
	LondonBlock:             big.NewInt(12_965_000),
	ArrowGlacierBlock:       big.NewInt(13_773_000),
	GrayGlacierBlock:        big.NewInt(15_050_000),
	TerminalTotalDifficulty: MainnetTerminalTotalDifficulty,
	ShanghaiTime:            newUint64(1681338455),
	CancunTime:              newUint64(1710338135),
	PragueTime:              nil, // not yet scheduled
	AmsterdamTime:           nil, // not yet scheduled
}

// SepoliaConfig is the chain config for the Sepolia testnet.
var SepoliaConfig = &ChainConfig{
	ChainID:                 big.NewInt(11155111),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(17_000_018_015_853_232),
	ShanghaiTime:            newUint64(1677557088),
	CancunTime:              newUint64(1706655072),
}

// HoleskyConfig is the chain config for the Holesky testnet.
var HoleskyConfig = &ChainConfig{
	ChainID:                 big.NewInt(17000),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
	ShanghaiTime:            newUint64(1696000704),
	CancunTime:              newUint64(1707305664),
}

// TestConfig is a chain config with every pre-merge fork active at block 0
// and every post-merge fork active at timestamp 0, for unit tests.
var TestConfig = &ChainConfig{
	ChainID:                 big.NewInt(1337),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
	ShanghaiTime:            newUint64(0),
	CancunTime:              newUint64(0),
	PragueTime:              newUint64(0),
	AmsterdamTime:           newUint64(0),
}

// TestConfigGlamsterdan additionally activates Glamsterdan at genesis.
var TestConfigGlamsterdan = &ChainConfig{
	ChainID:                 big.NewInt(1337),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
	ShanghaiTime:            newUint64(0),
	CancunTime:              newUint64(0),
	PragueTime:              newUint64(0),
	AmsterdamTime:           newUint64(0),
	GlamsterdanTime:         newUint64(0),
}

// TestConfigHogota additionally activates Hogota at genesis.
var TestConfigHogota = &ChainConfig{
	ChainID:                 big.NewInt(1337),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
	ShanghaiTime:            newUint64(0),
	CancunTime:              newUint64(0),
	PragueTime:              newUint64(0),
	AmsterdamTime:           newUint64(0),
	GlamsterdanTime:         newUint64(0),
	HogotaTime:              newUint64(0),
}

// TestConfigBPO2 additionally activates both blob-parameter-only upgrades at genesis.
var TestConfigBPO2 = &ChainConfig{
	ChainID:                 big.NewInt(1337),
	HomesteadBlock:          big.NewInt(0),
	EIP150Block:             big.NewInt(0),
	EIP155Block:             big.NewInt(0),
	EIP158Block:             big.NewInt(0),
	ByzantiumBlock:          big.NewInt(0),
	ConstantinopleBlock:     big.NewInt(0),
	PetersburgBlock:         big.NewInt(0),
	IstanbulBlock:           big.NewInt(0),
	MuirGlacierBlock:        big.NewInt(0),
	BerlinBlock:             big.NewInt(0),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
	ShanghaiTime:            newUint64(0),
	CancunTime:              newUint64(0),
	PragueTime:              newUint64(0),
	AmsterdamTime:           newUint64(0),
	GlamsterdanTime:         newUint64(0),
	HogotaTime:              newUint64(0),
	BPO1Time:                newUint64(0),
	BPO2Time:                newUint64(0),
}

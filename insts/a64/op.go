package a64

import "github.com/sarchlab/diss/insts"

// Op identifies one A64 mnemonic. Mnemonics that share assembly text across
// encodings (ADD immediate, shifted and extended) are distinct ops.
type Op uint16

// A64 mnemonics.
const (
	OpUnknown Op = iota

	// Data processing, immediate.
	OpADR
	OpADRP
	OpADDImm
	OpADDSImm
	OpSUBImm
	OpSUBSImm
	OpADDG
	OpSUBG
	OpANDImm
	OpORRImm
	OpEORImm
	OpANDSImm
	OpMOVN
	OpMOVZ
	OpMOVK
	OpSBFM
	OpBFM
	OpUBFM
	OpEXTR

	// Data processing, two source.
	OpUDIV
	OpSDIV
	OpLSLV
	OpLSRV
	OpASRV
	OpRORV
	OpCRC32B
	OpCRC32H
	OpCRC32W
	OpCRC32X
	OpCRC32CB
	OpCRC32CH
	OpCRC32CW
	OpCRC32CX
	OpSUBP
	OpSUBPS
	OpIRG
	OpGMI
	OpPACGA

	// Data processing, one source.
	OpRBIT
	OpREV16
	OpREV32
	OpREV
	OpCLZ
	OpCLS
	OpPACIA
	OpPACIB
	OpPACDA
	OpPACDB
	OpAUTIA
	OpAUTIB
	OpAUTDA
	OpAUTDB
	OpPACIZA
	OpPACIZB
	OpPACDZA
	OpPACDZB
	OpAUTIZA
	OpAUTIZB
	OpAUTDZA
	OpAUTDZB
	OpXPACI
	OpXPACD

	// Logical, shifted register.
	OpAND
	OpBIC
	OpORR
	OpORN
	OpEOR
	OpEON
	OpANDS
	OpBICS

	// Add and subtract, shifted and extended register.
	OpADD
	OpADDS
	OpSUB
	OpSUBS
	OpADDExt
	OpADDSExt
	OpSUBExt
	OpSUBSExt

	// Add and subtract with carry, and flag manipulation.
	OpADC
	OpADCS
	OpSBC
	OpSBCS
	OpRMIF
	OpSETF8
	OpSETF16

	// Conditional compare and select.
	OpCCMNReg
	OpCCMPReg
	OpCCMNImm
	OpCCMPImm
	OpCSEL
	OpCSINC
	OpCSINV
	OpCSNEG

	// Three source multiply.
	OpMADD
	OpMSUB
	OpSMADDL
	OpSMSUBL
	OpSMULH
	OpUMADDL
	OpUMSUBL
	OpUMULH

	// Branches. Offsets are signed byte offsets from the instruction.
	OpBCond
	OpBCCond
	OpB
	OpBL
	OpCBZ
	OpCBNZ
	OpTBZ
	OpTBNZ
	OpBR
	OpBLR
	OpRET
	OpERET
	OpDRPS

	// Exceptions and hints.
	OpSVC
	OpHVC
	OpSMC
	OpBRK
	OpHLT
	OpUDF
	OpNOP
	OpYIELD
	OpWFE
	OpWFI
	OpSEV
	OpSEVL
	OpHINT

	numOps
)

type opInfo struct {
	name  string
	class insts.Class
	base  uint32 // fixed bits of the encoding
	regs  string // per Reg operand: S when index 31 is SP, Z when it is ZR
}

var opTable = [numOps]opInfo{
	OpUnknown: {"unknown", insts.ClassOther, 0, ""},
	OpADR:     {"adr", insts.ClassALU, 0x10000000, "Z"},
	OpADRP:    {"adrp", insts.ClassALU, 0x90000000, "Z"},
	OpADDImm:  {"add", insts.ClassALU, 0x11000000, "SS"},
	OpADDSImm: {"adds", insts.ClassALU, 0x31000000, "ZS"},
	OpSUBImm:  {"sub", insts.ClassALU, 0x51000000, "SS"},
	OpSUBSImm: {"subs", insts.ClassALU, 0x71000000, "ZS"},
	OpADDG:    {"addg", insts.ClassALU, 0x91800000, "SS"},
	OpSUBG:    {"subg", insts.ClassALU, 0xd1800000, "SS"},
	OpANDImm:  {"and", insts.ClassALU, 0x12000000, "SZ"},
	OpORRImm:  {"orr", insts.ClassALU, 0x32000000, "SZ"},
	OpEORImm:  {"eor", insts.ClassALU, 0x52000000, "SZ"},
	OpANDSImm: {"ands", insts.ClassALU, 0x72000000, "ZZ"},
	OpMOVN:    {"movn", insts.ClassALU, 0x12800000, "Z"},
	OpMOVZ:    {"movz", insts.ClassALU, 0x52800000, "Z"},
	OpMOVK:    {"movk", insts.ClassALU, 0x72800000, "Z"},
	OpSBFM:    {"sbfm", insts.ClassALU, 0x13000000, "ZZ"},
	OpBFM:     {"bfm", insts.ClassALU, 0x33000000, "ZZ"},
	OpUBFM:    {"ubfm", insts.ClassALU, 0x53000000, "ZZ"},
	OpEXTR:    {"extr", insts.ClassALU, 0x13800000, "ZZZ"},
	OpUDIV:    {"udiv", insts.ClassDivide, 0x1ac00800, "ZZZ"},
	OpSDIV:    {"sdiv", insts.ClassDivide, 0x1ac00c00, "ZZZ"},
	OpLSLV:    {"lslv", insts.ClassALU, 0x1ac02000, "ZZZ"},
	OpLSRV:    {"lsrv", insts.ClassALU, 0x1ac02400, "ZZZ"},
	OpASRV:    {"asrv", insts.ClassALU, 0x1ac02800, "ZZZ"},
	OpRORV:    {"rorv", insts.ClassALU, 0x1ac02c00, "ZZZ"},
	OpCRC32B:  {"crc32b", insts.ClassALU, 0x1ac04000, "ZZZ"},
	OpCRC32H:  {"crc32h", insts.ClassALU, 0x1ac04400, "ZZZ"},
	OpCRC32W:  {"crc32w", insts.ClassALU, 0x1ac04800, "ZZZ"},
	OpCRC32X:  {"crc32x", insts.ClassALU, 0x9ac04c00, "ZZZ"},
	OpCRC32CB: {"crc32cb", insts.ClassALU, 0x1ac05000, "ZZZ"},
	OpCRC32CH: {"crc32ch", insts.ClassALU, 0x1ac05400, "ZZZ"},
	OpCRC32CW: {"crc32cw", insts.ClassALU, 0x1ac05800, "ZZZ"},
	OpCRC32CX: {"crc32cx", insts.ClassALU, 0x9ac05c00, "ZZZ"},
	OpSUBP:    {"subp", insts.ClassALU, 0x9ac00000, "ZSS"},
	OpSUBPS:   {"subps", insts.ClassALU, 0xbac00000, "ZSS"},
	OpIRG:     {"irg", insts.ClassALU, 0x9ac01000, "SSZ"},
	OpGMI:     {"gmi", insts.ClassALU, 0x9ac01400, "ZSZ"},
	OpPACGA:   {"pacga", insts.ClassALU, 0x9ac03000, "ZZS"},
	OpRBIT:    {"rbit", insts.ClassALU, 0x5ac00000, "ZZ"},
	OpREV16:   {"rev16", insts.ClassALU, 0x5ac00400, "ZZ"},
	OpREV32:   {"rev32", insts.ClassALU, 0xdac00800, "ZZ"},
	OpREV:     {"rev", insts.ClassALU, 0x5ac00800, "ZZ"},
	OpCLZ:     {"clz", insts.ClassALU, 0x5ac01000, "ZZ"},
	OpCLS:     {"cls", insts.ClassALU, 0x5ac01400, "ZZ"},
	OpPACIA:   {"pacia", insts.ClassALU, 0xdac10000, "ZS"},
	OpPACIB:   {"pacib", insts.ClassALU, 0xdac10400, "ZS"},
	OpPACDA:   {"pacda", insts.ClassALU, 0xdac10800, "ZS"},
	OpPACDB:   {"pacdb", insts.ClassALU, 0xdac10c00, "ZS"},
	OpAUTIA:   {"autia", insts.ClassALU, 0xdac11000, "ZS"},
	OpAUTIB:   {"autib", insts.ClassALU, 0xdac11400, "ZS"},
	OpAUTDA:   {"autda", insts.ClassALU, 0xdac11800, "ZS"},
	OpAUTDB:   {"autdb", insts.ClassALU, 0xdac11c00, "ZS"},
	OpPACIZA:  {"paciza", insts.ClassALU, 0xdac123e0, "Z"},
	OpPACIZB:  {"pacizb", insts.ClassALU, 0xdac127e0, "Z"},
	OpPACDZA:  {"pacdza", insts.ClassALU, 0xdac12be0, "Z"},
	OpPACDZB:  {"pacdzb", insts.ClassALU, 0xdac12fe0, "Z"},
	OpAUTIZA:  {"autiza", insts.ClassALU, 0xdac133e0, "Z"},
	OpAUTIZB:  {"autizb", insts.ClassALU, 0xdac137e0, "Z"},
	OpAUTDZA:  {"autdza", insts.ClassALU, 0xdac13be0, "Z"},
	OpAUTDZB:  {"autdzb", insts.ClassALU, 0xdac13fe0, "Z"},
	OpXPACI:   {"xpaci", insts.ClassALU, 0xdac143e0, "Z"},
	OpXPACD:   {"xpacd", insts.ClassALU, 0xdac147e0, "Z"},
	OpAND:     {"and", insts.ClassALU, 0x0a000000, "ZZZ"},
	OpBIC:     {"bic", insts.ClassALU, 0x0a200000, "ZZZ"},
	OpORR:     {"orr", insts.ClassALU, 0x2a000000, "ZZZ"},
	OpORN:     {"orn", insts.ClassALU, 0x2a200000, "ZZZ"},
	OpEOR:     {"eor", insts.ClassALU, 0x4a000000, "ZZZ"},
	OpEON:     {"eon", insts.ClassALU, 0x4a200000, "ZZZ"},
	OpANDS:    {"ands", insts.ClassALU, 0x6a000000, "ZZZ"},
	OpBICS:    {"bics", insts.ClassALU, 0x6a200000, "ZZZ"},
	OpADD:     {"add", insts.ClassALU, 0x0b000000, "ZZZ"},
	OpADDS:    {"adds", insts.ClassALU, 0x2b000000, "ZZZ"},
	OpSUB:     {"sub", insts.ClassALU, 0x4b000000, "ZZZ"},
	OpSUBS:    {"subs", insts.ClassALU, 0x6b000000, "ZZZ"},
	OpADDExt:  {"add", insts.ClassALU, 0x0b200000, "SSZ"},
	OpADDSExt: {"adds", insts.ClassALU, 0x2b200000, "ZSZ"},
	OpSUBExt:  {"sub", insts.ClassALU, 0x4b200000, "SSZ"},
	OpSUBSExt: {"subs", insts.ClassALU, 0x6b200000, "ZSZ"},
	OpADC:     {"adc", insts.ClassALU, 0x1a000000, "ZZZ"},
	OpADCS:    {"adcs", insts.ClassALU, 0x3a000000, "ZZZ"},
	OpSBC:     {"sbc", insts.ClassALU, 0x5a000000, "ZZZ"},
	OpSBCS:    {"sbcs", insts.ClassALU, 0x7a000000, "ZZZ"},
	OpRMIF:    {"rmif", insts.ClassALU, 0xba000400, "Z"},
	OpSETF8:   {"setf8", insts.ClassALU, 0x3a00080d, "Z"},
	OpSETF16:  {"setf16", insts.ClassALU, 0x3a00480d, "Z"},
	OpCCMNReg: {"ccmn", insts.ClassALU, 0x3a400000, "ZZ"},
	OpCCMPReg: {"ccmp", insts.ClassALU, 0x7a400000, "ZZ"},
	OpCCMNImm: {"ccmn", insts.ClassALU, 0x3a400800, "Z"},
	OpCCMPImm: {"ccmp", insts.ClassALU, 0x7a400800, "Z"},
	OpCSEL:    {"csel", insts.ClassALU, 0x1a800000, "ZZZ"},
	OpCSINC:   {"csinc", insts.ClassALU, 0x1a800400, "ZZZ"},
	OpCSINV:   {"csinv", insts.ClassALU, 0x5a800000, "ZZZ"},
	OpCSNEG:   {"csneg", insts.ClassALU, 0x5a800400, "ZZZ"},
	OpMADD:    {"madd", insts.ClassMultiply, 0x1b000000, "ZZZZ"},
	OpMSUB:    {"msub", insts.ClassMultiply, 0x1b008000, "ZZZZ"},
	OpSMADDL:  {"smaddl", insts.ClassMultiply, 0x9b200000, "ZZZZ"},
	OpSMSUBL:  {"smsubl", insts.ClassMultiply, 0x9b208000, "ZZZZ"},
	OpSMULH:   {"smulh", insts.ClassMultiply, 0x9b407c00, "ZZZ"},
	OpUMADDL:  {"umaddl", insts.ClassMultiply, 0x9ba00000, "ZZZZ"},
	OpUMSUBL:  {"umsubl", insts.ClassMultiply, 0x9ba08000, "ZZZZ"},
	OpUMULH:   {"umulh", insts.ClassMultiply, 0x9bc07c00, "ZZZ"},
	OpBCond:   {"b", insts.ClassBranch, 0x54000000, ""},
	OpBCCond:  {"bc", insts.ClassBranch, 0x54000010, ""},
	OpB:       {"b", insts.ClassBranch, 0x14000000, ""},
	OpBL:      {"bl", insts.ClassBranch, 0x94000000, ""},
	OpCBZ:     {"cbz", insts.ClassBranch, 0x34000000, "Z"},
	OpCBNZ:    {"cbnz", insts.ClassBranch, 0x35000000, "Z"},
	OpTBZ:     {"tbz", insts.ClassBranch, 0x36000000, "Z"},
	OpTBNZ:    {"tbnz", insts.ClassBranch, 0x37000000, "Z"},
	OpBR:      {"br", insts.ClassBranch, 0xd61f0000, "Z"},
	OpBLR:     {"blr", insts.ClassBranch, 0xd63f0000, "Z"},
	OpRET:     {"ret", insts.ClassBranch, 0xd65f0000, "Z"},
	OpERET:    {"eret", insts.ClassBranch, 0xd69f03e0, ""},
	OpDRPS:    {"drps", insts.ClassBranch, 0xd6bf03e0, ""},
	OpSVC:     {"svc", insts.ClassSystem, 0xd4000001, ""},
	OpHVC:     {"hvc", insts.ClassSystem, 0xd4000002, ""},
	OpSMC:     {"smc", insts.ClassSystem, 0xd4000003, ""},
	OpBRK:     {"brk", insts.ClassSystem, 0xd4200000, ""},
	OpHLT:     {"hlt", insts.ClassSystem, 0xd4400000, ""},
	OpUDF:     {"udf", insts.ClassSystem, 0x00000000, ""},
	OpNOP:     {"nop", insts.ClassSystem, 0xd503201f, ""},
	OpYIELD:   {"yield", insts.ClassSystem, 0xd503203f, ""},
	OpWFE:     {"wfe", insts.ClassSystem, 0xd503205f, ""},
	OpWFI:     {"wfi", insts.ClassSystem, 0xd503207f, ""},
	OpSEV:     {"sev", insts.ClassSystem, 0xd503209f, ""},
	OpSEVL:    {"sevl", insts.ClassSystem, 0xd50320bf, ""},
	OpHINT:    {"hint", insts.ClassSystem, 0xd503201f, ""},
}

// String returns the assembly mnemonic.
func (op Op) String() string {
	if op >= numOps {
		return "unknown"
	}
	return opTable[op].name
}

// Class returns the coarse instruction class of op.
func (op Op) Class() insts.Class {
	if op >= numOps {
		return insts.ClassOther
	}
	return opTable[op].class
}

// Ops returns every defined mnemonic in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, numOps-1)
	for op := OpUnknown + 1; op < numOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// reg resolves register field i of operand position pos for op.
func (op Op) reg(pos int, i uint32) Reg {
	return NewReg(i, opTable[op].regs[pos] == 'S')
}

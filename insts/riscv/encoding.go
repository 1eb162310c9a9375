package riscv

// Major opcodes, bits [6:0] of a 32-bit word.
const (
	opLOAD    = 0x03
	opLOADFP  = 0x07
	opMISCMEM = 0x0f
	opOPIMM   = 0x13
	opAUIPC   = 0x17
	opOPIMM32 = 0x1b
	opSTORE   = 0x23
	opSTOREFP = 0x27
	opAMO     = 0x2f
	opOP      = 0x33
	opLUI     = 0x37
	opOP32    = 0x3b
	opMADD    = 0x43
	opMSUB    = 0x47
	opNMSUB   = 0x4b
	opNMADD   = 0x4f
	opOPFP    = 0x53
	opOPV     = 0x57
	opBRANCH  = 0x63
	opJALR    = 0x67
	opJAL     = 0x6f
	opSYSTEM  = 0x73
)

// shape names the operand geometry of a 32-bit encoding: which fields carry
// operands and how they map onto visitor arguments.
type shape uint8

const (
	shapeNone shape = iota
	shapeU
	shapeJ
	shapeI
	shapeMem
	shapeShift
	shapeShiftW
	shapeR
	shapeB
	shapeS
	shapeCSR
	shapeCSRImm
	shapeFence
	shapeFLoad
	shapeFStore
	shapeR4
	shapeFArith
	shapeFUnary
	shapeFNoRM
	shapeFCompare
	shapeFToInt
	shapeIntToF
	shapeFMoveX
	shapeXMoveF
)

// pattern is a mask/match pair: a word w is claimed when w&mask == match.
type pattern struct {
	mask, match uint32
}

func opc(o uint32) pattern { return pattern{0x0000007f, o} }

func f3(o, funct3 uint32) pattern { return pattern{0x0000707f, o | funct3<<12} }

func f6(o, funct3, funct6 uint32) pattern {
	return pattern{0xfc00707f, o | funct3<<12 | funct6<<26}
}

func f7(o, funct3, funct7 uint32) pattern {
	return pattern{0xfe00707f, o | funct3<<12 | funct7<<25}
}

// fp matches an OP-FP funct7 with a free rounding-mode field.
func fp(funct7 uint32) pattern { return pattern{0xfe00007f, opOPFP | funct7<<25} }

// fpRs2 additionally fixes the rs2 field, which selects a conversion.
func fpRs2(funct7, rs2 uint32) pattern {
	return pattern{0xfff0007f, opOPFP | rs2<<20 | funct7<<25}
}

func fpF3(funct7, funct3 uint32) pattern { return f7(opOPFP, funct3, funct7) }

func fpRs2F3(funct7, rs2, funct3 uint32) pattern {
	return pattern{0xfff0707f, opOPFP | funct3<<12 | rs2<<20 | funct7<<25}
}

// r4 matches a fused multiply-add opcode and its fmt field.
func r4(o, format uint32) pattern { return pattern{0x0600007f, o | format<<25} }

func exact(w uint32) pattern { return pattern{0xffffffff, w} }

// fencePattern leaves fm, pred and succ free; rd and rs1 must be zero.
func fencePattern() pattern { return pattern{0x000fffff, opMISCMEM} }

type encoding struct {
	op    Op
	shape shape
	pattern
}

// encodings lists every 32-bit mnemonic. The decoder builds its dispatch
// tables from it and the assembler takes each op's fixed bits from it.
var encodings = []encoding{
	// RV64I
	{OpLUI, shapeU, opc(opLUI)},
	{OpAUIPC, shapeU, opc(opAUIPC)},
	{OpJAL, shapeJ, opc(opJAL)},
	{OpJALR, shapeMem, f3(opJALR, 0)},
	{OpBEQ, shapeB, f3(opBRANCH, 0)},
	{OpBNE, shapeB, f3(opBRANCH, 1)},
	{OpBLT, shapeB, f3(opBRANCH, 4)},
	{OpBGE, shapeB, f3(opBRANCH, 5)},
	{OpBLTU, shapeB, f3(opBRANCH, 6)},
	{OpBGEU, shapeB, f3(opBRANCH, 7)},
	{OpLB, shapeMem, f3(opLOAD, 0)},
	{OpLH, shapeMem, f3(opLOAD, 1)},
	{OpLW, shapeMem, f3(opLOAD, 2)},
	{OpLD, shapeMem, f3(opLOAD, 3)},
	{OpLBU, shapeMem, f3(opLOAD, 4)},
	{OpLHU, shapeMem, f3(opLOAD, 5)},
	{OpLWU, shapeMem, f3(opLOAD, 6)},
	{OpSB, shapeS, f3(opSTORE, 0)},
	{OpSH, shapeS, f3(opSTORE, 1)},
	{OpSW, shapeS, f3(opSTORE, 2)},
	{OpSD, shapeS, f3(opSTORE, 3)},
	{OpADDI, shapeI, f3(opOPIMM, 0)},
	{OpSLTI, shapeI, f3(opOPIMM, 2)},
	{OpSLTIU, shapeI, f3(opOPIMM, 3)},
	{OpXORI, shapeI, f3(opOPIMM, 4)},
	{OpORI, shapeI, f3(opOPIMM, 6)},
	{OpANDI, shapeI, f3(opOPIMM, 7)},
	{OpSLLI, shapeShift, f6(opOPIMM, 1, 0x00)},
	{OpSRLI, shapeShift, f6(opOPIMM, 5, 0x00)},
	{OpSRAI, shapeShift, f6(opOPIMM, 5, 0x10)},
	{OpADD, shapeR, f7(opOP, 0, 0x00)},
	{OpSUB, shapeR, f7(opOP, 0, 0x20)},
	{OpSLL, shapeR, f7(opOP, 1, 0x00)},
	{OpSLT, shapeR, f7(opOP, 2, 0x00)},
	{OpSLTU, shapeR, f7(opOP, 3, 0x00)},
	{OpXOR, shapeR, f7(opOP, 4, 0x00)},
	{OpSRL, shapeR, f7(opOP, 5, 0x00)},
	{OpSRA, shapeR, f7(opOP, 5, 0x20)},
	{OpOR, shapeR, f7(opOP, 6, 0x00)},
	{OpAND, shapeR, f7(opOP, 7, 0x00)},
	{OpFENCE, shapeFence, fencePattern()},
	{OpFENCEI, shapeNone, exact(0x0000100f)},
	{OpECALL, shapeNone, exact(0x00000073)},
	{OpEBREAK, shapeNone, exact(0x00100073)},
	{OpADDIW, shapeI, f3(opOPIMM32, 0)},
	{OpSLLIW, shapeShiftW, f7(opOPIMM32, 1, 0x00)},
	{OpSRLIW, shapeShiftW, f7(opOPIMM32, 5, 0x00)},
	{OpSRAIW, shapeShiftW, f7(opOPIMM32, 5, 0x20)},
	{OpADDW, shapeR, f7(opOP32, 0, 0x00)},
	{OpSUBW, shapeR, f7(opOP32, 0, 0x20)},
	{OpSLLW, shapeR, f7(opOP32, 1, 0x00)},
	{OpSRLW, shapeR, f7(opOP32, 5, 0x00)},
	{OpSRAW, shapeR, f7(opOP32, 5, 0x20)},
	// Zicsr
	{OpCSRRW, shapeCSR, f3(opSYSTEM, 1)},
	{OpCSRRS, shapeCSR, f3(opSYSTEM, 2)},
	{OpCSRRC, shapeCSR, f3(opSYSTEM, 3)},
	{OpCSRRWI, shapeCSRImm, f3(opSYSTEM, 5)},
	{OpCSRRSI, shapeCSRImm, f3(opSYSTEM, 6)},
	{OpCSRRCI, shapeCSRImm, f3(opSYSTEM, 7)},
	// M
	{OpMUL, shapeR, f7(opOP, 0, 0x01)},
	{OpMULH, shapeR, f7(opOP, 1, 0x01)},
	{OpMULHSU, shapeR, f7(opOP, 2, 0x01)},
	{OpMULHU, shapeR, f7(opOP, 3, 0x01)},
	{OpDIV, shapeR, f7(opOP, 4, 0x01)},
	{OpDIVU, shapeR, f7(opOP, 5, 0x01)},
	{OpREM, shapeR, f7(opOP, 6, 0x01)},
	{OpREMU, shapeR, f7(opOP, 7, 0x01)},
	{OpMULW, shapeR, f7(opOP32, 0, 0x01)},
	{OpDIVW, shapeR, f7(opOP32, 4, 0x01)},
	{OpDIVUW, shapeR, f7(opOP32, 5, 0x01)},
	{OpREMW, shapeR, f7(opOP32, 6, 0x01)},
	{OpREMUW, shapeR, f7(opOP32, 7, 0x01)},
	// F
	{OpFLW, shapeFLoad, f3(opLOADFP, 2)},
	{OpFSW, shapeFStore, f3(opSTOREFP, 2)},
	{OpFMADDS, shapeR4, r4(opMADD, 0)},
	{OpFMSUBS, shapeR4, r4(opMSUB, 0)},
	{OpFNMSUBS, shapeR4, r4(opNMSUB, 0)},
	{OpFNMADDS, shapeR4, r4(opNMADD, 0)},
	{OpFADDS, shapeFArith, fp(0x00)},
	{OpFSUBS, shapeFArith, fp(0x04)},
	{OpFMULS, shapeFArith, fp(0x08)},
	{OpFDIVS, shapeFArith, fp(0x0c)},
	{OpFSQRTS, shapeFUnary, fpRs2(0x2c, 0)},
	{OpFSGNJS, shapeFNoRM, fpF3(0x10, 0)},
	{OpFSGNJNS, shapeFNoRM, fpF3(0x10, 1)},
	{OpFSGNJXS, shapeFNoRM, fpF3(0x10, 2)},
	{OpFMINS, shapeFNoRM, fpF3(0x14, 0)},
	{OpFMAXS, shapeFNoRM, fpF3(0x14, 1)},
	{OpFCVTWS, shapeFToInt, fpRs2(0x60, 0)},
	{OpFCVTWUS, shapeFToInt, fpRs2(0x60, 1)},
	{OpFCVTLS, shapeFToInt, fpRs2(0x60, 2)},
	{OpFCVTLUS, shapeFToInt, fpRs2(0x60, 3)},
	{OpFMVXW, shapeFMoveX, fpRs2F3(0x70, 0, 0)},
	{OpFCLASSS, shapeFMoveX, fpRs2F3(0x70, 0, 1)},
	{OpFEQS, shapeFCompare, fpF3(0x50, 2)},
	{OpFLTS, shapeFCompare, fpF3(0x50, 1)},
	{OpFLES, shapeFCompare, fpF3(0x50, 0)},
	{OpFCVTSW, shapeIntToF, fpRs2(0x68, 0)},
	{OpFCVTSWU, shapeIntToF, fpRs2(0x68, 1)},
	{OpFCVTSL, shapeIntToF, fpRs2(0x68, 2)},
	{OpFCVTSLU, shapeIntToF, fpRs2(0x68, 3)},
	{OpFMVWX, shapeXMoveF, fpRs2F3(0x78, 0, 0)},
	{OpFCVTSD, shapeFUnary, fpRs2(0x20, 1)},
	// D
	{OpFLD, shapeFLoad, f3(opLOADFP, 3)},
	{OpFSD, shapeFStore, f3(opSTOREFP, 3)},
	{OpFMADDD, shapeR4, r4(opMADD, 1)},
	{OpFMSUBD, shapeR4, r4(opMSUB, 1)},
	{OpFNMSUBD, shapeR4, r4(opNMSUB, 1)},
	{OpFNMADDD, shapeR4, r4(opNMADD, 1)},
	{OpFADDD, shapeFArith, fp(0x01)},
	{OpFSUBD, shapeFArith, fp(0x05)},
	{OpFMULD, shapeFArith, fp(0x09)},
	{OpFDIVD, shapeFArith, fp(0x0d)},
	{OpFSQRTD, shapeFUnary, fpRs2(0x2d, 0)},
	{OpFSGNJD, shapeFNoRM, fpF3(0x11, 0)},
	{OpFSGNJND, shapeFNoRM, fpF3(0x11, 1)},
	{OpFSGNJXD, shapeFNoRM, fpF3(0x11, 2)},
	{OpFMIND, shapeFNoRM, fpF3(0x15, 0)},
	{OpFMAXD, shapeFNoRM, fpF3(0x15, 1)},
	{OpFCVTWD, shapeFToInt, fpRs2(0x61, 0)},
	{OpFCVTWUD, shapeFToInt, fpRs2(0x61, 1)},
	{OpFCVTLD, shapeFToInt, fpRs2(0x61, 2)},
	{OpFCVTLUD, shapeFToInt, fpRs2(0x61, 3)},
	{OpFMVXD, shapeFMoveX, fpRs2F3(0x71, 0, 0)},
	{OpFCLASSD, shapeFMoveX, fpRs2F3(0x71, 0, 1)},
	{OpFEQD, shapeFCompare, fpF3(0x51, 2)},
	{OpFLTD, shapeFCompare, fpF3(0x51, 1)},
	{OpFLED, shapeFCompare, fpF3(0x51, 0)},
	{OpFCVTDW, shapeIntToF, fpRs2(0x69, 0)},
	{OpFCVTDWU, shapeIntToF, fpRs2(0x69, 1)},
	{OpFCVTDL, shapeIntToF, fpRs2(0x69, 2)},
	{OpFCVTDLU, shapeIntToF, fpRs2(0x69, 3)},
	{OpFMVDX, shapeXMoveF, fpRs2F3(0x79, 0, 0)},
	{OpFCVTDS, shapeFUnary, fpRs2(0x21, 0)},
}

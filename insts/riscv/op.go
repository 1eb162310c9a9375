package riscv

import "github.com/sarchlab/diss/insts"

// Op identifies one RV64GC mnemonic.
type Op uint16

// RV64GC mnemonics.
const (
	OpUnknown Op = iota

	// RV64I
	OpLUI
	OpAUIPC
	OpJAL
	OpJALR
	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU
	OpLB
	OpLH
	OpLW
	OpLD
	OpLBU
	OpLHU
	OpLWU
	OpSB
	OpSH
	OpSW
	OpSD
	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI
	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND
	OpFENCE
	OpFENCEI
	OpECALL
	OpEBREAK
	OpADDIW
	OpSLLIW
	OpSRLIW
	OpSRAIW
	OpADDW
	OpSUBW
	OpSLLW
	OpSRLW
	OpSRAW

	// Zicsr
	OpCSRRW
	OpCSRRS
	OpCSRRC
	OpCSRRWI
	OpCSRRSI
	OpCSRRCI

	// M
	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU
	OpMULW
	OpDIVW
	OpDIVUW
	OpREMW
	OpREMUW

	// F
	OpFLW
	OpFSW
	OpFMADDS
	OpFMSUBS
	OpFNMSUBS
	OpFNMADDS
	OpFADDS
	OpFSUBS
	OpFMULS
	OpFDIVS
	OpFSQRTS
	OpFSGNJS
	OpFSGNJNS
	OpFSGNJXS
	OpFMINS
	OpFMAXS
	OpFCVTWS
	OpFCVTWUS
	OpFCVTLS
	OpFCVTLUS
	OpFMVXW
	OpFCLASSS
	OpFEQS
	OpFLTS
	OpFLES
	OpFCVTSW
	OpFCVTSWU
	OpFCVTSL
	OpFCVTSLU
	OpFMVWX
	OpFCVTSD

	// D
	OpFLD
	OpFSD
	OpFMADDD
	OpFMSUBD
	OpFNMSUBD
	OpFNMADDD
	OpFADDD
	OpFSUBD
	OpFMULD
	OpFDIVD
	OpFSQRTD
	OpFSGNJD
	OpFSGNJND
	OpFSGNJXD
	OpFMIND
	OpFMAXD
	OpFCVTWD
	OpFCVTWUD
	OpFCVTLD
	OpFCVTLUD
	OpFMVXD
	OpFCLASSD
	OpFEQD
	OpFLTD
	OpFLED
	OpFCVTDW
	OpFCVTDWU
	OpFCVTDL
	OpFCVTDLU
	OpFMVDX
	OpFCVTDS

	// C
	OpCADDI4SPN
	OpCFLD
	OpCLW
	OpCLD
	OpCFSD
	OpCSW
	OpCSD
	OpCNOP
	OpCADDI
	OpCADDIW
	OpCLI
	OpCADDI16SP
	OpCLUI
	OpCSRLI
	OpCSRAI
	OpCANDI
	OpCSUB
	OpCXOR
	OpCOR
	OpCAND
	OpCSUBW
	OpCADDW
	OpCJ
	OpCBEQZ
	OpCBNEZ
	OpCSLLI
	OpCFLDSP
	OpCLWSP
	OpCLDSP
	OpCJR
	OpCMV
	OpCEBREAK
	OpCJALR
	OpCADD
	OpCFSDSP
	OpCSWSP
	OpCSDSP

	numOps
)

type opInfo struct {
	name  string
	class insts.Class
}

var opTable = [numOps]opInfo{
	OpUnknown:   {"unknown", insts.ClassOther},
	OpLUI:       {"lui", insts.ClassALU},
	OpAUIPC:     {"auipc", insts.ClassALU},
	OpJAL:       {"jal", insts.ClassBranch},
	OpJALR:      {"jalr", insts.ClassBranch},
	OpBEQ:       {"beq", insts.ClassBranch},
	OpBNE:       {"bne", insts.ClassBranch},
	OpBLT:       {"blt", insts.ClassBranch},
	OpBGE:       {"bge", insts.ClassBranch},
	OpBLTU:      {"bltu", insts.ClassBranch},
	OpBGEU:      {"bgeu", insts.ClassBranch},
	OpLB:        {"lb", insts.ClassLoad},
	OpLH:        {"lh", insts.ClassLoad},
	OpLW:        {"lw", insts.ClassLoad},
	OpLD:        {"ld", insts.ClassLoad},
	OpLBU:       {"lbu", insts.ClassLoad},
	OpLHU:       {"lhu", insts.ClassLoad},
	OpLWU:       {"lwu", insts.ClassLoad},
	OpSB:        {"sb", insts.ClassStore},
	OpSH:        {"sh", insts.ClassStore},
	OpSW:        {"sw", insts.ClassStore},
	OpSD:        {"sd", insts.ClassStore},
	OpADDI:      {"addi", insts.ClassALU},
	OpSLTI:      {"slti", insts.ClassALU},
	OpSLTIU:     {"sltiu", insts.ClassALU},
	OpXORI:      {"xori", insts.ClassALU},
	OpORI:       {"ori", insts.ClassALU},
	OpANDI:      {"andi", insts.ClassALU},
	OpSLLI:      {"slli", insts.ClassALU},
	OpSRLI:      {"srli", insts.ClassALU},
	OpSRAI:      {"srai", insts.ClassALU},
	OpADD:       {"add", insts.ClassALU},
	OpSUB:       {"sub", insts.ClassALU},
	OpSLL:       {"sll", insts.ClassALU},
	OpSLT:       {"slt", insts.ClassALU},
	OpSLTU:      {"sltu", insts.ClassALU},
	OpXOR:       {"xor", insts.ClassALU},
	OpSRL:       {"srl", insts.ClassALU},
	OpSRA:       {"sra", insts.ClassALU},
	OpOR:        {"or", insts.ClassALU},
	OpAND:       {"and", insts.ClassALU},
	OpFENCE:     {"fence", insts.ClassSystem},
	OpFENCEI:    {"fence.i", insts.ClassSystem},
	OpECALL:     {"ecall", insts.ClassSystem},
	OpEBREAK:    {"ebreak", insts.ClassSystem},
	OpADDIW:     {"addiw", insts.ClassALU},
	OpSLLIW:     {"slliw", insts.ClassALU},
	OpSRLIW:     {"srliw", insts.ClassALU},
	OpSRAIW:     {"sraiw", insts.ClassALU},
	OpADDW:      {"addw", insts.ClassALU},
	OpSUBW:      {"subw", insts.ClassALU},
	OpSLLW:      {"sllw", insts.ClassALU},
	OpSRLW:      {"srlw", insts.ClassALU},
	OpSRAW:      {"sraw", insts.ClassALU},
	OpCSRRW:     {"csrrw", insts.ClassSystem},
	OpCSRRS:     {"csrrs", insts.ClassSystem},
	OpCSRRC:     {"csrrc", insts.ClassSystem},
	OpCSRRWI:    {"csrrwi", insts.ClassSystem},
	OpCSRRSI:    {"csrrsi", insts.ClassSystem},
	OpCSRRCI:    {"csrrci", insts.ClassSystem},
	OpMUL:       {"mul", insts.ClassMultiply},
	OpMULH:      {"mulh", insts.ClassMultiply},
	OpMULHSU:    {"mulhsu", insts.ClassMultiply},
	OpMULHU:     {"mulhu", insts.ClassMultiply},
	OpDIV:       {"div", insts.ClassDivide},
	OpDIVU:      {"divu", insts.ClassDivide},
	OpREM:       {"rem", insts.ClassDivide},
	OpREMU:      {"remu", insts.ClassDivide},
	OpMULW:      {"mulw", insts.ClassMultiply},
	OpDIVW:      {"divw", insts.ClassDivide},
	OpDIVUW:     {"divuw", insts.ClassDivide},
	OpREMW:      {"remw", insts.ClassDivide},
	OpREMUW:     {"remuw", insts.ClassDivide},
	OpFLW:       {"flw", insts.ClassLoad},
	OpFSW:       {"fsw", insts.ClassStore},
	OpFMADDS:    {"fmadd.s", insts.ClassFloat},
	OpFMSUBS:    {"fmsub.s", insts.ClassFloat},
	OpFNMSUBS:   {"fnmsub.s", insts.ClassFloat},
	OpFNMADDS:   {"fnmadd.s", insts.ClassFloat},
	OpFADDS:     {"fadd.s", insts.ClassFloat},
	OpFSUBS:     {"fsub.s", insts.ClassFloat},
	OpFMULS:     {"fmul.s", insts.ClassFloat},
	OpFDIVS:     {"fdiv.s", insts.ClassFloatDivide},
	OpFSQRTS:    {"fsqrt.s", insts.ClassFloatDivide},
	OpFSGNJS:    {"fsgnj.s", insts.ClassFloat},
	OpFSGNJNS:   {"fsgnjn.s", insts.ClassFloat},
	OpFSGNJXS:   {"fsgnjx.s", insts.ClassFloat},
	OpFMINS:     {"fmin.s", insts.ClassFloat},
	OpFMAXS:     {"fmax.s", insts.ClassFloat},
	OpFCVTWS:    {"fcvt.w.s", insts.ClassFloat},
	OpFCVTWUS:   {"fcvt.wu.s", insts.ClassFloat},
	OpFCVTLS:    {"fcvt.l.s", insts.ClassFloat},
	OpFCVTLUS:   {"fcvt.lu.s", insts.ClassFloat},
	OpFMVXW:     {"fmv.x.w", insts.ClassFloat},
	OpFCLASSS:   {"fclass.s", insts.ClassFloat},
	OpFEQS:      {"feq.s", insts.ClassFloat},
	OpFLTS:      {"flt.s", insts.ClassFloat},
	OpFLES:      {"fle.s", insts.ClassFloat},
	OpFCVTSW:    {"fcvt.s.w", insts.ClassFloat},
	OpFCVTSWU:   {"fcvt.s.wu", insts.ClassFloat},
	OpFCVTSL:    {"fcvt.s.l", insts.ClassFloat},
	OpFCVTSLU:   {"fcvt.s.lu", insts.ClassFloat},
	OpFMVWX:     {"fmv.w.x", insts.ClassFloat},
	OpFCVTSD:    {"fcvt.s.d", insts.ClassFloat},
	OpFLD:       {"fld", insts.ClassLoad},
	OpFSD:       {"fsd", insts.ClassStore},
	OpFMADDD:    {"fmadd.d", insts.ClassFloat},
	OpFMSUBD:    {"fmsub.d", insts.ClassFloat},
	OpFNMSUBD:   {"fnmsub.d", insts.ClassFloat},
	OpFNMADDD:   {"fnmadd.d", insts.ClassFloat},
	OpFADDD:     {"fadd.d", insts.ClassFloat},
	OpFSUBD:     {"fsub.d", insts.ClassFloat},
	OpFMULD:     {"fmul.d", insts.ClassFloat},
	OpFDIVD:     {"fdiv.d", insts.ClassFloatDivide},
	OpFSQRTD:    {"fsqrt.d", insts.ClassFloatDivide},
	OpFSGNJD:    {"fsgnj.d", insts.ClassFloat},
	OpFSGNJND:   {"fsgnjn.d", insts.ClassFloat},
	OpFSGNJXD:   {"fsgnjx.d", insts.ClassFloat},
	OpFMIND:     {"fmin.d", insts.ClassFloat},
	OpFMAXD:     {"fmax.d", insts.ClassFloat},
	OpFCVTWD:    {"fcvt.w.d", insts.ClassFloat},
	OpFCVTWUD:   {"fcvt.wu.d", insts.ClassFloat},
	OpFCVTLD:    {"fcvt.l.d", insts.ClassFloat},
	OpFCVTLUD:   {"fcvt.lu.d", insts.ClassFloat},
	OpFMVXD:     {"fmv.x.d", insts.ClassFloat},
	OpFCLASSD:   {"fclass.d", insts.ClassFloat},
	OpFEQD:      {"feq.d", insts.ClassFloat},
	OpFLTD:      {"flt.d", insts.ClassFloat},
	OpFLED:      {"fle.d", insts.ClassFloat},
	OpFCVTDW:    {"fcvt.d.w", insts.ClassFloat},
	OpFCVTDWU:   {"fcvt.d.wu", insts.ClassFloat},
	OpFCVTDL:    {"fcvt.d.l", insts.ClassFloat},
	OpFCVTDLU:   {"fcvt.d.lu", insts.ClassFloat},
	OpFMVDX:     {"fmv.d.x", insts.ClassFloat},
	OpFCVTDS:    {"fcvt.d.s", insts.ClassFloat},
	OpCADDI4SPN: {"c.addi4spn", insts.ClassALU},
	OpCFLD:      {"c.fld", insts.ClassLoad},
	OpCLW:       {"c.lw", insts.ClassLoad},
	OpCLD:       {"c.ld", insts.ClassLoad},
	OpCFSD:      {"c.fsd", insts.ClassStore},
	OpCSW:       {"c.sw", insts.ClassStore},
	OpCSD:       {"c.sd", insts.ClassStore},
	OpCNOP:      {"c.nop", insts.ClassALU},
	OpCADDI:     {"c.addi", insts.ClassALU},
	OpCADDIW:    {"c.addiw", insts.ClassALU},
	OpCLI:       {"c.li", insts.ClassALU},
	OpCADDI16SP: {"c.addi16sp", insts.ClassALU},
	OpCLUI:      {"c.lui", insts.ClassALU},
	OpCSRLI:     {"c.srli", insts.ClassALU},
	OpCSRAI:     {"c.srai", insts.ClassALU},
	OpCANDI:     {"c.andi", insts.ClassALU},
	OpCSUB:      {"c.sub", insts.ClassALU},
	OpCXOR:      {"c.xor", insts.ClassALU},
	OpCOR:       {"c.or", insts.ClassALU},
	OpCAND:      {"c.and", insts.ClassALU},
	OpCSUBW:     {"c.subw", insts.ClassALU},
	OpCADDW:     {"c.addw", insts.ClassALU},
	OpCJ:        {"c.j", insts.ClassBranch},
	OpCBEQZ:     {"c.beqz", insts.ClassBranch},
	OpCBNEZ:     {"c.bnez", insts.ClassBranch},
	OpCSLLI:     {"c.slli", insts.ClassALU},
	OpCFLDSP:    {"c.fldsp", insts.ClassLoad},
	OpCLWSP:     {"c.lwsp", insts.ClassLoad},
	OpCLDSP:     {"c.ldsp", insts.ClassLoad},
	OpCJR:       {"c.jr", insts.ClassBranch},
	OpCMV:       {"c.mv", insts.ClassALU},
	OpCEBREAK:   {"c.ebreak", insts.ClassSystem},
	OpCJALR:     {"c.jalr", insts.ClassBranch},
	OpCADD:      {"c.add", insts.ClassALU},
	OpCFSDSP:    {"c.fsdsp", insts.ClassStore},
	OpCSWSP:     {"c.swsp", insts.ClassStore},
	OpCSDSP:     {"c.sdsp", insts.ClassStore},
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

// Compressed reports whether op is a 16-bit instruction.
func (op Op) Compressed() bool {
	return op >= OpCADDI4SPN && op < numOps
}

// Ops returns every defined mnemonic in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, numOps-1)
	for op := OpUnknown + 1; op < numOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

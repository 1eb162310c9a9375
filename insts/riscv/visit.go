package riscv

import "github.com/sarchlab/diss/insts"

// Visit hands inst to the matching visitor method. It is the only place that
// maps the Inst variant onto Visitor calls.
func Visit[T any](v Visitor[T], inst Inst) (T, error) {
	switch inst.Op {
	case OpLUI:
		return v.Lui(inst.Rd, int32(inst.Imm))
	case OpAUIPC:
		return v.Auipc(inst.Rd, int32(inst.Imm))
	case OpJAL:
		return v.Jal(inst.Rd, int32(inst.Imm))
	case OpJALR:
		return v.Jalr(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpBEQ:
		return v.Beq(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpBNE:
		return v.Bne(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpBLT:
		return v.Blt(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpBGE:
		return v.Bge(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpBLTU:
		return v.Bltu(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpBGEU:
		return v.Bgeu(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpLB:
		return v.Lb(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLH:
		return v.Lh(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLW:
		return v.Lw(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLD:
		return v.Ld(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLBU:
		return v.Lbu(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLHU:
		return v.Lhu(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpLWU:
		return v.Lwu(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpSB:
		return v.Sb(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpSH:
		return v.Sh(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpSW:
		return v.Sw(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpSD:
		return v.Sd(inst.Rs1, inst.Rs2, int32(inst.Imm))
	case OpADDI:
		return v.Addi(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpSLTI:
		return v.Slti(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpSLTIU:
		return v.Sltiu(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpXORI:
		return v.Xori(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpORI:
		return v.Ori(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpANDI:
		return v.Andi(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpSLLI:
		return v.Slli(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpSRLI:
		return v.Srli(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpSRAI:
		return v.Srai(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpADD:
		return v.Add(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSUB:
		return v.Sub(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSLL:
		return v.Sll(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSLT:
		return v.Slt(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSLTU:
		return v.Sltu(inst.Rd, inst.Rs1, inst.Rs2)
	case OpXOR:
		return v.Xor(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSRL:
		return v.Srl(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSRA:
		return v.Sra(inst.Rd, inst.Rs1, inst.Rs2)
	case OpOR:
		return v.Or(inst.Rd, inst.Rs1, inst.Rs2)
	case OpAND:
		return v.And(inst.Rd, inst.Rs1, inst.Rs2)
	case OpFENCE:
		return v.Fence(inst.FM, inst.Pred, inst.Succ)
	case OpFENCEI:
		return v.FenceI()
	case OpECALL:
		return v.Ecall()
	case OpEBREAK:
		return v.Ebreak()
	case OpADDIW:
		return v.Addiw(inst.Rd, inst.Rs1, int32(inst.Imm))
	case OpSLLIW:
		return v.Slliw(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpSRLIW:
		return v.Srliw(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpSRAIW:
		return v.Sraiw(inst.Rd, inst.Rs1, uint8(inst.Imm))
	case OpADDW:
		return v.Addw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSUBW:
		return v.Subw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSLLW:
		return v.Sllw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSRLW:
		return v.Srlw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpSRAW:
		return v.Sraw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpCSRRW:
		return v.Csrrw(inst.Rd, inst.Rs1, inst.CSR)
	case OpCSRRS:
		return v.Csrrs(inst.Rd, inst.Rs1, inst.CSR)
	case OpCSRRC:
		return v.Csrrc(inst.Rd, inst.Rs1, inst.CSR)
	case OpCSRRWI:
		return v.Csrrwi(inst.Rd, uint8(inst.Imm), inst.CSR)
	case OpCSRRSI:
		return v.Csrrsi(inst.Rd, uint8(inst.Imm), inst.CSR)
	case OpCSRRCI:
		return v.Csrrci(inst.Rd, uint8(inst.Imm), inst.CSR)
	case OpMUL:
		return v.Mul(inst.Rd, inst.Rs1, inst.Rs2)
	case OpMULH:
		return v.Mulh(inst.Rd, inst.Rs1, inst.Rs2)
	case OpMULHSU:
		return v.Mulhsu(inst.Rd, inst.Rs1, inst.Rs2)
	case OpMULHU:
		return v.Mulhu(inst.Rd, inst.Rs1, inst.Rs2)
	case OpDIV:
		return v.Div(inst.Rd, inst.Rs1, inst.Rs2)
	case OpDIVU:
		return v.Divu(inst.Rd, inst.Rs1, inst.Rs2)
	case OpREM:
		return v.Rem(inst.Rd, inst.Rs1, inst.Rs2)
	case OpREMU:
		return v.Remu(inst.Rd, inst.Rs1, inst.Rs2)
	case OpMULW:
		return v.Mulw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpDIVW:
		return v.Divw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpDIVUW:
		return v.Divuw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpREMW:
		return v.Remw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpREMUW:
		return v.Remuw(inst.Rd, inst.Rs1, inst.Rs2)
	case OpFLW:
		return v.Flw(inst.FRd, inst.Rs1, int32(inst.Imm))
	case OpFSW:
		return v.Fsw(inst.Rs1, inst.FRs2, int32(inst.Imm))
	case OpFMADDS:
		return v.FmaddS(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFMSUBS:
		return v.FmsubS(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFNMSUBS:
		return v.FnmsubS(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFNMADDS:
		return v.FnmaddS(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFADDS:
		return v.FaddS(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFSUBS:
		return v.FsubS(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFMULS:
		return v.FmulS(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFDIVS:
		return v.FdivS(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFSQRTS:
		return v.FsqrtS(inst.FRd, inst.FRs1, inst.RM)
	case OpFSGNJS:
		return v.FsgnjS(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFSGNJNS:
		return v.FsgnjnS(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFSGNJXS:
		return v.FsgnjxS(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFMINS:
		return v.FminS(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFMAXS:
		return v.FmaxS(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFCVTWS:
		return v.FcvtWS(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTWUS:
		return v.FcvtWuS(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTLS:
		return v.FcvtLS(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTLUS:
		return v.FcvtLuS(inst.Rd, inst.FRs1, inst.RM)
	case OpFMVXW:
		return v.FmvXW(inst.Rd, inst.FRs1)
	case OpFCLASSS:
		return v.FclassS(inst.Rd, inst.FRs1)
	case OpFEQS:
		return v.FeqS(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFLTS:
		return v.FltS(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFLES:
		return v.FleS(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFCVTSW:
		return v.FcvtSW(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTSWU:
		return v.FcvtSWu(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTSL:
		return v.FcvtSL(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTSLU:
		return v.FcvtSLu(inst.FRd, inst.Rs1, inst.RM)
	case OpFMVWX:
		return v.FmvWX(inst.FRd, inst.Rs1)
	case OpFCVTSD:
		return v.FcvtSD(inst.FRd, inst.FRs1, inst.RM)
	case OpFLD:
		return v.Fld(inst.FRd, inst.Rs1, int32(inst.Imm))
	case OpFSD:
		return v.Fsd(inst.Rs1, inst.FRs2, int32(inst.Imm))
	case OpFMADDD:
		return v.FmaddD(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFMSUBD:
		return v.FmsubD(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFNMSUBD:
		return v.FnmsubD(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFNMADDD:
		return v.FnmaddD(inst.FRd, inst.FRs1, inst.FRs2, inst.FRs3, inst.RM)
	case OpFADDD:
		return v.FaddD(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFSUBD:
		return v.FsubD(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFMULD:
		return v.FmulD(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFDIVD:
		return v.FdivD(inst.FRd, inst.FRs1, inst.FRs2, inst.RM)
	case OpFSQRTD:
		return v.FsqrtD(inst.FRd, inst.FRs1, inst.RM)
	case OpFSGNJD:
		return v.FsgnjD(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFSGNJND:
		return v.FsgnjnD(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFSGNJXD:
		return v.FsgnjxD(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFMIND:
		return v.FminD(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFMAXD:
		return v.FmaxD(inst.FRd, inst.FRs1, inst.FRs2)
	case OpFCVTWD:
		return v.FcvtWD(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTWUD:
		return v.FcvtWuD(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTLD:
		return v.FcvtLD(inst.Rd, inst.FRs1, inst.RM)
	case OpFCVTLUD:
		return v.FcvtLuD(inst.Rd, inst.FRs1, inst.RM)
	case OpFMVXD:
		return v.FmvXD(inst.Rd, inst.FRs1)
	case OpFCLASSD:
		return v.FclassD(inst.Rd, inst.FRs1)
	case OpFEQD:
		return v.FeqD(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFLTD:
		return v.FltD(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFLED:
		return v.FleD(inst.Rd, inst.FRs1, inst.FRs2)
	case OpFCVTDW:
		return v.FcvtDW(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTDWU:
		return v.FcvtDWu(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTDL:
		return v.FcvtDL(inst.FRd, inst.Rs1, inst.RM)
	case OpFCVTDLU:
		return v.FcvtDLu(inst.FRd, inst.Rs1, inst.RM)
	case OpFMVDX:
		return v.FmvDX(inst.FRd, inst.Rs1)
	case OpFCVTDS:
		return v.FcvtDS(inst.FRd, inst.FRs1, inst.RM)
	case OpCADDI4SPN:
		return v.CAddi4spn(inst.Rd, uint16(inst.Imm))
	case OpCFLD:
		return v.CFld(inst.FRd, inst.Rs1, uint16(inst.Imm))
	case OpCLW:
		return v.CLw(inst.Rd, inst.Rs1, uint16(inst.Imm))
	case OpCLD:
		return v.CLd(inst.Rd, inst.Rs1, uint16(inst.Imm))
	case OpCFSD:
		return v.CFsd(inst.Rs1, inst.FRs2, uint16(inst.Imm))
	case OpCSW:
		return v.CSw(inst.Rs1, inst.Rs2, uint16(inst.Imm))
	case OpCSD:
		return v.CSd(inst.Rs1, inst.Rs2, uint16(inst.Imm))
	case OpCNOP:
		return v.CNop()
	case OpCADDI:
		return v.CAddi(inst.Rd, int8(inst.Imm))
	case OpCADDIW:
		return v.CAddiw(inst.Rd, int8(inst.Imm))
	case OpCLI:
		return v.CLi(inst.Rd, int8(inst.Imm))
	case OpCADDI16SP:
		return v.CAddi16sp(int16(inst.Imm))
	case OpCLUI:
		return v.CLui(inst.Rd, int32(inst.Imm))
	case OpCSRLI:
		return v.CSrli(inst.Rd, uint8(inst.Imm))
	case OpCSRAI:
		return v.CSrai(inst.Rd, uint8(inst.Imm))
	case OpCANDI:
		return v.CAndi(inst.Rd, int8(inst.Imm))
	case OpCSUB:
		return v.CSub(inst.Rd, inst.Rs2)
	case OpCXOR:
		return v.CXor(inst.Rd, inst.Rs2)
	case OpCOR:
		return v.COr(inst.Rd, inst.Rs2)
	case OpCAND:
		return v.CAnd(inst.Rd, inst.Rs2)
	case OpCSUBW:
		return v.CSubw(inst.Rd, inst.Rs2)
	case OpCADDW:
		return v.CAddw(inst.Rd, inst.Rs2)
	case OpCJ:
		return v.CJ(int16(inst.Imm))
	case OpCBEQZ:
		return v.CBeqz(inst.Rs1, int16(inst.Imm))
	case OpCBNEZ:
		return v.CBnez(inst.Rs1, int16(inst.Imm))
	case OpCSLLI:
		return v.CSlli(inst.Rd, uint8(inst.Imm))
	case OpCFLDSP:
		return v.CFldsp(inst.FRd, uint16(inst.Imm))
	case OpCLWSP:
		return v.CLwsp(inst.Rd, uint16(inst.Imm))
	case OpCLDSP:
		return v.CLdsp(inst.Rd, uint16(inst.Imm))
	case OpCJR:
		return v.CJr(inst.Rs1)
	case OpCMV:
		return v.CMv(inst.Rd, inst.Rs2)
	case OpCEBREAK:
		return v.CEbreak()
	case OpCJALR:
		return v.CJalr(inst.Rs1)
	case OpCADD:
		return v.CAdd(inst.Rd, inst.Rs2)
	case OpCFSDSP:
		return v.CFsdsp(inst.FRs2, uint16(inst.Imm))
	case OpCSWSP:
		return v.CSwsp(inst.Rs2, uint16(inst.Imm))
	case OpCSDSP:
		return v.CSdsp(inst.Rs2, uint16(inst.Imm))
	}

	var zero T
	return zero, insts.Unimplemented(insts.ArchRV64GC, 0, "visit of unknown op "+inst.Op.String())
}

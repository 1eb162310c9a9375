package riscv

// InstFunc adapts a function over whole instructions to the Visitor
// interface. Each method rebuilds the Inst that Decode would have produced,
// which makes InstFunc the natural base for counters, recorders and
// round-trip harnesses.
type InstFunc[T any] func(Inst) (T, error)

func (fn InstFunc[T]) Lui(rd Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLUI, Len: 4, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) Auipc(rd Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpAUIPC, Len: 4, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) Jal(rd Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpJAL, Len: 4, Rd: rd, Imm: int64(offset)})
}

func (fn InstFunc[T]) Jalr(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpJALR, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Beq(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBEQ, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Bne(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBNE, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Blt(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBLT, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Bge(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBGE, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Bltu(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBLTU, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Bgeu(rs1, rs2 Reg, offset int32) (T, error) {
	return fn(Inst{Op: OpBGEU, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(offset)})
}

func (fn InstFunc[T]) Lb(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLB, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Lh(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLH, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Lw(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLW, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Ld(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLD, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Lbu(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLBU, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Lhu(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLHU, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Lwu(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpLWU, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Sb(rs1, rs2 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSB, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) Sh(rs1, rs2 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSH, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) Sw(rs1, rs2 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSW, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) Sd(rs1, rs2 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSD, Len: 4, Rs1: rs1, Rs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) Addi(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpADDI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Slti(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSLTI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Sltiu(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpSLTIU, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Xori(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpXORI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Ori(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpORI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Andi(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpANDI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Slli(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSLLI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Srli(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSRLI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Srai(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSRAI, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Add(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpADD, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sub(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSUB, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sll(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSLL, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Slt(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSLT, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sltu(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSLTU, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Xor(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpXOR, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Srl(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSRL, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sra(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSRA, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Or(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpOR, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) And(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpAND, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Fence(fm, pred, succ uint8) (T, error) {
	return fn(Inst{Op: OpFENCE, Len: 4, FM: fm, Pred: pred, Succ: succ})
}

func (fn InstFunc[T]) FenceI() (T, error) {
	return fn(Inst{Op: OpFENCEI, Len: 4})
}

func (fn InstFunc[T]) Ecall() (T, error) {
	return fn(Inst{Op: OpECALL, Len: 4})
}

func (fn InstFunc[T]) Ebreak() (T, error) {
	return fn(Inst{Op: OpEBREAK, Len: 4})
}

func (fn InstFunc[T]) Addiw(rd, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpADDIW, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Slliw(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSLLIW, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Srliw(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSRLIW, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Sraiw(rd, rs1 Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpSRAIW, Len: 4, Rd: rd, Rs1: rs1, Imm: int64(shamt)})
}

func (fn InstFunc[T]) Addw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpADDW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Subw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSUBW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sllw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSLLW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Srlw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSRLW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Sraw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpSRAW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Csrrw(rd, rs1 Reg, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRW, Len: 4, Rd: rd, Rs1: rs1, CSR: csr})
}

func (fn InstFunc[T]) Csrrs(rd, rs1 Reg, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRS, Len: 4, Rd: rd, Rs1: rs1, CSR: csr})
}

func (fn InstFunc[T]) Csrrc(rd, rs1 Reg, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRC, Len: 4, Rd: rd, Rs1: rs1, CSR: csr})
}

func (fn InstFunc[T]) Csrrwi(rd Reg, uimm uint8, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRWI, Len: 4, Rd: rd, Imm: int64(uimm), CSR: csr})
}

func (fn InstFunc[T]) Csrrsi(rd Reg, uimm uint8, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRSI, Len: 4, Rd: rd, Imm: int64(uimm), CSR: csr})
}

func (fn InstFunc[T]) Csrrci(rd Reg, uimm uint8, csr uint16) (T, error) {
	return fn(Inst{Op: OpCSRRCI, Len: 4, Rd: rd, Imm: int64(uimm), CSR: csr})
}

func (fn InstFunc[T]) Mul(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpMUL, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Mulh(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpMULH, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Mulhsu(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpMULHSU, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Mulhu(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpMULHU, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Div(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpDIV, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Divu(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpDIVU, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Rem(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpREM, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Remu(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpREMU, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Mulw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpMULW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Divw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpDIVW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Divuw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpDIVUW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Remw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpREMW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Remuw(rd, rs1, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpREMUW, Len: 4, Rd: rd, Rs1: rs1, Rs2: rs2})
}

func (fn InstFunc[T]) Flw(rd FReg, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpFLW, Len: 4, FRd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Fsw(rs1 Reg, rs2 FReg, imm int32) (T, error) {
	return fn(Inst{Op: OpFSW, Len: 4, Rs1: rs1, FRs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) FmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMADDS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMSUBS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FnmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFNMSUBS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FnmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFNMADDS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FaddS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFADDS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FsubS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFSUBS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FmulS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMULS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FdivS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFDIVS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FsqrtS(rd, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFSQRTS, Len: 4, FRd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FsgnjS(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FsgnjnS(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJNS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FsgnjxS(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJXS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FminS(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFMINS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FmaxS(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFMAXS, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FcvtWS(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTWS, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtWuS(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTWUS, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtLS(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTLS, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtLuS(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTLUS, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FmvXW(rd Reg, rs1 FReg) (T, error) {
	return fn(Inst{Op: OpFMVXW, Len: 4, Rd: rd, FRs1: rs1})
}

func (fn InstFunc[T]) FclassS(rd Reg, rs1 FReg) (T, error) {
	return fn(Inst{Op: OpFCLASSS, Len: 4, Rd: rd, FRs1: rs1})
}

func (fn InstFunc[T]) FeqS(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFEQS, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FltS(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFLTS, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FleS(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFLES, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FcvtSW(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTSW, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtSWu(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTSWU, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtSL(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTSL, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtSLu(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTSLU, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FmvWX(rd FReg, rs1 Reg) (T, error) {
	return fn(Inst{Op: OpFMVWX, Len: 4, FRd: rd, Rs1: rs1})
}

func (fn InstFunc[T]) FcvtSD(rd, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTSD, Len: 4, FRd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) Fld(rd FReg, rs1 Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpFLD, Len: 4, FRd: rd, Rs1: rs1, Imm: int64(imm)})
}

func (fn InstFunc[T]) Fsd(rs1 Reg, rs2 FReg, imm int32) (T, error) {
	return fn(Inst{Op: OpFSD, Len: 4, Rs1: rs1, FRs2: rs2, Imm: int64(imm)})
}

func (fn InstFunc[T]) FmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMADDD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMSUBD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FnmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFNMSUBD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FnmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFNMADDD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, FRs3: rs3, RM: rm})
}

func (fn InstFunc[T]) FaddD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFADDD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FsubD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFSUBD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FmulD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFMULD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FdivD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFDIVD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2, RM: rm})
}

func (fn InstFunc[T]) FsqrtD(rd, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFSQRTD, Len: 4, FRd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FsgnjD(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FsgnjnD(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJND, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FsgnjxD(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFSGNJXD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FminD(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFMIND, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FmaxD(rd, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFMAXD, Len: 4, FRd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FcvtWD(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTWD, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtWuD(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTWUD, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtLD(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTLD, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtLuD(rd Reg, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTLUD, Len: 4, Rd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FmvXD(rd Reg, rs1 FReg) (T, error) {
	return fn(Inst{Op: OpFMVXD, Len: 4, Rd: rd, FRs1: rs1})
}

func (fn InstFunc[T]) FclassD(rd Reg, rs1 FReg) (T, error) {
	return fn(Inst{Op: OpFCLASSD, Len: 4, Rd: rd, FRs1: rs1})
}

func (fn InstFunc[T]) FeqD(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFEQD, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FltD(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFLTD, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FleD(rd Reg, rs1, rs2 FReg) (T, error) {
	return fn(Inst{Op: OpFLED, Len: 4, Rd: rd, FRs1: rs1, FRs2: rs2})
}

func (fn InstFunc[T]) FcvtDW(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTDW, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtDWu(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTDWU, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtDL(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTDL, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FcvtDLu(rd FReg, rs1 Reg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTDLU, Len: 4, FRd: rd, Rs1: rs1, RM: rm})
}

func (fn InstFunc[T]) FmvDX(rd FReg, rs1 Reg) (T, error) {
	return fn(Inst{Op: OpFMVDX, Len: 4, FRd: rd, Rs1: rs1})
}

func (fn InstFunc[T]) FcvtDS(rd, rs1 FReg, rm RoundingMode) (T, error) {
	return fn(Inst{Op: OpFCVTDS, Len: 4, FRd: rd, FRs1: rs1, RM: rm})
}

func (fn InstFunc[T]) CAddi4spn(rd Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCADDI4SPN, Len: 2, Rd: rd, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CFld(rd FReg, rs1 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCFLD, Len: 2, FRd: rd, Rs1: rs1, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CLw(rd, rs1 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCLW, Len: 2, Rd: rd, Rs1: rs1, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CLd(rd, rs1 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCLD, Len: 2, Rd: rd, Rs1: rs1, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CFsd(rs1 Reg, rs2 FReg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCFSD, Len: 2, Rs1: rs1, FRs2: rs2, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CSw(rs1, rs2 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCSW, Len: 2, Rs1: rs1, Rs2: rs2, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CSd(rs1, rs2 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCSD, Len: 2, Rs1: rs1, Rs2: rs2, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CNop() (T, error) {
	return fn(Inst{Op: OpCNOP, Len: 2})
}

func (fn InstFunc[T]) CAddi(rd Reg, imm int8) (T, error) {
	return fn(Inst{Op: OpCADDI, Len: 2, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) CAddiw(rd Reg, imm int8) (T, error) {
	return fn(Inst{Op: OpCADDIW, Len: 2, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) CLi(rd Reg, imm int8) (T, error) {
	return fn(Inst{Op: OpCLI, Len: 2, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) CAddi16sp(imm int16) (T, error) {
	return fn(Inst{Op: OpCADDI16SP, Len: 2, Imm: int64(imm)})
}

func (fn InstFunc[T]) CLui(rd Reg, imm int32) (T, error) {
	return fn(Inst{Op: OpCLUI, Len: 2, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) CSrli(rd Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpCSRLI, Len: 2, Rd: rd, Imm: int64(shamt)})
}

func (fn InstFunc[T]) CSrai(rd Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpCSRAI, Len: 2, Rd: rd, Imm: int64(shamt)})
}

func (fn InstFunc[T]) CAndi(rd Reg, imm int8) (T, error) {
	return fn(Inst{Op: OpCANDI, Len: 2, Rd: rd, Imm: int64(imm)})
}

func (fn InstFunc[T]) CSub(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCSUB, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CXor(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCXOR, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) COr(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCOR, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CAnd(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCAND, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CSubw(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCSUBW, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CAddw(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCADDW, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CJ(offset int16) (T, error) {
	return fn(Inst{Op: OpCJ, Len: 2, Imm: int64(offset)})
}

func (fn InstFunc[T]) CBeqz(rs1 Reg, offset int16) (T, error) {
	return fn(Inst{Op: OpCBEQZ, Len: 2, Rs1: rs1, Imm: int64(offset)})
}

func (fn InstFunc[T]) CBnez(rs1 Reg, offset int16) (T, error) {
	return fn(Inst{Op: OpCBNEZ, Len: 2, Rs1: rs1, Imm: int64(offset)})
}

func (fn InstFunc[T]) CSlli(rd Reg, shamt uint8) (T, error) {
	return fn(Inst{Op: OpCSLLI, Len: 2, Rd: rd, Imm: int64(shamt)})
}

func (fn InstFunc[T]) CFldsp(rd FReg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCFLDSP, Len: 2, FRd: rd, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CLwsp(rd Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCLWSP, Len: 2, Rd: rd, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CLdsp(rd Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCLDSP, Len: 2, Rd: rd, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CJr(rs1 Reg) (T, error) {
	return fn(Inst{Op: OpCJR, Len: 2, Rs1: rs1})
}

func (fn InstFunc[T]) CMv(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCMV, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CEbreak() (T, error) {
	return fn(Inst{Op: OpCEBREAK, Len: 2})
}

func (fn InstFunc[T]) CJalr(rs1 Reg) (T, error) {
	return fn(Inst{Op: OpCJALR, Len: 2, Rs1: rs1})
}

func (fn InstFunc[T]) CAdd(rd, rs2 Reg) (T, error) {
	return fn(Inst{Op: OpCADD, Len: 2, Rd: rd, Rs2: rs2})
}

func (fn InstFunc[T]) CFsdsp(rs2 FReg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCFSDSP, Len: 2, FRs2: rs2, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CSwsp(rs2 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCSWSP, Len: 2, Rs2: rs2, Imm: int64(uimm)})
}

func (fn InstFunc[T]) CSdsp(rs2 Reg, uimm uint16) (T, error) {
	return fn(Inst{Op: OpCSDSP, Len: 2, Rs2: rs2, Imm: int64(uimm)})
}

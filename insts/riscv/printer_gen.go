package riscv

func (p Printer) Lui(rd Reg, imm int32) (string, error) {
	return p.upper(OpLUI, rd, int64(imm)), nil
}

func (p Printer) Auipc(rd Reg, imm int32) (string, error) {
	return p.upper(OpAUIPC, rd, int64(imm)), nil
}

func (p Printer) Jal(rd Reg, offset int32) (string, error) {
	return p.jump(OpJAL, rd, int64(offset)), nil
}

func (p Printer) Jalr(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpJALR, rd, rs1, int64(imm)), nil
}

func (p Printer) Beq(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBEQ, rs1, rs2, int64(offset)), nil
}

func (p Printer) Bne(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBNE, rs1, rs2, int64(offset)), nil
}

func (p Printer) Blt(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBLT, rs1, rs2, int64(offset)), nil
}

func (p Printer) Bge(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBGE, rs1, rs2, int64(offset)), nil
}

func (p Printer) Bltu(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBLTU, rs1, rs2, int64(offset)), nil
}

func (p Printer) Bgeu(rs1, rs2 Reg, offset int32) (string, error) {
	return p.branch(OpBGEU, rs1, rs2, int64(offset)), nil
}

func (p Printer) Lb(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLB, rd, rs1, int64(imm)), nil
}

func (p Printer) Lh(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLH, rd, rs1, int64(imm)), nil
}

func (p Printer) Lw(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLW, rd, rs1, int64(imm)), nil
}

func (p Printer) Ld(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLD, rd, rs1, int64(imm)), nil
}

func (p Printer) Lbu(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLBU, rd, rs1, int64(imm)), nil
}

func (p Printer) Lhu(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLHU, rd, rs1, int64(imm)), nil
}

func (p Printer) Lwu(rd, rs1 Reg, imm int32) (string, error) {
	return p.memory(OpLWU, rd, rs1, int64(imm)), nil
}

func (p Printer) Sb(rs1, rs2 Reg, imm int32) (string, error) {
	return p.store(OpSB, rs1, rs2, int64(imm)), nil
}

func (p Printer) Sh(rs1, rs2 Reg, imm int32) (string, error) {
	return p.store(OpSH, rs1, rs2, int64(imm)), nil
}

func (p Printer) Sw(rs1, rs2 Reg, imm int32) (string, error) {
	return p.store(OpSW, rs1, rs2, int64(imm)), nil
}

func (p Printer) Sd(rs1, rs2 Reg, imm int32) (string, error) {
	return p.store(OpSD, rs1, rs2, int64(imm)), nil
}

func (p Printer) Addi(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpADDI, rd, rs1, int64(imm)), nil
}

func (p Printer) Slti(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpSLTI, rd, rs1, int64(imm)), nil
}

func (p Printer) Sltiu(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpSLTIU, rd, rs1, int64(imm)), nil
}

func (p Printer) Xori(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpXORI, rd, rs1, int64(imm)), nil
}

func (p Printer) Ori(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpORI, rd, rs1, int64(imm)), nil
}

func (p Printer) Andi(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpANDI, rd, rs1, int64(imm)), nil
}

func (p Printer) Slli(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSLLI, rd, rs1, int64(shamt)), nil
}

func (p Printer) Srli(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSRLI, rd, rs1, int64(shamt)), nil
}

func (p Printer) Srai(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSRAI, rd, rs1, int64(shamt)), nil
}

func (p Printer) Add(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpADD, rd, rs1, rs2), nil
}

func (p Printer) Sub(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSUB, rd, rs1, rs2), nil
}

func (p Printer) Sll(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSLL, rd, rs1, rs2), nil
}

func (p Printer) Slt(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSLT, rd, rs1, rs2), nil
}

func (p Printer) Sltu(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSLTU, rd, rs1, rs2), nil
}

func (p Printer) Xor(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpXOR, rd, rs1, rs2), nil
}

func (p Printer) Srl(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSRL, rd, rs1, rs2), nil
}

func (p Printer) Sra(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSRA, rd, rs1, rs2), nil
}

func (p Printer) Or(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpOR, rd, rs1, rs2), nil
}

func (p Printer) And(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpAND, rd, rs1, rs2), nil
}

func (p Printer) Fence(fm, pred, succ uint8) (string, error) {
	return p.fence(OpFENCE, int64(fm), int64(pred), int64(succ)), nil
}

func (p Printer) FenceI() (string, error) {
	return p.bare(OpFENCEI), nil
}

func (p Printer) Ecall() (string, error) {
	return p.bare(OpECALL), nil
}

func (p Printer) Ebreak() (string, error) {
	return p.bare(OpEBREAK), nil
}

func (p Printer) Addiw(rd, rs1 Reg, imm int32) (string, error) {
	return p.regRegImm(OpADDIW, rd, rs1, int64(imm)), nil
}

func (p Printer) Slliw(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSLLIW, rd, rs1, int64(shamt)), nil
}

func (p Printer) Srliw(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSRLIW, rd, rs1, int64(shamt)), nil
}

func (p Printer) Sraiw(rd, rs1 Reg, shamt uint8) (string, error) {
	return p.regRegImm(OpSRAIW, rd, rs1, int64(shamt)), nil
}

func (p Printer) Addw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpADDW, rd, rs1, rs2), nil
}

func (p Printer) Subw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSUBW, rd, rs1, rs2), nil
}

func (p Printer) Sllw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSLLW, rd, rs1, rs2), nil
}

func (p Printer) Srlw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSRLW, rd, rs1, rs2), nil
}

func (p Printer) Sraw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpSRAW, rd, rs1, rs2), nil
}

func (p Printer) Csrrw(rd, rs1 Reg, csr uint16) (string, error) {
	return p.csr(OpCSRRW, rd, rs1, int64(csr)), nil
}

func (p Printer) Csrrs(rd, rs1 Reg, csr uint16) (string, error) {
	return p.csr(OpCSRRS, rd, rs1, int64(csr)), nil
}

func (p Printer) Csrrc(rd, rs1 Reg, csr uint16) (string, error) {
	return p.csr(OpCSRRC, rd, rs1, int64(csr)), nil
}

func (p Printer) Csrrwi(rd Reg, uimm uint8, csr uint16) (string, error) {
	return p.csrImm(OpCSRRWI, rd, int64(uimm), int64(csr)), nil
}

func (p Printer) Csrrsi(rd Reg, uimm uint8, csr uint16) (string, error) {
	return p.csrImm(OpCSRRSI, rd, int64(uimm), int64(csr)), nil
}

func (p Printer) Csrrci(rd Reg, uimm uint8, csr uint16) (string, error) {
	return p.csrImm(OpCSRRCI, rd, int64(uimm), int64(csr)), nil
}

func (p Printer) Mul(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpMUL, rd, rs1, rs2), nil
}

func (p Printer) Mulh(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpMULH, rd, rs1, rs2), nil
}

func (p Printer) Mulhsu(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpMULHSU, rd, rs1, rs2), nil
}

func (p Printer) Mulhu(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpMULHU, rd, rs1, rs2), nil
}

func (p Printer) Div(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpDIV, rd, rs1, rs2), nil
}

func (p Printer) Divu(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpDIVU, rd, rs1, rs2), nil
}

func (p Printer) Rem(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpREM, rd, rs1, rs2), nil
}

func (p Printer) Remu(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpREMU, rd, rs1, rs2), nil
}

func (p Printer) Mulw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpMULW, rd, rs1, rs2), nil
}

func (p Printer) Divw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpDIVW, rd, rs1, rs2), nil
}

func (p Printer) Divuw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpDIVUW, rd, rs1, rs2), nil
}

func (p Printer) Remw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpREMW, rd, rs1, rs2), nil
}

func (p Printer) Remuw(rd, rs1, rs2 Reg) (string, error) {
	return p.regRegReg(OpREMUW, rd, rs1, rs2), nil
}

func (p Printer) Flw(rd FReg, rs1 Reg, imm int32) (string, error) {
	return p.floatLoad(OpFLW, rd, rs1, int64(imm)), nil
}

func (p Printer) Fsw(rs1 Reg, rs2 FReg, imm int32) (string, error) {
	return p.floatStore(OpFSW, rs1, rs2, int64(imm)), nil
}

func (p Printer) FmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFMADDS, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFMSUBS, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FnmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFNMSUBS, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FnmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFNMADDS, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FaddS(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFADDS, rd, rs1, rs2, rm), nil
}

func (p Printer) FsubS(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFSUBS, rd, rs1, rs2, rm), nil
}

func (p Printer) FmulS(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFMULS, rd, rs1, rs2, rm), nil
}

func (p Printer) FdivS(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFDIVS, rd, rs1, rs2, rm), nil
}

func (p Printer) FsqrtS(rd, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatRR(OpFSQRTS, rd, rs1, rm), nil
}

func (p Printer) FsgnjS(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJS, rd, rs1, rs2, noRM), nil
}

func (p Printer) FsgnjnS(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJNS, rd, rs1, rs2, noRM), nil
}

func (p Printer) FsgnjxS(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJXS, rd, rs1, rs2, noRM), nil
}

func (p Printer) FminS(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFMINS, rd, rs1, rs2, noRM), nil
}

func (p Printer) FmaxS(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFMAXS, rd, rs1, rs2, noRM), nil
}

func (p Printer) FcvtWS(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTWS, rd, rs1, rm), nil
}

func (p Printer) FcvtWuS(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTWUS, rd, rs1, rm), nil
}

func (p Printer) FcvtLS(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTLS, rd, rs1, rm), nil
}

func (p Printer) FcvtLuS(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTLUS, rd, rs1, rm), nil
}

func (p Printer) FmvXW(rd Reg, rs1 FReg) (string, error) {
	return p.floatToInt(OpFMVXW, rd, rs1, noRM), nil
}

func (p Printer) FclassS(rd Reg, rs1 FReg) (string, error) {
	return p.floatToInt(OpFCLASSS, rd, rs1, noRM), nil
}

func (p Printer) FeqS(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFEQS, rd, rs1, rs2), nil
}

func (p Printer) FltS(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFLTS, rd, rs1, rs2), nil
}

func (p Printer) FleS(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFLES, rd, rs1, rs2), nil
}

func (p Printer) FcvtSW(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTSW, rd, rs1, rm), nil
}

func (p Printer) FcvtSWu(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTSWU, rd, rs1, rm), nil
}

func (p Printer) FcvtSL(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTSL, rd, rs1, rm), nil
}

func (p Printer) FcvtSLu(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTSLU, rd, rs1, rm), nil
}

func (p Printer) FmvWX(rd FReg, rs1 Reg) (string, error) {
	return p.intToFloat(OpFMVWX, rd, rs1, noRM), nil
}

func (p Printer) FcvtSD(rd, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatRR(OpFCVTSD, rd, rs1, rm), nil
}

func (p Printer) Fld(rd FReg, rs1 Reg, imm int32) (string, error) {
	return p.floatLoad(OpFLD, rd, rs1, int64(imm)), nil
}

func (p Printer) Fsd(rs1 Reg, rs2 FReg, imm int32) (string, error) {
	return p.floatStore(OpFSD, rs1, rs2, int64(imm)), nil
}

func (p Printer) FmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFMADDD, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFMSUBD, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FnmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFNMSUBD, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FnmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (string, error) {
	return p.fused(OpFNMADDD, rd, rs1, rs2, rs3, rm), nil
}

func (p Printer) FaddD(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFADDD, rd, rs1, rs2, rm), nil
}

func (p Printer) FsubD(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFSUBD, rd, rs1, rs2, rm), nil
}

func (p Printer) FmulD(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFMULD, rd, rs1, rs2, rm), nil
}

func (p Printer) FdivD(rd, rs1, rs2 FReg, rm RoundingMode) (string, error) {
	return p.floatRRR(OpFDIVD, rd, rs1, rs2, rm), nil
}

func (p Printer) FsqrtD(rd, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatRR(OpFSQRTD, rd, rs1, rm), nil
}

func (p Printer) FsgnjD(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJD, rd, rs1, rs2, noRM), nil
}

func (p Printer) FsgnjnD(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJND, rd, rs1, rs2, noRM), nil
}

func (p Printer) FsgnjxD(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFSGNJXD, rd, rs1, rs2, noRM), nil
}

func (p Printer) FminD(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFMIND, rd, rs1, rs2, noRM), nil
}

func (p Printer) FmaxD(rd, rs1, rs2 FReg) (string, error) {
	return p.floatRRR(OpFMAXD, rd, rs1, rs2, noRM), nil
}

func (p Printer) FcvtWD(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTWD, rd, rs1, rm), nil
}

func (p Printer) FcvtWuD(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTWUD, rd, rs1, rm), nil
}

func (p Printer) FcvtLD(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTLD, rd, rs1, rm), nil
}

func (p Printer) FcvtLuD(rd Reg, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatToInt(OpFCVTLUD, rd, rs1, rm), nil
}

func (p Printer) FmvXD(rd Reg, rs1 FReg) (string, error) {
	return p.floatToInt(OpFMVXD, rd, rs1, noRM), nil
}

func (p Printer) FclassD(rd Reg, rs1 FReg) (string, error) {
	return p.floatToInt(OpFCLASSD, rd, rs1, noRM), nil
}

func (p Printer) FeqD(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFEQD, rd, rs1, rs2), nil
}

func (p Printer) FltD(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFLTD, rd, rs1, rs2), nil
}

func (p Printer) FleD(rd Reg, rs1, rs2 FReg) (string, error) {
	return p.floatCompare(OpFLED, rd, rs1, rs2), nil
}

func (p Printer) FcvtDW(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTDW, rd, rs1, rm), nil
}

func (p Printer) FcvtDWu(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTDWU, rd, rs1, rm), nil
}

func (p Printer) FcvtDL(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTDL, rd, rs1, rm), nil
}

func (p Printer) FcvtDLu(rd FReg, rs1 Reg, rm RoundingMode) (string, error) {
	return p.intToFloat(OpFCVTDLU, rd, rs1, rm), nil
}

func (p Printer) FmvDX(rd FReg, rs1 Reg) (string, error) {
	return p.intToFloat(OpFMVDX, rd, rs1, noRM), nil
}

func (p Printer) FcvtDS(rd, rs1 FReg, rm RoundingMode) (string, error) {
	return p.floatRR(OpFCVTDS, rd, rs1, rm), nil
}

func (p Printer) CAddi4spn(rd Reg, uimm uint16) (string, error) {
	return p.addi4spn(OpCADDI4SPN, rd, int64(uimm)), nil
}

func (p Printer) CFld(rd FReg, rs1 Reg, uimm uint16) (string, error) {
	return p.floatLoad(OpCFLD, rd, rs1, int64(uimm)), nil
}

func (p Printer) CLw(rd, rs1 Reg, uimm uint16) (string, error) {
	return p.memory(OpCLW, rd, rs1, int64(uimm)), nil
}

func (p Printer) CLd(rd, rs1 Reg, uimm uint16) (string, error) {
	return p.memory(OpCLD, rd, rs1, int64(uimm)), nil
}

func (p Printer) CFsd(rs1 Reg, rs2 FReg, uimm uint16) (string, error) {
	return p.floatStore(OpCFSD, rs1, rs2, int64(uimm)), nil
}

func (p Printer) CSw(rs1, rs2 Reg, uimm uint16) (string, error) {
	return p.store(OpCSW, rs1, rs2, int64(uimm)), nil
}

func (p Printer) CSd(rs1, rs2 Reg, uimm uint16) (string, error) {
	return p.store(OpCSD, rs1, rs2, int64(uimm)), nil
}

func (p Printer) CNop() (string, error) {
	return p.bare(OpCNOP), nil
}

func (p Printer) CAddi(rd Reg, imm int8) (string, error) {
	return p.regImm(OpCADDI, rd, int64(imm)), nil
}

func (p Printer) CAddiw(rd Reg, imm int8) (string, error) {
	return p.regImm(OpCADDIW, rd, int64(imm)), nil
}

func (p Printer) CLi(rd Reg, imm int8) (string, error) {
	return p.regImm(OpCLI, rd, int64(imm)), nil
}

func (p Printer) CAddi16sp(imm int16) (string, error) {
	return p.addi16sp(OpCADDI16SP, int64(imm)), nil
}

func (p Printer) CLui(rd Reg, imm int32) (string, error) {
	return p.upper(OpCLUI, rd, int64(imm)), nil
}

func (p Printer) CSrli(rd Reg, shamt uint8) (string, error) {
	return p.regImm(OpCSRLI, rd, int64(shamt)), nil
}

func (p Printer) CSrai(rd Reg, shamt uint8) (string, error) {
	return p.regImm(OpCSRAI, rd, int64(shamt)), nil
}

func (p Printer) CAndi(rd Reg, imm int8) (string, error) {
	return p.regImm(OpCANDI, rd, int64(imm)), nil
}

func (p Printer) CSub(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCSUB, rd, rs2), nil
}

func (p Printer) CXor(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCXOR, rd, rs2), nil
}

func (p Printer) COr(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCOR, rd, rs2), nil
}

func (p Printer) CAnd(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCAND, rd, rs2), nil
}

func (p Printer) CSubw(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCSUBW, rd, rs2), nil
}

func (p Printer) CAddw(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCADDW, rd, rs2), nil
}

func (p Printer) CJ(offset int16) (string, error) {
	return p.offset(OpCJ, int64(offset)), nil
}

func (p Printer) CBeqz(rs1 Reg, offset int16) (string, error) {
	return p.regOffset(OpCBEQZ, rs1, int64(offset)), nil
}

func (p Printer) CBnez(rs1 Reg, offset int16) (string, error) {
	return p.regOffset(OpCBNEZ, rs1, int64(offset)), nil
}

func (p Printer) CSlli(rd Reg, shamt uint8) (string, error) {
	return p.regImm(OpCSLLI, rd, int64(shamt)), nil
}

func (p Printer) CFldsp(rd FReg, uimm uint16) (string, error) {
	return p.floatStackLoad(OpCFLDSP, rd, int64(uimm)), nil
}

func (p Printer) CLwsp(rd Reg, uimm uint16) (string, error) {
	return p.stackLoad(OpCLWSP, rd, int64(uimm)), nil
}

func (p Printer) CLdsp(rd Reg, uimm uint16) (string, error) {
	return p.stackLoad(OpCLDSP, rd, int64(uimm)), nil
}

func (p Printer) CJr(rs1 Reg) (string, error) {
	return p.reg(OpCJR, rs1), nil
}

func (p Printer) CMv(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCMV, rd, rs2), nil
}

func (p Printer) CEbreak() (string, error) {
	return p.bare(OpCEBREAK), nil
}

func (p Printer) CJalr(rs1 Reg) (string, error) {
	return p.reg(OpCJALR, rs1), nil
}

func (p Printer) CAdd(rd, rs2 Reg) (string, error) {
	return p.regReg(OpCADD, rd, rs2), nil
}

func (p Printer) CFsdsp(rs2 FReg, uimm uint16) (string, error) {
	return p.floatStackStore(OpCFSDSP, rs2, int64(uimm)), nil
}

func (p Printer) CSwsp(rs2 Reg, uimm uint16) (string, error) {
	return p.stackStore(OpCSWSP, rs2, int64(uimm)), nil
}

func (p Printer) CSdsp(rs2 Reg, uimm uint16) (string, error) {
	return p.stackStore(OpCSDSP, rs2, int64(uimm)), nil
}

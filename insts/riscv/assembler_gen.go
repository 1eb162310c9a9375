package riscv

func (a Assembler) Lui(rd Reg, imm int32) (uint32, error) {
	return a.encU(OpLUI, rd, imm)
}

func (a Assembler) Auipc(rd Reg, imm int32) (uint32, error) {
	return a.encU(OpAUIPC, rd, imm)
}

func (a Assembler) Jal(rd Reg, offset int32) (uint32, error) {
	return a.encJ(OpJAL, rd, offset)
}

func (a Assembler) Jalr(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpJALR, rd, rs1, imm)
}

func (a Assembler) Beq(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBEQ, rs1, rs2, offset)
}

func (a Assembler) Bne(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBNE, rs1, rs2, offset)
}

func (a Assembler) Blt(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBLT, rs1, rs2, offset)
}

func (a Assembler) Bge(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBGE, rs1, rs2, offset)
}

func (a Assembler) Bltu(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBLTU, rs1, rs2, offset)
}

func (a Assembler) Bgeu(rs1, rs2 Reg, offset int32) (uint32, error) {
	return a.encB(OpBGEU, rs1, rs2, offset)
}

func (a Assembler) Lb(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLB, rd, rs1, imm)
}

func (a Assembler) Lh(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLH, rd, rs1, imm)
}

func (a Assembler) Lw(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLW, rd, rs1, imm)
}

func (a Assembler) Ld(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLD, rd, rs1, imm)
}

func (a Assembler) Lbu(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLBU, rd, rs1, imm)
}

func (a Assembler) Lhu(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLHU, rd, rs1, imm)
}

func (a Assembler) Lwu(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpLWU, rd, rs1, imm)
}

func (a Assembler) Sb(rs1, rs2 Reg, imm int32) (uint32, error) {
	return a.encS(OpSB, rs1, rs2, imm)
}

func (a Assembler) Sh(rs1, rs2 Reg, imm int32) (uint32, error) {
	return a.encS(OpSH, rs1, rs2, imm)
}

func (a Assembler) Sw(rs1, rs2 Reg, imm int32) (uint32, error) {
	return a.encS(OpSW, rs1, rs2, imm)
}

func (a Assembler) Sd(rs1, rs2 Reg, imm int32) (uint32, error) {
	return a.encS(OpSD, rs1, rs2, imm)
}

func (a Assembler) Addi(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpADDI, rd, rs1, imm)
}

func (a Assembler) Slti(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpSLTI, rd, rs1, imm)
}

func (a Assembler) Sltiu(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpSLTIU, rd, rs1, imm)
}

func (a Assembler) Xori(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpXORI, rd, rs1, imm)
}

func (a Assembler) Ori(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpORI, rd, rs1, imm)
}

func (a Assembler) Andi(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpANDI, rd, rs1, imm)
}

func (a Assembler) Slli(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShift(OpSLLI, rd, rs1, shamt)
}

func (a Assembler) Srli(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShift(OpSRLI, rd, rs1, shamt)
}

func (a Assembler) Srai(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShift(OpSRAI, rd, rs1, shamt)
}

func (a Assembler) Add(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpADD, rd, rs1, rs2)
}

func (a Assembler) Sub(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSUB, rd, rs1, rs2)
}

func (a Assembler) Sll(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSLL, rd, rs1, rs2)
}

func (a Assembler) Slt(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSLT, rd, rs1, rs2)
}

func (a Assembler) Sltu(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSLTU, rd, rs1, rs2)
}

func (a Assembler) Xor(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpXOR, rd, rs1, rs2)
}

func (a Assembler) Srl(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSRL, rd, rs1, rs2)
}

func (a Assembler) Sra(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSRA, rd, rs1, rs2)
}

func (a Assembler) Or(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpOR, rd, rs1, rs2)
}

func (a Assembler) And(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpAND, rd, rs1, rs2)
}

func (a Assembler) Fence(fm, pred, succ uint8) (uint32, error) {
	return a.encFence(OpFENCE, fm, pred, succ)
}

func (a Assembler) FenceI() (uint32, error) {
	return a.encFixed(OpFENCEI)
}

func (a Assembler) Ecall() (uint32, error) {
	return a.encFixed(OpECALL)
}

func (a Assembler) Ebreak() (uint32, error) {
	return a.encFixed(OpEBREAK)
}

func (a Assembler) Addiw(rd, rs1 Reg, imm int32) (uint32, error) {
	return a.encI(OpADDIW, rd, rs1, imm)
}

func (a Assembler) Slliw(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShiftW(OpSLLIW, rd, rs1, shamt)
}

func (a Assembler) Srliw(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShiftW(OpSRLIW, rd, rs1, shamt)
}

func (a Assembler) Sraiw(rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.encShiftW(OpSRAIW, rd, rs1, shamt)
}

func (a Assembler) Addw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpADDW, rd, rs1, rs2)
}

func (a Assembler) Subw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSUBW, rd, rs1, rs2)
}

func (a Assembler) Sllw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSLLW, rd, rs1, rs2)
}

func (a Assembler) Srlw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSRLW, rd, rs1, rs2)
}

func (a Assembler) Sraw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpSRAW, rd, rs1, rs2)
}

func (a Assembler) Csrrw(rd, rs1 Reg, csr uint16) (uint32, error) {
	return a.encCSR(OpCSRRW, rd, rs1, csr)
}

func (a Assembler) Csrrs(rd, rs1 Reg, csr uint16) (uint32, error) {
	return a.encCSR(OpCSRRS, rd, rs1, csr)
}

func (a Assembler) Csrrc(rd, rs1 Reg, csr uint16) (uint32, error) {
	return a.encCSR(OpCSRRC, rd, rs1, csr)
}

func (a Assembler) Csrrwi(rd Reg, uimm uint8, csr uint16) (uint32, error) {
	return a.encCSRI(OpCSRRWI, rd, uimm, csr)
}

func (a Assembler) Csrrsi(rd Reg, uimm uint8, csr uint16) (uint32, error) {
	return a.encCSRI(OpCSRRSI, rd, uimm, csr)
}

func (a Assembler) Csrrci(rd Reg, uimm uint8, csr uint16) (uint32, error) {
	return a.encCSRI(OpCSRRCI, rd, uimm, csr)
}

func (a Assembler) Mul(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpMUL, rd, rs1, rs2)
}

func (a Assembler) Mulh(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpMULH, rd, rs1, rs2)
}

func (a Assembler) Mulhsu(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpMULHSU, rd, rs1, rs2)
}

func (a Assembler) Mulhu(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpMULHU, rd, rs1, rs2)
}

func (a Assembler) Div(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpDIV, rd, rs1, rs2)
}

func (a Assembler) Divu(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpDIVU, rd, rs1, rs2)
}

func (a Assembler) Rem(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpREM, rd, rs1, rs2)
}

func (a Assembler) Remu(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpREMU, rd, rs1, rs2)
}

func (a Assembler) Mulw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpMULW, rd, rs1, rs2)
}

func (a Assembler) Divw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpDIVW, rd, rs1, rs2)
}

func (a Assembler) Divuw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpDIVUW, rd, rs1, rs2)
}

func (a Assembler) Remw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpREMW, rd, rs1, rs2)
}

func (a Assembler) Remuw(rd, rs1, rs2 Reg) (uint32, error) {
	return a.encR(OpREMUW, rd, rs1, rs2)
}

func (a Assembler) Flw(rd FReg, rs1 Reg, imm int32) (uint32, error) {
	return a.encFloatLoad(OpFLW, rd, rs1, imm)
}

func (a Assembler) Fsw(rs1 Reg, rs2 FReg, imm int32) (uint32, error) {
	return a.encFloatStore(OpFSW, rs1, rs2, imm)
}

func (a Assembler) FmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFMADDS, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFMSUBS, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FnmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFNMSUBS, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FnmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFNMADDS, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FaddS(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFADDS, rd, rs1, rs2, rm)
}

func (a Assembler) FsubS(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFSUBS, rd, rs1, rs2, rm)
}

func (a Assembler) FmulS(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFMULS, rd, rs1, rs2, rm)
}

func (a Assembler) FdivS(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFDIVS, rd, rs1, rs2, rm)
}

func (a Assembler) FsqrtS(rd, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRR(OpFSQRTS, rd, rs1, rm)
}

func (a Assembler) FsgnjS(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJS, rd, rs1, rs2, noRM)
}

func (a Assembler) FsgnjnS(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJNS, rd, rs1, rs2, noRM)
}

func (a Assembler) FsgnjxS(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJXS, rd, rs1, rs2, noRM)
}

func (a Assembler) FminS(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFMINS, rd, rs1, rs2, noRM)
}

func (a Assembler) FmaxS(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFMAXS, rd, rs1, rs2, noRM)
}

func (a Assembler) FcvtWS(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTWS, rd, rs1, rm)
}

func (a Assembler) FcvtWuS(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTWUS, rd, rs1, rm)
}

func (a Assembler) FcvtLS(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTLS, rd, rs1, rm)
}

func (a Assembler) FcvtLuS(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTLUS, rd, rs1, rm)
}

func (a Assembler) FmvXW(rd Reg, rs1 FReg) (uint32, error) {
	return a.encFloatToInt(OpFMVXW, rd, rs1, noRM)
}

func (a Assembler) FclassS(rd Reg, rs1 FReg) (uint32, error) {
	return a.encFloatToInt(OpFCLASSS, rd, rs1, noRM)
}

func (a Assembler) FeqS(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFEQS, rd, rs1, rs2)
}

func (a Assembler) FltS(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFLTS, rd, rs1, rs2)
}

func (a Assembler) FleS(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFLES, rd, rs1, rs2)
}

func (a Assembler) FcvtSW(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTSW, rd, rs1, rm)
}

func (a Assembler) FcvtSWu(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTSWU, rd, rs1, rm)
}

func (a Assembler) FcvtSL(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTSL, rd, rs1, rm)
}

func (a Assembler) FcvtSLu(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTSLU, rd, rs1, rm)
}

func (a Assembler) FmvWX(rd FReg, rs1 Reg) (uint32, error) {
	return a.encIntToFloat(OpFMVWX, rd, rs1, noRM)
}

func (a Assembler) FcvtSD(rd, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRR(OpFCVTSD, rd, rs1, rm)
}

func (a Assembler) Fld(rd FReg, rs1 Reg, imm int32) (uint32, error) {
	return a.encFloatLoad(OpFLD, rd, rs1, imm)
}

func (a Assembler) Fsd(rs1 Reg, rs2 FReg, imm int32) (uint32, error) {
	return a.encFloatStore(OpFSD, rs1, rs2, imm)
}

func (a Assembler) FmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFMADDD, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFMSUBD, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FnmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFNMSUBD, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FnmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	return a.encR4(OpFNMADDD, rd, rs1, rs2, rs3, rm)
}

func (a Assembler) FaddD(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFADDD, rd, rs1, rs2, rm)
}

func (a Assembler) FsubD(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFSUBD, rd, rs1, rs2, rm)
}

func (a Assembler) FmulD(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFMULD, rd, rs1, rs2, rm)
}

func (a Assembler) FdivD(rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRRR(OpFDIVD, rd, rs1, rs2, rm)
}

func (a Assembler) FsqrtD(rd, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRR(OpFSQRTD, rd, rs1, rm)
}

func (a Assembler) FsgnjD(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJD, rd, rs1, rs2, noRM)
}

func (a Assembler) FsgnjnD(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJND, rd, rs1, rs2, noRM)
}

func (a Assembler) FsgnjxD(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFSGNJXD, rd, rs1, rs2, noRM)
}

func (a Assembler) FminD(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFMIND, rd, rs1, rs2, noRM)
}

func (a Assembler) FmaxD(rd, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatRRR(OpFMAXD, rd, rs1, rs2, noRM)
}

func (a Assembler) FcvtWD(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTWD, rd, rs1, rm)
}

func (a Assembler) FcvtWuD(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTWUD, rd, rs1, rm)
}

func (a Assembler) FcvtLD(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTLD, rd, rs1, rm)
}

func (a Assembler) FcvtLuD(rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatToInt(OpFCVTLUD, rd, rs1, rm)
}

func (a Assembler) FmvXD(rd Reg, rs1 FReg) (uint32, error) {
	return a.encFloatToInt(OpFMVXD, rd, rs1, noRM)
}

func (a Assembler) FclassD(rd Reg, rs1 FReg) (uint32, error) {
	return a.encFloatToInt(OpFCLASSD, rd, rs1, noRM)
}

func (a Assembler) FeqD(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFEQD, rd, rs1, rs2)
}

func (a Assembler) FltD(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFLTD, rd, rs1, rs2)
}

func (a Assembler) FleD(rd Reg, rs1, rs2 FReg) (uint32, error) {
	return a.encFloatCompare(OpFLED, rd, rs1, rs2)
}

func (a Assembler) FcvtDW(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTDW, rd, rs1, rm)
}

func (a Assembler) FcvtDWu(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTDWU, rd, rs1, rm)
}

func (a Assembler) FcvtDL(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTDL, rd, rs1, rm)
}

func (a Assembler) FcvtDLu(rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	return a.encIntToFloat(OpFCVTDLU, rd, rs1, rm)
}

func (a Assembler) FmvDX(rd FReg, rs1 Reg) (uint32, error) {
	return a.encIntToFloat(OpFMVDX, rd, rs1, noRM)
}

func (a Assembler) FcvtDS(rd, rs1 FReg, rm RoundingMode) (uint32, error) {
	return a.encFloatRR(OpFCVTDS, rd, rs1, rm)
}

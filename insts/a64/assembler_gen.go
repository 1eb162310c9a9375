package a64

func (a Assembler) Adr(rd Reg, offset int64) (uint32, error) {
	return a.encPCRel(OpADR, rd, offset)
}

func (a Assembler) Adrp(rd Reg, offset int64) (uint32, error) {
	return a.encPCRel(OpADRP, rd, offset)
}

func (a Assembler) AddImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encAddSubImm(OpADDImm, sz, rd, rn, imm, shift)
}

func (a Assembler) AddsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encAddSubImm(OpADDSImm, sz, rd, rn, imm, shift)
}

func (a Assembler) SubImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encAddSubImm(OpSUBImm, sz, rd, rn, imm, shift)
}

func (a Assembler) SubsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encAddSubImm(OpSUBSImm, sz, rd, rn, imm, shift)
}

func (a Assembler) Addg(rd, rn Reg, offset uint16, tag uint8) (uint32, error) {
	return a.encTags(OpADDG, rd, rn, offset, tag)
}

func (a Assembler) Subg(rd, rn Reg, offset uint16, tag uint8) (uint32, error) {
	return a.encTags(OpSUBG, rd, rn, offset, tag)
}

func (a Assembler) AndImm(sz Size, rd, rn Reg, imm uint64) (uint32, error) {
	return a.encLogicalImm(OpANDImm, sz, rd, rn, imm)
}

func (a Assembler) OrrImm(sz Size, rd, rn Reg, imm uint64) (uint32, error) {
	return a.encLogicalImm(OpORRImm, sz, rd, rn, imm)
}

func (a Assembler) EorImm(sz Size, rd, rn Reg, imm uint64) (uint32, error) {
	return a.encLogicalImm(OpEORImm, sz, rd, rn, imm)
}

func (a Assembler) AndsImm(sz Size, rd, rn Reg, imm uint64) (uint32, error) {
	return a.encLogicalImm(OpANDSImm, sz, rd, rn, imm)
}

func (a Assembler) Movn(sz Size, rd Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encMoveWide(OpMOVN, sz, rd, imm, shift)
}

func (a Assembler) Movz(sz Size, rd Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encMoveWide(OpMOVZ, sz, rd, imm, shift)
}

func (a Assembler) Movk(sz Size, rd Reg, imm uint16, shift uint8) (uint32, error) {
	return a.encMoveWide(OpMOVK, sz, rd, imm, shift)
}

func (a Assembler) Sbfm(sz Size, rd, rn Reg, immr, imms uint8) (uint32, error) {
	return a.encBitfield(OpSBFM, sz, rd, rn, immr, imms)
}

func (a Assembler) Bfm(sz Size, rd, rn Reg, immr, imms uint8) (uint32, error) {
	return a.encBitfield(OpBFM, sz, rd, rn, immr, imms)
}

func (a Assembler) Ubfm(sz Size, rd, rn Reg, immr, imms uint8) (uint32, error) {
	return a.encBitfield(OpUBFM, sz, rd, rn, immr, imms)
}

func (a Assembler) Extr(sz Size, rd, rn, rm Reg, lsb uint8) (uint32, error) {
	return a.encExtract(OpEXTR, sz, rd, rn, rm, lsb)
}

func (a Assembler) Udiv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpUDIV, sz, rd, rn, rm)
}

func (a Assembler) Sdiv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSDIV, sz, rd, rn, rm)
}

func (a Assembler) Lslv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpLSLV, sz, rd, rn, rm)
}

func (a Assembler) Lsrv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpLSRV, sz, rd, rn, rm)
}

func (a Assembler) Asrv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpASRV, sz, rd, rn, rm)
}

func (a Assembler) Rorv(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpRORV, sz, rd, rn, rm)
}

func (a Assembler) Crc32b(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32B, rd, rn, rm)
}

func (a Assembler) Crc32h(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32H, rd, rn, rm)
}

func (a Assembler) Crc32w(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32W, rd, rn, rm)
}

func (a Assembler) Crc32x(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32X, rd, rn, rm)
}

func (a Assembler) Crc32cb(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32CB, rd, rn, rm)
}

func (a Assembler) Crc32ch(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32CH, rd, rn, rm)
}

func (a Assembler) Crc32cw(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32CW, rd, rn, rm)
}

func (a Assembler) Crc32cx(rd, rn, rm Reg) (uint32, error) {
	return a.encCRC(OpCRC32CX, rd, rn, rm)
}

func (a Assembler) Subp(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSUBP, X, rd, rn, rm)
}

func (a Assembler) Subps(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSUBPS, X, rd, rn, rm)
}

func (a Assembler) Irg(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpIRG, X, rd, rn, rm)
}

func (a Assembler) Gmi(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpGMI, X, rd, rn, rm)
}

func (a Assembler) Pacga(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpPACGA, X, rd, rn, rm)
}

func (a Assembler) Rbit(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpRBIT, sz, rd, rn)
}

func (a Assembler) Rev16(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpREV16, sz, rd, rn)
}

func (a Assembler) Rev32(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpREV32, sz, rd, rn)
}

func (a Assembler) Rev(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpREV, sz, rd, rn)
}

func (a Assembler) Clz(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpCLZ, sz, rd, rn)
}

func (a Assembler) Cls(sz Size, rd, rn Reg) (uint32, error) {
	return a.encRR(OpCLS, sz, rd, rn)
}

func (a Assembler) Pacia(rd, rn Reg) (uint32, error) {
	return a.encRR(OpPACIA, X, rd, rn)
}

func (a Assembler) Pacib(rd, rn Reg) (uint32, error) {
	return a.encRR(OpPACIB, X, rd, rn)
}

func (a Assembler) Pacda(rd, rn Reg) (uint32, error) {
	return a.encRR(OpPACDA, X, rd, rn)
}

func (a Assembler) Pacdb(rd, rn Reg) (uint32, error) {
	return a.encRR(OpPACDB, X, rd, rn)
}

func (a Assembler) Autia(rd, rn Reg) (uint32, error) {
	return a.encRR(OpAUTIA, X, rd, rn)
}

func (a Assembler) Autib(rd, rn Reg) (uint32, error) {
	return a.encRR(OpAUTIB, X, rd, rn)
}

func (a Assembler) Autda(rd, rn Reg) (uint32, error) {
	return a.encRR(OpAUTDA, X, rd, rn)
}

func (a Assembler) Autdb(rd, rn Reg) (uint32, error) {
	return a.encRR(OpAUTDB, X, rd, rn)
}

func (a Assembler) Paciza(rd Reg) (uint32, error) {
	return a.encPACZ(OpPACIZA, X, rd)
}

func (a Assembler) Pacizb(rd Reg) (uint32, error) {
	return a.encPACZ(OpPACIZB, X, rd)
}

func (a Assembler) Pacdza(rd Reg) (uint32, error) {
	return a.encPACZ(OpPACDZA, X, rd)
}

func (a Assembler) Pacdzb(rd Reg) (uint32, error) {
	return a.encPACZ(OpPACDZB, X, rd)
}

func (a Assembler) Autiza(rd Reg) (uint32, error) {
	return a.encPACZ(OpAUTIZA, X, rd)
}

func (a Assembler) Autizb(rd Reg) (uint32, error) {
	return a.encPACZ(OpAUTIZB, X, rd)
}

func (a Assembler) Autdza(rd Reg) (uint32, error) {
	return a.encPACZ(OpAUTDZA, X, rd)
}

func (a Assembler) Autdzb(rd Reg) (uint32, error) {
	return a.encPACZ(OpAUTDZB, X, rd)
}

func (a Assembler) Xpaci(rd Reg) (uint32, error) {
	return a.encPACZ(OpXPACI, X, rd)
}

func (a Assembler) Xpacd(rd Reg) (uint32, error) {
	return a.encPACZ(OpXPACD, X, rd)
}

func (a Assembler) And(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpAND, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Bic(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpBIC, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Orr(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpORR, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Orn(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpORN, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Eor(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpEOR, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Eon(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpEON, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Ands(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpANDS, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Bics(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpBICS, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Add(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpADD, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Adds(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpADDS, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Sub(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpSUB, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) Subs(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	return a.encShifted(OpSUBS, sz, rd, rn, rm, shift, amount)
}

func (a Assembler) AddExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (uint32, error) {
	return a.encExtended(OpADDExt, sz, rd, rn, rm, ext, amount)
}

func (a Assembler) AddsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (uint32, error) {
	return a.encExtended(OpADDSExt, sz, rd, rn, rm, ext, amount)
}

func (a Assembler) SubExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (uint32, error) {
	return a.encExtended(OpSUBExt, sz, rd, rn, rm, ext, amount)
}

func (a Assembler) SubsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (uint32, error) {
	return a.encExtended(OpSUBSExt, sz, rd, rn, rm, ext, amount)
}

func (a Assembler) Adc(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpADC, sz, rd, rn, rm)
}

func (a Assembler) Adcs(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpADCS, sz, rd, rn, rm)
}

func (a Assembler) Sbc(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSBC, sz, rd, rn, rm)
}

func (a Assembler) Sbcs(sz Size, rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSBCS, sz, rd, rn, rm)
}

func (a Assembler) Rmif(rn Reg, lsb, mask uint8) (uint32, error) {
	return a.encRmif(OpRMIF, rn, lsb, mask)
}

func (a Assembler) Setf8(rn Reg) (uint32, error) {
	return a.encSetf(OpSETF8, rn)
}

func (a Assembler) Setf16(rn Reg) (uint32, error) {
	return a.encSetf(OpSETF16, rn)
}

func (a Assembler) CcmnReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (uint32, error) {
	return a.encCondCompare(OpCCMNReg, sz, rn, rm, nzcv, cond)
}

func (a Assembler) CcmpReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (uint32, error) {
	return a.encCondCompare(OpCCMPReg, sz, rn, rm, nzcv, cond)
}

func (a Assembler) CcmnImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (uint32, error) {
	return a.encCondCompareImm(OpCCMNImm, sz, rn, imm, nzcv, cond)
}

func (a Assembler) CcmpImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (uint32, error) {
	return a.encCondCompareImm(OpCCMPImm, sz, rn, imm, nzcv, cond)
}

func (a Assembler) Csel(sz Size, rd, rn, rm Reg, cond Cond) (uint32, error) {
	return a.encCondSelect(OpCSEL, sz, rd, rn, rm, cond)
}

func (a Assembler) Csinc(sz Size, rd, rn, rm Reg, cond Cond) (uint32, error) {
	return a.encCondSelect(OpCSINC, sz, rd, rn, rm, cond)
}

func (a Assembler) Csinv(sz Size, rd, rn, rm Reg, cond Cond) (uint32, error) {
	return a.encCondSelect(OpCSINV, sz, rd, rn, rm, cond)
}

func (a Assembler) Csneg(sz Size, rd, rn, rm Reg, cond Cond) (uint32, error) {
	return a.encCondSelect(OpCSNEG, sz, rd, rn, rm, cond)
}

func (a Assembler) Madd(sz Size, rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpMADD, sz, rd, rn, rm, ra)
}

func (a Assembler) Msub(sz Size, rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpMSUB, sz, rd, rn, rm, ra)
}

func (a Assembler) Smaddl(rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpSMADDL, X, rd, rn, rm, ra)
}

func (a Assembler) Smsubl(rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpSMSUBL, X, rd, rn, rm, ra)
}

func (a Assembler) Smulh(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpSMULH, X, rd, rn, rm)
}

func (a Assembler) Umaddl(rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpUMADDL, X, rd, rn, rm, ra)
}

func (a Assembler) Umsubl(rd, rn, rm, ra Reg) (uint32, error) {
	return a.encDP3(OpUMSUBL, X, rd, rn, rm, ra)
}

func (a Assembler) Umulh(rd, rn, rm Reg) (uint32, error) {
	return a.encRRR(OpUMULH, X, rd, rn, rm)
}

func (a Assembler) BCond(cond Cond, offset int64) (uint32, error) {
	return a.encCondBranch(OpBCond, cond, offset)
}

func (a Assembler) BcCond(cond Cond, offset int64) (uint32, error) {
	return a.encCondBranch(OpBCCond, cond, offset)
}

func (a Assembler) B(offset int64) (uint32, error) {
	return a.encBranch(OpB, offset)
}

func (a Assembler) Bl(offset int64) (uint32, error) {
	return a.encBranch(OpBL, offset)
}

func (a Assembler) Cbz(sz Size, rt Reg, offset int64) (uint32, error) {
	return a.encCompareBranch(OpCBZ, sz, rt, offset)
}

func (a Assembler) Cbnz(sz Size, rt Reg, offset int64) (uint32, error) {
	return a.encCompareBranch(OpCBNZ, sz, rt, offset)
}

func (a Assembler) Tbz(rt Reg, bit uint8, offset int64) (uint32, error) {
	return a.encTestBranch(OpTBZ, rt, bit, offset)
}

func (a Assembler) Tbnz(rt Reg, bit uint8, offset int64) (uint32, error) {
	return a.encTestBranch(OpTBNZ, rt, bit, offset)
}

func (a Assembler) Br(rn Reg) (uint32, error) {
	return a.encBranchReg(OpBR, rn)
}

func (a Assembler) Blr(rn Reg) (uint32, error) {
	return a.encBranchReg(OpBLR, rn)
}

func (a Assembler) Ret(rn Reg) (uint32, error) {
	return a.encBranchReg(OpRET, rn)
}

func (a Assembler) Eret() (uint32, error) {
	return a.encFixed(OpERET)
}

func (a Assembler) Drps() (uint32, error) {
	return a.encFixed(OpDRPS)
}

func (a Assembler) Svc(imm uint16) (uint32, error) {
	return a.encException(OpSVC, imm)
}

func (a Assembler) Hvc(imm uint16) (uint32, error) {
	return a.encException(OpHVC, imm)
}

func (a Assembler) Smc(imm uint16) (uint32, error) {
	return a.encException(OpSMC, imm)
}

func (a Assembler) Brk(imm uint16) (uint32, error) {
	return a.encException(OpBRK, imm)
}

func (a Assembler) Hlt(imm uint16) (uint32, error) {
	return a.encException(OpHLT, imm)
}

func (a Assembler) Udf(imm uint16) (uint32, error) {
	return a.encException(OpUDF, imm)
}

func (a Assembler) Nop() (uint32, error) {
	return a.encFixed(OpNOP)
}

func (a Assembler) Yield() (uint32, error) {
	return a.encFixed(OpYIELD)
}

func (a Assembler) Wfe() (uint32, error) {
	return a.encFixed(OpWFE)
}

func (a Assembler) Wfi() (uint32, error) {
	return a.encFixed(OpWFI)
}

func (a Assembler) Sev() (uint32, error) {
	return a.encFixed(OpSEV)
}

func (a Assembler) Sevl() (uint32, error) {
	return a.encFixed(OpSEVL)
}

func (a Assembler) Hint(imm uint8) (uint32, error) {
	return a.encHint(OpHINT, imm)
}

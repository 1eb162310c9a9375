package a64

func (p Printer) Adr(rd Reg, offset int64) (string, error) {
	return p.pcRel(OpADR, rd, offset), nil
}

func (p Printer) Adrp(rd Reg, offset int64) (string, error) {
	return p.pcRel(OpADRP, rd, offset), nil
}

func (p Printer) AddImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (string, error) {
	return p.addSubImm(OpADDImm, sz, rd, rn, imm, shift), nil
}

func (p Printer) AddsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (string, error) {
	return p.addSubImm(OpADDSImm, sz, rd, rn, imm, shift), nil
}

func (p Printer) SubImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (string, error) {
	return p.addSubImm(OpSUBImm, sz, rd, rn, imm, shift), nil
}

func (p Printer) SubsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (string, error) {
	return p.addSubImm(OpSUBSImm, sz, rd, rn, imm, shift), nil
}

func (p Printer) Addg(rd, rn Reg, offset uint16, tag uint8) (string, error) {
	return p.tags(OpADDG, rd, rn, offset, tag), nil
}

func (p Printer) Subg(rd, rn Reg, offset uint16, tag uint8) (string, error) {
	return p.tags(OpSUBG, rd, rn, offset, tag), nil
}

func (p Printer) AndImm(sz Size, rd, rn Reg, imm uint64) (string, error) {
	return p.logicalImm(OpANDImm, sz, rd, rn, imm), nil
}

func (p Printer) OrrImm(sz Size, rd, rn Reg, imm uint64) (string, error) {
	return p.logicalImm(OpORRImm, sz, rd, rn, imm), nil
}

func (p Printer) EorImm(sz Size, rd, rn Reg, imm uint64) (string, error) {
	return p.logicalImm(OpEORImm, sz, rd, rn, imm), nil
}

func (p Printer) AndsImm(sz Size, rd, rn Reg, imm uint64) (string, error) {
	return p.logicalImm(OpANDSImm, sz, rd, rn, imm), nil
}

func (p Printer) Movn(sz Size, rd Reg, imm uint16, shift uint8) (string, error) {
	return p.moveWide(OpMOVN, sz, rd, imm, shift), nil
}

func (p Printer) Movz(sz Size, rd Reg, imm uint16, shift uint8) (string, error) {
	return p.moveWide(OpMOVZ, sz, rd, imm, shift), nil
}

func (p Printer) Movk(sz Size, rd Reg, imm uint16, shift uint8) (string, error) {
	return p.moveWide(OpMOVK, sz, rd, imm, shift), nil
}

func (p Printer) Sbfm(sz Size, rd, rn Reg, immr, imms uint8) (string, error) {
	return p.bitfield(OpSBFM, sz, rd, rn, immr, imms), nil
}

func (p Printer) Bfm(sz Size, rd, rn Reg, immr, imms uint8) (string, error) {
	return p.bitfield(OpBFM, sz, rd, rn, immr, imms), nil
}

func (p Printer) Ubfm(sz Size, rd, rn Reg, immr, imms uint8) (string, error) {
	return p.bitfield(OpUBFM, sz, rd, rn, immr, imms), nil
}

func (p Printer) Extr(sz Size, rd, rn, rm Reg, lsb uint8) (string, error) {
	return p.extract(OpEXTR, sz, rd, rn, rm, lsb), nil
}

func (p Printer) Udiv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpUDIV, sz, rd, rn, rm), nil
}

func (p Printer) Sdiv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSDIV, sz, rd, rn, rm), nil
}

func (p Printer) Lslv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpLSLV, sz, rd, rn, rm), nil
}

func (p Printer) Lsrv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpLSRV, sz, rd, rn, rm), nil
}

func (p Printer) Asrv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpASRV, sz, rd, rn, rm), nil
}

func (p Printer) Rorv(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpRORV, sz, rd, rn, rm), nil
}

func (p Printer) Crc32b(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32B, rd, rn, rm), nil
}

func (p Printer) Crc32h(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32H, rd, rn, rm), nil
}

func (p Printer) Crc32w(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32W, rd, rn, rm), nil
}

func (p Printer) Crc32x(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32X, rd, rn, rm), nil
}

func (p Printer) Crc32cb(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32CB, rd, rn, rm), nil
}

func (p Printer) Crc32ch(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32CH, rd, rn, rm), nil
}

func (p Printer) Crc32cw(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32CW, rd, rn, rm), nil
}

func (p Printer) Crc32cx(rd, rn, rm Reg) (string, error) {
	return p.crc(OpCRC32CX, rd, rn, rm), nil
}

func (p Printer) Subp(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSUBP, X, rd, rn, rm), nil
}

func (p Printer) Subps(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSUBPS, X, rd, rn, rm), nil
}

func (p Printer) Irg(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpIRG, X, rd, rn, rm), nil
}

func (p Printer) Gmi(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpGMI, X, rd, rn, rm), nil
}

func (p Printer) Pacga(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpPACGA, X, rd, rn, rm), nil
}

func (p Printer) Rbit(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpRBIT, sz, rd, rn), nil
}

func (p Printer) Rev16(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpREV16, sz, rd, rn), nil
}

func (p Printer) Rev32(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpREV32, sz, rd, rn), nil
}

func (p Printer) Rev(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpREV, sz, rd, rn), nil
}

func (p Printer) Clz(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpCLZ, sz, rd, rn), nil
}

func (p Printer) Cls(sz Size, rd, rn Reg) (string, error) {
	return p.regs2(OpCLS, sz, rd, rn), nil
}

func (p Printer) Pacia(rd, rn Reg) (string, error) {
	return p.regs2(OpPACIA, X, rd, rn), nil
}

func (p Printer) Pacib(rd, rn Reg) (string, error) {
	return p.regs2(OpPACIB, X, rd, rn), nil
}

func (p Printer) Pacda(rd, rn Reg) (string, error) {
	return p.regs2(OpPACDA, X, rd, rn), nil
}

func (p Printer) Pacdb(rd, rn Reg) (string, error) {
	return p.regs2(OpPACDB, X, rd, rn), nil
}

func (p Printer) Autia(rd, rn Reg) (string, error) {
	return p.regs2(OpAUTIA, X, rd, rn), nil
}

func (p Printer) Autib(rd, rn Reg) (string, error) {
	return p.regs2(OpAUTIB, X, rd, rn), nil
}

func (p Printer) Autda(rd, rn Reg) (string, error) {
	return p.regs2(OpAUTDA, X, rd, rn), nil
}

func (p Printer) Autdb(rd, rn Reg) (string, error) {
	return p.regs2(OpAUTDB, X, rd, rn), nil
}

func (p Printer) Paciza(rd Reg) (string, error) {
	return p.regs1(OpPACIZA, X, rd), nil
}

func (p Printer) Pacizb(rd Reg) (string, error) {
	return p.regs1(OpPACIZB, X, rd), nil
}

func (p Printer) Pacdza(rd Reg) (string, error) {
	return p.regs1(OpPACDZA, X, rd), nil
}

func (p Printer) Pacdzb(rd Reg) (string, error) {
	return p.regs1(OpPACDZB, X, rd), nil
}

func (p Printer) Autiza(rd Reg) (string, error) {
	return p.regs1(OpAUTIZA, X, rd), nil
}

func (p Printer) Autizb(rd Reg) (string, error) {
	return p.regs1(OpAUTIZB, X, rd), nil
}

func (p Printer) Autdza(rd Reg) (string, error) {
	return p.regs1(OpAUTDZA, X, rd), nil
}

func (p Printer) Autdzb(rd Reg) (string, error) {
	return p.regs1(OpAUTDZB, X, rd), nil
}

func (p Printer) Xpaci(rd Reg) (string, error) {
	return p.regs1(OpXPACI, X, rd), nil
}

func (p Printer) Xpacd(rd Reg) (string, error) {
	return p.regs1(OpXPACD, X, rd), nil
}

func (p Printer) And(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpAND, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Bic(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpBIC, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Orr(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpORR, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Orn(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpORN, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Eor(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpEOR, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Eon(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpEON, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Ands(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpANDS, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Bics(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpBICS, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Add(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpADD, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Adds(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpADDS, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Sub(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpSUB, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) Subs(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (string, error) {
	return p.shifted(OpSUBS, sz, rd, rn, rm, shift, amount), nil
}

func (p Printer) AddExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (string, error) {
	return p.extended(OpADDExt, sz, rd, rn, rm, ext, amount), nil
}

func (p Printer) AddsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (string, error) {
	return p.extended(OpADDSExt, sz, rd, rn, rm, ext, amount), nil
}

func (p Printer) SubExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (string, error) {
	return p.extended(OpSUBExt, sz, rd, rn, rm, ext, amount), nil
}

func (p Printer) SubsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (string, error) {
	return p.extended(OpSUBSExt, sz, rd, rn, rm, ext, amount), nil
}

func (p Printer) Adc(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpADC, sz, rd, rn, rm), nil
}

func (p Printer) Adcs(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpADCS, sz, rd, rn, rm), nil
}

func (p Printer) Sbc(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSBC, sz, rd, rn, rm), nil
}

func (p Printer) Sbcs(sz Size, rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSBCS, sz, rd, rn, rm), nil
}

func (p Printer) Rmif(rn Reg, lsb, mask uint8) (string, error) {
	return p.rmif(OpRMIF, rn, lsb, mask), nil
}

func (p Printer) Setf8(rn Reg) (string, error) {
	return p.setf(OpSETF8, rn), nil
}

func (p Printer) Setf16(rn Reg) (string, error) {
	return p.setf(OpSETF16, rn), nil
}

func (p Printer) CcmnReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (string, error) {
	return p.condCompare(OpCCMNReg, sz, rn, rm, nzcv, cond), nil
}

func (p Printer) CcmpReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (string, error) {
	return p.condCompare(OpCCMPReg, sz, rn, rm, nzcv, cond), nil
}

func (p Printer) CcmnImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (string, error) {
	return p.condCompareImm(OpCCMNImm, sz, rn, imm, nzcv, cond), nil
}

func (p Printer) CcmpImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (string, error) {
	return p.condCompareImm(OpCCMPImm, sz, rn, imm, nzcv, cond), nil
}

func (p Printer) Csel(sz Size, rd, rn, rm Reg, cond Cond) (string, error) {
	return p.condSelect(OpCSEL, sz, rd, rn, rm, cond), nil
}

func (p Printer) Csinc(sz Size, rd, rn, rm Reg, cond Cond) (string, error) {
	return p.condSelect(OpCSINC, sz, rd, rn, rm, cond), nil
}

func (p Printer) Csinv(sz Size, rd, rn, rm Reg, cond Cond) (string, error) {
	return p.condSelect(OpCSINV, sz, rd, rn, rm, cond), nil
}

func (p Printer) Csneg(sz Size, rd, rn, rm Reg, cond Cond) (string, error) {
	return p.condSelect(OpCSNEG, sz, rd, rn, rm, cond), nil
}

func (p Printer) Madd(sz Size, rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpMADD, sz, rd, rn, rm, ra), nil
}

func (p Printer) Msub(sz Size, rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpMSUB, sz, rd, rn, rm, ra), nil
}

func (p Printer) Smaddl(rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpSMADDL, X, rd, rn, rm, ra), nil
}

func (p Printer) Smsubl(rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpSMSUBL, X, rd, rn, rm, ra), nil
}

func (p Printer) Smulh(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpSMULH, X, rd, rn, rm), nil
}

func (p Printer) Umaddl(rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpUMADDL, X, rd, rn, rm, ra), nil
}

func (p Printer) Umsubl(rd, rn, rm, ra Reg) (string, error) {
	return p.regs4(OpUMSUBL, X, rd, rn, rm, ra), nil
}

func (p Printer) Umulh(rd, rn, rm Reg) (string, error) {
	return p.regs3(OpUMULH, X, rd, rn, rm), nil
}

func (p Printer) BCond(cond Cond, offset int64) (string, error) {
	return p.condBranch(OpBCond, cond, offset), nil
}

func (p Printer) BcCond(cond Cond, offset int64) (string, error) {
	return p.condBranch(OpBCCond, cond, offset), nil
}

func (p Printer) B(offset int64) (string, error) {
	return p.branch(OpB, offset), nil
}

func (p Printer) Bl(offset int64) (string, error) {
	return p.branch(OpBL, offset), nil
}

func (p Printer) Cbz(sz Size, rt Reg, offset int64) (string, error) {
	return p.compareBranch(OpCBZ, sz, rt, offset), nil
}

func (p Printer) Cbnz(sz Size, rt Reg, offset int64) (string, error) {
	return p.compareBranch(OpCBNZ, sz, rt, offset), nil
}

func (p Printer) Tbz(rt Reg, bit uint8, offset int64) (string, error) {
	return p.testBranch(OpTBZ, rt, bit, offset), nil
}

func (p Printer) Tbnz(rt Reg, bit uint8, offset int64) (string, error) {
	return p.testBranch(OpTBNZ, rt, bit, offset), nil
}

func (p Printer) Br(rn Reg) (string, error) {
	return p.branchReg(OpBR, rn), nil
}

func (p Printer) Blr(rn Reg) (string, error) {
	return p.branchReg(OpBLR, rn), nil
}

func (p Printer) Ret(rn Reg) (string, error) {
	return p.branchReg(OpRET, rn), nil
}

func (p Printer) Eret() (string, error) {
	return p.bare(OpERET), nil
}

func (p Printer) Drps() (string, error) {
	return p.bare(OpDRPS), nil
}

func (p Printer) Svc(imm uint16) (string, error) {
	return p.exception(OpSVC, imm), nil
}

func (p Printer) Hvc(imm uint16) (string, error) {
	return p.exception(OpHVC, imm), nil
}

func (p Printer) Smc(imm uint16) (string, error) {
	return p.exception(OpSMC, imm), nil
}

func (p Printer) Brk(imm uint16) (string, error) {
	return p.exception(OpBRK, imm), nil
}

func (p Printer) Hlt(imm uint16) (string, error) {
	return p.exception(OpHLT, imm), nil
}

func (p Printer) Udf(imm uint16) (string, error) {
	return p.exception(OpUDF, imm), nil
}

func (p Printer) Nop() (string, error) {
	return p.bare(OpNOP), nil
}

func (p Printer) Yield() (string, error) {
	return p.bare(OpYIELD), nil
}

func (p Printer) Wfe() (string, error) {
	return p.bare(OpWFE), nil
}

func (p Printer) Wfi() (string, error) {
	return p.bare(OpWFI), nil
}

func (p Printer) Sev() (string, error) {
	return p.bare(OpSEV), nil
}

func (p Printer) Sevl() (string, error) {
	return p.bare(OpSEVL), nil
}

func (p Printer) Hint(imm uint8) (string, error) {
	return p.hint(OpHINT, imm), nil
}

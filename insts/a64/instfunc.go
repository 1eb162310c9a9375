package a64

// InstFunc adapts a function over whole instructions to the Visitor
// interface. Each method rebuilds the Inst that Decode would have produced.
type InstFunc[T any] func(Inst) (T, error)

func (fn InstFunc[T]) Adr(rd Reg, offset int64) (T, error) {
	return fn(Inst{Op: OpADR, Size: X, Rd: rd, Offset: offset})
}

func (fn InstFunc[T]) Adrp(rd Reg, offset int64) (T, error) {
	return fn(Inst{Op: OpADRP, Size: X, Rd: rd, Offset: offset})
}

func (fn InstFunc[T]) AddImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpADDImm, Size: sz, Rd: rd, Rn: rn, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) AddsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpADDSImm, Size: sz, Rd: rd, Rn: rn, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) SubImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpSUBImm, Size: sz, Rd: rd, Rn: rn, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) SubsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpSUBSImm, Size: sz, Rd: rd, Rn: rn, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) Addg(rd, rn Reg, offset uint16, tag uint8) (T, error) {
	return fn(Inst{Op: OpADDG, Size: X, Rd: rd, Rn: rn, Imm: uint64(offset), Imm2: tag})
}

func (fn InstFunc[T]) Subg(rd, rn Reg, offset uint16, tag uint8) (T, error) {
	return fn(Inst{Op: OpSUBG, Size: X, Rd: rd, Rn: rn, Imm: uint64(offset), Imm2: tag})
}

func (fn InstFunc[T]) AndImm(sz Size, rd, rn Reg, imm uint64) (T, error) {
	return fn(Inst{Op: OpANDImm, Size: sz, Rd: rd, Rn: rn, Imm: imm})
}

func (fn InstFunc[T]) OrrImm(sz Size, rd, rn Reg, imm uint64) (T, error) {
	return fn(Inst{Op: OpORRImm, Size: sz, Rd: rd, Rn: rn, Imm: imm})
}

func (fn InstFunc[T]) EorImm(sz Size, rd, rn Reg, imm uint64) (T, error) {
	return fn(Inst{Op: OpEORImm, Size: sz, Rd: rd, Rn: rn, Imm: imm})
}

func (fn InstFunc[T]) AndsImm(sz Size, rd, rn Reg, imm uint64) (T, error) {
	return fn(Inst{Op: OpANDSImm, Size: sz, Rd: rd, Rn: rn, Imm: imm})
}

func (fn InstFunc[T]) Movn(sz Size, rd Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpMOVN, Size: sz, Rd: rd, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) Movz(sz Size, rd Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpMOVZ, Size: sz, Rd: rd, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) Movk(sz Size, rd Reg, imm uint16, shift uint8) (T, error) {
	return fn(Inst{Op: OpMOVK, Size: sz, Rd: rd, Imm: uint64(imm), Amount: shift})
}

func (fn InstFunc[T]) Sbfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error) {
	return fn(Inst{Op: OpSBFM, Size: sz, Rd: rd, Rn: rn, Immr: immr, Imms: imms})
}

func (fn InstFunc[T]) Bfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error) {
	return fn(Inst{Op: OpBFM, Size: sz, Rd: rd, Rn: rn, Immr: immr, Imms: imms})
}

func (fn InstFunc[T]) Ubfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error) {
	return fn(Inst{Op: OpUBFM, Size: sz, Rd: rd, Rn: rn, Immr: immr, Imms: imms})
}

func (fn InstFunc[T]) Extr(sz Size, rd, rn, rm Reg, lsb uint8) (T, error) {
	return fn(Inst{Op: OpEXTR, Size: sz, Rd: rd, Rn: rn, Rm: rm, Imms: lsb})
}

func (fn InstFunc[T]) Udiv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpUDIV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Sdiv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSDIV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Lslv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpLSLV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Lsrv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpLSRV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Asrv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpASRV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Rorv(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpRORV, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32b(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32B, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32h(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32H, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32w(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32W, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32x(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32cb(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32CB, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32ch(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32CH, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32cw(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32CW, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Crc32cx(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpCRC32CX, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Subp(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSUBP, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Subps(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSUBPS, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Irg(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpIRG, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Gmi(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpGMI, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Pacga(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpPACGA, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Rbit(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpRBIT, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Rev16(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpREV16, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Rev32(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpREV32, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Rev(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpREV, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Clz(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpCLZ, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Cls(sz Size, rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpCLS, Size: sz, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Pacia(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpPACIA, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Pacib(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpPACIB, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Pacda(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpPACDA, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Pacdb(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpPACDB, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Autia(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpAUTIA, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Autib(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpAUTIB, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Autda(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpAUTDA, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Autdb(rd, rn Reg) (T, error) {
	return fn(Inst{Op: OpAUTDB, Size: X, Rd: rd, Rn: rn})
}

func (fn InstFunc[T]) Paciza(rd Reg) (T, error) {
	return fn(Inst{Op: OpPACIZA, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Pacizb(rd Reg) (T, error) {
	return fn(Inst{Op: OpPACIZB, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Pacdza(rd Reg) (T, error) {
	return fn(Inst{Op: OpPACDZA, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Pacdzb(rd Reg) (T, error) {
	return fn(Inst{Op: OpPACDZB, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Autiza(rd Reg) (T, error) {
	return fn(Inst{Op: OpAUTIZA, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Autizb(rd Reg) (T, error) {
	return fn(Inst{Op: OpAUTIZB, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Autdza(rd Reg) (T, error) {
	return fn(Inst{Op: OpAUTDZA, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Autdzb(rd Reg) (T, error) {
	return fn(Inst{Op: OpAUTDZB, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Xpaci(rd Reg) (T, error) {
	return fn(Inst{Op: OpXPACI, Size: X, Rd: rd})
}

func (fn InstFunc[T]) Xpacd(rd Reg) (T, error) {
	return fn(Inst{Op: OpXPACD, Size: X, Rd: rd})
}

func (fn InstFunc[T]) And(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpAND, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Bic(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpBIC, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Orr(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpORR, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Orn(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpORN, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Eor(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpEOR, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Eon(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpEON, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Ands(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpANDS, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Bics(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpBICS, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Add(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpADD, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Adds(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpADDS, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Sub(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpSUB, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) Subs(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error) {
	return fn(Inst{Op: OpSUBS, Size: sz, Rd: rd, Rn: rn, Rm: rm, Shift: shift, Amount: amount})
}

func (fn InstFunc[T]) AddExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error) {
	return fn(Inst{Op: OpADDExt, Size: sz, Rd: rd, Rn: rn, Rm: rm, Extend: ext, Amount: amount})
}

func (fn InstFunc[T]) AddsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error) {
	return fn(Inst{Op: OpADDSExt, Size: sz, Rd: rd, Rn: rn, Rm: rm, Extend: ext, Amount: amount})
}

func (fn InstFunc[T]) SubExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error) {
	return fn(Inst{Op: OpSUBExt, Size: sz, Rd: rd, Rn: rn, Rm: rm, Extend: ext, Amount: amount})
}

func (fn InstFunc[T]) SubsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error) {
	return fn(Inst{Op: OpSUBSExt, Size: sz, Rd: rd, Rn: rn, Rm: rm, Extend: ext, Amount: amount})
}

func (fn InstFunc[T]) Adc(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpADC, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Adcs(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpADCS, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Sbc(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSBC, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Sbcs(sz Size, rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSBCS, Size: sz, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Rmif(rn Reg, lsb, mask uint8) (T, error) {
	return fn(Inst{Op: OpRMIF, Size: X, Rn: rn, Imms: lsb, NZCV: mask})
}

func (fn InstFunc[T]) Setf8(rn Reg) (T, error) {
	return fn(Inst{Op: OpSETF8, Rn: rn})
}

func (fn InstFunc[T]) Setf16(rn Reg) (T, error) {
	return fn(Inst{Op: OpSETF16, Rn: rn})
}

func (fn InstFunc[T]) CcmnReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (T, error) {
	return fn(Inst{Op: OpCCMNReg, Size: sz, Rn: rn, Rm: rm, NZCV: nzcv, Cond: cond})
}

func (fn InstFunc[T]) CcmpReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (T, error) {
	return fn(Inst{Op: OpCCMPReg, Size: sz, Rn: rn, Rm: rm, NZCV: nzcv, Cond: cond})
}

func (fn InstFunc[T]) CcmnImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (T, error) {
	return fn(Inst{Op: OpCCMNImm, Size: sz, Rn: rn, Imm: uint64(imm), NZCV: nzcv, Cond: cond})
}

func (fn InstFunc[T]) CcmpImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (T, error) {
	return fn(Inst{Op: OpCCMPImm, Size: sz, Rn: rn, Imm: uint64(imm), NZCV: nzcv, Cond: cond})
}

func (fn InstFunc[T]) Csel(sz Size, rd, rn, rm Reg, cond Cond) (T, error) {
	return fn(Inst{Op: OpCSEL, Size: sz, Rd: rd, Rn: rn, Rm: rm, Cond: cond})
}

func (fn InstFunc[T]) Csinc(sz Size, rd, rn, rm Reg, cond Cond) (T, error) {
	return fn(Inst{Op: OpCSINC, Size: sz, Rd: rd, Rn: rn, Rm: rm, Cond: cond})
}

func (fn InstFunc[T]) Csinv(sz Size, rd, rn, rm Reg, cond Cond) (T, error) {
	return fn(Inst{Op: OpCSINV, Size: sz, Rd: rd, Rn: rn, Rm: rm, Cond: cond})
}

func (fn InstFunc[T]) Csneg(sz Size, rd, rn, rm Reg, cond Cond) (T, error) {
	return fn(Inst{Op: OpCSNEG, Size: sz, Rd: rd, Rn: rn, Rm: rm, Cond: cond})
}

func (fn InstFunc[T]) Madd(sz Size, rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpMADD, Size: sz, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Msub(sz Size, rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpMSUB, Size: sz, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Smaddl(rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpSMADDL, Size: X, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Smsubl(rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpSMSUBL, Size: X, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Smulh(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpSMULH, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) Umaddl(rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpUMADDL, Size: X, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Umsubl(rd, rn, rm, ra Reg) (T, error) {
	return fn(Inst{Op: OpUMSUBL, Size: X, Rd: rd, Rn: rn, Rm: rm, Ra: ra})
}

func (fn InstFunc[T]) Umulh(rd, rn, rm Reg) (T, error) {
	return fn(Inst{Op: OpUMULH, Size: X, Rd: rd, Rn: rn, Rm: rm})
}

func (fn InstFunc[T]) BCond(cond Cond, offset int64) (T, error) {
	return fn(Inst{Op: OpBCond, Cond: cond, Offset: offset})
}

func (fn InstFunc[T]) BcCond(cond Cond, offset int64) (T, error) {
	return fn(Inst{Op: OpBCCond, Cond: cond, Offset: offset})
}

func (fn InstFunc[T]) B(offset int64) (T, error) {
	return fn(Inst{Op: OpB, Offset: offset})
}

func (fn InstFunc[T]) Bl(offset int64) (T, error) {
	return fn(Inst{Op: OpBL, Offset: offset})
}

func (fn InstFunc[T]) Cbz(sz Size, rt Reg, offset int64) (T, error) {
	return fn(Inst{Op: OpCBZ, Size: sz, Rd: rt, Offset: offset})
}

func (fn InstFunc[T]) Cbnz(sz Size, rt Reg, offset int64) (T, error) {
	return fn(Inst{Op: OpCBNZ, Size: sz, Rd: rt, Offset: offset})
}

func (fn InstFunc[T]) Tbz(rt Reg, bit uint8, offset int64) (T, error) {
	return fn(Inst{Op: OpTBZ, Rd: rt, Imm: uint64(bit), Offset: offset})
}

func (fn InstFunc[T]) Tbnz(rt Reg, bit uint8, offset int64) (T, error) {
	return fn(Inst{Op: OpTBNZ, Rd: rt, Imm: uint64(bit), Offset: offset})
}

func (fn InstFunc[T]) Br(rn Reg) (T, error) {
	return fn(Inst{Op: OpBR, Size: X, Rn: rn})
}

func (fn InstFunc[T]) Blr(rn Reg) (T, error) {
	return fn(Inst{Op: OpBLR, Size: X, Rn: rn})
}

func (fn InstFunc[T]) Ret(rn Reg) (T, error) {
	return fn(Inst{Op: OpRET, Size: X, Rn: rn})
}

func (fn InstFunc[T]) Eret() (T, error) {
	return fn(Inst{Op: OpERET})
}

func (fn InstFunc[T]) Drps() (T, error) {
	return fn(Inst{Op: OpDRPS})
}

func (fn InstFunc[T]) Svc(imm uint16) (T, error) {
	return fn(Inst{Op: OpSVC, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Hvc(imm uint16) (T, error) {
	return fn(Inst{Op: OpHVC, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Smc(imm uint16) (T, error) {
	return fn(Inst{Op: OpSMC, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Brk(imm uint16) (T, error) {
	return fn(Inst{Op: OpBRK, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Hlt(imm uint16) (T, error) {
	return fn(Inst{Op: OpHLT, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Udf(imm uint16) (T, error) {
	return fn(Inst{Op: OpUDF, Imm: uint64(imm)})
}

func (fn InstFunc[T]) Nop() (T, error) {
	return fn(Inst{Op: OpNOP})
}

func (fn InstFunc[T]) Yield() (T, error) {
	return fn(Inst{Op: OpYIELD})
}

func (fn InstFunc[T]) Wfe() (T, error) {
	return fn(Inst{Op: OpWFE})
}

func (fn InstFunc[T]) Wfi() (T, error) {
	return fn(Inst{Op: OpWFI})
}

func (fn InstFunc[T]) Sev() (T, error) {
	return fn(Inst{Op: OpSEV})
}

func (fn InstFunc[T]) Sevl() (T, error) {
	return fn(Inst{Op: OpSEVL})
}

func (fn InstFunc[T]) Hint(imm uint8) (T, error) {
	return fn(Inst{Op: OpHINT, Imm: uint64(imm)})
}

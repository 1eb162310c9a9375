package a64

import "github.com/sarchlab/diss/insts"

// Visit hands inst to the matching visitor method.
func Visit[T any](v Visitor[T], inst Inst) (T, error) {
	switch inst.Op {
	case OpADR:
		return v.Adr(inst.Rd, inst.Offset)
	case OpADRP:
		return v.Adrp(inst.Rd, inst.Offset)
	case OpADDImm:
		return v.AddImm(inst.Size, inst.Rd, inst.Rn, uint16(inst.Imm), inst.Amount)
	case OpADDSImm:
		return v.AddsImm(inst.Size, inst.Rd, inst.Rn, uint16(inst.Imm), inst.Amount)
	case OpSUBImm:
		return v.SubImm(inst.Size, inst.Rd, inst.Rn, uint16(inst.Imm), inst.Amount)
	case OpSUBSImm:
		return v.SubsImm(inst.Size, inst.Rd, inst.Rn, uint16(inst.Imm), inst.Amount)
	case OpADDG:
		return v.Addg(inst.Rd, inst.Rn, uint16(inst.Imm), inst.Imm2)
	case OpSUBG:
		return v.Subg(inst.Rd, inst.Rn, uint16(inst.Imm), inst.Imm2)
	case OpANDImm:
		return v.AndImm(inst.Size, inst.Rd, inst.Rn, inst.Imm)
	case OpORRImm:
		return v.OrrImm(inst.Size, inst.Rd, inst.Rn, inst.Imm)
	case OpEORImm:
		return v.EorImm(inst.Size, inst.Rd, inst.Rn, inst.Imm)
	case OpANDSImm:
		return v.AndsImm(inst.Size, inst.Rd, inst.Rn, inst.Imm)
	case OpMOVN:
		return v.Movn(inst.Size, inst.Rd, uint16(inst.Imm), inst.Amount)
	case OpMOVZ:
		return v.Movz(inst.Size, inst.Rd, uint16(inst.Imm), inst.Amount)
	case OpMOVK:
		return v.Movk(inst.Size, inst.Rd, uint16(inst.Imm), inst.Amount)
	case OpSBFM:
		return v.Sbfm(inst.Size, inst.Rd, inst.Rn, inst.Immr, inst.Imms)
	case OpBFM:
		return v.Bfm(inst.Size, inst.Rd, inst.Rn, inst.Immr, inst.Imms)
	case OpUBFM:
		return v.Ubfm(inst.Size, inst.Rd, inst.Rn, inst.Immr, inst.Imms)
	case OpEXTR:
		return v.Extr(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Imms)
	case OpUDIV:
		return v.Udiv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpSDIV:
		return v.Sdiv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpLSLV:
		return v.Lslv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpLSRV:
		return v.Lsrv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpASRV:
		return v.Asrv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpRORV:
		return v.Rorv(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32B:
		return v.Crc32b(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32H:
		return v.Crc32h(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32W:
		return v.Crc32w(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32X:
		return v.Crc32x(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32CB:
		return v.Crc32cb(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32CH:
		return v.Crc32ch(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32CW:
		return v.Crc32cw(inst.Rd, inst.Rn, inst.Rm)
	case OpCRC32CX:
		return v.Crc32cx(inst.Rd, inst.Rn, inst.Rm)
	case OpSUBP:
		return v.Subp(inst.Rd, inst.Rn, inst.Rm)
	case OpSUBPS:
		return v.Subps(inst.Rd, inst.Rn, inst.Rm)
	case OpIRG:
		return v.Irg(inst.Rd, inst.Rn, inst.Rm)
	case OpGMI:
		return v.Gmi(inst.Rd, inst.Rn, inst.Rm)
	case OpPACGA:
		return v.Pacga(inst.Rd, inst.Rn, inst.Rm)
	case OpRBIT:
		return v.Rbit(inst.Size, inst.Rd, inst.Rn)
	case OpREV16:
		return v.Rev16(inst.Size, inst.Rd, inst.Rn)
	case OpREV32:
		return v.Rev32(inst.Size, inst.Rd, inst.Rn)
	case OpREV:
		return v.Rev(inst.Size, inst.Rd, inst.Rn)
	case OpCLZ:
		return v.Clz(inst.Size, inst.Rd, inst.Rn)
	case OpCLS:
		return v.Cls(inst.Size, inst.Rd, inst.Rn)
	case OpPACIA:
		return v.Pacia(inst.Rd, inst.Rn)
	case OpPACIB:
		return v.Pacib(inst.Rd, inst.Rn)
	case OpPACDA:
		return v.Pacda(inst.Rd, inst.Rn)
	case OpPACDB:
		return v.Pacdb(inst.Rd, inst.Rn)
	case OpAUTIA:
		return v.Autia(inst.Rd, inst.Rn)
	case OpAUTIB:
		return v.Autib(inst.Rd, inst.Rn)
	case OpAUTDA:
		return v.Autda(inst.Rd, inst.Rn)
	case OpAUTDB:
		return v.Autdb(inst.Rd, inst.Rn)
	case OpPACIZA:
		return v.Paciza(inst.Rd)
	case OpPACIZB:
		return v.Pacizb(inst.Rd)
	case OpPACDZA:
		return v.Pacdza(inst.Rd)
	case OpPACDZB:
		return v.Pacdzb(inst.Rd)
	case OpAUTIZA:
		return v.Autiza(inst.Rd)
	case OpAUTIZB:
		return v.Autizb(inst.Rd)
	case OpAUTDZA:
		return v.Autdza(inst.Rd)
	case OpAUTDZB:
		return v.Autdzb(inst.Rd)
	case OpXPACI:
		return v.Xpaci(inst.Rd)
	case OpXPACD:
		return v.Xpacd(inst.Rd)
	case OpAND:
		return v.And(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpBIC:
		return v.Bic(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpORR:
		return v.Orr(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpORN:
		return v.Orn(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpEOR:
		return v.Eor(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpEON:
		return v.Eon(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpANDS:
		return v.Ands(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpBICS:
		return v.Bics(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpADD:
		return v.Add(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpADDS:
		return v.Adds(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpSUB:
		return v.Sub(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpSUBS:
		return v.Subs(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Shift, inst.Amount)
	case OpADDExt:
		return v.AddExt(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Extend, inst.Amount)
	case OpADDSExt:
		return v.AddsExt(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Extend, inst.Amount)
	case OpSUBExt:
		return v.SubExt(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Extend, inst.Amount)
	case OpSUBSExt:
		return v.SubsExt(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Extend, inst.Amount)
	case OpADC:
		return v.Adc(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpADCS:
		return v.Adcs(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpSBC:
		return v.Sbc(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpSBCS:
		return v.Sbcs(inst.Size, inst.Rd, inst.Rn, inst.Rm)
	case OpRMIF:
		return v.Rmif(inst.Rn, inst.Imms, inst.NZCV)
	case OpSETF8:
		return v.Setf8(inst.Rn)
	case OpSETF16:
		return v.Setf16(inst.Rn)
	case OpCCMNReg:
		return v.CcmnReg(inst.Size, inst.Rn, inst.Rm, inst.NZCV, inst.Cond)
	case OpCCMPReg:
		return v.CcmpReg(inst.Size, inst.Rn, inst.Rm, inst.NZCV, inst.Cond)
	case OpCCMNImm:
		return v.CcmnImm(inst.Size, inst.Rn, uint8(inst.Imm), inst.NZCV, inst.Cond)
	case OpCCMPImm:
		return v.CcmpImm(inst.Size, inst.Rn, uint8(inst.Imm), inst.NZCV, inst.Cond)
	case OpCSEL:
		return v.Csel(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Cond)
	case OpCSINC:
		return v.Csinc(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Cond)
	case OpCSINV:
		return v.Csinv(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Cond)
	case OpCSNEG:
		return v.Csneg(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Cond)
	case OpMADD:
		return v.Madd(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpMSUB:
		return v.Msub(inst.Size, inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpSMADDL:
		return v.Smaddl(inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpSMSUBL:
		return v.Smsubl(inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpSMULH:
		return v.Smulh(inst.Rd, inst.Rn, inst.Rm)
	case OpUMADDL:
		return v.Umaddl(inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpUMSUBL:
		return v.Umsubl(inst.Rd, inst.Rn, inst.Rm, inst.Ra)
	case OpUMULH:
		return v.Umulh(inst.Rd, inst.Rn, inst.Rm)
	case OpBCond:
		return v.BCond(inst.Cond, inst.Offset)
	case OpBCCond:
		return v.BcCond(inst.Cond, inst.Offset)
	case OpB:
		return v.B(inst.Offset)
	case OpBL:
		return v.Bl(inst.Offset)
	case OpCBZ:
		return v.Cbz(inst.Size, inst.Rd, inst.Offset)
	case OpCBNZ:
		return v.Cbnz(inst.Size, inst.Rd, inst.Offset)
	case OpTBZ:
		return v.Tbz(inst.Rd, uint8(inst.Imm), inst.Offset)
	case OpTBNZ:
		return v.Tbnz(inst.Rd, uint8(inst.Imm), inst.Offset)
	case OpBR:
		return v.Br(inst.Rn)
	case OpBLR:
		return v.Blr(inst.Rn)
	case OpRET:
		return v.Ret(inst.Rn)
	case OpERET:
		return v.Eret()
	case OpDRPS:
		return v.Drps()
	case OpSVC:
		return v.Svc(uint16(inst.Imm))
	case OpHVC:
		return v.Hvc(uint16(inst.Imm))
	case OpSMC:
		return v.Smc(uint16(inst.Imm))
	case OpBRK:
		return v.Brk(uint16(inst.Imm))
	case OpHLT:
		return v.Hlt(uint16(inst.Imm))
	case OpUDF:
		return v.Udf(uint16(inst.Imm))
	case OpNOP:
		return v.Nop()
	case OpYIELD:
		return v.Yield()
	case OpWFE:
		return v.Wfe()
	case OpWFI:
		return v.Wfi()
	case OpSEV:
		return v.Sev()
	case OpSEVL:
		return v.Sevl()
	case OpHINT:
		return v.Hint(uint8(inst.Imm))
	}

	var zero T
	return zero, insts.Unimplemented(insts.ArchA64, 0, "visit of unknown op "+inst.Op.String())
}

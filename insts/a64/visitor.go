package a64

// Visitor receives one decoded instruction per call. Each mnemonic has its own
// method with typed operands; T is whatever the handler produces.
//
// Register operands already distinguish SP from ZR. Branch offsets are signed
// byte offsets from the instruction's address. Logical immediates arrive as
// the decoded bit pattern, replicated across the register width.
type Visitor[T any] interface {
	// Data processing, immediate.
	Adr(rd Reg, offset int64) (T, error)
	Adrp(rd Reg, offset int64) (T, error)
	AddImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error)
	AddsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error)
	SubImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error)
	SubsImm(sz Size, rd, rn Reg, imm uint16, shift uint8) (T, error)
	Addg(rd, rn Reg, offset uint16, tag uint8) (T, error)
	Subg(rd, rn Reg, offset uint16, tag uint8) (T, error)
	AndImm(sz Size, rd, rn Reg, imm uint64) (T, error)
	OrrImm(sz Size, rd, rn Reg, imm uint64) (T, error)
	EorImm(sz Size, rd, rn Reg, imm uint64) (T, error)
	AndsImm(sz Size, rd, rn Reg, imm uint64) (T, error)
	Movn(sz Size, rd Reg, imm uint16, shift uint8) (T, error)
	Movz(sz Size, rd Reg, imm uint16, shift uint8) (T, error)
	Movk(sz Size, rd Reg, imm uint16, shift uint8) (T, error)
	Sbfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error)
	Bfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error)
	Ubfm(sz Size, rd, rn Reg, immr, imms uint8) (T, error)
	Extr(sz Size, rd, rn, rm Reg, lsb uint8) (T, error)

	// Data processing, two source.
	Udiv(sz Size, rd, rn, rm Reg) (T, error)
	Sdiv(sz Size, rd, rn, rm Reg) (T, error)
	Lslv(sz Size, rd, rn, rm Reg) (T, error)
	Lsrv(sz Size, rd, rn, rm Reg) (T, error)
	Asrv(sz Size, rd, rn, rm Reg) (T, error)
	Rorv(sz Size, rd, rn, rm Reg) (T, error)
	Crc32b(rd, rn, rm Reg) (T, error)
	Crc32h(rd, rn, rm Reg) (T, error)
	Crc32w(rd, rn, rm Reg) (T, error)
	Crc32x(rd, rn, rm Reg) (T, error)
	Crc32cb(rd, rn, rm Reg) (T, error)
	Crc32ch(rd, rn, rm Reg) (T, error)
	Crc32cw(rd, rn, rm Reg) (T, error)
	Crc32cx(rd, rn, rm Reg) (T, error)
	Subp(rd, rn, rm Reg) (T, error)
	Subps(rd, rn, rm Reg) (T, error)
	Irg(rd, rn, rm Reg) (T, error)
	Gmi(rd, rn, rm Reg) (T, error)
	Pacga(rd, rn, rm Reg) (T, error)

	// Data processing, one source.
	Rbit(sz Size, rd, rn Reg) (T, error)
	Rev16(sz Size, rd, rn Reg) (T, error)
	Rev32(sz Size, rd, rn Reg) (T, error)
	Rev(sz Size, rd, rn Reg) (T, error)
	Clz(sz Size, rd, rn Reg) (T, error)
	Cls(sz Size, rd, rn Reg) (T, error)
	Pacia(rd, rn Reg) (T, error)
	Pacib(rd, rn Reg) (T, error)
	Pacda(rd, rn Reg) (T, error)
	Pacdb(rd, rn Reg) (T, error)
	Autia(rd, rn Reg) (T, error)
	Autib(rd, rn Reg) (T, error)
	Autda(rd, rn Reg) (T, error)
	Autdb(rd, rn Reg) (T, error)
	Paciza(rd Reg) (T, error)
	Pacizb(rd Reg) (T, error)
	Pacdza(rd Reg) (T, error)
	Pacdzb(rd Reg) (T, error)
	Autiza(rd Reg) (T, error)
	Autizb(rd Reg) (T, error)
	Autdza(rd Reg) (T, error)
	Autdzb(rd Reg) (T, error)
	Xpaci(rd Reg) (T, error)
	Xpacd(rd Reg) (T, error)

	// Logical, shifted register.
	And(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Bic(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Orr(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Orn(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Eor(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Eon(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Ands(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Bics(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)

	// Add and subtract, shifted and extended register.
	Add(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Adds(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Sub(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	Subs(sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (T, error)
	AddExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error)
	AddsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error)
	SubExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error)
	SubsExt(sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (T, error)

	// Add and subtract with carry, and flag manipulation.
	Adc(sz Size, rd, rn, rm Reg) (T, error)
	Adcs(sz Size, rd, rn, rm Reg) (T, error)
	Sbc(sz Size, rd, rn, rm Reg) (T, error)
	Sbcs(sz Size, rd, rn, rm Reg) (T, error)
	Rmif(rn Reg, lsb, mask uint8) (T, error)
	Setf8(rn Reg) (T, error)
	Setf16(rn Reg) (T, error)

	// Conditional compare and select.
	CcmnReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (T, error)
	CcmpReg(sz Size, rn, rm Reg, nzcv uint8, cond Cond) (T, error)
	CcmnImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (T, error)
	CcmpImm(sz Size, rn Reg, imm, nzcv uint8, cond Cond) (T, error)
	Csel(sz Size, rd, rn, rm Reg, cond Cond) (T, error)
	Csinc(sz Size, rd, rn, rm Reg, cond Cond) (T, error)
	Csinv(sz Size, rd, rn, rm Reg, cond Cond) (T, error)
	Csneg(sz Size, rd, rn, rm Reg, cond Cond) (T, error)

	// Three source multiply.
	Madd(sz Size, rd, rn, rm, ra Reg) (T, error)
	Msub(sz Size, rd, rn, rm, ra Reg) (T, error)
	Smaddl(rd, rn, rm, ra Reg) (T, error)
	Smsubl(rd, rn, rm, ra Reg) (T, error)
	Smulh(rd, rn, rm Reg) (T, error)
	Umaddl(rd, rn, rm, ra Reg) (T, error)
	Umsubl(rd, rn, rm, ra Reg) (T, error)
	Umulh(rd, rn, rm Reg) (T, error)

	// Branches. Offsets are signed byte offsets from the instruction.
	BCond(cond Cond, offset int64) (T, error)
	BcCond(cond Cond, offset int64) (T, error)
	B(offset int64) (T, error)
	Bl(offset int64) (T, error)
	Cbz(sz Size, rt Reg, offset int64) (T, error)
	Cbnz(sz Size, rt Reg, offset int64) (T, error)
	Tbz(rt Reg, bit uint8, offset int64) (T, error)
	Tbnz(rt Reg, bit uint8, offset int64) (T, error)
	Br(rn Reg) (T, error)
	Blr(rn Reg) (T, error)
	Ret(rn Reg) (T, error)
	Eret() (T, error)
	Drps() (T, error)

	// Exceptions and hints.
	Svc(imm uint16) (T, error)
	Hvc(imm uint16) (T, error)
	Smc(imm uint16) (T, error)
	Brk(imm uint16) (T, error)
	Hlt(imm uint16) (T, error)
	Udf(imm uint16) (T, error)
	Nop() (T, error)
	Yield() (T, error)
	Wfe() (T, error)
	Wfi() (T, error)
	Sev() (T, error)
	Sevl() (T, error)
	Hint(imm uint8) (T, error)
}

package riscv

// Visitor receives one decoded instruction per call. Each mnemonic has its own
// method with typed operands; T is whatever the handler produces (text, an
// encoded word, an execution effect). Returning an error aborts the visit and
// the error reaches the caller wrapped in *insts.HandlerError.
//
// Branch and jump offsets are signed byte offsets from the instruction's own
// address and are always even. Upper immediates (LUI, AUIPC, C.LUI) arrive as
// the value placed in the register, with the low 12 bits clear.
type Visitor[T any] interface {
	// Base integer instructions.
	Lui(rd Reg, imm int32) (T, error)
	Auipc(rd Reg, imm int32) (T, error)
	Jal(rd Reg, offset int32) (T, error)
	Jalr(rd, rs1 Reg, imm int32) (T, error)
	Beq(rs1, rs2 Reg, offset int32) (T, error)
	Bne(rs1, rs2 Reg, offset int32) (T, error)
	Blt(rs1, rs2 Reg, offset int32) (T, error)
	Bge(rs1, rs2 Reg, offset int32) (T, error)
	Bltu(rs1, rs2 Reg, offset int32) (T, error)
	Bgeu(rs1, rs2 Reg, offset int32) (T, error)
	Lb(rd, rs1 Reg, imm int32) (T, error)
	Lh(rd, rs1 Reg, imm int32) (T, error)
	Lw(rd, rs1 Reg, imm int32) (T, error)
	Ld(rd, rs1 Reg, imm int32) (T, error)
	Lbu(rd, rs1 Reg, imm int32) (T, error)
	Lhu(rd, rs1 Reg, imm int32) (T, error)
	Lwu(rd, rs1 Reg, imm int32) (T, error)
	Sb(rs1, rs2 Reg, imm int32) (T, error)
	Sh(rs1, rs2 Reg, imm int32) (T, error)
	Sw(rs1, rs2 Reg, imm int32) (T, error)
	Sd(rs1, rs2 Reg, imm int32) (T, error)
	Addi(rd, rs1 Reg, imm int32) (T, error)
	Slti(rd, rs1 Reg, imm int32) (T, error)
	Sltiu(rd, rs1 Reg, imm int32) (T, error)
	Xori(rd, rs1 Reg, imm int32) (T, error)
	Ori(rd, rs1 Reg, imm int32) (T, error)
	Andi(rd, rs1 Reg, imm int32) (T, error)
	Slli(rd, rs1 Reg, shamt uint8) (T, error)
	Srli(rd, rs1 Reg, shamt uint8) (T, error)
	Srai(rd, rs1 Reg, shamt uint8) (T, error)
	Add(rd, rs1, rs2 Reg) (T, error)
	Sub(rd, rs1, rs2 Reg) (T, error)
	Sll(rd, rs1, rs2 Reg) (T, error)
	Slt(rd, rs1, rs2 Reg) (T, error)
	Sltu(rd, rs1, rs2 Reg) (T, error)
	Xor(rd, rs1, rs2 Reg) (T, error)
	Srl(rd, rs1, rs2 Reg) (T, error)
	Sra(rd, rs1, rs2 Reg) (T, error)
	Or(rd, rs1, rs2 Reg) (T, error)
	And(rd, rs1, rs2 Reg) (T, error)
	Fence(fm, pred, succ uint8) (T, error)
	FenceI() (T, error)
	Ecall() (T, error)
	Ebreak() (T, error)
	Addiw(rd, rs1 Reg, imm int32) (T, error)
	Slliw(rd, rs1 Reg, shamt uint8) (T, error)
	Srliw(rd, rs1 Reg, shamt uint8) (T, error)
	Sraiw(rd, rs1 Reg, shamt uint8) (T, error)
	Addw(rd, rs1, rs2 Reg) (T, error)
	Subw(rd, rs1, rs2 Reg) (T, error)
	Sllw(rd, rs1, rs2 Reg) (T, error)
	Srlw(rd, rs1, rs2 Reg) (T, error)
	Sraw(rd, rs1, rs2 Reg) (T, error)

	// Control and status register instructions.
	Csrrw(rd, rs1 Reg, csr uint16) (T, error)
	Csrrs(rd, rs1 Reg, csr uint16) (T, error)
	Csrrc(rd, rs1 Reg, csr uint16) (T, error)
	Csrrwi(rd Reg, uimm uint8, csr uint16) (T, error)
	Csrrsi(rd Reg, uimm uint8, csr uint16) (T, error)
	Csrrci(rd Reg, uimm uint8, csr uint16) (T, error)

	// Integer multiply and divide.
	Mul(rd, rs1, rs2 Reg) (T, error)
	Mulh(rd, rs1, rs2 Reg) (T, error)
	Mulhsu(rd, rs1, rs2 Reg) (T, error)
	Mulhu(rd, rs1, rs2 Reg) (T, error)
	Div(rd, rs1, rs2 Reg) (T, error)
	Divu(rd, rs1, rs2 Reg) (T, error)
	Rem(rd, rs1, rs2 Reg) (T, error)
	Remu(rd, rs1, rs2 Reg) (T, error)
	Mulw(rd, rs1, rs2 Reg) (T, error)
	Divw(rd, rs1, rs2 Reg) (T, error)
	Divuw(rd, rs1, rs2 Reg) (T, error)
	Remw(rd, rs1, rs2 Reg) (T, error)
	Remuw(rd, rs1, rs2 Reg) (T, error)

	// Single-precision floating point.
	Flw(rd FReg, rs1 Reg, imm int32) (T, error)
	Fsw(rs1 Reg, rs2 FReg, imm int32) (T, error)
	FmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FnmsubS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FnmaddS(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FaddS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FsubS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FmulS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FdivS(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FsqrtS(rd, rs1 FReg, rm RoundingMode) (T, error)
	FsgnjS(rd, rs1, rs2 FReg) (T, error)
	FsgnjnS(rd, rs1, rs2 FReg) (T, error)
	FsgnjxS(rd, rs1, rs2 FReg) (T, error)
	FminS(rd, rs1, rs2 FReg) (T, error)
	FmaxS(rd, rs1, rs2 FReg) (T, error)
	FcvtWS(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtWuS(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtLS(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtLuS(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FmvXW(rd Reg, rs1 FReg) (T, error)
	FclassS(rd Reg, rs1 FReg) (T, error)
	FeqS(rd Reg, rs1, rs2 FReg) (T, error)
	FltS(rd Reg, rs1, rs2 FReg) (T, error)
	FleS(rd Reg, rs1, rs2 FReg) (T, error)
	FcvtSW(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtSWu(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtSL(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtSLu(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FmvWX(rd FReg, rs1 Reg) (T, error)
	FcvtSD(rd, rs1 FReg, rm RoundingMode) (T, error)

	// Double-precision floating point.
	Fld(rd FReg, rs1 Reg, imm int32) (T, error)
	Fsd(rs1 Reg, rs2 FReg, imm int32) (T, error)
	FmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FnmsubD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FnmaddD(rd, rs1, rs2, rs3 FReg, rm RoundingMode) (T, error)
	FaddD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FsubD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FmulD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FdivD(rd, rs1, rs2 FReg, rm RoundingMode) (T, error)
	FsqrtD(rd, rs1 FReg, rm RoundingMode) (T, error)
	FsgnjD(rd, rs1, rs2 FReg) (T, error)
	FsgnjnD(rd, rs1, rs2 FReg) (T, error)
	FsgnjxD(rd, rs1, rs2 FReg) (T, error)
	FminD(rd, rs1, rs2 FReg) (T, error)
	FmaxD(rd, rs1, rs2 FReg) (T, error)
	FcvtWD(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtWuD(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtLD(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FcvtLuD(rd Reg, rs1 FReg, rm RoundingMode) (T, error)
	FmvXD(rd Reg, rs1 FReg) (T, error)
	FclassD(rd Reg, rs1 FReg) (T, error)
	FeqD(rd Reg, rs1, rs2 FReg) (T, error)
	FltD(rd Reg, rs1, rs2 FReg) (T, error)
	FleD(rd Reg, rs1, rs2 FReg) (T, error)
	FcvtDW(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtDWu(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtDL(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FcvtDLu(rd FReg, rs1 Reg, rm RoundingMode) (T, error)
	FmvDX(rd FReg, rs1 Reg) (T, error)
	FcvtDS(rd, rs1 FReg, rm RoundingMode) (T, error)

	// Compressed instructions. Offsets and immediates arrive scaled and sign-extended.
	CAddi4spn(rd Reg, uimm uint16) (T, error)
	CFld(rd FReg, rs1 Reg, uimm uint16) (T, error)
	CLw(rd, rs1 Reg, uimm uint16) (T, error)
	CLd(rd, rs1 Reg, uimm uint16) (T, error)
	CFsd(rs1 Reg, rs2 FReg, uimm uint16) (T, error)
	CSw(rs1, rs2 Reg, uimm uint16) (T, error)
	CSd(rs1, rs2 Reg, uimm uint16) (T, error)
	CNop() (T, error)
	CAddi(rd Reg, imm int8) (T, error)
	CAddiw(rd Reg, imm int8) (T, error)
	CLi(rd Reg, imm int8) (T, error)
	CAddi16sp(imm int16) (T, error)
	CLui(rd Reg, imm int32) (T, error)
	CSrli(rd Reg, shamt uint8) (T, error)
	CSrai(rd Reg, shamt uint8) (T, error)
	CAndi(rd Reg, imm int8) (T, error)
	CSub(rd, rs2 Reg) (T, error)
	CXor(rd, rs2 Reg) (T, error)
	COr(rd, rs2 Reg) (T, error)
	CAnd(rd, rs2 Reg) (T, error)
	CSubw(rd, rs2 Reg) (T, error)
	CAddw(rd, rs2 Reg) (T, error)
	CJ(offset int16) (T, error)
	CBeqz(rs1 Reg, offset int16) (T, error)
	CBnez(rs1 Reg, offset int16) (T, error)
	CSlli(rd Reg, shamt uint8) (T, error)
	CFldsp(rd FReg, uimm uint16) (T, error)
	CLwsp(rd Reg, uimm uint16) (T, error)
	CLdsp(rd Reg, uimm uint16) (T, error)
	CJr(rs1 Reg) (T, error)
	CMv(rd, rs2 Reg) (T, error)
	CEbreak() (T, error)
	CJalr(rs1 Reg) (T, error)
	CAdd(rd, rs2 Reg) (T, error)
	CFsdsp(rs2 FReg, uimm uint16) (T, error)
	CSwsp(rs2 Reg, uimm uint16) (T, error)
	CSdsp(rs2 Reg, uimm uint16) (T, error)
}

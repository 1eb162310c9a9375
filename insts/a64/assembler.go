package a64

import (
	"errors"
	"fmt"

	"github.com/sarchlab/diss/bits"
)

// ErrOperand reports an operand the encoder cannot represent.
var ErrOperand = errors.New("invalid operand")

// Assembler encodes instructions into A64 words.
type Assembler struct{}

// Encode returns the word for inst. A decoded logical immediate keeps its
// original immr, so every decoded word encodes back to itself.
func Encode(inst Inst) (uint32, error) {
	w, err := Visit(Assembler{}, inst)
	if err != nil {
		return 0, err
	}
	switch inst.Op {
	case OpANDImm, OpORRImm, OpEORImm, OpANDSImm:
		w = keepImmr(w, inst.Immr)
	}
	return w, nil
}

func operandError(op Op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrOperand, fmt.Sprintf(format, args...))
}

// checkRegs validates rs against the op's operand positions: SP only where
// index 31 means SP, ZR only where it means ZR.
func checkRegs(op Op, rs ...Reg) error {
	want := opTable[op].regs
	for i, r := range rs {
		switch {
		case !r.Valid():
			return operandError(op, "register %d", uint8(r))
		case r == SP && want[i] != 'S':
			return operandError(op, "sp in operand %d", i+1)
		case r == ZR && want[i] != 'Z':
			return operandError(op, "zr in operand %d", i+1)
		}
	}
	return nil
}

func checkSize(op Op, sz Size) error {
	if sz > X {
		return operandError(op, "size %d", sz)
	}
	return nil
}

func checkBelow(op Op, what string, v, limit uint64) error {
	if v >= limit {
		return operandError(op, "%s %d out of range", what, v)
	}
	return nil
}

// checkOffset validates a word-aligned byte offset for an n-bit word count.
func checkOffset(op Op, off int64, n uint) error {
	if off&3 != 0 {
		return operandError(op, "offset %d is not word aligned", off)
	}
	if !bits.FitsSigned(off>>2, n) {
		return operandError(op, "offset %d out of range", off)
	}
	return nil
}

// base returns the op's fixed bits with sf set for X.
func base(op Op, sz Size) uint32 {
	w := opTable[op].base
	if sz == X {
		w |= 1 << 31
	}
	return w
}

func regFields(rd, rn, rm Reg) uint32 {
	return rm.Field()<<16 | rn.Field()<<5 | rd.Field()
}

func (a Assembler) encPCRel(op Op, rd Reg, offset int64) (uint32, error) {
	if err := checkRegs(op, rd); err != nil {
		return 0, err
	}
	imm := offset
	if op == OpADRP {
		if offset&0xfff != 0 {
			return 0, operandError(op, "page offset %#x has low bits set", offset)
		}
		imm = offset >> 12
	}
	if !bits.FitsSigned(imm, 21) {
		return 0, operandError(op, "offset %d out of range", offset)
	}

	l := DecodePCRel(opTable[op].base)
	l.ImmLo = uint32(imm) & 3
	l.ImmHi = uint32(imm>>2) & 0x7ffff
	l.Rd = rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encAddSubImm(op Op, sz Size, rd, rn Reg, imm uint16, shift uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn),
		checkBelow(op, "immediate", uint64(imm), 1<<12)); err != nil {
		return 0, err
	}
	if shift != 0 && shift != 12 {
		return 0, operandError(op, "shift %d", shift)
	}

	l := DecodeAddSubImm(base(op, sz))
	l.Sh = uint32(shift / 12)
	l.Imm12 = uint32(imm)
	l.Rn, l.Rd = rn.Field(), rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encTags(op Op, rd, rn Reg, offset uint16, tag uint8) (uint32, error) {
	if err := errors.Join(checkRegs(op, rd, rn),
		checkBelow(op, "offset", uint64(offset), 64<<4),
		checkBelow(op, "tag offset", uint64(tag), 16)); err != nil {
		return 0, err
	}
	if offset&0xf != 0 {
		return 0, operandError(op, "offset %d is not a multiple of 16", offset)
	}

	l := DecodeAddSubImmTags(opTable[op].base)
	l.UImm6 = uint32(offset >> 4)
	l.UImm4 = uint32(tag)
	l.Rn, l.Rd = rn.Field(), rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encLogicalImm(op Op, sz Size, rd, rn Reg, imm uint64) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn)); err != nil {
		return 0, err
	}
	n, immr, imms, ok := EncodeBitMasks(imm, sz.Bits())
	if !ok {
		return 0, operandError(op, "%#x is not a bitmask immediate", imm)
	}

	l := DecodeLogicalImm(base(op, sz))
	l.N, l.Immr, l.Imms = n, immr, imms
	l.Rn, l.Rd = rn.Field(), rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encMoveWide(op Op, sz Size, rd Reg, imm uint16, shift uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd)); err != nil {
		return 0, err
	}
	if shift%16 != 0 || uint(shift) >= sz.Bits() {
		return 0, operandError(op, "shift %d", shift)
	}

	l := DecodeMoveWide(base(op, sz))
	l.Hw = uint32(shift / 16)
	l.Imm16 = uint32(imm)
	l.Rd = rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encBitfield(op Op, sz Size, rd, rn Reg, immr, imms uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn),
		checkBelow(op, "immr", uint64(immr), uint64(sz.Bits())),
		checkBelow(op, "imms", uint64(imms), uint64(sz.Bits()))); err != nil {
		return 0, err
	}

	l := DecodeBitfield(base(op, sz))
	l.N = uint32(sz)
	l.Immr, l.Imms = uint32(immr), uint32(imms)
	l.Rn, l.Rd = rn.Field(), rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encExtract(op Op, sz Size, rd, rn, rm Reg, lsb uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm),
		checkBelow(op, "lsb", uint64(lsb), uint64(sz.Bits()))); err != nil {
		return 0, err
	}

	l := DecodeExtract(base(op, sz))
	l.N = uint32(sz)
	l.Imms = uint32(lsb)
	l.Rm, l.Rn, l.Rd = rm.Field(), rn.Field(), rd.Field()
	return l.Encode(), nil
}

// encRRR covers every form with Rd, Rn and Rm in their usual places.
func (a Assembler) encRRR(op Op, sz Size, rd, rn, rm Reg) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm)); err != nil {
		return 0, err
	}
	return base(op, sz) | regFields(rd, rn, rm), nil
}

func (a Assembler) encCRC(op Op, rd, rn, rm Reg) (uint32, error) {
	if err := checkRegs(op, rd, rn, rm); err != nil {
		return 0, err
	}
	return opTable[op].base | regFields(rd, rn, rm), nil
}

func (a Assembler) encRR(op Op, sz Size, rd, rn Reg) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn)); err != nil {
		return 0, err
	}

	w := base(op, sz)
	switch {
	case op == OpREV && sz == X:
		w = revX
	case op == OpREV32 && sz == W:
		return 0, operandError(op, "32-bit rev32")
	}
	return w | rn.Field()<<5 | rd.Field(), nil
}

func (a Assembler) encPACZ(op Op, _ Size, rd Reg) (uint32, error) {
	if err := checkRegs(op, rd); err != nil {
		return 0, err
	}
	return opTable[op].base | rd.Field(), nil
}

func (a Assembler) encShifted(op Op, sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm),
		checkBelow(op, "shift type", uint64(shift), 4),
		checkBelow(op, "shift amount", uint64(amount), uint64(sz.Bits()))); err != nil {
		return 0, err
	}
	addSub := opTable[op].base&0x01000000 != 0
	if addSub && shift == ShiftROR {
		return 0, operandError(op, "ror shift")
	}

	w := base(op, sz) | regFields(rd, rn, rm)
	w = bits.Insert(w, 22, 24, uint32(shift))
	return bits.Insert(w, 10, 16, uint32(amount)), nil
}

func (a Assembler) encExtended(op Op, sz Size, rd, rn, rm Reg, ext Extend, amount uint8) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm),
		checkBelow(op, "extend", uint64(ext), 8),
		checkBelow(op, "extend shift", uint64(amount), 5)); err != nil {
		return 0, err
	}

	l := DecodeAddSubExtended(base(op, sz))
	l.Option, l.Imm3 = uint32(ext), uint32(amount)
	l.Rm, l.Rn, l.Rd = rm.Field(), rn.Field(), rd.Field()
	return l.Encode(), nil
}

func (a Assembler) encRmif(op Op, rn Reg, lsb, mask uint8) (uint32, error) {
	if err := errors.Join(checkRegs(op, rn),
		checkBelow(op, "lsb", uint64(lsb), 64),
		checkBelow(op, "mask", uint64(mask), 16)); err != nil {
		return 0, err
	}
	return RotateFlags{Imm6: uint32(lsb), Rn: rn.Field(), Mask: uint32(mask)}.Encode(), nil
}

func (a Assembler) encSetf(op Op, rn Reg) (uint32, error) {
	if err := checkRegs(op, rn); err != nil {
		return 0, err
	}
	return opTable[op].base | rn.Field()<<5, nil
}

func (a Assembler) condCompare(op Op, sz Size, rn Reg, rmOrImm uint32, nzcv uint8, cond Cond) (uint32, error) {
	if err := errors.Join(checkSize(op, sz),
		checkBelow(op, "nzcv", uint64(nzcv), 16),
		checkBelow(op, "condition", uint64(cond), 16)); err != nil {
		return 0, err
	}

	l := DecodeCondCompare(base(op, sz))
	l.Rm, l.Rn = rmOrImm, rn.Field()
	l.NZCV, l.Cond = uint32(nzcv), uint32(cond)
	return l.Encode(), nil
}

func (a Assembler) encCondCompare(op Op, sz Size, rn, rm Reg, nzcv uint8, cond Cond) (uint32, error) {
	if err := checkRegs(op, rn, rm); err != nil {
		return 0, err
	}
	return a.condCompare(op, sz, rn, rm.Field(), nzcv, cond)
}

func (a Assembler) encCondCompareImm(op Op, sz Size, rn Reg, imm, nzcv uint8, cond Cond) (uint32, error) {
	if err := errors.Join(checkRegs(op, rn), checkBelow(op, "immediate", uint64(imm), 32)); err != nil {
		return 0, err
	}
	return a.condCompare(op, sz, rn, uint32(imm), nzcv, cond)
}

func (a Assembler) encCondSelect(op Op, sz Size, rd, rn, rm Reg, cond Cond) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm),
		checkBelow(op, "condition", uint64(cond), 16)); err != nil {
		return 0, err
	}
	return base(op, sz) | regFields(rd, rn, rm) | uint32(cond)<<12, nil
}

func (a Assembler) encDP3(op Op, sz Size, rd, rn, rm, ra Reg) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rd, rn, rm, ra)); err != nil {
		return 0, err
	}
	return base(op, sz) | regFields(rd, rn, rm) | ra.Field()<<10, nil
}

func (a Assembler) encCondBranch(op Op, cond Cond, offset int64) (uint32, error) {
	if err := errors.Join(checkBelow(op, "condition", uint64(cond), 16),
		checkOffset(op, offset, 19)); err != nil {
		return 0, err
	}

	l := DecodeCondBranch(opTable[op].base)
	l.Cond = uint32(cond)
	l.Imm19 = int32(offset >> 2)
	return l.Encode(), nil
}

func (a Assembler) encBranch(op Op, offset int64) (uint32, error) {
	if err := checkOffset(op, offset, 26); err != nil {
		return 0, err
	}

	l := DecodeUncondBranchImm(opTable[op].base)
	l.Imm26 = int32(offset >> 2)
	return l.Encode(), nil
}

func (a Assembler) encCompareBranch(op Op, sz Size, rt Reg, offset int64) (uint32, error) {
	if err := errors.Join(checkSize(op, sz), checkRegs(op, rt), checkOffset(op, offset, 19)); err != nil {
		return 0, err
	}

	l := DecodeCompareBranch(base(op, sz))
	l.Imm19 = int32(offset >> 2)
	l.Rt = rt.Field()
	return l.Encode(), nil
}

func (a Assembler) encTestBranch(op Op, rt Reg, bit uint8, offset int64) (uint32, error) {
	if err := errors.Join(checkRegs(op, rt),
		checkBelow(op, "bit", uint64(bit), 64),
		checkOffset(op, offset, 14)); err != nil {
		return 0, err
	}

	l := DecodeTestBranch(opTable[op].base)
	l.B5, l.B40 = uint32(bit>>5), uint32(bit&0x1f)
	l.Imm14 = int32(offset >> 2)
	l.Rt = rt.Field()
	return l.Encode(), nil
}

func (a Assembler) encException(op Op, imm uint16) (uint32, error) {
	if op == OpUDF {
		return uint32(imm), nil
	}
	return opTable[op].base | uint32(imm)<<5, nil
}

func (a Assembler) encBranchReg(op Op, rn Reg) (uint32, error) {
	if err := checkRegs(op, rn); err != nil {
		return 0, err
	}
	return opTable[op].base | rn.Field()<<5, nil
}

func (a Assembler) encFixed(op Op) (uint32, error) {
	return opTable[op].base, nil
}

// encHint rejects the numbers that have their own mnemonic.
func (a Assembler) encHint(op Op, imm uint8) (uint32, error) {
	if imm < uint8(len(namedHints)) {
		return 0, operandError(op, "hint %d is %s", imm, namedHints[imm])
	}
	if imm >= 128 {
		return 0, operandError(op, "hint %d out of range", imm)
	}
	return Hint{CRm: uint32(imm >> 3), Op2: uint32(imm & 7)}.Encode(), nil
}

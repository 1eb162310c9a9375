package emu

import "github.com/sarchlab/diss/insts/a64"

// ConditionHolds evaluates an A64 condition code against the flags.
func (p PSTATE) ConditionHolds(cond a64.Cond) bool {
	var result bool
	switch cond >> 1 {
	case 0: // EQ/NE
		result = p.Z
	case 1: // CS/CC
		result = p.C
	case 2: // MI/PL
		result = p.N
	case 3: // VS/VC
		result = p.V
	case 4: // HI/LS
		result = p.C && !p.Z
	case 5: // GE/LT
		result = p.N == p.V
	case 6: // GT/LE
		result = !p.Z && p.N == p.V
	default: // AL/NV
		return true
	}

	if cond&1 == 1 {
		return !result
	}
	return result
}

func jump(target uint64) (Effect, error) {
	return Effect{Jump: true, Target: target}, nil
}

func relative(pc uint64, offset int64) uint64 {
	return uint64(int64(pc) + offset)
}

func (x *a64Exec) branchIf(taken bool, offset int64) (Effect, error) {
	if taken {
		return jump(relative(x.regs.PC, offset))
	}
	return Effect{}, nil
}

func (x *a64Exec) BCond(cond a64.Cond, offset int64) (Effect, error) {
	return x.branchIf(x.regs.PSTATE.ConditionHolds(cond), offset)
}

// BcCond behaves as B.cond; the consistency hint has no functional effect.
func (x *a64Exec) BcCond(cond a64.Cond, offset int64) (Effect, error) {
	return x.BCond(cond, offset)
}

func (x *a64Exec) B(offset int64) (Effect, error) {
	return jump(relative(x.regs.PC, offset))
}

func (x *a64Exec) Bl(offset int64) (Effect, error) {
	x.regs.WriteReg(a64.LR, x.regs.PC+4)
	return jump(relative(x.regs.PC, offset))
}

func (x *a64Exec) Cbz(sz a64.Size, rt a64.Reg, offset int64) (Effect, error) {
	return x.branchIf(x.alu.Read(sz, rt) == 0, offset)
}

func (x *a64Exec) Cbnz(sz a64.Size, rt a64.Reg, offset int64) (Effect, error) {
	return x.branchIf(x.alu.Read(sz, rt) != 0, offset)
}

func (x *a64Exec) Tbz(rt a64.Reg, bit uint8, offset int64) (Effect, error) {
	return x.branchIf(x.regs.ReadReg(rt)>>bit&1 == 0, offset)
}

func (x *a64Exec) Tbnz(rt a64.Reg, bit uint8, offset int64) (Effect, error) {
	return x.branchIf(x.regs.ReadReg(rt)>>bit&1 == 1, offset)
}

func (x *a64Exec) Br(rn a64.Reg) (Effect, error) {
	return jump(x.regs.ReadReg(rn))
}

// Blr reads the target before writing LR so that BLR X30 works.
func (x *a64Exec) Blr(rn a64.Reg) (Effect, error) {
	target := x.regs.ReadReg(rn)
	x.regs.WriteReg(a64.LR, x.regs.PC+4)
	return jump(target)
}

func (x *a64Exec) Ret(rn a64.Reg) (Effect, error) {
	return jump(x.regs.ReadReg(rn))
}

func (x *a64Exec) Eret() (Effect, error) { return unsupported("eret") }
func (x *a64Exec) Drps() (Effect, error) { return unsupported("drps") }

package riscv

import (
	"github.com/sarchlab/diss/bits"
	"github.com/sarchlab/diss/insts"
)

type crule = insts.Rule[uint16, Inst]

// cfunct builds a rule keyed on quadrant and funct3.
func cfunct(name string, quadrant, funct3 uint16, decode func(uint16) (Inst, error)) crule {
	return crule{Name: name, Mask: 0xe003, Match: funct3<<13 | quadrant, Decode: decode}
}

func buildCompressedTable() *insts.Table[uint16, Inst] {
	return insts.NewTable(arch, "compressed",
		// Quadrant 0. funct3 100 is reserved.
		cfunct("c.addi4spn", 0, 0, decodeCAddi4spn),
		cfunct("c.fld", 0, 1, decodeCLoadStore(OpCFLD)),
		cfunct("c.lw", 0, 2, decodeCLoadStore(OpCLW)),
		cfunct("c.ld", 0, 3, decodeCLoadStore(OpCLD)),
		cfunct("c.fsd", 0, 5, decodeCLoadStore(OpCFSD)),
		cfunct("c.sw", 0, 6, decodeCLoadStore(OpCSW)),
		cfunct("c.sd", 0, 7, decodeCLoadStore(OpCSD)),

		// Quadrant 1.
		cfunct("c.addi", 1, 0, decodeCAddi),
		cfunct("c.addiw", 1, 1, decodeCAddiw),
		cfunct("c.li", 1, 2, decodeCLi),
		cfunct("c.lui", 1, 3, decodeCLui),
		cfunct("c.misc-alu", 1, 4, decodeCMiscALU),
		cfunct("c.j", 1, 5, decodeCJ),
		cfunct("c.beqz", 1, 6, decodeCBranch(OpCBEQZ)),
		cfunct("c.bnez", 1, 7, decodeCBranch(OpCBNEZ)),

		// Quadrant 2.
		cfunct("c.slli", 2, 0, decodeCSlli),
		cfunct("c.fldsp", 2, 1, decodeCStackLoad(OpCFLDSP)),
		cfunct("c.lwsp", 2, 2, decodeCStackLoad(OpCLWSP)),
		cfunct("c.ldsp", 2, 3, decodeCStackLoad(OpCLDSP)),
		cfunct("c.jr-mv-add", 2, 4, decodeCJumpMove),
		cfunct("c.fsdsp", 2, 5, decodeCStackStore(OpCFSDSP)),
		cfunct("c.swsp", 2, 6, decodeCStackStore(OpCSWSP)),
		cfunct("c.sdsp", 2, 7, decodeCStackStore(OpCSDSP)),
	)
}

func cinst(op Op) Inst {
	return Inst{Op: op, Len: 2}
}

func creserved(w uint16, detail string) error {
	return insts.Unallocated(arch, uint32(w), detail)
}

func chint(w uint16, detail string) error {
	return insts.Unimplemented(arch, uint32(w), detail+" hint")
}

// ciSigned is the sign-extended 6-bit CI immediate.
func ciSigned(w uint16) int64 {
	return bits.SignExtend(gather(w, ciImm), 6)
}

// cShamt is the 6-bit shift amount of C.SLLI, C.SRLI and C.SRAI.
func cShamt(w uint16) int64 {
	return int64(gather(w, ciImm))
}

func decodeCAddi4spn(w uint16) (Inst, error) {
	if w == 0 {
		return Inst{}, creserved(w, "all-zero halfword")
	}
	imm := gather(w, addi4spnImm)
	if imm == 0 {
		return Inst{}, creserved(w, "c.addi4spn with zero immediate")
	}
	inst := cinst(OpCADDI4SPN)
	inst.Rd = RegFromPrime(uint32(DecodeCIW(w).RdP))
	inst.Imm = int64(imm)
	return inst, nil
}

func decodeCLoadStore(op Op) func(uint16) (Inst, error) {
	offs := dwordOffImm
	if op == OpCLW || op == OpCSW {
		offs = wordOffImm
	}
	return func(w uint16) (Inst, error) {
		l := DecodeCL(w)
		inst := cinst(op)
		inst.Rs1 = RegFromPrime(uint32(l.Rs1P))
		inst.Imm = int64(gather(w, offs))
		switch op {
		case OpCFLD:
			inst.FRd = FRegFromPrime(uint32(l.RdP))
		case OpCLW, OpCLD:
			inst.Rd = RegFromPrime(uint32(l.RdP))
		case OpCFSD:
			inst.FRs2 = FRegFromPrime(uint32(l.RdP))
		default:
			inst.Rs2 = RegFromPrime(uint32(l.RdP))
		}
		return inst, nil
	}
}

func decodeCAddi(w uint16) (Inst, error) {
	rd := NewReg(uint32(DecodeCI(w).Rd))
	imm := ciSigned(w)
	switch {
	case rd == X0 && imm == 0:
		return cinst(OpCNOP), nil
	case rd == X0:
		return Inst{}, chint(w, "c.nop")
	case imm == 0:
		return Inst{}, chint(w, "c.addi")
	}
	inst := cinst(OpCADDI)
	inst.Rd, inst.Imm = rd, imm
	return inst, nil
}

func decodeCAddiw(w uint16) (Inst, error) {
	rd := NewReg(uint32(DecodeCI(w).Rd))
	if rd == X0 {
		return Inst{}, creserved(w, "c.addiw with rd=0")
	}
	inst := cinst(OpCADDIW)
	inst.Rd, inst.Imm = rd, ciSigned(w)
	return inst, nil
}

func decodeCLi(w uint16) (Inst, error) {
	rd := NewReg(uint32(DecodeCI(w).Rd))
	if rd == X0 {
		return Inst{}, chint(w, "c.li")
	}
	inst := cinst(OpCLI)
	inst.Rd, inst.Imm = rd, ciSigned(w)
	return inst, nil
}

func decodeCLui(w uint16) (Inst, error) {
	rd := NewReg(uint32(DecodeCI(w).Rd))
	if rd == SP {
		imm := bits.SignExtend(gather(w, addi16spImm), 10)
		if imm == 0 {
			return Inst{}, creserved(w, "c.addi16sp with zero immediate")
		}
		inst := cinst(OpCADDI16SP)
		inst.Imm = imm
		return inst, nil
	}

	imm := bits.SignExtend(gather(w, luiImm), 18)
	if imm == 0 {
		return Inst{}, creserved(w, "c.lui with zero immediate")
	}
	if rd == X0 {
		return Inst{}, chint(w, "c.lui")
	}
	inst := cinst(OpCLUI)
	inst.Rd, inst.Imm = rd, imm
	return inst, nil
}

func decodeCMiscALU(w uint16) (Inst, error) {
	l := DecodeCB(w)
	rd := RegFromPrime(uint32(l.Rs1P))
	switch bits.Field(w, 10, 12) {
	case 0, 1:
		op := OpCSRLI
		if bits.IsSet(w, 10) {
			op = OpCSRAI
		}
		shamt := cShamt(w)
		if shamt == 0 {
			return Inst{}, chint(w, op.String())
		}
		inst := cinst(op)
		inst.Rd, inst.Imm = rd, shamt
		return inst, nil
	case 2:
		inst := cinst(OpCANDI)
		inst.Rd, inst.Imm = rd, ciSigned(w)
		return inst, nil
	}

	a := DecodeCA(w)
	var op Op
	switch {
	case !bits.IsSet(w, 12):
		op = [...]Op{OpCSUB, OpCXOR, OpCOR, OpCAND}[a.Funct2]
	case a.Funct2 == 0:
		op = OpCSUBW
	case a.Funct2 == 1:
		op = OpCADDW
	default:
		return Inst{}, creserved(w, "reserved c.misc-alu selector")
	}
	inst := cinst(op)
	inst.Rd, inst.Rs2 = RegFromPrime(uint32(a.RdP)), RegFromPrime(uint32(a.Rs2P))
	return inst, nil
}

func decodeCJ(w uint16) (Inst, error) {
	inst := cinst(OpCJ)
	inst.Imm = bits.SignExtend(gather(w, cjImm), 12)
	return inst, nil
}

func decodeCBranch(op Op) func(uint16) (Inst, error) {
	return func(w uint16) (Inst, error) {
		inst := cinst(op)
		inst.Rs1 = RegFromPrime(uint32(DecodeCB(w).Rs1P))
		inst.Imm = bits.SignExtend(gather(w, cbImm), 9)
		return inst, nil
	}
}

func decodeCSlli(w uint16) (Inst, error) {
	rd := NewReg(uint32(DecodeCI(w).Rd))
	shamt := cShamt(w)
	if rd == X0 || shamt == 0 {
		return Inst{}, chint(w, "c.slli")
	}
	inst := cinst(OpCSLLI)
	inst.Rd, inst.Imm = rd, shamt
	return inst, nil
}

func decodeCStackLoad(op Op) func(uint16) (Inst, error) {
	offs := ldspImm
	if op == OpCLWSP {
		offs = lwspImm
	}
	return func(w uint16) (Inst, error) {
		rd := DecodeCI(w).Rd
		inst := cinst(op)
		inst.Imm = int64(gather(w, offs))
		if op == OpCFLDSP {
			inst.FRd = NewFReg(uint32(rd))
			return inst, nil
		}
		if rd == 0 {
			return Inst{}, creserved(w, op.String()+" with rd=0")
		}
		inst.Rd = NewReg(uint32(rd))
		return inst, nil
	}
}

func decodeCStackStore(op Op) func(uint16) (Inst, error) {
	offs := sdspImm
	if op == OpCSWSP {
		offs = swspImm
	}
	return func(w uint16) (Inst, error) {
		rs2 := DecodeCSS(w).Rs2
		inst := cinst(op)
		inst.Imm = int64(gather(w, offs))
		if op == OpCFSDSP {
			inst.FRs2 = NewFReg(uint32(rs2))
		} else {
			inst.Rs2 = NewReg(uint32(rs2))
		}
		return inst, nil
	}
}

func decodeCJumpMove(w uint16) (Inst, error) {
	l := DecodeCR(w)
	rd, rs2 := NewReg(uint32(l.Rd)), NewReg(uint32(l.Rs2))
	link := bits.IsSet(w, 12)

	switch {
	case !link && rs2 == X0:
		if rd == X0 {
			return Inst{}, creserved(w, "c.jr with rs1=0")
		}
		inst := cinst(OpCJR)
		inst.Rs1 = rd
		return inst, nil
	case !link:
		if rd == X0 {
			return Inst{}, chint(w, "c.mv")
		}
		inst := cinst(OpCMV)
		inst.Rd, inst.Rs2 = rd, rs2
		return inst, nil
	case rs2 == X0 && rd == X0:
		return cinst(OpCEBREAK), nil
	case rs2 == X0:
		inst := cinst(OpCJALR)
		inst.Rs1 = rd
		return inst, nil
	case rd == X0:
		return Inst{}, chint(w, "c.add")
	}
	inst := cinst(OpCADD)
	inst.Rd, inst.Rs2 = rd, rs2
	return inst, nil
}

package vm

import (
	"fmt"
	"strings"
)

type Opcode uint8

// Instruction set. A is a destination register or a global-name
// constant index; B is a source register, constant index, boolean flag
// or small-integer immediate depending on the opcode.
const (
	OpGetGlobal       Opcode = iota // A Bx   R[A] := G[K[Bx]]
	OpMove                          // A B    R[A] := R[B]
	OpLoadConst                     // A Bx   R[A] := K[Bx]
	OpLoadNil                       // A      R[A] := nil
	OpLoadBool                      // A B    R[A] := B != 0
	OpLoadInt                       // A sB   R[A] := sB (i16 immediate)
	OpCall                          // A B    R[A](R[A+1], ..., R[A+B])
	OpSetGlobalConst                // Ax Bx  G[K[Ax]] := K[Bx]
	OpSetGlobalLocal                // Ax B   G[K[Ax]] := R[B]
	OpSetGlobalGlobal               // Ax Bx  G[K[Ax]] := G[K[Bx]]
)

// ByteCode is one instruction.
type ByteCode struct {
	Op Opcode
	A  uint8
	B  int32
}

// Program is a compiled chunk: the deduplicated constant pool plus the
// instruction sequence. It is ephemeral; there is no serialized form.
type Program struct {
	Constants []Value
	Codes     []ByteCode
}

var opcodeNames = map[Opcode]string{
	OpGetGlobal:       "GetGlobal",
	OpMove:            "Move",
	OpLoadConst:       "LoadConst",
	OpLoadNil:         "LoadNil",
	OpLoadBool:        "LoadBool",
	OpLoadInt:         "LoadInt",
	OpCall:            "Call",
	OpSetGlobalConst:  "SetGlobalConst",
	OpSetGlobalLocal:  "SetGlobalLocal",
	OpSetGlobalGlobal: "SetGlobalGlobal",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(op))
}

func (c ByteCode) String() string {
	switch c.Op {
	case OpLoadNil:
		return fmt.Sprintf("%s(%d)", c.Op, c.A)
	case OpLoadBool:
		return fmt.Sprintf("%s(%d, %t)", c.Op, c.A, c.B != 0)
	default:
		return fmt.Sprintf("%s(%d, %d)", c.Op, c.A, c.B)
	}
}

// Dump renders the instruction sequence one line per instruction, for
// debug logging and the disassembly listing.
func (p *Program) Dump() string {
	var sb strings.Builder
	for _, code := range p.Codes {
		sb.WriteString("    ")
		sb.WriteString(code.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

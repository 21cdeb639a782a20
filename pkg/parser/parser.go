package parser

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"rua/pkg/lexer"
	"rua/pkg/vm"
)

// ParseProto is the single-pass compiler. It pulls tokens from the
// lexer one at a time and lowers each statement directly into
// bytecode; there is no syntax tree and no lookahead beyond the token
// in hand.
//
// locals is append-only: a local's register is its index at declaration
// time, and declaring a name again appends a shadowing entry without
// removing the old one. The old register stays occupied, just
// unreachable by name.
type ParseProto struct {
	constants []vm.Value
	codes     []vm.ByteCode
	lexer     *lexer.Lexer
	locals    []string
}

// New creates a compiler over the given source text.
func New(source string) *ParseProto {
	return &ParseProto{
		lexer: lexer.New(source),
	}
}

// Parse compiles the whole chunk. The first lexing or syntax error
// aborts compilation; no partial program is returned.
func (p *ParseProto) Parse() (*vm.Program, error) {
	prog, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return prog, nil
}

func (p *ParseProto) parse() (*vm.Program, error) {
	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}

		var code vm.ByteCode
		switch tok.Type {
		case lexer.LOCAL:
			name, err := p.expect(lexer.NAME, "<variable>")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.ASSIGN, "`=`"); err != nil {
				return nil, err
			}
			// the expression lands in the new local's register
			code, err = p.loadExp(uint8(len(p.locals)))
			if err != nil {
				return nil, err
			}
			p.locals = append(p.locals, name.Name)

		case lexer.NAME:
			next, err := p.lexer.NextToken()
			if err != nil {
				return nil, err
			}
			if next.Type == lexer.ASSIGN {
				code, err = p.assign(tok.Name)
			} else {
				code, err = p.callFunction(next, tok.Name)
			}
			if err != nil {
				return nil, err
			}

		case lexer.EOF:
			prog := &vm.Program{Constants: p.constants, Codes: p.codes}
			log.Debug("compiled chunk", "constants", fmt.Sprintf("%v", p.constants))
			log.Debug("bytecode stack:\n" + prog.Dump())
			return prog, nil

		case lexer.COMMENT:
			continue

		default:
			return nil, unexpected(tok, "")
		}

		p.codes = append(p.codes, code)
	}
}

// addConst inserts a constant, reusing the index of a structurally
// equal entry. The scan is linear; chunks are small and the first-seen
// order must stay stable.
func (p *ParseProto) addConst(value vm.Value) int {
	for i, v := range p.constants {
		if v.Equal(value) {
			return i
		}
	}
	p.constants = append(p.constants, value)
	return len(p.constants) - 1
}

func (p *ParseProto) loadConst(dst uint8, constant vm.Value) vm.ByteCode {
	return vm.ByteCode{Op: vm.OpLoadConst, A: dst, B: int32(p.addConst(constant))}
}

// loadExp lowers a single-token expression into the dst register.
func (p *ParseProto) loadExp(dst uint8) (vm.ByteCode, error) {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return vm.ByteCode{}, err
	}

	switch tok.Type {
	case lexer.NIL:
		return vm.ByteCode{Op: vm.OpLoadNil, A: dst}, nil
	case lexer.TRUE:
		return vm.ByteCode{Op: vm.OpLoadBool, A: dst, B: 1}, nil
	case lexer.FALSE:
		return vm.ByteCode{Op: vm.OpLoadBool, A: dst, B: 0}, nil
	case lexer.INTEGER:
		if tok.Int >= math.MinInt16 && tok.Int <= math.MaxInt16 {
			return vm.ByteCode{Op: vm.OpLoadInt, A: dst, B: int32(tok.Int)}, nil
		}
		return p.loadConst(dst, vm.Integer(tok.Int)), nil
	case lexer.FLOAT:
		return p.loadConst(dst, vm.Float(tok.Float)), nil
	case lexer.STRING:
		return p.loadConst(dst, vm.String(tok.Str)), nil
	case lexer.NAME:
		return p.loadVar(dst, tok.Name), nil
	}

	return vm.ByteCode{}, unexpected(tok, "<expression>")
}

// loadVar resolves a name into dst: a Move for locals, a GetGlobal
// otherwise.
func (p *ParseProto) loadVar(dst uint8, name string) vm.ByteCode {
	if src, ok := p.localVar(name); ok {
		return vm.ByteCode{Op: vm.OpMove, A: dst, B: int32(src)}
	}
	return vm.ByteCode{Op: vm.OpGetGlobal, A: dst, B: int32(p.addConst(vm.Identifier(name)))}
}

// assign lowers "<name> = <expr>" after the `=` has been consumed.
//
//	<local>  = <expr>    evaluate straight into the local's register
//	<global> = <const>   SetGlobalConst, constant goes through the pool
//	<global> = <local>   SetGlobalLocal
//	<global> = <global>  SetGlobalGlobal
func (p *ParseProto) assign(name string) (vm.ByteCode, error) {
	if src, ok := p.localVar(name); ok {
		return p.loadExp(uint8(src))
	}

	gi := int32(p.addConst(vm.Identifier(name)))

	tok, err := p.lexer.NextToken()
	if err != nil {
		return vm.ByteCode{}, err
	}

	setConst := func(v vm.Value) vm.ByteCode {
		return vm.ByteCode{Op: vm.OpSetGlobalConst, A: uint8(gi), B: int32(p.addConst(v))}
	}

	switch tok.Type {
	case lexer.NIL:
		return setConst(vm.Nil()), nil
	case lexer.TRUE:
		return setConst(vm.Boolean(true)), nil
	case lexer.FALSE:
		return setConst(vm.Boolean(false)), nil
	case lexer.INTEGER:
		return setConst(vm.Integer(tok.Int)), nil
	case lexer.FLOAT:
		return setConst(vm.Float(tok.Float)), nil
	case lexer.STRING:
		return setConst(vm.String(tok.Str)), nil
	case lexer.NAME:
		if src, ok := p.localVar(tok.Name); ok {
			return vm.ByteCode{Op: vm.OpSetGlobalLocal, A: uint8(gi), B: int32(src)}, nil
		}
		rhs := int32(p.addConst(vm.Identifier(tok.Name)))
		return vm.ByteCode{Op: vm.OpSetGlobalGlobal, A: uint8(gi), B: rhs}, nil
	}

	return vm.ByteCode{}, unexpected(tok, "<expression>")
}

// localVar scans the locals from most recently declared to least and
// returns the register of the first match. The rightmost scan is how
// shadowing works; a name-to-register map would lose it.
func (p *ParseProto) localVar(name string) (int, bool) {
	for i := len(p.locals) - 1; i >= 0; i-- {
		if p.locals[i] == name {
			return i, true
		}
	}
	return 0, false
}

// callFunction lowers "<name>(<expr>)" or `<name> "<string>"`. The
// callee goes in the next free register, the single argument in the
// one after, and the result count is zero: call results are discarded.
func (p *ParseProto) callFunction(tok lexer.Token, name string) (vm.ByteCode, error) {
	ifunc := uint8(len(p.locals))
	iarg := ifunc + 1

	p.codes = append(p.codes, p.loadVar(ifunc, name))

	switch tok.Type {
	case lexer.PARL:
		code, err := p.loadExp(iarg)
		if err != nil {
			return vm.ByteCode{}, err
		}
		p.codes = append(p.codes, code)
		if _, err := p.expect(lexer.PARR, "`)`"); err != nil {
			return vm.ByteCode{}, err
		}

	case lexer.STRING:
		p.codes = append(p.codes, p.loadConst(iarg, vm.String(tok.Str)))

	default:
		return vm.ByteCode{}, unexpected(tok, "`(<expression>)` or string")
	}

	return vm.ByteCode{Op: vm.OpCall, A: ifunc, B: 1}, nil
}

// expect consumes the next token and requires it to be of type t.
func (p *ParseProto) expect(t lexer.TokenType, desc string) (lexer.Token, error) {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok.Type != t {
		return lexer.Token{}, unexpected(tok, desc)
	}
	return tok, nil
}

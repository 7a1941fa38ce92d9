package ast

import (
	"strings"
)

const indentUnit = "    "

type printer struct {
	strings.Builder
	resolver Resolver
	depth    int
}

func newPrinter(r Resolver) *printer {
	return &printer{resolver: r}
}

func (p *printer) line(parts ...string) {
	p.WriteString(strings.Repeat(indentUnit, p.depth))

	for _, part := range parts {
		p.WriteString(part)
	}

	p.WriteByte('\n')
}

func (p *printer) expr(e Expression) string {
	if e == nil {
		return ""
	}

	return e.render(p.resolver)
}

func (p *printer) function(f *Function) {
	args := make([]string, len(f.Arguments))
	for i, arg := range f.Arguments {
		args[i] = arg.Name + ": " + arg.Type.String()
	}

	p.line("fun ", f.Name.render(p.resolver), "(", strings.Join(args, ", "), ") {")
	p.block(f.Body)
	p.line("}")
}

func (p *printer) block(b Block) {
	p.depth++
	defer func() { p.depth-- }()

	for _, stmt := range b {
		stmt.render(p)
	}
}

func (s *VarDeclare) render(p *printer) {
	if s.Value == nil {
		p.line("var ", s.Name, ": ", s.Type.String())
		return
	}

	p.line("var ", s.Name, ": ", s.Type.String(), " = ", p.expr(s.Value))
}

func (s *VarAssign) render(p *printer) {
	p.line(s.Name, " = ", p.expr(s.Value))
}

func (s *MethodCall) render(p *printer) {
	args := make([]string, len(s.Args))
	for i, arg := range s.Args {
		args[i] = p.expr(arg)
	}

	p.line(s.Method.render(p.resolver), "(", strings.Join(args, ", "), ")")
}

func (s *If) render(p *printer) {
	p.line("if ", p.expr(s.Cond), " {")
	p.block(s.Then)

	if len(s.Else) > 0 {
		p.line("} else {")
		p.block(s.Else)
	}

	p.line("}")
}

func (s *Loop) render(p *printer) {
	if s.Count == nil {
		p.line("loop {")
	} else {
		p.line("loop ", p.expr(s.Count), " {")
	}

	p.block(s.Body)
	p.line("}")
}

func (s *Wait) render(p *printer) {
	p.line("wait ", p.expr(s.Frames))
}

func (*Return) render(p *printer) {
	p.line("return")
}

func (*Break) render(p *printer) {
	p.line("break")
}

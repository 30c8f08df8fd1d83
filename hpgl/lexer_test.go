package hpgl

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestLex(t *testing.T) {
	is := is.New(t)

	cmds := Lex("IN;SP1;PU0,0;\nPD 100,0, 100,100 ;PU;")
	is.Equal(len(cmds), 5)
	is.Equal(cmds[0], Command{Mnemonic: "IN"})
	is.Equal(cmds[1], Command{Mnemonic: "SP", Args: "1"})
	is.Equal(cmds[2], Command{Mnemonic: "PU", Args: "0,0"})
	is.Equal(cmds[3], Command{Mnemonic: "PD", Args: "100,0, 100,100"})
	is.Equal(cmds[4], Command{Mnemonic: "PU"})
}

func TestLexSkipsBlankChunks(t *testing.T) {
	is := is.New(t)

	is.Equal(len(Lex(";;;")), 0)
	is.Equal(len(Lex("")), 0)
	is.Equal(len(Lex(" ; \n\t;")), 0)

	cmds := Lex("PU1,2")
	is.Equal(len(cmds), 1)
	is.Equal(cmds[0].Args, "1,2")
}

func TestLexShortChunk(t *testing.T) {
	is := is.New(t)

	cmds := Lex("P;X;")
	is.Equal(len(cmds), 2)
	is.Equal(cmds[0], Command{Mnemonic: "P"})
	is.Equal(cmds[1], Command{Mnemonic: "X"})
}

package hpgl

import "strings"

// Terminator ends every command of the stream.
const Terminator = ';'

// Command is one raw command of the stream: a two letter
// mnemonic followed by its unparsed arguments.
type Command struct {
	Mnemonic string
	Args     string
}

func (c Command) String() string { return c.Mnemonic + c.Args }

// Lex splits the stream into commands, preserving their order.
// Chunks which are blank are skipped; no validation is performed.
func Lex(text string) []Command {
	var out []Command
	for _, chunk := range strings.Split(text, string(Terminator)) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if len(chunk) <= 2 {
			out = append(out, Command{Mnemonic: chunk})
			continue
		}
		out = append(out, Command{Mnemonic: chunk[:2], Args: strings.TrimSpace(chunk[2:])})
	}
	return out
}

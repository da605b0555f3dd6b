package vm

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// ReadlineInspector implements Inspector using line-edited interactive
// input. Each time the VM executes a DEBUG instruction, it dumps the
// registers, a window of the surrounding code, and the top six words of the
// live data segment,
// then prompts for input: "q" (or EOF) disables further prompts for the
// remainder of this run; anything else resumes execution up to the next
// DEBUG instruction.
type ReadlineInspector struct {
	rl       *readline.Instance
	disabled bool
}

// NewReadlineInspector creates an Inspector backed by a readline instance
// writing to out.
func NewReadlineInspector(out io.Writer) (*ReadlineInspector, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "pl0-debug> ",
		Stdout: out,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineInspector{rl: rl}, nil
}

// Close releases the underlying readline instance.
func (d *ReadlineInspector) Close() error {
	return d.rl.Close()
}

func (d *ReadlineInspector) Inspect(v *VM) error {
	if d.disabled {
		return nil
	}

	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Fprintf(d.rl.Stdout(), "-- debug: pc=%d bp=%d sp=%d --\n", v.PC(), v.BP(), v.SP())

	start := v.PC() - 3
	if start < 0 {
		start = 0
	}
	end := v.PC() + 3
	if end > len(v.Code()) {
		end = len(v.Code())
	}
	for addr := start; addr < end; addr++ {
		marker := "  "
		if addr == v.PC() {
			marker = "->"
		}
		instr := v.Code()[addr]
		yellow.Fprintf(d.rl.Stdout(), "%s %4d  %s %d %d\n", marker, addr, instr.Op, instr.Level, instr.Value)
	}

	top := v.SP()
	if top >= 0 {
		window := top - 5
		if window < 0 {
			window = 0
		}
		fmt.Fprintf(d.rl.Stdout(), "data[%d..%d] = %v\n", window, top, v.Data()[window:top+1])
	}

	line, err := d.rl.Readline()
	if err != nil {
		d.disabled = true
		return nil
	}
	if line == "q" {
		d.disabled = true
	}
	return nil
}

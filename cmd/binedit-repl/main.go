// binedit-repl is an interactive shell for building and inspecting
// fragmented byte buffers with the binedit library.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/binedit/binedit"
)

// REPL holds the state of the interactive session.
type REPL struct {
	editor *binedit.Editor

	errorf  func(format string, a ...interface{})
	noticef func(format string, a ...interface{})
}

func main() {
	rl, err := readline.New(color.CyanString("binedit> "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("binedit REPL - Fragmented Byte Buffer Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		editor:  binedit.New(),
		errorf:  color.New(color.FgRed).PrintfFunc(),
		noticef: color.New(color.FgGreen).PrintfFunc(),
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println("Goodbye!")
			}
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !repl.handleCommand(line) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.editor = binedit.New()
		r.noticef("New empty buffer\n")

	case "load":
		data, err := parseBytes(args)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		e, err := binedit.FromBytes(data)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		r.editor = e
		r.noticef("Loaded %d bytes\n", e.Size())

	case "append":
		data, err := parseBytes(args)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		if err := r.editor.EmplaceBack(data); err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		r.noticef("Appended %d bytes\n", len(data))

	case "prepend":
		data, err := parseBytes(args)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		if err := r.editor.EmplaceFront(data); err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		r.noticef("Prepended %d bytes\n", len(data))

	case "insert":
		if len(args) < 2 {
			r.errorf("Usage: insert <offset> <byte> [byte...]\n")
			break
		}
		offset, err := strconv.ParseInt(args[0], 0, 64)
		if err != nil {
			r.errorf("Error: bad offset %q\n", args[0])
			break
		}
		data, err := parseBytes(args[1:])
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		patch, err := binedit.FromBytes(data)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		if err := r.editor.Insert(offset, patch); err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		r.noticef("Inserted %d bytes at offset %d\n", len(data), offset)

	case "sub":
		if len(args) != 2 {
			r.errorf("Usage: sub <offset> <size>\n")
			break
		}
		offset, err1 := strconv.ParseInt(args[0], 0, 64)
		size, err2 := strconv.ParseInt(args[1], 0, 64)
		if err1 != nil || err2 != nil {
			r.errorf("Error: bad offset or size\n")
			break
		}
		sub, err := r.editor.SubEditor(offset, size)
		if err != nil {
			r.errorf("Error: %v\n", err)
			break
		}
		r.editor = sub
		r.noticef("Narrowed to [%d, %d)\n", offset, offset+size)

	case "bytes":
		printHex(r.editor.Bytes())

	case "size":
		fmt.Printf("size: %d bytes in %d chunk(s)\n", r.editor.Size(), r.editor.ChunkCount())

	case "tidy":
		r.editor.Tidy()
		r.noticef("Coalesced to %d chunk(s)\n", r.editor.ChunkCount())

	case "clear":
		r.editor.Clear()
		r.noticef("Cleared\n")

	case "read":
		if len(args) != 2 {
			r.errorf("Usage: read <type> <offset>\n")
			break
		}
		offset, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			r.errorf("Error: bad offset %q\n", args[1])
			break
		}
		r.readValue(args[0], offset)

	case "container":
		if len(args) != 3 {
			r.errorf("Usage: container <type> <offset> <count>\n")
			break
		}
		offset, err1 := strconv.ParseInt(args[1], 0, 64)
		count, err2 := strconv.ParseInt(args[2], 0, 64)
		if err1 != nil || err2 != nil {
			r.errorf("Error: bad offset or count\n")
			break
		}
		r.readContainer(args[0], offset, count)

	case "dump":
		spew.Dump(r.editor)

	default:
		r.errorf("Unknown command %q, try 'help'\n", cmd)
	}

	return true
}

// readValue decodes one scalar of the named type at offset. Reads past the
// end of the buffer panic by contract; the repl converts the panic into a
// printed error so the session survives.
func (r *REPL) readValue(kind string, offset int64) {
	defer func() {
		if p := recover(); p != nil {
			r.errorf("Error: read out of range: %v\n", p)
		}
	}()

	switch kind {
	case "u8":
		fmt.Println(binedit.NewReaderAt[uint8](r.editor, offset).Get())
	case "u16":
		fmt.Println(binedit.NewReaderAt[uint16](r.editor, offset).Get())
	case "u32":
		fmt.Println(binedit.NewReaderAt[uint32](r.editor, offset).Get())
	case "u64":
		fmt.Println(binedit.NewReaderAt[uint64](r.editor, offset).Get())
	case "i8":
		fmt.Println(binedit.NewReaderAt[int8](r.editor, offset).Get())
	case "i16":
		fmt.Println(binedit.NewReaderAt[int16](r.editor, offset).Get())
	case "i32":
		fmt.Println(binedit.NewReaderAt[int32](r.editor, offset).Get())
	case "i64":
		fmt.Println(binedit.NewReaderAt[int64](r.editor, offset).Get())
	case "f32":
		fmt.Println(binedit.NewReaderAt[float32](r.editor, offset).Get())
	case "f64":
		fmt.Println(binedit.NewReaderAt[float64](r.editor, offset).Get())
	default:
		r.errorf("Unknown type %q (u8..u64, i8..i64, f32, f64)\n", kind)
	}
}

func (r *REPL) readContainer(kind string, offset, count int64) {
	switch kind {
	case "u8":
		printContainer(binedit.NewContainer[uint8](r.editor, offset, count))
	case "u16":
		printContainer(binedit.NewContainer[uint16](r.editor, offset, count))
	case "u32":
		printContainer(binedit.NewContainer[uint32](r.editor, offset, count))
	case "u64":
		printContainer(binedit.NewContainer[uint64](r.editor, offset, count))
	case "i32":
		printContainer(binedit.NewContainer[int32](r.editor, offset, count))
	case "i64":
		printContainer(binedit.NewContainer[int64](r.editor, offset, count))
	case "f32":
		printContainer(binedit.NewContainer[float32](r.editor, offset, count))
	case "f64":
		printContainer(binedit.NewContainer[float64](r.editor, offset, count))
	default:
		r.errorf("Unknown type %q (u8..u64, i32, i64, f32, f64)\n", kind)
	}
}

func printContainer[T binedit.Word](c *binedit.Container[T], err error) {
	if err != nil {
		color.Red("Error: %v", err)
		return
	}
	for it := c.Begin(); !it.Equal(c.End()); it.Next() {
		fmt.Printf("[%d] %v\n", it.Index(), it.Value())
	}
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  new                              - start an empty buffer")
	fmt.Println("  load <byte> [byte...]            - start a buffer from bytes (decimal or 0x..)")
	fmt.Println("  append <byte> [byte...]          - splice bytes onto the back")
	fmt.Println("  prepend <byte> [byte...]         - splice bytes onto the front")
	fmt.Println("  insert <offset> <byte> [byte...] - splice bytes at an offset")
	fmt.Println("  sub <offset> <size>              - narrow to a sub-range (zero-copy)")
	fmt.Println("  bytes                            - coalesce and hex-dump the buffer")
	fmt.Println("  size                             - show size and chunk count")
	fmt.Println("  tidy                             - coalesce the chunk sequence")
	fmt.Println("  clear                            - drop all chunks")
	fmt.Println("  read <type> <offset>             - decode a scalar (u8..u64, i8..i64, f32, f64)")
	fmt.Println("  container <type> <offset> <n>    - decode n elements starting at offset")
	fmt.Println("  dump                             - dump internal editor state")
	fmt.Println("  quit                             - exit")
}

func parseBytes(args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no bytes given")
	}
	data := make([]byte, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("bad byte %q", a)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

func printHex(data []byte) {
	if len(data) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("%08x  ", i)
		for j := i; j < end; j++ {
			fmt.Printf("%02x ", data[j])
		}
		fmt.Println()
	}
}

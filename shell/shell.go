package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/linked-collections/utils/collections"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrBadArguments    = errors.New("bad arguments")
	ErrUnknownIterator = errors.New("unknown iterator")
)

type command struct {
	usage string
	help  string
	run   func(sh *Shell, args []string) (string, error)
}

// Shell evaluates console commands against one queue and one set of strings
// and any number of named iterators over them.
type Shell struct {
	queue     *collections.LinkedQueue[string]
	set       *collections.LinkedSet[string]
	iterators map[string]collections.Iterator[string]
	commands  map[string]command
	log       *log.Entry
}

func New(logger *log.Entry) *Shell {
	sh := &Shell{
		queue:     collections.NewLinkedQueue[string](),
		set:       collections.NewLinkedSet[string](),
		iterators: make(map[string]collections.Iterator[string]),
		log:       logger,
	}
	sh.commands = commandTable()
	return sh
}

// Eval runs one command line and returns its textual result. quit is set
// when the line asks to leave the shell.
func (sh *Shell) Eval(line string) (result string, quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return "", false, nil
	}
	name, args := words[0], words[1:]
	if name == "quit" || name == "exit" {
		return "", true, nil
	}
	cmd, ok := sh.commands[name]
	if !ok {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	sh.log.WithFields(log.Fields{"cmd": name, "args": args}).Debug("executing command")
	result, err = cmd.run(sh, args)
	if err != nil {
		sh.log.WithFields(log.Fields{"cmd": name}).Warn(err)
	}
	return result, false, err
}

// LoadScript evaluates r line by line and returns the number of lines that
// failed. Failures are reported and do not stop the script.
func (sh *Shell) LoadScript(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		result, quit, err := sh.Eval(scanner.Text())
		if err != nil {
			failed++
			pterm.Error.Println(fmt.Sprintf("line %d: %v", lineno, err))
			continue
		}
		if quit {
			break
		}
		if result != "" {
			pterm.Info.Println(result)
		}
	}
	return failed, scanner.Err()
}

// Run reads commands from repl until end of input or quit.
func (sh *Shell) Run(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		result, quit, err := sh.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
		if result != "" {
			pterm.Info.Println(result)
		}
	}
}

func commandTable() map[string]command {
	return map[string]command{
		"help": {"help", "list commands", func(sh *Shell, args []string) (string, error) {
			return sh.help(), nil
		}},
		// queue
		"q.enqueue": {"q.enqueue v...", "append values to the queue", func(sh *Shell, args []string) (string, error) {
			if len(args) == 0 {
				return "", usage("q.enqueue v...")
			}
			n := sh.queue.EnqueueAll(slices.Values(args))
			return fmt.Sprintf("enqueued %d: %s", n, sh.queue), nil
		}},
		"q.dequeue": {"q.dequeue", "remove and show the front value", func(sh *Shell, args []string) (string, error) {
			return sh.queue.Dequeue()
		}},
		"q.peek": {"q.peek", "show the front value", func(sh *Shell, args []string) (string, error) {
			v, err := sh.queue.Peek()
			if err != nil {
				return "", err
			}
			return *v, nil
		}},
		"q.clear": {"q.clear", "remove every value", func(sh *Shell, args []string) (string, error) {
			sh.queue.Clear()
			return sh.queue.String(), nil
		}},
		"q.show": {"q.show", "show the queue", func(sh *Shell, args []string) (string, error) {
			return sh.queue.String(), nil
		}},
		"q.debug": {"q.debug", "show the queue chain and counters", func(sh *Shell, args []string) (string, error) {
			return sh.queue.Debug(), nil
		}},
		"q.size": {"q.size", "show the number of values", func(sh *Shell, args []string) (string, error) {
			return strconv.Itoa(sh.queue.Size()), nil
		}},
		"q.tree": {"q.tree", "draw the queue chain", func(sh *Shell, args []string) (string, error) {
			renderChain("LinkedQueue", sh.queue.Entries(), "rear")
			return "", nil
		}},
		// set
		"s.insert": {"s.insert v...", "add values to the set", func(sh *Shell, args []string) (string, error) {
			if len(args) == 0 {
				return "", usage("s.insert v...")
			}
			return fmt.Sprintf("inserted %d", sh.set.InsertAll(slices.Values(args))), nil
		}},
		"s.erase": {"s.erase v...", "remove values from the set", func(sh *Shell, args []string) (string, error) {
			if len(args) == 0 {
				return "", usage("s.erase v...")
			}
			return fmt.Sprintf("erased %d", sh.set.EraseAll(slices.Values(args))), nil
		}},
		"s.contains": {"s.contains v...", "test membership of all values", func(sh *Shell, args []string) (string, error) {
			if len(args) == 0 {
				return "", usage("s.contains v...")
			}
			return strconv.FormatBool(sh.set.ContainsAll(slices.Values(args))), nil
		}},
		"s.retain": {"s.retain v...", "keep only the given values", func(sh *Shell, args []string) (string, error) {
			return fmt.Sprintf("removed %d", sh.set.RetainAll(slices.Values(args))), nil
		}},
		"s.clear": {"s.clear", "remove every element", func(sh *Shell, args []string) (string, error) {
			sh.set.Clear()
			return sh.set.String(), nil
		}},
		"s.show": {"s.show", "show the set in chain order", func(sh *Shell, args []string) (string, error) {
			return sh.set.String(), nil
		}},
		"s.sorted": {"s.sorted", "show the set in ascending order", func(sh *Shell, args []string) (string, error) {
			return "set[" + strings.Join(collections.Sorted(sh.set.All()), ",") + "]", nil
		}},
		"s.debug": {"s.debug", "show the set chain and counters", func(sh *Shell, args []string) (string, error) {
			return sh.set.Debug(), nil
		}},
		"s.size": {"s.size", "show the number of elements", func(sh *Shell, args []string) (string, error) {
			return strconv.Itoa(sh.set.Size()), nil
		}},
		"s.tree": {"s.tree", "draw the set chain", func(sh *Shell, args []string) (string, error) {
			renderChain("LinkedSet", sh.set.Entries(), "TRAILER")
			return "", nil
		}},
		// iterators
		"it.begin": {"it.begin NAME q|s", "new iterator at the first element", func(sh *Shell, args []string) (string, error) {
			return sh.newIterator(args, true)
		}},
		"it.end": {"it.end NAME q|s", "new iterator past the last element", func(sh *Shell, args []string) (string, error) {
			return sh.newIterator(args, false)
		}},
		"it.next": {"it.next NAME", "advance an iterator", func(sh *Shell, args []string) (string, error) {
			it, err := sh.iterator(args, "it.next NAME")
			if err != nil {
				return "", err
			}
			return "", it.Next()
		}},
		"it.get": {"it.get NAME", "show the element under an iterator", func(sh *Shell, args []string) (string, error) {
			it, err := sh.iterator(args, "it.get NAME")
			if err != nil {
				return "", err
			}
			return it.Value()
		}},
		"it.erase": {"it.erase NAME", "erase the element under an iterator", func(sh *Shell, args []string) (string, error) {
			it, err := sh.iterator(args, "it.erase NAME")
			if err != nil {
				return "", err
			}
			return it.Erase()
		}},
		"it.atend": {"it.atend NAME", "tell whether an iterator is past the end", func(sh *Shell, args []string) (string, error) {
			it, err := sh.iterator(args, "it.atend NAME")
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(it.AtEnd()), nil
		}},
		"it.debug": {"it.debug NAME", "show an iterator's state", func(sh *Shell, args []string) (string, error) {
			it, err := sh.iterator(args, "it.debug NAME")
			if err != nil {
				return "", err
			}
			return it.String(), nil
		}},
		"it.eq": {"it.eq NAME NAME", "compare two iterators", func(sh *Shell, args []string) (string, error) {
			if len(args) != 2 {
				return "", usage("it.eq NAME NAME")
			}
			a, err := sh.iterator(args[:1], "it.eq NAME NAME")
			if err != nil {
				return "", err
			}
			b, err := sh.iterator(args[1:], "it.eq NAME NAME")
			if err != nil {
				return "", err
			}
			eq, err := a.Equal(b)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(eq), nil
		}},
		"it.drop": {"it.drop NAME", "forget an iterator", func(sh *Shell, args []string) (string, error) {
			if _, err := sh.iterator(args, "it.drop NAME"); err != nil {
				return "", err
			}
			delete(sh.iterators, args[0])
			return "", nil
		}},
	}
}

func (sh *Shell) newIterator(args []string, begin bool) (string, error) {
	const form = "it.begin|it.end NAME q|s"
	if len(args) != 2 {
		return "", usage(form)
	}
	var it collections.Iterator[string]
	switch args[1] {
	case "q":
		if begin {
			it = sh.queue.Begin()
		} else {
			it = sh.queue.End()
		}
	case "s":
		if begin {
			it = sh.set.Begin()
		} else {
			it = sh.set.End()
		}
	default:
		return "", usage(form)
	}
	sh.iterators[args[0]] = it
	return it.String(), nil
}

func (sh *Shell) iterator(args []string, form string) (collections.Iterator[string], error) {
	if len(args) != 1 {
		return nil, usage(form)
	}
	it, ok := sh.iterators[args[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIterator, args[0])
	}
	return it, nil
}

func (sh *Shell) help() string {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, name := range names {
		cmd := sh.commands[name]
		fmt.Fprintf(&sb, "%-22s %s\n", cmd.usage, cmd.help)
	}
	sb.WriteString("quit")
	return sb.String()
}

func usage(form string) error {
	return fmt.Errorf("%w: usage: %s", ErrBadArguments, form)
}

func renderChain(label string, values []string, terminal string) {
	ll := pterm.LeveledList{}
	for i, v := range values {
		ll = append(ll, pterm.LeveledListItem{Level: i, Text: v})
	}
	ll = append(ll, pterm.LeveledListItem{Level: len(values), Text: terminal})
	pterm.Println(label)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

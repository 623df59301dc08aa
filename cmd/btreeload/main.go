// Command btreeload loads a file of newline-separated decimal integers into
// a B-tree (the file-based test-harness input format described by the
// core's specification) and drops into an interactive prompt for poking at
// the result: look a key up, dump the tree, or check that it is balanced.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/z248bw/btree/balance"
	"github.com/z248bw/btree/btree"
	"github.com/z248bw/btree/internal/fixtures"
)

func main() {
	file := flag.String("file", "", "path to a file of one decimal integer per line")
	degree := flag.Int("degree", 2, "branching degree of the tree")
	flag.Parse()

	if *file == "" {
		log.Fatal("btreeload: -file is required")
	}

	ints, err := fixtures.LoadIntegersFromFile(*file)
	if err != nil {
		log.Fatalf("btreeload: %v", err)
	}

	t := btree.New[int, int](*degree)
	for i, k := range ints {
		if err := t.Add(k, i); err != nil {
			if errors.Is(err, btree.ErrDuplicateKey) {
				log.Printf("btreeload: skipping duplicate key %d", k)
				continue
			}
			log.Fatalf("btreeload: %v", err)
		}
	}

	log.Printf("loaded %d keys at degree %d, balanced=%v", len(t.Dump()), *degree, balance.IsBalanced(t.Root()))

	runPrompt(t)
}

func runPrompt(t *btree.Btree[int, int]) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("commands: get <key>, dump, balanced, quit")
	for {
		input, err := line.Prompt("btree> ")
		if err != nil {
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "quit" || input == "exit" {
			break
		}

		if !handleCommand(t, input) {
			break
		}
	}
}

func handleCommand(t *btree.Btree[int, int], input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case "dump":
		for _, e := range t.Dump() {
			fmt.Printf("%d -> %d\n", e.Key, e.Value)
		}
	case "balanced":
		fmt.Println(balance.IsBalanced(t.Root()))
	case "get":
		if len(fields) != 2 {
			fmt.Println("usage: get <key>")
			return true
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Printf("invalid key %q\n", fields[1])
			return true
		}
		v, err := t.Get(key)
		if err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Println(*v)
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
	return true
}

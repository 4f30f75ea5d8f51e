package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
)

// nodeKinds maps listing labels to node kinds; labels match NodeKind.String.
var nodeKinds = map[string]core.NodeKind{
	"undefined": core.NodeUndefined,
	"namespace": core.NodeNamespace,
	"class":     core.NodeClass,
	"struct":    core.NodeStruct,
	"enum":      core.NodeEnum,
	"function":  core.NodeFunction,
	"method":    core.NodeMethod,
	"field":     core.NodeField,
	"variable":  core.NodeVariable,
}

// edgeKinds maps listing labels to edge kinds. EdgeMember is deliberately
// absent: containment is derived from names.
var edgeKinds = map[string]core.EdgeKind{
	"call":        core.EdgeCall,
	"usage":       core.EdgeUsage,
	"type_usage":  core.EdgeTypeUsage,
	"inheritance": core.EdgeInheritance,
}

// ReadListing parses a symbol listing and builds the graph. Directives:
//
//	sym <kind> <name> [<signature ...>]
//	rel <kind> <from> <to>
//
// Blank lines and '#' comments are skipped. Errors carry the line number.
func ReadListing(r io.Reader, delimiter string) (*core.Graph, error) {
	b := builder.New(builder.WithDelimiter(delimiter))

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "sym":
			err = readSymbol(b, fields)
		case "rel":
			err = readRelation(b, fields)
		default:
			err = fmt.Errorf("unknown directive %q", fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.Graph(), nil
}

func readSymbol(b *builder.Builder, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("sym needs <kind> <name>")
	}
	kind, ok := nodeKinds[fields[1]]
	if !ok {
		return fmt.Errorf("unknown node kind %q", fields[1])
	}

	if len(fields) > 3 {
		// Everything after the name is the signature, spaces included.
		_, err := b.SymbolWithSignature(kind, fields[2], strings.Join(fields[3:], " "))
		return err
	}
	_, err := b.Symbol(kind, fields[2])
	return err
}

func readRelation(b *builder.Builder, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("rel needs <kind> <from> <to>")
	}
	kind, ok := edgeKinds[fields[1]]
	if !ok {
		return fmt.Errorf("unknown relation kind %q", fields[1])
	}

	_, err := b.Relation(kind, fields[2], fields[3])
	return err
}

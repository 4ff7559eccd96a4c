package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

var nodes = map[string][]string{
	"Stmt": {
		"Expr: Expression Expr, Last Token",
	},
	"Expr": {
		"Literal: Token Token, Value float64",
		"Grouping: Paren Token, Expression Expr",
		"Unary: Operator Token, Right Expr",
		"Binary: Left Expr, Operator Token, Right Expr",
	},
}

func main() {
	log.SetFlags(0)
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	types, ok := nodes[flag.Arg(0)]
	if !ok {
		log.Fatalf("usage: ast [-o file] Expr|Stmt")
	}

	src, err := format.Source([]byte(generateAst(flag.Arg(0), types)))
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is a node of the %s tree\n", baseName, strings.ToLower(baseName))
	out += "type " + baseName + " interface {\n"
	out += "\tLoc() Location\n"
	out += "\t" + marker(baseName) + "()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	locField := ""
	for _, field := range strings.Split(fields, ",") {
		field = strings.TrimSpace(field)
		out += "\t" + field + "\n"
		if parts := strings.Fields(field); locField == "" && parts[1] == "Token" {
			locField = parts[0]
		}
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (*" + structName + ") " + marker(baseName) + "() {}\n\n"
	if locField != "" {
		out += "// Loc returns the location of " + locField + "\n"
		out += "func (n *" + structName + ") Loc() Location {\n"
		out += "\treturn n." + locField + ".Loc\n"
		out += "}\n\n"
	}
	// End Method Definition

	return out
}

func marker(baseName string) string {
	return strings.ToLower(baseName) + "Node"
}

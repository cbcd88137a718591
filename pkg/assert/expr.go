// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// expr provides the exprIndexer-type whose only task it is to find the
// source text of an evaluated condition to derive a default failure
// message from it.

package assert

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"runtime"
	"sync"
)

var exprs = exprIndexer{}

// evaluators are the names of functions and methods whose first
// argument is a condition to be evaluated.
var evaluators = map[string]bool{"That": true, "True": true}

// exprIndexer parses a source file at most once and maps the lines of
// its evaluator calls to the source text of their conditions.  Its
// operations are concurrency save, i.e. while a file is parsed no
// expression may be retrieved and vice versa.
type exprIndexer struct {
	mutex sync.Mutex
	//      file-name   line  expression
	files map[string]map[int]string
}

// of returns the condition source text of the evaluator call made by
// the caller identified by given skip (see runtime.Caller); false if it
// can't be determined.
func (i *exprIndexer) of(skip int) (string, bool) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", false
	}
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if i.files == nil {
		i.files = map[string]map[int]string{}
	}
	lines, ok := i.files[file]
	if !ok {
		lines = i.index(file)
		i.files[file] = lines
	}
	expr, ok := lines[line]
	return expr, ok
}

// index parses given file and maps the lines of its evaluator calls to
// the printed conditions.  An unparsable file maps to an empty index.
func (i *exprIndexer) index(file string) map[int]string {
	lines := map[int]string{}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, nil, 0)
	if err != nil {
		return lines
	}
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 || !evaluators[calleeName(call)] {
			return true
		}
		line := fset.Position(call.Pos()).Line
		if _, ok := lines[line]; ok {
			return true
		}
		buf := bytes.Buffer{}
		if err := printer.Fprint(&buf, fset, call.Args[0]); err != nil {
			return true
		}
		lines[line] = buf.String()
		return true
	})
	return lines
}

func calleeName(call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	}
	return ""
}

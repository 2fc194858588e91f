// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func parseFuncs(t *testing.T, filenames ...string) []string {
	fset := token.NewFileSet()
	var names []string
	for _, filename := range filenames {
		af, err := parser.ParseFile(fset, filename, nil, parser.AllErrors)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range af.Decls {
			if fd, _ := d.(*ast.FuncDecl); fd != nil {
				// Skip methods
				if fd.Name == nil || fd.Recv != nil {
					continue
				}
				name := fd.Name.Name
				if ast.IsExported(name) {
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)
	return names
}

func packageFiles(t *testing.T, dir string) []string {
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		t.Fatal(err)
	}
	var srcs []string
	for _, name := range files {
		if !strings.HasSuffix(name, "_test.go") {
			srcs = append(srcs, name)
		}
	}
	return srcs
}

// Test that every function of the str package exists in textkit.
func TestPackageParity(t *testing.T) {
	rootNames := parseFuncs(t, packageFiles(t, ".")...)
	strNames := parseFuncs(t, "str/str.go")
	if len(strNames) == 0 {
		t.Fatal("no exported functions in str/str.go")
	}
	for _, name := range strNames {
		if i := sort.SearchStrings(rootNames, name); i == len(rootNames) || rootNames[i] != name {
			t.Errorf("str.%s has no textkit equivalent", name)
		}
	}
}

// Test that every exported function of textkit and str is documented.
func TestExportedDocs(t *testing.T) {
	files := append(packageFiles(t, "."), packageFiles(t, "str")...)
	fset := token.NewFileSet()
	for _, filename := range files {
		af, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range af.Decls {
			fd, _ := d.(*ast.FuncDecl)
			if fd == nil || fd.Recv != nil || !ast.IsExported(fd.Name.Name) {
				continue
			}
			if fd.Doc == nil {
				t.Errorf("%s: %s has no doc comment", filename, fd.Name.Name)
			}
		}
	}
}

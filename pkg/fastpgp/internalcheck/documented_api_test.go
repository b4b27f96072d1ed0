package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"
)

const rootPkg = "github.com/fastpgp/fastpgp-go/pkg/fastpgp"

// TestBridgeAPIDocumented requires a doc comment on every exported function
// and every exported Bridge method of the root package.
func TestBridgeAPIDocumented(t *testing.T) {
	var findings []string

	for _, pkg := range load(t) {
		if pkg.PkgPath != rootPkg {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || !fn.Name.IsExported() || fn.Doc != nil {
					continue
				}
				if fn.Recv != nil && receiverName(fn.Recv) != "Bridge" {
					continue
				}
				findings = append(findings, fmt.Sprintf("%s: %s has no doc comment", pkg.Fset.Position(fn.Pos()), fn.Name.Name))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("undocumented bridge API:\n%s", strings.Join(findings, "\n"))
	}
}

func receiverName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

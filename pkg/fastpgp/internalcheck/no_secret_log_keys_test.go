package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"
)

const loggingPkg = "github.com/fastpgp/fastpgp-go/pkg/fastpgp/logging"

var secretKeys = map[string]bool{
	"passphrase":  true,
	"password":    true,
	"private_key": true,
	"privateKey":  true,
	"plaintext":   true,
	"message":     true,
}

// TestNoSecretLogKeys rejects log calls that attach a value under a key naming
// secret material. Such values must go through logging.Redacted.
func TestNoSecretLogKeys(t *testing.T) {
	var findings []string

	for _, pkg := range load(t) {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok || !isLoggerCall(pkg.TypesInfo, call) {
					return true
				}
				for _, arg := range call.Args {
					lit, ok := arg.(*ast.BasicLit)
					if !ok || lit.Kind != token.STRING {
						continue
					}
					key, err := strconv.Unquote(lit.Value)
					if err == nil && secretKeys[key] {
						findings = append(findings, fmt.Sprintf("%s: log key %q carries secret material; use logging.Redacted", fset.Position(lit.Pos()), key))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("secret logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isLoggerCall(info *types.Info, call *ast.CallExpr) bool {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := info.Uses[selector.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != loggingPkg {
		return false
	}
	switch fn.Name() {
	case "Debug", "Info", "Warn", "Error", "With":
		return true
	}
	return false
}

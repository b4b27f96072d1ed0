package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// checked lists the packages that handle keys, passphrases or plaintext.
var checked = []string{
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp",
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/engine",
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/loopback",
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/natsport",
	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/wasmhost",
}

func load(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, checked...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}

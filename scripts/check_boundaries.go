package main

import (
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const modulePath = "votingsystem"

type violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

// layerPolicy lists, relative to the owning service, what a layer may
// import besides the standard library and contracts.
type layerPolicy struct {
	name    string
	allowed []string
}

var layerPolicies = map[string]layerPolicy{
	"domain":      {name: "domain", allowed: []string{"domain"}},
	"ports":       {name: "ports", allowed: []string{"domain"}},
	"application": {name: "application", allowed: []string{"application", "domain", "ports"}},
}

// importSite is one import statement in one service file.
type importSite struct {
	file    string
	line    int
	path    string
	service string
}

func (s importSite) violate(rule string) violation {
	return violation{File: s.file, Line: s.line, Import: s.path, Rule: rule}
}

func main() {
	root := flag.String("root", "contexts", "Directory holding the bounded contexts")
	flag.Parse()

	violations := collectViolations(*root)
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	slices.SortFunc(violations, func(a, b violation) int {
		if c := strings.Compare(a.File, b.File); c != 0 {
			return c
		}
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return strings.Compare(a.Import, b.Import)
	})

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s:%d imports %q (%s)\n", v.File, v.Line, v.Import, v.Rule)
	}
	os.Exit(1)
}

// collectViolations walks root laid out as <context>/<service>/<layer>/...
// and checks every non-test Go file.
func collectViolations(root string) []violation {
	var violations []violation

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil
		}
		service := fmt.Sprintf("%s/contexts/%s/%s", modulePath, parts[0], parts[1])
		violations = append(violations, checkFile(path, "contexts/"+filepath.ToSlash(rel), parts[2], service)...)
		return nil
	})

	return violations
}

func checkFile(path string, display string, layer string, service string) []violation {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []violation{{File: display, Line: 1, Rule: "file must parse"}}
	}

	policy, layered := layerPolicies[layer]
	var violations []violation
	for _, imp := range file.Imports {
		site := importSite{
			file:    display,
			line:    fset.Position(imp.Pos()).Line,
			path:    strings.Trim(imp.Path.Value, "\""),
			service: service,
		}
		if v, ok := crossContext(site); ok {
			violations = append(violations, v)
		}
		if layered {
			violations = append(violations, policy.check(site)...)
		}
	}
	return violations
}

func crossContext(site importSite) (violation, bool) {
	if strings.HasPrefix(site.path, modulePath+"/contexts/") && !hasPrefix(site.path, site.service) {
		return site.violate("cross-module imports are forbidden"), true
	}
	return violation{}, false
}

func (p layerPolicy) check(site importSite) []violation {
	if isStdlib(site.path) || hasPrefix(site.path, modulePath+"/contracts") {
		return nil
	}

	var violations []violation
	if strings.Contains(site.path, "/adapters/") {
		violations = append(violations, site.violate(p.name+" must not import adapters"))
	}
	if hasPrefix(site.path, modulePath+"/internal") {
		violations = append(violations, site.violate(p.name+" must not import runtime infrastructure"))
	}
	for _, layer := range p.allowed {
		if hasPrefix(site.path, site.service+"/"+layer) {
			return violations
		}
	}
	return append(violations, site.violate(fmt.Sprintf("%s may only import %s of its own service and contracts",
		p.name, strings.Join(p.allowed, ", "))))
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isStdlib(importPath string) bool {
	if hasPrefix(importPath, modulePath) {
		return false
	}
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
